package models

import "time"

// Error codes carried in [ErrorResponse.Error]. Clients map them back to the
// corresponding sentinel errors.
const (
	CodeMalformedPasscode    = "malformed_passcode"
	CodeCapacityExceeded     = "capacity_exceeded"
	CodeAuthenticationFailed = "authentication_failed"
	CodeNoPayloadFound       = "no_payload_found"
	CodeUnsupportedImage     = "unsupported_image"
	CodeInvalidRequest       = "invalid_request"
	CodeUploadTooLarge       = "upload_too_large"
	CodeNotFound             = "not_found"
	CodeInvalidToken         = "invalid_token"
	CodeGalleryDisabled      = "gallery_disabled"
	CodeInternal             = "internal_error"
)

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HTTP headers exchanged with the API. All but X-Trace-ID are set on a
// successful hide response.
const (
	HeaderPasscode       = "X-Passcode"
	HeaderPayloadBits    = "X-Payload-Bits"
	HeaderCapacityBits   = "X-Capacity-Bits"
	HeaderDownloadToken  = "X-Download-Token"
	HeaderGalleryExpires = "X-Gallery-Expires-At"
	HeaderTraceID        = "X-Trace-ID"
)

// PasscodeResponse is returned by GET /api/passcode.
type PasscodeResponse struct {
	Passcode string `json:"passcode"`
}

// RevealResponse is returned by POST /api/stego/reveal.
type RevealResponse struct {
	Message  string     `json:"message"`
	TakenAt  *time.Time `json:"taken_at,omitempty"`
	SealedAt time.Time  `json:"sealed_at"`
}

// CapacityResponse is returned by POST /api/stego/capacity.
type CapacityResponse struct {
	Width           int `json:"width"`
	Height          int `json:"height"`
	CapacityBits    int `json:"capacity_bits"`
	MaxTokenBytes   int `json:"max_token_bytes"`
	MaxMessageBytes int `json:"max_message_bytes"`

	MaxStampedMessageBytes int `json:"max_stamped_message_bytes"`
}

// NewRevealResponse converts a service result into its wire form.
func NewRevealResponse(r RevealResult) RevealResponse {
	resp := RevealResponse{
		Message:  r.Note.Message,
		SealedAt: r.SealedAt.UTC(),
	}
	if !r.Note.TakenAt.IsZero() {
		takenAt := r.Note.TakenAt
		resp.TakenAt = &takenAt
	}
	return resp
}

// RevealResult converts the wire form back into a service result.
func (r RevealResponse) RevealResult() RevealResult {
	res := RevealResult{
		Note:     SecretNote{Message: r.Message},
		SealedAt: r.SealedAt,
	}
	if r.TakenAt != nil {
		res.Note.TakenAt = *r.TakenAt
	}
	return res
}

func NewCapacityResponse(c CapacityReport) CapacityResponse {
	return CapacityResponse(c)
}

func (c CapacityResponse) CapacityReport() CapacityReport {
	return CapacityReport(c)
}
