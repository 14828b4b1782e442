package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-secret-selfie/internal/adapter"
	"github.com/MKhiriev/go-secret-selfie/internal/client"
	"github.com/MKhiriev/go-secret-selfie/internal/crypto"
	"github.com/MKhiriev/go-secret-selfie/internal/passcode"
	"github.com/MKhiriev/go-secret-selfie/internal/stego"
)

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"wrapped authentication", fmt.Errorf("open token: %w", crypto.ErrAuthentication), MsgAuthenticationFailed},
		{"remote capacity", fmt.Errorf("%w: payload exceeds carrier capacity", stego.ErrCapacity), MsgCapacityExceeded},
		{"malformed passcode", passcode.ErrMalformedPasscode, MsgMalformedPasscode},
		{"no payload", stego.ErrNoPayloadFound, MsgNoPayloadFound},
		{"local gallery", client.ErrServerRequired, MsgServerRequired},
		{"remote 5xx", fmt.Errorf("%w: http 502: bad gateway", adapter.ErrServer), MsgServerError},
		{"unknown", errors.New("connection refused"), "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}
