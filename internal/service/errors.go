package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNoImage is returned when a request carries no decoded image.
	ErrNoImage = errors.New("no image provided")
	// ErrUnknownPasscodeMode is returned by Hide for a nil or foreign
	// [models.PasscodeMode].
	ErrUnknownPasscodeMode = errors.New("unknown passcode mode")

	ErrGalleryDisabled = errors.New("gallery is disabled")
	// ErrGalleryTokenInvalid covers bad signatures, foreign issuers and
	// expired download tokens alike.
	ErrGalleryTokenInvalid = errors.New("gallery download token is invalid")
)
