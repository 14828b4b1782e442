package models

// PasscodeMode selects where the passcode for a hide operation comes from.
// The only implementations are [GenerateNew] and [UseExisting].
type PasscodeMode interface {
	passcodeMode()
}

// GenerateNew asks the service to create a fresh passcode and hand it back
// with the result.
type GenerateNew struct{}

// UseExisting seals the message under a passcode the user already has.
type UseExisting struct {
	Passcode string
}

func (GenerateNew) passcodeMode() {}
func (UseExisting) passcodeMode() {}
