package passcode

import "errors"

// ErrMalformedPasscode is returned by [Validate] when the input is not exactly
// six characters of the passcode alphabet. Callers should re-prompt the user.
var ErrMalformedPasscode = errors.New("malformed passcode")
