package imaging

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrLossyFormat is returned when asked to write a format whose encoder
	// would alter pixel values and destroy embedded bits.
	ErrLossyFormat = errors.New("lossy image format cannot carry a payload")
	ErrDecode      = errors.New("decode image")
)
