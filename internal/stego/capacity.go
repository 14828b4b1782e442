package stego

// DelimiterBits is the length of the end-of-payload marker.
const DelimiterBits = 16

// delimiter is the marker 1111111100000000 appended after the token.
const delimiter uint16 = 0xFF00

// BitstreamLength returns how many carrier bytes a token of tokenLen bytes
// occupies once serialised with its delimiter.
func BitstreamLength(tokenLen int) int {
	return tokenLen*8 + DelimiterBits
}

// CheckCapacity reports whether a bitstream of bitstreamLength bits fits into
// carrierByteCount channel bytes (one bit per byte).
func CheckCapacity(carrierByteCount, bitstreamLength int) bool {
	return bitstreamLength <= carrierByteCount
}

// MaxTokenLength returns the longest token that fits into carrierByteCount
// channel bytes, or 0 if not even the delimiter fits.
func MaxTokenLength(carrierByteCount int) int {
	if carrierByteCount < DelimiterBits {
		return 0
	}
	return (carrierByteCount - DelimiterBits) / 8
}
