// Package stego hides byte strings in the least significant bits of raster
// images and reads them back.
//
// The carrier is flattened row by row, pixel by pixel, in R, G, B order. Each
// channel byte carries one bit of the token, most significant bit first,
// followed by the 16-bit delimiter 1111111100000000. All functions are pure:
// they never modify their inputs and keep no state between calls.
package stego
