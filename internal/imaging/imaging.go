// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package imaging reads carrier images in the common raster formats and
// writes stego images in lossless ones only.
package imaging

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Format names a raster encoding, matching the names registered with the
// image package.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	JPEG Format = "jpeg"
	GIF  Format = "gif"
	WEBP Format = "webp"
)

var extensions = map[string]Format{
	".png":  PNG,
	".bmp":  BMP,
	".tif":  TIFF,
	".tiff": TIFF,
	".jpg":  JPEG,
	".jpeg": JPEG,
	".gif":  GIF,
	".webp": WEBP,
}

var contentTypes = map[Format]string{
	PNG:  "image/png",
	BMP:  "image/bmp",
	TIFF: "image/tiff",
	JPEG: "image/jpeg",
	GIF:  "image/gif",
	WEBP: "image/webp",
}

// Lossless reports whether the format stores 8-bit RGB samples exactly.
func (f Format) Lossless() bool {
	switch f {
	case PNG, BMP, TIFF:
		return true
	}
	return false
}

// ContentType returns the MIME type for f, or application/octet-stream.
func (f Format) ContentType() string {
	if ct, ok := contentTypes[f]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Extension returns the canonical file extension including the dot.
func (f Format) Extension() string {
	switch f {
	case TIFF:
		return ".tiff"
	case JPEG:
		return ".jpg"
	case "":
		return ""
	}
	return "." + string(f)
}

// ParseFormat accepts a format name ("png", "JPG", "tif", ...).
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if f, ok := extensions["."+name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}

// Decode reads an image in any supported format and reports which one it was.
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(bufio.NewReader(r))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return img, Format(name), nil
}

// Encode writes img in format f. Only lossless formats are accepted; asking
// for JPEG, GIF or WebP returns ErrLossyFormat.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error

	switch f {
	case PNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case JPEG, GIF, WEBP:
		return fmt.Errorf("%w: %s", ErrLossyFormat, f)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}
