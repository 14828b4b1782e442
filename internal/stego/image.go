// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stego

import (
	"fmt"
	"image"
	"image/color"
)

// Channels is the number of 8-bit channels kept per pixel (R, G, B).
const Channels = 3

// Image is a carrier normalised to three 8-bit channels per pixel. Pix is
// laid out row-major with channels in R, G, B order, which is also the order
// in which payload bits are written and read.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a black Width×Height image.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// FromImage normalises any decoded image. Colours are converted to
// non-premultiplied 8-bit RGB and alpha is dropped.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())

	if nrgba, ok := src.(*image.NRGBA); ok {
		i := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, y):]
			for x := 0; x < b.Dx(); x++ {
				copy(img.Pix[i:i+Channels], row[x*4:x*4+Channels])
				i += Channels
			}
		}
		return img
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			i += Channels
		}
	}
	return img
}

// ToNRGBA converts the image back into an opaque *image.NRGBA suitable for
// lossless encoding.
func (img *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for p, i := 0, 0; i < len(img.Pix); p, i = p+4, i+Channels {
		copy(out.Pix[p:p+Channels], img.Pix[i:i+Channels])
		out.Pix[p+3] = 0xff
	}
	return out
}

// ByteCount is the number of channel bytes, i.e. the capacity in bits.
func (img *Image) ByteCount() int {
	return len(img.Pix)
}

func (img *Image) validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	if img.Width < 0 || img.Height < 0 || len(img.Pix) != img.Width*img.Height*Channels {
		return fmt.Errorf("%w: %dx%d with %d channel bytes", ErrInvalidImage, img.Width, img.Height, len(img.Pix))
	}
	return nil
}

func (img *Image) clone() *Image {
	return &Image{
		Width:  img.Width,
		Height: img.Height,
		Pix:    append([]uint8(nil), img.Pix...),
	}
}
