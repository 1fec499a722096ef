// seehuhn.de/go/scanfill - scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package ppm implements an RGB raster with a bottom-left origin, and
// reading and writing of netpbm PPM files.
package ppm

import (
	"image"
	"image/color"
)

// Image is an opaque RGB image.
//
// The pixel data is stored in row-major order with the top row first, as
// in a PPM file. The methods SetPixel and Pixel use user-space
// coordinates instead, where y=0 is the bottom row. The methods of the
// image.Image and draw.Image interfaces use the storage layout.
type Image struct {
	Width, Height int

	// Pix holds three bytes (red, green, blue) per pixel.
	Pix []uint8
}

// New allocates an image filled with the background colour bg.
// Width and height are raised to at least 1.
func New(width, height int, bg color.RGBA) *Image {
	width = max(width, 1)
	height = max(height, 1)
	img := &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, 3*width*height),
	}
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i] = bg.R
		img.Pix[i+1] = bg.G
		img.Pix[i+2] = bg.B
	}
	return img
}

// inBounds reports whether (x, y) is a valid pixel position.
// The test is the same in user space and in storage layout.
func (img *Image) inBounds(x, y int) bool {
	return 0 <= x && x < img.Width && 0 <= y && y < img.Height
}

// offset returns the index in img.Pix of the pixel at (x, y) in storage layout.
func (img *Image) offset(x, y int) int {
	return 3 * (y*img.Width + x)
}

// SetPixel sets the pixel at user-space position (x, y) to c.
// The alpha channel of c is ignored. Positions outside the image are
// silently ignored.
func (img *Image) SetPixel(x, y int, c color.RGBA) {
	if !img.inBounds(x, y) {
		return
	}
	i := img.offset(x, img.Height-1-y)
	img.Pix[i] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
}

// Pixel returns the colour of the pixel at user-space position (x, y).
// Positions outside the image give the zero colour.
func (img *Image) Pixel(x, y int) color.RGBA {
	if !img.inBounds(x, y) {
		return color.RGBA{}
	}
	return img.RGBAAt(x, img.Height-1-y)
}

// ColorModel implements the [image.Image] interface.
func (img *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements the [image.Image] interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width, img.Height)
}

// At implements the [image.Image] interface.
func (img *Image) At(x, y int) color.Color {
	return img.RGBAAt(x, y)
}

// RGBAAt returns the colour at (x, y), in storage layout.
func (img *Image) RGBAAt(x, y int) color.RGBA {
	if !img.inBounds(x, y) {
		return color.RGBA{}
	}
	i := img.offset(x, y)
	return color.RGBA{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: 0xff}
}

// Set implements the draw.Image interface.
// Colours are converted to non-premultiplied RGB, dropping alpha.
func (img *Image) Set(x, y int, c color.Color) {
	if !img.inBounds(x, y) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := img.offset(x, y)
	img.Pix[i] = n.R
	img.Pix[i+1] = n.G
	img.Pix[i+2] = n.B
}
