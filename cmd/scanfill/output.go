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

package main

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/scanfill/ppm"
)

type encodeFunc func(w io.Writer, m image.Image) error

// encoderFor selects the image encoder from the extension of the output
// file name.
func encoderFor(name string, cfg *Config) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".ppm":
		opt := &ppm.Options{Plain: !cfg.PPMBinary}
		return func(w io.Writer, m image.Image) error {
			return ppm.Encode(w, m, opt)
		}, nil
	case ".png":
		return png.Encode, nil
	case ".bmp":
		return bmp.Encode, nil
	case ".tif", ".tiff":
		return func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, nil)
		}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
}

// upscale enlarges the image by an integer factor, without smoothing.
func upscale(src image.Image, factor int) image.Image {
	if factor <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writeImage(fname string, m image.Image, encode encodeFunc) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, m)
}
