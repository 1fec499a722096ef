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

package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

// ErrFormat is returned by Decode when the input is not a supported PPM file.
var ErrFormat = errors.New("ppm: invalid format")

// maxPixels limits the image size accepted by Decode.
const maxPixels = 1 << 28

func init() {
	image.RegisterFormat("ppm", "P3", decodeImage, DecodeConfig)
	image.RegisterFormat("ppm", "P6", decodeImage, DecodeConfig)
}

// Options controls the output format of Encode.
type Options struct {
	// Plain selects the ASCII format (P3) instead of the binary
	// format (P6).
	Plain bool
}

// Encode writes m to w in PPM format. A nil opt selects the binary format.
func Encode(w io.Writer, m image.Image, opt *Options) error {
	plain := opt != nil && opt.Plain

	b := m.Bounds()
	bw := bufio.NewWriter(w)

	magic := "P6"
	if plain {
		magic = "P3"
	}
	fmt.Fprintf(bw, "%s\n%d %d\n255\n", magic, b.Dx(), b.Dy())

	img, _ := m.(*Image)
	var line []byte
	for y := b.Min.Y; y < b.Max.Y; y++ {
		line = line[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			var r, g, bl uint8
			if img != nil {
				c := img.RGBAAt(x, y)
				r, g, bl = c.R, c.G, c.B
			} else {
				c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
				r, g, bl = c.R, c.G, c.B
			}

			if !plain {
				line = append(line, r, g, bl)
				continue
			}
			if x > b.Min.X {
				line = append(line, ' ')
			}
			line = strconv.AppendUint(line, uint64(r), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(g), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(bl), 10)
		}
		if plain {
			line = append(line, '\n')
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode reads a PPM image in plain (P3) or binary (P6) format.
// Only a maximum sample value of 255 is supported.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)
	magic, w, h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	img := &Image{Width: w, Height: h, Pix: make([]uint8, 3*w*h)}
	switch magic {
	case "P6":
		if _, err := io.ReadFull(br, img.Pix); err != nil {
			return nil, fmt.Errorf("%w: pixel data: %w", ErrFormat, err)
		}
	case "P3":
		for i := range img.Pix {
			v, err := readInt(br)
			if err != nil {
				return nil, fmt.Errorf("%w: sample %d: %w", ErrFormat, i, err)
			}
			if v > 255 {
				return nil, fmt.Errorf("%w: sample %d out of range", ErrFormat, i)
			}
			img.Pix[i] = uint8(v)
		}
	}
	return img, nil
}

// DecodeConfig returns the colour model and dimensions of a PPM image
// without decoding the pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	_, w, h, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.RGBAModel, Width: w, Height: h}, nil
}

func decodeImage(r io.Reader) (image.Image, error) {
	return Decode(r)
}

func readHeader(br *bufio.Reader) (magic string, w, h int, err error) {
	magic, err = readToken(br)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if magic != "P3" && magic != "P6" {
		return "", 0, 0, fmt.Errorf("%w: unsupported magic %q", ErrFormat, magic)
	}

	var vals [3]int
	for i := range vals {
		vals[i], err = readInt(br)
		if err != nil {
			return "", 0, 0, fmt.Errorf("%w: header: %w", ErrFormat, err)
		}
	}
	w, h = vals[0], vals[1]
	if w <= 0 || h <= 0 || w > maxPixels/h {
		return "", 0, 0, fmt.Errorf("%w: invalid size %dx%d", ErrFormat, w, h)
	}
	if vals[2] != 255 {
		return "", 0, 0, fmt.Errorf("%w: unsupported maxval %d", ErrFormat, vals[2])
	}
	return magic, w, h, nil
}

func readInt(br *bufio.Reader) (int, error) {
	tok, err := readToken(br)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid number %q", tok)
	}
	return v, nil
}

// readToken returns the next whitespace-separated token, skipping
// comments. Exactly one whitespace byte after the token is consumed.
func readToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err == io.EOF && len(tok) > 0 {
			return string(tok), nil
		} else if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		} else if err != nil {
			return "", err
		}

		switch c {
		case '#':
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
			if len(tok) > 0 {
				return string(tok), nil
			}
		case ' ', '\t', '\n', '\r', '\v', '\f':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}
