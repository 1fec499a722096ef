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

// Command genpdf generates reference images for the test cases.
// It writes every polygon as a vector PDF and renders it to PNG using
// Ghostscript, so that the output of the scanline filler can be compared
// to an independent renderer.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/scanfill/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// black background, white polygon
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// Both PDF and the scanline filler have the origin in the bottom-left
	// corner, so no flip is needed.
	page.SetFillColor(color.DeviceGray(1))
	for i, p := range tc.Vertices {
		if i == 0 {
			page.MoveTo(float64(p.X), float64(p.Y))
		} else {
			page.LineTo(float64(p.X), float64(p.Y))
		}
	}
	page.ClosePath()
	page.FillEvenOdd()

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=1: no anti-aliasing, to match the filler
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
