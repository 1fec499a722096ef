package scanfill

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/scanfill/ppm"
	"seehuhn.de/go/scanfill/testcases"
)

// TestAgainstReference compares the filler output to images rendered by
// Ghostscript. The reference images are created by "go generate"; test
// cases without a reference image are skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadReference(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skipf("no reference image %s", refPath)
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}
				if ref.Width != tc.Width || ref.Height != tc.Height {
					t.Fatalf("reference has size %dx%d, want %dx%d",
						ref.Width, ref.Height, tc.Width, tc.Height)
				}

				actual := render(tc.Width, tc.Height, tc.Vertices)
				if err := compareReference(ref, actual); err != nil {
					t.Error(err)
					writeDiffImage(t, name, ref, actual)
				}
			})
		}
	}
}

// loadReference reads a reference image. The reference shows a white
// polygon on black, so the grey values are inverted to match the output
// of render.
func loadReference(path string) (*ppm.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	res := ppm.New(bounds.Dx(), bounds.Dy(), white)
	for y := range res.Height {
		for x := range res.Width {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			v := 255 - c.Y
			res.Set(x, y, color.Gray{Y: v})
		}
	}
	return res, nil
}

// compareReference checks that the two images agree, apart from pixels
// along the polygon boundary. Ghostscript fills every pixel touched by
// the polygon, which adds a thin outline compared to the scanline rule.
func compareReference(expected, actual *ppm.Image) error {
	const tolerance = 2
	const maxDiffPercent = 10

	total := expected.Width * expected.Height
	diffCount := 0
	for i := 0; i < len(expected.Pix); i += 3 {
		diff := int(expected.Pix[i]) - int(actual.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			diffCount++
		}
	}

	maxAllowed := total * maxDiffPercent / 100
	if diffCount > maxAllowed {
		return fmt.Errorf("%d pixels differ by >%d (max allowed: %d)",
			diffCount, tolerance, maxAllowed)
	}
	return nil
}
