// Command export writes the test case polygons as vertex files, which
// can be used as input for the scanfill command.
// Run from the module root directory.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/scanfill/testcases"
	"seehuhn.de/go/scanfill/vertices"
)

const outDir = "testdata/vertices"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := writeVertices(filepath.Join(outDir, name+".txt"), tc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writeVertices(fname string, tc testcases.TestCase) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = fmt.Fprintf(f, "# %s, canvas %dx%d\n", tc.Name, tc.Width, tc.Height)
	if err != nil {
		return err
	}
	return vertices.Write(f, tc.Vertices)
}
