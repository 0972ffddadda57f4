// Copyright 2018 Fabian Wenzelmann
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sharpmosaic

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(width, height int, c color.NRGBA) *image.NRGBA {
	return imaging.New(width, height, c)
}

// tileColor returns a distinct color for each tile index between 1 and 16.
func tileColor(index int) color.NRGBA {
	n := index - 1
	return color.NRGBA{
		R: uint8(30 + (n%4)*60),
		G: uint8(30 + (n/4)*60),
		B: 128,
		A: 255,
	}
}

func writeJPEG(t *testing.T, path string, img image.Image) {
	t.Helper()
	require.NoError(t, imaging.Save(img, path, imaging.JPEGQuality(95)))
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func assertColorNear(t *testing.T, want, got color.NRGBA, tolerance int, what string) {
	t.Helper()
	near := absDiff(want.R, got.R) <= tolerance &&
		absDiff(want.G, got.G) <= tolerance &&
		absDiff(want.B, got.B) <= tolerance
	assert.Truef(t, near, "%s: want %v, got %v", what, want, got)
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names
}

func testConfig(t *testing.T, dir string) *Config {
	t.Helper()
	cfg, err := NewConfig(dir)
	require.NoError(t, err)
	cfg.NumRoutines = 4
	return cfg
}

// writeTiles writes the 16 default tiles with size x size pixels into dir,
// each tile filled with tileColor.
func writeTiles(t *testing.T, dir string, size int) {
	t.Helper()
	for index := 1; index <= 16; index++ {
		writeJPEG(t, filepath.Join(dir, TileName(index)), solidImage(size, size, tileColor(index)))
	}
}
