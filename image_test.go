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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJPGAndPNG(t *testing.T) {
	for _, ext := range []string{".jpg", ".JPG", ".jpeg", ".png"} {
		assert.True(t, JPGAndPNG(ext), ext)
	}
	for _, ext := range []string{".gif", ".txt", ""} {
		assert.False(t, JPGAndPNG(ext), ext)
	}
}

func TestSaveAndLoadImage(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.jpg", "b.jpeg", "c.png"} {
		path := filepath.Join(dir, name)
		require.NoError(t, SaveImage(path, solidImage(12, 7, tileColor(9)), 90), name)
		img, err := LoadImage(path)
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 12, 7), img.Bounds(), name)
		assertColorNear(t, tileColor(9), nrgbaAt(img, 6, 3), 8, name)
	}
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpeg", "c.png"}, listDir(t, dir))
}

func TestSavePNGIsLossless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tile.png")
	require.NoError(t, SaveImage(path, solidImage(3, 3, tileColor(14)), DefaultJPGQuality))
	img, err := LoadImage(path)
	require.NoError(t, err)
	assert.Equal(t, tileColor(14), nrgbaAt(img, 1, 1))
}

func TestSaveImageUnsupported(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, SaveImage(filepath.Join(dir, "a.gif"), solidImage(1, 1, black), 75))
	assert.Empty(t, listDir(t, dir))
}

func TestSaveImageMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	err := SaveImage(filepath.Join(dir, "nope", "a.jpg"), solidImage(1, 1, black), 75)
	assert.Error(t, err)
	assert.Empty(t, listDir(t, dir))
}

func TestLoadImageMissing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestNfntResizer(t *testing.T) {
	resizer := NewNfntResizer(GetInterP(0))
	img := resizer.Resize(10, 20, solidImage(40, 40, tileColor(2)))
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}
