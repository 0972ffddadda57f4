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
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var black = color.NRGBA{0, 0, 0, 255}

func memoryTiles(size int) *MemoryTileDB {
	tiles := make([]image.Image, 16)
	for index := 1; index <= 16; index++ {
		tiles[index-1] = solidImage(size, size, tileColor(index))
	}
	return NewMemoryTileDB(tiles...)
}

func TestComposeMosaicPlacement(t *testing.T) {
	mosaic, err := ComposeMosaic(memoryTiles(400), DefaultGrid, DefaultResizer, SameBox, nil)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 400, 400), mosaic.Bounds())
	for n := 1; n <= 16; n++ {
		i, j := (n-1)/4, (n-1)%4
		x0, y0 := i*100, j*100
		want := tileColor(n)
		assert.Equal(t, want, nrgbaAt(mosaic, x0, y0), "tile %d origin", n)
		assert.Equal(t, want, nrgbaAt(mosaic, x0+99, y0+99), "tile %d corner", n)
	}
}

func TestComposeMosaicLargeTiles(t *testing.T) {
	for _, s := range []TileStrategy{SameBox, OriginBox, ResizeBox} {
		mosaic, err := ComposeMosaic(memoryTiles(733), DefaultGrid, DefaultResizer, s, nil)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 400, 400), mosaic.Bounds())
		assertColorNear(t, tileColor(16), nrgbaAt(mosaic, 350, 350), 2, "bottom right tile")
	}
}

func TestComposeMosaicSameBoxSmallTiles(t *testing.T) {
	// with the same box only the first tile covers its destination
	mosaic, err := ComposeMosaic(memoryTiles(100), DefaultGrid, DefaultResizer, SameBox, nil)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 400, 400), mosaic.Bounds())
	assert.Equal(t, tileColor(1), nrgbaAt(mosaic, 50, 50))
	assert.Equal(t, black, nrgbaAt(mosaic, 150, 50))
	assert.Equal(t, black, nrgbaAt(mosaic, 350, 350))
}

func TestComposeMosaicSameBoxPartialTile(t *testing.T) {
	// tile 6 is (1, 1) and covers (100, 100)-(200, 200), the image only
	// covers the upper left quarter of it
	tiles := memoryTiles(400)
	tiles.Tiles[5] = solidImage(150, 150, tileColor(6))
	mosaic, err := ComposeMosaic(tiles, DefaultGrid, DefaultResizer, SameBox, nil)
	require.NoError(t, err)
	assert.Equal(t, tileColor(6), nrgbaAt(mosaic, 120, 120))
	assert.Equal(t, black, nrgbaAt(mosaic, 170, 170))
	assert.Equal(t, black, nrgbaAt(mosaic, 120, 170))
}

func TestComposeMosaicOriginAndResize(t *testing.T) {
	for name, s := range map[string]TileStrategy{"origin": OriginBox, "resize": ResizeBox} {
		size := 100
		if name == "resize" {
			size = 37
		}
		mosaic, err := ComposeMosaic(memoryTiles(size), DefaultGrid, DefaultResizer, s, nil)
		require.NoError(t, err, name)
		for n := 1; n <= 16; n++ {
			i, j, _ := DefaultGrid.Coordinate(n)
			assertColorNear(t, tileColor(n), nrgbaAt(mosaic, i*100+50, j*100+50), 2, name)
		}
	}
}

func TestOriginBoxUsesFirstRegion(t *testing.T) {
	img := solidImage(300, 300, black)
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.SetNRGBA(x, y, tileColor(3))
		}
	}
	region := OriginBox(DefaultResizer, image.Rect(200, 200, 300, 300), img)
	assert.Equal(t, image.Rect(0, 0, 100, 100), region.Bounds())
	assert.Equal(t, tileColor(3), nrgbaAt(region, 99, 99))
}

func TestComposeMosaicMissingTile(t *testing.T) {
	tiles := memoryTiles(400)
	tiles.Tiles[6] = nil
	var progressed []int
	mosaic, err := ComposeMosaic(tiles, DefaultGrid, DefaultResizer, SameBox, func(num int) {
		progressed = append(progressed, num)
	})
	require.Error(t, err)
	assert.Nil(t, mosaic)
	var openErr *FileOpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, 7, openErr.Index)
	assert.Equal(t, "0007_sharp.jpg", openErr.Name)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, progressed)
}

func TestComposeMosaicTooFewTiles(t *testing.T) {
	_, err := ComposeMosaic(NewMemoryTileDB(solidImage(400, 400, black)), DefaultGrid,
		DefaultResizer, SameBox, nil)
	var openErr *FileOpenError
	require.True(t, errors.As(err, &openErr))
	assert.Equal(t, 2, openErr.Index)
}

func TestComposeMosaicInvalidGrid(t *testing.T) {
	_, err := ComposeMosaic(memoryTiles(400), NewGrid(0, 0, 100, 100), DefaultResizer, SameBox, nil)
	assert.Error(t, err)
}

func TestParseTileStrategy(t *testing.T) {
	for _, name := range []string{"same", "", "origin", "resize", "RESIZE"} {
		s, err := ParseTileStrategy(name)
		assert.NoError(t, err, name)
		assert.NotNil(t, s, name)
	}
	_, err := ParseTileStrategy("stretch")
	assert.EqualError(t, err, "Unknown tile strategy: stretch")
}
