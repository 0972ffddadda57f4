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
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
)

// TileStrategy decides which region of a tile image is pasted into the
// mosaic at the area dst.
// The returned image has its origin at (0, 0) and is at most as large as dst.
type TileStrategy func(resizer ImageResizer, dst image.Rectangle, img image.Image) image.Image

// SameBox crops img with the same rectangle that is used as destination in
// the mosaic. For the tile (1, 2) of the default grid the area
// (100, 200)-(200, 300) of img is used.
// If img does not cover the whole area only the intersection is returned, the
// rest of the tile in the mosaic remains black.
func SameBox(resizer ImageResizer, dst image.Rectangle, img image.Image) image.Image {
	return imaging.Crop(img, dst.Add(img.Bounds().Min))
}

// OriginBox crops the top left region of img with the size of dst.
func OriginBox(resizer ImageResizer, dst image.Rectangle, img image.Image) image.Image {
	src := dst.Sub(dst.Min).Add(img.Bounds().Min)
	return imaging.Crop(img, src)
}

// ResizeBox scales the whole image to the size of dst, ignoring the ratio of
// the original image.
func ResizeBox(resizer ImageResizer, dst image.Rectangle, img image.Image) image.Image {
	return resizer.Resize(uint(dst.Dx()), uint(dst.Dy()), img)
}

// ParseTileStrategy returns the strategy for the name "same", "origin" or
// "resize".
func ParseTileStrategy(s string) (TileStrategy, error) {
	switch strings.ToLower(s) {
	case "same", "":
		return SameBox, nil
	case "origin":
		return OriginBox, nil
	case "resize":
		return ResizeBox, nil
	default:
		return nil, fmt.Errorf("Unknown tile strategy: %s", s)
	}
}

func insertTile(into *image.NRGBA, area image.Rectangle, img image.Image,
	resizer ImageResizer, s TileStrategy) *image.NRGBA {
	region := s(resizer, area, img)
	if region.Bounds().Empty() {
		return into
	}
	return imaging.Paste(into, region, area.Min)
}

// ComposeMosaic creates the mosaic for the given grid. The canvas is black and
// the tiles are inserted in traversal order, see Grid.
// The composition stops with the first tile that can't be loaded, in this
// case no image is returned.
// progress is called after each tile and may be nil.
func ComposeMosaic(storage TileStorage, grid Grid, resizer ImageResizer,
	s TileStrategy, progress ProgressFunc) (*image.NRGBA, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if s == nil {
		s = SameBox
	}
	if resizer == nil {
		resizer = DefaultResizer
	}
	if progress == nil {
		progress = ProgressIgnore
	}
	res := imaging.New(grid.Bounds().Dx(), grid.Bounds().Dy(), color.NRGBA{0, 0, 0, 255})
	for num, tile := range grid.Tiles() {
		img, imgErr := storage.LoadTile(tile.Index)
		if imgErr != nil {
			return nil, imgErr
		}
		if Debug {
			log.WithFields(log.Fields{
				"index": tile.Index,
				"tileX": tile.Col,
				"tileY": tile.Row,
				"name":  storage.TileName(tile.Index),
			}).Debug("Inserting tile")
		}
		res = insertTile(res, tile.Rect, img, resizer, s)
		progress(num + 1)
	}
	return res, nil
}
