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
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// SharpSuffix is appended to the base name of a sharpened image.
	SharpSuffix = "_sharp"

	// DefaultTilePattern is the format of tile names, for example
	// "0001_sharp.jpg".
	DefaultTilePattern = "%04d" + SharpSuffix + ".jpg"
)

// TileName returns the default file name for the tile with the given
// sequential index.
func TileName(index int) string {
	return fmt.Sprintf(DefaultTilePattern, index)
}

// TileBaseName returns the base name that must be sharpened to produce the
// tile with the given index, for example "0001".
func TileBaseName(index int) string {
	return fmt.Sprintf("%04d", index)
}

// TileStorage is used to access the images of a mosaic. Tiles are identified
// by their sequential index, starting with 1.
// The access methods should return an error if there is no image associated
// with the index or if there is an error reading the image.
type TileStorage interface {
	// NumTiles returns the number of tiles in the storage, all indices between
	// 1 and NumTiles are valid.
	NumTiles() int

	// LoadTile loads a tile into memory.
	LoadTile(index int) (image.Image, error)

	// TileName returns a name that identifies the tile for the user.
	TileName(index int) string
}

// FSTileDB implements TileStorage. It uses images stored on the filesystem
// and opens them on demand.
// The file name is computed from the sequential index with Pattern and is
// relative to the Root directory.
type FSTileDB struct {
	Root    string
	Pattern string
	Num     int
}

// NewFSTileDB returns a new storage for num tiles in root. If pattern is
// empty DefaultTilePattern is used.
func NewFSTileDB(root, pattern string, num int) *FSTileDB {
	if pattern == "" {
		pattern = DefaultTilePattern
	}
	return &FSTileDB{Root: root, Pattern: pattern, Num: num}
}

// TileName returns the file name (without Root) of the tile.
func (db *FSTileDB) TileName(index int) string {
	return fmt.Sprintf(db.Pattern, index)
}

// GetPath returns the path of the tile.
func (db *FSTileDB) GetPath(index int) string {
	return filepath.Join(db.Root, db.TileName(index))
}

// NumTiles returns the number of tiles.
func (db *FSTileDB) NumTiles() int {
	return db.Num
}

// LoadTile opens and decodes the tile. If the file is missing or can't be
// decoded a *FileOpenError is returned.
func (db *FSTileDB) LoadTile(index int) (image.Image, error) {
	if index < 1 || index > db.Num {
		return nil, fmt.Errorf("Invalid tile index: Not associated with an image %d", index)
	}
	img, err := LoadImage(db.GetPath(index))
	if err != nil {
		return nil, &FileOpenError{Name: db.TileName(index), Index: index, Cause: err}
	}
	return img, nil
}

// MemoryTileDB implements TileStorage with images kept in memory.
// Tiles[0] is the tile with index 1.
type MemoryTileDB struct {
	Tiles []image.Image
}

// NewMemoryTileDB returns a new storage containing the given tiles.
func NewMemoryTileDB(tiles ...image.Image) *MemoryTileDB {
	return &MemoryTileDB{Tiles: tiles}
}

// NumTiles returns the number of tiles.
func (db *MemoryTileDB) NumTiles() int {
	return len(db.Tiles)
}

// TileName returns the default tile name for the index.
func (db *MemoryTileDB) TileName(index int) string {
	return TileName(index)
}

// LoadTile returns the tile, a nil entry is reported as a *FileOpenError.
func (db *MemoryTileDB) LoadTile(index int) (image.Image, error) {
	if index < 1 || index > len(db.Tiles) {
		return nil, &FileOpenError{Name: db.TileName(index), Index: index,
			Cause: errors.New("no such tile")}
	}
	img := db.Tiles[index-1]
	if img == nil {
		return nil, &FileOpenError{Name: db.TileName(index), Index: index,
			Cause: errors.New("tile is empty")}
	}
	return img, nil
}
