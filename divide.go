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
)

const (
	// DefaultGridSize is the number of tiles in each direction of the default
	// grid.
	DefaultGridSize = 4

	// DefaultTileSize is the width and height of a tile in the default grid.
	DefaultTileSize = 100
)

// DefaultGrid is the 4x4 grid of 100x100 tiles, the resulting mosaic has a
// size of 400x400.
var DefaultGrid = NewGrid(DefaultGridSize, DefaultGridSize,
	DefaultTileSize, DefaultTileSize)

// Grid describes the layout of a mosaic: Cols tiles in x direction and Rows
// tiles in y direction, each tile has the size TileWidth x TileHeight.
//
// A tile is identified by its coordinate (i, j) where i is the column (x
// direction) and j is the row (y direction). Tiles are traversed column by
// column: The outer loop runs over i, the inner loop over j. Each tile gets a
// sequential index in that order, starting with 1.
// For the default grid index 1 is the tile (0, 0), index 2 is (0, 1) and
// index 16 is (3, 3).
type Grid struct {
	Cols, Rows            int
	TileWidth, TileHeight int
}

// NewGrid returns a new grid.
func NewGrid(cols, rows, tileWidth, tileHeight int) Grid {
	return Grid{Cols: cols, Rows: rows, TileWidth: tileWidth, TileHeight: tileHeight}
}

// ParseGrid parses a grid of the form "COLSxROWS" (for example "4x4") with
// tiles of the size "WIDTHxHEIGHT" (for example "100x100").
func ParseGrid(layout, tileSize string) (Grid, error) {
	cols, rows, layoutErr := ParseDimensions(layout)
	if layoutErr != nil {
		return Grid{}, layoutErr
	}
	width, height, sizeErr := ParseDimensions(tileSize)
	if sizeErr != nil {
		return Grid{}, sizeErr
	}
	grid := NewGrid(cols, rows, width, height)
	if err := grid.Validate(); err != nil {
		return Grid{}, err
	}
	return grid, nil
}

// Validate returns an error if one of the values of the grid is not positive.
func (grid Grid) Validate() error {
	if grid.Cols <= 0 || grid.Rows <= 0 {
		return fmt.Errorf("Invalid grid layout %dx%d: Number of tiles must be positive",
			grid.Cols, grid.Rows)
	}
	if grid.TileWidth <= 0 || grid.TileHeight <= 0 {
		return fmt.Errorf("Invalid tile size %dx%d: Size must be positive",
			grid.TileWidth, grid.TileHeight)
	}
	return nil
}

// NumTiles returns the number of tiles in the grid.
func (grid Grid) NumTiles() int {
	return grid.Cols * grid.Rows
}

// Bounds returns the bounds of the canvas, it starts at (0, 0).
func (grid Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, grid.Cols*grid.TileWidth, grid.Rows*grid.TileHeight)
}

// TileRect returns the rectangle of the tile at (i, j), that is the box with
// corners (i * width, j * height) and ((i + 1) * width, (j + 1) * height).
func (grid Grid) TileRect(i, j int) image.Rectangle {
	x0 := i * grid.TileWidth
	y0 := j * grid.TileHeight
	return image.Rect(x0, y0, x0+grid.TileWidth, y0+grid.TileHeight)
}

// SequentialIndex returns the index of the tile at (i, j), see Grid for the
// traversal order. Indices start at 1.
func (grid Grid) SequentialIndex(i, j int) int {
	return i*grid.Rows + j + 1
}

// Coordinate is the inverse of SequentialIndex: It returns the coordinate of
// the tile with the given index. An error is returned if the index is not in
// the range [1, NumTiles()].
func (grid Grid) Coordinate(index int) (int, int, error) {
	if index < 1 || index > grid.NumTiles() || grid.Rows <= 0 {
		return -1, -1, fmt.Errorf("Invalid tile index %d: Must be between 1 and %d",
			index, grid.NumTiles())
	}
	zeroBased := index - 1
	return zeroBased / grid.Rows, zeroBased % grid.Rows, nil
}

// TileDivision contains the rectangles of all tiles of a grid.
//
// Tiles are stored in the fashion [i][j], that means each entry in the
// division describes one column of the grid. The Get method does this
// correctly.
type TileDivision [][]image.Rectangle

// Get returns the rectangle in column i and row j.
func (div TileDivision) Get(i, j int) image.Rectangle {
	return div[i][j]
}

// Divide returns the rectangles of all tiles in the grid.
func (grid Grid) Divide() TileDivision {
	if grid.Cols <= 0 || grid.Rows <= 0 {
		return nil
	}
	res := make(TileDivision, grid.Cols)
	for i := 0; i < grid.Cols; i++ {
		res[i] = make([]image.Rectangle, grid.Rows)
		for j := 0; j < grid.Rows; j++ {
			res[i][j] = grid.TileRect(i, j)
		}
	}
	return res
}

// Tile is a single position in the grid.
type Tile struct {
	// Index is the sequential index, starting with 1.
	Index int
	// Col and Row are the coordinate (i, j) of the tile.
	Col, Row int
	// Rect is the area of the tile in the canvas.
	Rect image.Rectangle
}

// Tiles returns all tiles of the grid in traversal order, the rectangles are
// taken from Divide.
func (grid Grid) Tiles() []Tile {
	div := grid.Divide()
	if div == nil {
		return nil
	}
	res := make([]Tile, 0, grid.NumTiles())
	for i := range div {
		for j := range div[i] {
			res = append(res, Tile{
				Index: grid.SequentialIndex(i, j),
				Col:   i,
				Row:   j,
				Rect:  div.Get(i, j),
			})
		}
	}
	return res
}

func (grid Grid) String() string {
	return fmt.Sprintf("%dx%d tiles of %dx%d", grid.Cols, grid.Rows,
		grid.TileWidth, grid.TileHeight)
}
