// Package sharpmosaic sharpens single images and assembles sharpened tiles
// into a mosaic.
//
// Sharpening applies one fixed 3x3 kernel to an image, reading "base.jpg"
// and writing "base_sharp.jpg". A mosaic is composed from a grid of tiles
// (by default 4x4 tiles of 100x100 pixels) read from sequentially numbered
// files "0001_sharp.jpg", "0002_sharp.jpg" and so on. The numbering runs
// column by column: tile 1 is the top left corner, tile 2 the tile below it.
//
// It ships with executables to sharpen an image, to build a mosaic and to
// run both steps in one go.
package sharpmosaic
