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
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// SupportedImageFunc is a function that takes a file extension and decides if
// this file extension is supported.
//
// The extension passed to this function could be for example ".txt" or ".jpg".
type SupportedImageFunc func(ext string) bool

// JPGAndPNG is an implementation of SupportedImageFunc accepting jpg and png
// file extensions.
func JPGAndPNG(ext string) bool {
	ext = strings.ToLower(ext)
	switch ext {
	case ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}

// ImageResizer resizes an image to the given width and height.
type ImageResizer interface {
	Resize(width, height uint, img image.Image) image.Image
}

// NfntResizer uses the nfnt/resize package to resize an image.
type NfntResizer struct {
	// InterP is the interpolation function to use.
	InterP resize.InterpolationFunction
}

// NewNfntResizer returns a new resizer given the interpolation function.
func NewNfntResizer(interP resize.InterpolationFunction) NfntResizer {
	return NfntResizer{interP}
}

// GetInterP returns an interpolation function given a desired quality.
// The higher the quality the better the interpolation should be, but execution
// time is higher. Currently supported are values between 0 and 4, each
// selecting a different interpolation function. Values greater than 4 are
// treated as 5 (Lanczos3).
func GetInterP(quality uint) resize.InterpolationFunction {
	switch quality {
	case 0:
		return resize.NearestNeighbor
	case 1:
		return resize.Bilinear
	case 2:
		return resize.Bicubic
	case 3:
		return resize.MitchellNetravali
	case 4:
		return resize.Lanczos2
	default:
		return resize.Lanczos3
	}
}

var (
	// DefaultResizer is the resizer that is used by default.
	DefaultResizer = NewNfntResizer(resize.MitchellNetravali)
)

// Resize calls nfnt/resize methods.
func (resizer NfntResizer) Resize(width, height uint, img image.Image) image.Image {
	return resize.Resize(width, height, img, resizer.InterP)
}

// LoadImage opens the file and decodes the image. The file is closed before
// LoadImage returns, no matter if decoding was successful.
// EXIF orientation is ignored, the pixels are used as they are stored.
func LoadImage(path string) (image.Image, error) {
	r, openErr := os.Open(path)
	if openErr != nil {
		return nil, openErr
	}
	defer r.Close()
	img, decodeErr := imaging.Decode(r)
	if decodeErr != nil {
		return nil, errors.Wrapf(decodeErr, "decoding %s", path)
	}
	return img, nil
}

// SaveImage encodes img and writes it to file. The format is selected by the
// file extension (.jpg / .jpeg or .png), jpgQuality is the quality between 1
// and 100 used for jpg files.
//
// The image is first written to a temporary file in the same directory that
// is renamed to file once encoding was successful. Thus either the complete
// image is written or file remains untouched. An existing file is replaced.
func SaveImage(file string, img image.Image, jpgQuality int) (err error) {
	ext := filepath.Ext(file)
	if !JPGAndPNG(ext) {
		return fmt.Errorf("Unsupported file type: %s, expected .jpg or .png", ext)
	}
	format, formatErr := imaging.FormatFromFilename(file)
	if formatErr != nil {
		return formatErr
	}
	dir, base := filepath.Split(file)
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s-%s.tmp", base, uuid.New().String()))
	outFile, outErr := os.Create(tmpPath)
	if outErr != nil {
		return outErr
	}
	defer func() {
		// remove the temporary file if anything went wrong
		if err != nil {
			outFile.Close()
			os.Remove(tmpPath)
		}
	}()
	if encErr := imaging.Encode(outFile, img, format, imaging.JPEGQuality(jpgQuality)); encErr != nil {
		return errors.Wrapf(encErr, "encoding %s", file)
	}
	if closeErr := outFile.Close(); closeErr != nil {
		return closeErr
	}
	if renameErr := os.Rename(tmpPath, file); renameErr != nil {
		return renameErr
	}
	return nil
}
