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

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
)

// SharpenKernel is the 3x3 convolution kernel used to sharpen images.
// The kernel is normalized by its sum (16) before it is applied.
var SharpenKernel = [9]float64{
	-2, -2, -2,
	-2, 32, -2,
	-2, -2, -2,
}

// InputName returns the name of the image that is sharpened for the given
// base name: base + ".jpg".
func InputName(base string) string {
	return base + ".jpg"
}

// OutputName returns the name of the sharpened image for the given base name:
// base + "_sharp.jpg".
func OutputName(base string) string {
	return base + SharpSuffix + ".jpg"
}

// Sharpen applies SharpenKernel to the whole image.
func Sharpen(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, SharpenKernel, &imaging.ConvolveOptions{Normalize: true})
}

// SharpenFile reads InputName(base), sharpens it and writes the result to
// OutputName(base). Both names are relative to the working directory of cfg.
//
// If the input can't be opened a *FileOpenError is returned and no output is
// written. If the output can't be written a *FileWriteError is returned.
func SharpenFile(base string, cfg *Config) error {
	_, err := sharpenFile(base, cfg)
	return err
}

func sharpenFile(base string, cfg *Config) (*image.NRGBA, error) {
	inPath, outPath := cfg.FilePath(InputName(base)), cfg.FilePath(OutputName(base))
	img, loadErr := LoadImage(inPath)
	if loadErr != nil {
		return nil, &FileOpenError{Name: InputName(base), Cause: loadErr}
	}
	sharp := Sharpen(img)
	if saveErr := SaveImage(outPath, sharp, cfg.JPGQuality); saveErr != nil {
		return nil, &FileWriteError{Name: OutputName(base), Cause: saveErr}
	}
	if cfg.Verbose {
		log.WithFields(log.Fields{
			"input":  inPath,
			"output": outPath,
		}).Info("Sharpened image")
	}
	return sharp, nil
}

type sharpenResult struct {
	pos int
	img *image.NRGBA
	err error
}

// SharpenAll runs SharpenFile for each base name and returns the sharpened
// images in the order of bases.
// At most cfg.NumRoutines images are processed concurrently. All images are
// processed, if any of them fails the first error is returned together with
// the images that were written (failed entries are nil).
// progress is called after each image and may be nil.
func SharpenAll(bases []string, cfg *Config, progress ProgressFunc) ([]image.Image, error) {
	numRoutines := cfg.NumRoutines
	if numRoutines <= 0 {
		numRoutines = 1
	}
	if progress == nil {
		progress = ProgressIgnore
	}
	// any error that occurs sets this variable (first error)
	var err error
	res := make([]image.Image, len(bases))

	jobs := make(chan int, BufferSize)
	results := make(chan sharpenResult, BufferSize)
	for w := 0; w < numRoutines; w++ {
		go func() {
			for pos := range jobs {
				img, sharpErr := sharpenFile(bases[pos], cfg)
				results <- sharpenResult{pos: pos, img: img, err: sharpErr}
			}
		}()
	}

	go func() {
		for pos := range bases {
			jobs <- pos
		}
		close(jobs)
	}()

	for i := 0; i < len(bases); i++ {
		next := <-results
		if next.err != nil {
			if err == nil {
				err = next.err
			}
		} else {
			res[next.pos] = next.img
		}
		progress(i + 1)
	}
	return res, err
}
