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
	"path/filepath"
	"runtime"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/nfnt/resize"
)

const (
	// DefaultJPGQuality is the quality used when storing jpg images.
	DefaultJPGQuality = 75

	// DefaultMosaicName is the name of the mosaic file.
	DefaultMosaicName = "mosaic.jpg"
)

// Config contains the options shared by the commands.
type Config struct {
	// WorkingDir is the directory all file names are relative to. It must
	// always be an absolute path.
	WorkingDir string

	// JPGQuality is the quality between 1 and 100 used when storing images.
	JPGQuality int

	// Grid is the layout of the mosaic.
	Grid Grid

	// Strategy decides which part of a tile image is placed in the mosaic.
	Strategy TileStrategy

	// InterP is the interpolation function used by the ResizeBox strategy.
	InterP resize.InterpolationFunction

	// MosaicName is the name of the mosaic file.
	MosaicName string

	// TilePattern is the format string to create tile file names from the
	// sequential index.
	TilePattern string

	// NumRoutines is the number of go routines used when sharpening multiple
	// images.
	NumRoutines int

	// Verbose is true if detailed output should be generated.
	Verbose bool
}

// NewConfig returns the default configuration with the given working
// directory. If dir is empty the current directory is used.
func NewConfig(dir string) (*Config, error) {
	if dir == "" {
		dir = "."
	}
	// seems reasonable
	initialRoutines := runtime.NumCPU() * 2
	if initialRoutines <= 0 {
		initialRoutines = 4
	}
	cfg := &Config{
		JPGQuality:  DefaultJPGQuality,
		Grid:        DefaultGrid,
		Strategy:    SameBox,
		InterP:      resize.Lanczos3,
		MosaicName:  DefaultMosaicName,
		TilePattern: DefaultTilePattern,
		NumRoutines: initialRoutines,
		Verbose:     false,
	}
	abs, absErr := expandPath(".", dir)
	if absErr != nil {
		return nil, fmt.Errorf("Unable to retrieve path: %s", absErr.Error())
	}
	cfg.WorkingDir = abs
	return cfg, nil
}

// FilePath returns the path of the file name in the working directory.
// An absolute name is used as it is, a relative name is joined literally: "~"
// is only expanded in the working directory itself (see NewConfig), so a base
// name like "~bob" refers to the file "~bob.jpg" in the working directory.
func (cfg *Config) FilePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(cfg.WorkingDir, name)
}

// Validate checks the values of the config.
func (cfg *Config) Validate() error {
	if cfg.JPGQuality < 1 || cfg.JPGQuality > 100 {
		return fmt.Errorf("Invalid jpeg quality %d: Must be between 1 and 100", cfg.JPGQuality)
	}
	if !JPGAndPNG(filepath.Ext(cfg.MosaicName)) {
		return fmt.Errorf("Supported files are .jpg and .png, got file %s", cfg.MosaicName)
	}
	return cfg.Grid.Validate()
}

// Resizer returns the resizer for the configured interpolation function.
func (cfg *Config) Resizer() ImageResizer {
	return NewNfntResizer(cfg.InterP)
}

func expandPath(base, path string) (string, error) {
	res, pathErr := homedir.Expand(path)
	if pathErr != nil {
		return "", pathErr
	}
	if !filepath.IsAbs(res) {
		res = filepath.Join(base, res)
	}
	return filepath.Abs(res)
}
