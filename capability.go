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
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// DependencyCheck checks if everything required by a command is available.
// It is called once before a command does any work.
type DependencyCheck func() error

const (
	// CodecCapability names what CheckCodec verifies, it is reported in a
	// MissingDependencyError.
	CodecCapability = "a JPEG codec"

	// CodecHint is the remediation hint reported if CheckCodec fails.
	CodecHint = "build it with the image/jpeg decoder registered (import _ \"image/jpeg\")"
)

// codecMissing returns the error reported by prog if CheckCodec failed.
func codecMissing(prog string, cause error) *MissingDependencyError {
	return &MissingDependencyError{
		Program:    prog,
		Capability: CodecCapability,
		Hint:       CodecHint,
		Cause:      cause,
	}
}

// CheckCodec verifies that jpeg images can be encoded and decoded: It encodes
// a single pixel and decodes the configuration with the image package.
func CheckCodec() error {
	var buf bytes.Buffer
	pixel := imaging.New(1, 1, color.NRGBA{255, 255, 255, 255})
	if err := imaging.Encode(&buf, pixel, imaging.JPEG); err != nil {
		return err
	}
	_, format, err := image.DecodeConfig(&buf)
	if err != nil {
		return err
	}
	if format != "jpeg" {
		return fmt.Errorf("Decoded format is %s, expected jpeg", format)
	}
	return nil
}

// NoCheck is a DependencyCheck that always succeeds.
func NoCheck() error {
	return nil
}
