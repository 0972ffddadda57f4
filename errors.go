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
	"strings"

	"github.com/pkg/errors"
)

const (
	// ExitOK is the exit code on success.
	ExitOK = 0
	// ExitFailure is the exit code for errors that are not reported in a
	// special way, for example if the output can't be written.
	ExitFailure = 1
	// ExitUsage is the exit code for usage errors, missing dependencies and
	// input files that can't be opened.
	ExitUsage = 2
)

// UsageError is returned if a command was called with a wrong number of
// arguments.
type UsageError struct {
	Program string
	Usage   string
}

func (err *UsageError) Error() string {
	return strings.TrimSpace(fmt.Sprintf("error - usage: %s %s", err.Program, err.Usage))
}

// MissingDependencyError is returned if a capability required by a command
// is not available. Capability is the name reported to the user, for example
// CodecCapability.
type MissingDependencyError struct {
	Program    string
	Capability string
	Hint       string
	Cause      error
}

func (err *MissingDependencyError) Error() string {
	capability := err.Capability
	if capability == "" {
		capability = "a missing dependency"
	}
	return fmt.Sprintf("error: %s requires %s - %s", err.Program, capability, err.Hint)
}

func (err *MissingDependencyError) Unwrap() error {
	return err.Cause
}

// FileOpenError is returned if an input file is missing or can't be decoded.
// Name is the name reported to the user: the base name for the sharpen
// command (reported as "base.jpg") or the tile file for the mosaic.
// Index is the sequential index of a tile and 0 if the file is not a tile.
type FileOpenError struct {
	Name  string
	Index int
	Cause error
}

func (err *FileOpenError) Error() string {
	if err.Index > 0 {
		return fmt.Sprintf("error - can't open tile %d: %s", err.Index, err.Name)
	}
	return fmt.Sprintf("error - can't open file: %s", err.Name)
}

func (err *FileOpenError) Unwrap() error {
	return err.Cause
}

// FileWriteError is returned if an output file can't be written.
type FileWriteError struct {
	Name  string
	Cause error
}

func (err *FileWriteError) Error() string {
	return fmt.Sprintf("error - can't write file %s: %v", err.Name, err.Cause)
}

func (err *FileWriteError) Unwrap() error {
	return err.Cause
}

// ExitCode maps the result of a command to the exit code of the process.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usageErr *UsageError
	var depErr *MissingDependencyError
	var openErr *FileOpenError
	switch {
	case errors.As(err, &usageErr), errors.As(err, &depErr), errors.As(err, &openErr):
		return ExitUsage
	default:
		return ExitFailure
	}
}

// UserMessage returns the line that is printed for the user when a command
// fails. Tagged errors are printed without the wrapped context.
func UserMessage(err error) string {
	var usageErr *UsageError
	var depErr *MissingDependencyError
	var openErr *FileOpenError
	var writeErr *FileWriteError
	switch {
	case errors.As(err, &usageErr):
		return usageErr.Error()
	case errors.As(err, &depErr):
		return depErr.Error()
	case errors.As(err, &openErr):
		return openErr.Error()
	case errors.As(err, &writeErr):
		return writeErr.Error()
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
