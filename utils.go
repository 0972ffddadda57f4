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
	"io"
	"math"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	// Debug enables a debug log entry for each tile inserted into a mosaic.
	Debug = true
)

var (
	// BufferSize is the size of the job and result channels used by
	// SharpenAll.
	BufferSize = 1000
)

// ProgressFunc is called by long running operations after each processed
// element, num is the number of elements done so far. ComposeMosaic calls it
// once per inserted tile and SharpenAll once per sharpened image.
type ProgressFunc func(num int)

// ProgressIgnore is a ProgressFunc that does nothing.
func ProgressIgnore(num int) {}

// progressLine formats the progress message for num of max elements. It
// returns false if nothing should be reported for num: step <= 0 reports
// nothing, otherwise every step-th element is reported.
func progressLine(prefix string, num, max, step int) (string, bool) {
	if step <= 0 || max <= 0 || num%step != 0 {
		return "", false
	}
	if prefix == "" {
		prefix = "Progress"
	}
	percent := math.Min(float64(num)/float64(max)*100.0, 100.0)
	return fmt.Sprintf("%s: %d of %d (%.1f%%)", prefix, num, max, percent), true
}

// LoggerProgressFunc reports every step-th of max elements on info level, the
// pipeline uses it for sharpened images.
func LoggerProgressFunc(prefix string, max, step int) ProgressFunc {
	return func(num int) {
		if line, ok := progressLine(prefix, num, max, step); ok {
			log.Info(line)
		}
	}
}

// StdProgressFunc works as LoggerProgressFunc but writes one line per report
// to w, the mosaic command uses it for inserted tiles.
func StdProgressFunc(w io.Writer, prefix string, max, step int) ProgressFunc {
	return func(num int) {
		if line, ok := progressLine(prefix, num, max, step); ok {
			fmt.Fprintln(w, line)
		}
	}
}

// ParseDimensions parses a grid layout or tile size such as "4x4" or
// "100x100" and returns both numbers. Whitespace around a number is ignored.
func ParseDimensions(s string) (int, int, error) {
	split := strings.Split(s, "x")
	if len(split) != 2 {
		return -1, -1, fmt.Errorf("Invalid dimension format: %s. Expect \"AxB\"", s)
	}
	first, second := strings.TrimSpace(split[0]), strings.TrimSpace(split[1])
	firstInt, firstErr := strconv.Atoi(first)
	if firstErr != nil {
		return -1, -1, firstErr
	}
	secondInt, secondErr := strconv.Atoi(second)
	if secondErr != nil {
		return -1, -1, secondErr
	}
	if firstInt < 0 || secondInt < 0 {
		return -1, -1, fmt.Errorf("Dimensions must be positive, got %d and %d",
			firstInt, secondInt)
	}
	return firstInt, secondInt, nil
}
