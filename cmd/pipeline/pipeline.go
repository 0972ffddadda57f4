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

package main

import (
	"os"

	// Since we're not in the sharpmosaic package we have to import it
	"github.com/FabianWe/sharpmosaic"
)

// Options are read from the SHARPMOSAIC_* environment variables, the command
// line only holds positional arguments.
func main() {
	os.Exit(sharpmosaic.RunProgram("pipeline", os.Args, os.Getenv, os.Stdout))
}
