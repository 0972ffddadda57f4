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
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

// CommandFunc is a function that is applied to the configuration and the
// positional arguments of a command. prog is the name of the program and is
// used in messages, out receives progress information.
//
// A CommandFunc never exits the process, the returned error is mapped to an
// exit code with ExitCode.
type CommandFunc func(prog string, cfg *Config, out io.Writer, args ...string) error

// Command a command consists of a function to actually execute the command
// and some information about the command.
type Command struct {
	Exec        CommandFunc
	Usage       string
	Description string
}

// CommandMap maps command names to Commands.
type CommandMap map[string]Command

// DefaultCommands contains the sharpen, mosaic and pipeline commands.
var DefaultCommands CommandMap

func init() {
	DefaultCommands = make(CommandMap, 3)
	DefaultCommands["sharpen"] = Command{
		Exec:  SharpenCommand,
		Usage: "basename",
		Description: "Sharpens basename.jpg and writes the result to" +
			" basename_sharp.jpg, an existing file is replaced.",
	}
	DefaultCommands["mosaic"] = Command{
		Exec:  MosaicCommand,
		Usage: "",
		Description: "Composes the tiles 0001_sharp.jpg to 0016_sharp.jpg into" +
			" a 4x4 mosaic of 100x100 tiles and writes it to mosaic.jpg. Tiles are" +
			" placed column by column: 0001 is the top left tile, 0002 the tile" +
			" below it and 0016 the bottom right tile.",
	}
	DefaultCommands["pipeline"] = Command{
		Exec:  PipelineCommand,
		Usage: "",
		Description: "Sharpens 0001.jpg to 0016.jpg and composes the sharpened" +
			" images into mosaic.jpg.",
	}
}

// SharpenCommand sharpens a single image, args must contain exactly one
// element: the base name.
// If the number of arguments is wrong a *UsageError is returned before any
// file is accessed.
func SharpenCommand(prog string, cfg *Config, out io.Writer, args ...string) error {
	if len(args) != 1 {
		return &UsageError{Program: prog, Usage: DefaultCommands["sharpen"].Usage}
	}
	return SharpenFile(args[0], cfg)
}

// MosaicCommand composes the mosaic from the tiles in the working directory
// of cfg. It does not accept arguments.
// CheckCodec is used to verify the jpeg capability, see RunMosaic for a
// version with a custom DependencyCheck.
func MosaicCommand(prog string, cfg *Config, out io.Writer, args ...string) error {
	return RunMosaic(prog, cfg, CheckCodec, out, args...)
}

// RunMosaic works as MosaicCommand but uses the given check to verify that
// all dependencies are available. If the check fails a
// *MissingDependencyError is returned before any file is accessed.
func RunMosaic(prog string, cfg *Config, check DependencyCheck, out io.Writer, args ...string) error {
	if len(args) != 0 {
		return &UsageError{Program: prog, Usage: DefaultCommands["mosaic"].Usage}
	}
	return BuildMosaic(prog, cfg, check, out)
}

// BuildMosaic runs check, composes the mosaic from the tile files in the
// working directory and writes it to cfg.MosaicName. If any of the tiles
// can't be loaded no file is written.
func BuildMosaic(prog string, cfg *Config, check DependencyCheck, out io.Writer) error {
	if check != nil {
		if checkErr := check(); checkErr != nil {
			return codecMissing(prog, checkErr)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	storage := NewFSTileDB(cfg.WorkingDir, cfg.TilePattern, cfg.Grid.NumTiles())
	return writeMosaic(storage, cfg, out)
}

// writeMosaic composes the tiles from storage and saves the result.
func writeMosaic(storage TileStorage, cfg *Config, out io.Writer) error {
	start := time.Now()
	var progress ProgressFunc
	if cfg.Verbose {
		progress = StdProgressFunc(out, "Tiles", cfg.Grid.NumTiles(), 1)
	}
	mosaic, composeErr := ComposeMosaic(storage, cfg.Grid, cfg.Resizer(), cfg.Strategy, progress)
	if composeErr != nil {
		return composeErr
	}
	outPath := cfg.FilePath(cfg.MosaicName)
	if saveErr := SaveImage(outPath, mosaic, cfg.JPGQuality); saveErr != nil {
		return &FileWriteError{Name: cfg.MosaicName, Cause: saveErr}
	}
	if cfg.Verbose {
		log.WithFields(log.Fields{
			"output":   outPath,
			"grid":     cfg.Grid.String(),
			"duration": time.Since(start),
		}).Info("Mosaic written")
	}
	return nil
}

// PipelineCommand sharpens the base images of all tiles (0001.jpg, 0002.jpg,
// ...), writes the sharpened tiles and composes the mosaic from them.
// The sharpened images are kept in memory, the tile files are not read again.
// It does not accept arguments.
func PipelineCommand(prog string, cfg *Config, out io.Writer, args ...string) error {
	if len(args) != 0 {
		return &UsageError{Program: prog, Usage: DefaultCommands["pipeline"].Usage}
	}
	if checkErr := CheckCodec(); checkErr != nil {
		return codecMissing(prog, checkErr)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	numTiles := cfg.Grid.NumTiles()
	bases := make([]string, numTiles)
	for i := range bases {
		bases[i] = TileBaseName(i + 1)
	}
	var progress ProgressFunc
	if cfg.Verbose {
		progress = LoggerProgressFunc("Sharpened", numTiles, 1)
	}
	tiles, sharpenErr := SharpenAll(bases, cfg, progress)
	if sharpenErr != nil {
		return sharpenErr
	}
	return writeMosaic(NewMemoryTileDB(tiles...), cfg, out)
}

// RunProgram executes the command name with the command line argv and
// returns the exit code of the process. argv[0] is the program name, all
// other elements are passed to the command unchanged: options are never read
// from argv but from the environment with getenv, see ConfigFromEnv.
// Errors are reported on out with UserMessage.
func RunProgram(name string, argv []string, getenv func(string) string, out io.Writer) int {
	cmd, ok := DefaultCommands[name]
	if !ok {
		fmt.Fprintf(out, "error: unknown command %s\n", name)
		return ExitFailure
	}
	prog := name
	var args []string
	if len(argv) > 0 {
		prog, args = argv[0], argv[1:]
	}
	cfg, cfgErr := ConfigFromEnv(getenv)
	if cfgErr != nil {
		fmt.Fprintln(out, UserMessage(cfgErr))
		return ExitUsage
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
		if name != "sharpen" {
			PrintConfig(out, cfg)
		}
	}
	if err := cmd.Exec(prog, cfg, out, args...); err != nil {
		fmt.Fprintln(out, UserMessage(err))
		log.Debugf("%+v", err)
		return ExitCode(err)
	}
	return ExitOK
}

// PrintConfig writes the values of the config to w, one variable per line.
func PrintConfig(w io.Writer, cfg *Config) {
	m := map[string]interface{}{
		"dir":          cfg.WorkingDir,
		"routines":     cfg.NumRoutines,
		"verbose":      cfg.Verbose,
		"jpeg-quality": cfg.JPGQuality,
		"grid":         cfg.Grid.String(),
		"mosaic":       cfg.MosaicName,
		"tiles":        cfg.TilePattern,
	}
	// keep order deterministic
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, variable := range keys {
		fmt.Fprintf(w, "%s ==> %v\n", variable, m[variable])
	}
}
