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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Environment variables read by ConfigFromEnv. The command line of the
// programs only contains positional arguments, all options are set here.
const (
	EnvDir        = "SHARPMOSAIC_DIR"
	EnvQuality    = "SHARPMOSAIC_QUALITY"
	EnvGrid       = "SHARPMOSAIC_GRID"
	EnvTile       = "SHARPMOSAIC_TILE"
	EnvStrategy   = "SHARPMOSAIC_STRATEGY"
	EnvInterP     = "SHARPMOSAIC_INTERP"
	EnvMosaicName = "SHARPMOSAIC_OUT"
	EnvRoutines   = "SHARPMOSAIC_ROUTINES"
	EnvVerbose    = "SHARPMOSAIC_VERBOSE"
)

// ConfigFromEnv returns the configuration described by the environment
// variables, getenv is usually os.Getenv. Variables that are not set (or
// empty) keep the values of NewConfig.
// An error is returned if a variable is set to an invalid value.
func ConfigFromEnv(getenv func(string) string) (*Config, error) {
	cfg, cfgErr := NewConfig(getenv(EnvDir))
	if cfgErr != nil {
		return nil, cfgErr
	}
	if err := envInt(getenv, EnvQuality, &cfg.JPGQuality); err != nil {
		return nil, err
	}
	if err := envInt(getenv, EnvRoutines, &cfg.NumRoutines); err != nil {
		return nil, err
	}
	layout, tileSize := getenv(EnvGrid), getenv(EnvTile)
	if layout != "" || tileSize != "" {
		if layout == "" {
			layout = "4x4"
		}
		if tileSize == "" {
			tileSize = "100x100"
		}
		grid, gridErr := ParseGrid(layout, tileSize)
		if gridErr != nil {
			return nil, errors.Wrapf(gridErr, "Invalid value for %s / %s", EnvGrid, EnvTile)
		}
		cfg.Grid = grid
	}
	if val := getenv(EnvStrategy); val != "" {
		s, strategyErr := ParseTileStrategy(val)
		if strategyErr != nil {
			return nil, errors.WithStack(strategyErr)
		}
		cfg.Strategy = s
	}
	if val := getenv(EnvInterP); val != "" {
		quality, parseErr := strconv.ParseUint(val, 10, 32)
		if parseErr != nil {
			return nil, errors.Wrapf(parseErr, "Invalid value for %s", EnvInterP)
		}
		cfg.InterP = GetInterP(uint(quality))
	}
	if val := getenv(EnvMosaicName); val != "" {
		cfg.MosaicName = val
	}
	if val := getenv(EnvVerbose); val != "" {
		verbose, parseErr := strconv.ParseBool(strings.TrimSpace(val))
		if parseErr != nil {
			return nil, errors.Wrapf(parseErr, "Invalid value for %s", EnvVerbose)
		}
		cfg.Verbose = verbose
	}
	return cfg, nil
}

func envInt(getenv func(string) string, key string, dst *int) error {
	val := getenv(key)
	if val == "" {
		return nil
	}
	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return errors.Wrapf(err, "Invalid value for %s", key)
	}
	*dst = i
	return nil
}
