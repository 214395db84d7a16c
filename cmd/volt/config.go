// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	yaml "gopkg.in/yaml.v2"
)

// Config the node configuration, loadable from YAML. Flags given on the
// command line take precedence over file values.
type Config struct {
	DataDir       string `yaml:"dataDir"`
	APIAddr       string `yaml:"apiAddr"`
	APICors       string `yaml:"apiCors"`
	MemDB         bool   `yaml:"memDB"`
	StartSequence uint64 `yaml:"startSequence"`
}

func loadConfig(ctx *cli.Context) (*Config, error) {
	config := &Config{
		DataDir:       ctx.String(dataDirFlag.Name),
		APIAddr:       ctx.String(apiAddrFlag.Name),
		APICors:       ctx.String(apiCorsFlag.Name),
		MemDB:         ctx.Bool(memDBFlag.Name),
		StartSequence: ctx.Uint64(startSequenceFlag.Name),
	}

	path := ctx.String(configFlag.Name)
	if path == "" {
		return config, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "read config")
	}
	fileConfig := &Config{}
	if err := yaml.UnmarshalStrict(raw, fileConfig); err != nil {
		return nil, errors.WithMessage(err, "parse config")
	}

	if !ctx.IsSet(dataDirFlag.Name) && fileConfig.DataDir != "" {
		config.DataDir = fileConfig.DataDir
	}
	if !ctx.IsSet(apiAddrFlag.Name) && fileConfig.APIAddr != "" {
		config.APIAddr = fileConfig.APIAddr
	}
	if !ctx.IsSet(apiCorsFlag.Name) && fileConfig.APICors != "" {
		config.APICors = fileConfig.APICors
	}
	if !ctx.IsSet(memDBFlag.Name) {
		config.MemDB = config.MemDB || fileConfig.MemDB
	}
	if !ctx.IsSet(startSequenceFlag.Name) && fileConfig.StartSequence != 0 {
		config.StartSequence = fileConfig.StartSequence
	}
	return config, nil
}
