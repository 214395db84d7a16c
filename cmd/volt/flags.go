// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	dataDirFlag = cli.StringFlag{
		Name:  "data-dir",
		Value: defaultDataDir(),
		Usage: "directory for chain databases",
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a YAML config file, flags override its values",
	}
	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Value: "localhost:8669",
		Usage: "API service listening address",
	}
	apiCorsFlag = cli.StringFlag{
		Name:  "api-cors",
		Value: "",
		Usage: "comma separated list of domains from which to accept cross origin requests to API",
	}
	verbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Value: 0,
		Usage: "log verbosity (0=info, 1=debug)",
	}
	memDBFlag = cli.BoolFlag{
		Name:  "mem-db",
		Usage: "keep chain data in memory, nothing is persisted",
	}
	startSequenceFlag = cli.Uint64Flag{
		Name:  "start-sequence",
		Value: 0,
		Usage: "first auction id assigned by a fresh chain",
	}
)
