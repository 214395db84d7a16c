// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/voltio/volt-chain/api"
	"github.com/voltio/volt-chain/co"
	"github.com/voltio/volt-chain/genesis"
	"github.com/voltio/volt-chain/logdb"
	"github.com/voltio/volt-chain/lvldb"
	"github.com/voltio/volt-chain/node"
	"github.com/voltio/volt-chain/script"
	"github.com/voltio/volt-chain/state"
)

var (
	version   string
	gitCommit string
	gitTag    string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "VoltChain",
		Usage:     "Energy auction chain node",
		Copyright: "2026 VoltChain",
		Flags: []cli.Flag{
			dataDirFlag,
			configFlag,
			apiAddrFlag,
			apiCorsFlag,
			verbosityFlag,
			memDBFlag,
			startSequenceFlag,
		},
		Action: defaultAction,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAction(ctx *cli.Context) error {
	initLogger(ctx.Int(verbosityFlag.Name))
	checkClockOffset()

	config, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	mainDB, err := openMainDB(config)
	if err != nil {
		return err
	}
	defer mainDB.Close()

	logDB, err := openLogDB(config)
	if err != nil {
		return err
	}
	defer logDB.Close()

	stateCreator := state.NewCreator(mainDB)
	gene := genesis.New("main", config.StartSequence)
	if err := gene.Build(stateCreator); err != nil {
		return errors.WithMessage(err, "build genesis")
	}

	scriptEngine := script.NewScriptEngine(stateCreator)
	n := node.New(stateCreator, scriptEngine, logDB)

	apiHandler, apiCloser := api.New(logDB, config.APICors)
	defer apiCloser()

	srv, srvCloser, err := startAPIServer(config.APIAddr, apiHandler)
	if err != nil {
		return err
	}
	defer srvCloser()
	slog.Info("API server started", "addr", srv)

	runCtx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var goes co.Goes
	goes.Go(func() {
		n.Run(runCtx)
	})

	<-runCtx.Done()
	slog.Info("shutting down...")
	goes.Wait()
	return nil
}

func openMainDB(config *Config) (*lvldb.LevelDB, error) {
	if config.MemDB {
		return lvldb.NewMem()
	}
	if err := os.MkdirAll(config.DataDir, 0700); err != nil {
		return nil, errors.WithMessage(err, "create data dir")
	}
	db, err := lvldb.New(filepath.Join(config.DataDir, "main.db"), lvldb.Options{
		CacheSize:              128,
		OpenFilesCacheCapacity: 512,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "open main db")
	}
	return db, nil
}

func openLogDB(config *Config) (*logdb.LogDB, error) {
	if config.MemDB {
		return logdb.NewMem()
	}
	if err := os.MkdirAll(config.DataDir, 0700); err != nil {
		return nil, errors.WithMessage(err, "create data dir")
	}
	db, err := logdb.New(filepath.Join(config.DataDir, "logs.db"))
	if err != nil {
		return nil, errors.WithMessage(err, "open log db")
	}
	return db, nil
}

func startAPIServer(addr string, handler http.HandlerFunc) (string, func(), error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, errors.WithMessage(err, "listen API addr")
	}
	srv := &http.Server{Handler: handler}
	var goes co.Goes
	goes.Go(func() {
		srv.Serve(listener)
	})
	return listener.Addr().String(), func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
		goes.Wait()
	}, nil
}
