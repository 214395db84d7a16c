// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/beevik/ntp"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/voltio/volt-chain/volt"
)

func initLogger(verbosity int) {
	lvl := slog.LevelInfo
	if verbosity > 0 {
		lvl = slog.LevelDebug
	}
	w := os.Stdout
	slog.SetDefault(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.DateTime,
		NoColor:    !isatty.IsTerminal(w.Fd()),
	})))
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".volt"
	}
	return filepath.Join(home, ".volt")
}

func checkClockOffset() {
	resp, err := ntp.Query("ap.pool.ntp.org")
	if err != nil {
		slog.Debug("failed to access NTP", "err", err)
		return
	}
	if resp.ClockOffset > time.Duration(volt.BlockInterval)*time.Second/2 {
		slog.Warn("clock offset detected", "offset", resp.ClockOffset)
	}
}
