// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tx

import (
	"github.com/voltio/volt-chain/volt"
)

// Event represents a contract event log produced by a script call.
type Event struct {
	Address volt.Address
	Topics  []volt.Bytes32
	Data    []byte
}

// Events slice of event logs.
type Events []*Event
