// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package types

import (
	"github.com/voltio/volt-chain/tx"
)

// ScriptEngineOutput is the result of one handled script call.
type ScriptEngineOutput struct {
	data   []byte
	events tx.Events
}

func (o *ScriptEngineOutput) GetData() []byte {
	return o.data
}

func (o *ScriptEngineOutput) GetEvents() tx.Events {
	return o.events
}
