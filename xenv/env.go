// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package xenv

import (
	"fmt"

	"github.com/voltio/volt-chain/volt"
)

// BlockContext block context.
type BlockContext struct {
	Number uint32
	Time   uint64
}

// TransactionContext transaction context.
type TransactionContext struct {
	ID     volt.Bytes32
	Origin volt.Address
	Nonce  uint64
}

func (ctx *TransactionContext) String() string {
	return fmt.Sprintf("txCtx{ID:%s Origin:%s Nonce:%d}", ctx.ID.String(), ctx.Origin.String(), ctx.Nonce)
}
