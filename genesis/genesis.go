// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"log/slog"

	"github.com/voltio/volt-chain/script/auction"
	"github.com/voltio/volt-chain/state"
)

// Genesis seeds the keyed stores a fresh chain starts from. The only state
// the auction module needs at block zero is the id sequence.
type Genesis struct {
	name          string
	startSequence uint64
}

func New(name string, startSequence uint64) *Genesis {
	return &Genesis{
		name:          name,
		startSequence: startSequence,
	}
}

// Name returns network name.
func (g *Genesis) Name() string {
	return g.name
}

// Build writes the genesis state through the given creator and commits it.
func (g *Genesis) Build(stateCreator *state.Creator) error {
	st, err := stateCreator.NewState()
	if err != nil {
		return err
	}

	auction.SeedSequence(st, g.startSequence)
	if err := st.Err(); err != nil {
		return err
	}

	if err := st.Stage().Commit(); err != nil {
		return err
	}
	slog.Info("genesis built", "name", g.name, "startSequence", g.startSequence)
	return nil
}
