// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package script

import (
	"fmt"
	"sync"

	setypes "github.com/voltio/volt-chain/script/types"
	"github.com/voltio/volt-chain/volt"
)

// Registry is the hub of all runtime modules on the chain
type Module struct {
	modName      string
	modID        uint32
	modHandler   func(senv *setypes.ScriptEnv, payload []byte, to *volt.Address, gas uint64) (*setypes.ScriptEngineOutput, uint64, error)
	onBlockStart func(blockNum uint32) uint64
	onBlockEnd   func(senv *setypes.ScriptEnv)
}

func (m *Module) ToString() string {
	return fmt.Sprintf("Module::: Name: %v, ID: %v", m.modName, m.modID)
}

type Registry struct {
	Modules sync.Map
}

func (r *Registry) Register(modID uint32, p *Module) error {
	_, loaded := r.Modules.LoadOrStore(modID, *p)
	if loaded {
		return fmt.Errorf("module with ID %v is already registered", modID)
	}
	return nil
}

// ForceRegister registers with a unique ID and force replacing the previous module if it exists
func (r *Registry) ForceRegister(modID uint32, p *Module) error {
	r.Modules.Store(modID, *p)
	return nil
}

// Find by ID
func (r *Registry) Find(modID uint32) (*Module, bool) {
	value, ok := r.Modules.Load(modID)
	if !ok {
		return nil, false
	}
	p, ok := value.(Module)
	if !ok {
		panic("Registry stores the item which is not a Module")
	}
	return &p, true
}

func (r *Registry) All() []Module {
	all := make([]Module, 0)
	r.Modules.Range(func(_, value interface{}) bool {
		p, ok := value.(Module)
		if !ok {
			panic("Registry stores the item which is not a module")
		}
		all = append(all, p)
		return true
	})
	return all
}
