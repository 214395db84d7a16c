// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/voltio/volt-chain/kv"
)

// Stage abstracts the changes on top of the state to be committed.
type Stage struct {
	err     error
	kv      kv.Store
	cache   *lru.Cache
	changes map[storageKey][]byte
}

// Commit commits the pending changes to the underlying kv store.
func (stg *Stage) Commit() error {
	if stg.err != nil {
		return stg.err
	}

	batch := stg.kv.NewBatch()
	for k, raw := range stg.changes {
		persistent := persistentKey(k)
		if len(raw) == 0 {
			if err := batch.Delete(persistent); err != nil {
				return err
			}
		} else {
			if err := batch.Put(persistent, raw); err != nil {
				return err
			}
		}
	}
	if err := batch.Write(); err != nil {
		return err
	}

	if stg.cache != nil {
		for k, raw := range stg.changes {
			stg.cache.Add(string(persistentKey(k)), raw)
		}
	}
	return nil
}
