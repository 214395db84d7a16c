// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/voltio/volt-chain/kv"
)

const cachedStorageEntries = 65536

// Creator state creator to cut-off kv dependency.
type Creator struct {
	kv    kv.Store
	cache *lru.Cache
}

// NewCreator create a new state creator. All states created through the same
// creator share one raw-storage read cache.
func NewCreator(store kv.Store) *Creator {
	cache, err := lru.New(cachedStorageEntries)
	if err != nil {
		// lru.New fails on non-positive sizes only
		panic(err)
	}
	return &Creator{kv: store, cache: cache}
}

// NewState create a new state object on top of the creator's kv store.
func (c *Creator) NewState() (*State, error) {
	return New(c.kv, c.cache), nil
}
