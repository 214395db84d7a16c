// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/voltio/volt-chain/kv"
	"github.com/voltio/volt-chain/stackedmap"
	"github.com/voltio/volt-chain/volt"
)

// State manages the keyed runtime storage. Every value lives under an
// (account address, storage key) pair. Writes are journaled; checkpoints
// allow reverting everything written since a given point, which is how
// script calls stay all-or-nothing.
type State struct {
	kv       kv.Store
	cache    *lru.Cache // shared raw-storage read cache
	sm       *stackedmap.StackedMap
	err      error
	setError func(err error)
}

type storageKey struct {
	addr volt.Address
	key  volt.Bytes32
}

// New create a state object.
func New(store kv.Store, cache *lru.Cache) *State {
	state := State{
		kv:    store,
		cache: cache,
	}
	state.setError = func(err error) {
		if state.err == nil {
			state.err = err
		}
	}
	state.sm = stackedmap.New(func(key interface{}) (value interface{}, exist bool) {
		return state.cacheGetter(key)
	})

	// initially has one checkpoint to recover to
	state.sm.Push()
	return &state
}

// implements stackedmap.MapGetter
func (s *State) cacheGetter(key interface{}) (value interface{}, exist bool) {
	switch k := key.(type) {
	case storageKey:
		persistent := persistentKey(k)
		if s.cache != nil {
			if cached, ok := s.cache.Get(string(persistent)); ok {
				return cached.([]byte), true
			}
		}
		raw, err := s.kv.Get(persistent)
		if err != nil {
			if !s.kv.IsNotFound(err) {
				s.setError(err)
			}
			raw = nil
		}
		if s.cache != nil {
			s.cache.Add(string(persistent), raw)
		}
		return raw, true
	}
	panic(fmt.Errorf("unexpected key type %+v", key))
}

// Err returns first occurred error.
func (s *State) Err() error {
	return s.err
}

// GetRawStorage returns storage value for given address and key in raw form.
func (s *State) GetRawStorage(addr volt.Address, key volt.Bytes32) []byte {
	v, _ := s.sm.Get(storageKey{addr, key})
	return v.([]byte)
}

// SetRawStorage set storage value for given address and key in raw form.
// Pass a zero-length raw to delete the entry.
func (s *State) SetRawStorage(addr volt.Address, key volt.Bytes32, raw []byte) {
	s.sm.Put(storageKey{addr, key}, raw)
}

// EncodeStorage set storage value encoded by given enc method.
// Error returned by enc will be absorbed by State instance.
func (s *State) EncodeStorage(addr volt.Address, key volt.Bytes32, enc func() ([]byte, error)) {
	raw, err := enc()
	if err != nil {
		s.setError(err)
		return
	}
	s.SetRawStorage(addr, key, raw)
}

// DecodeStorage get and decode storage value.
// Error returned by dec will be absorbed by State instance.
func (s *State) DecodeStorage(addr volt.Address, key volt.Bytes32, dec func([]byte) error) {
	raw := s.GetRawStorage(addr, key)
	if err := dec(raw); err != nil {
		s.setError(err)
	}
}

// NewCheckpoint makes a checkpoint of current state.
// It returns revision of the checkpoint.
func (s *State) NewCheckpoint() int {
	return s.sm.Push()
}

// RevertTo reverts to checkpoint specified by revision.
func (s *State) RevertTo(revision int) {
	s.sm.PopTo(revision)
}

// Stage makes a stage object to compute the pending changes and commit them
// to the underlying kv store.
func (s *State) Stage() *Stage {
	if s.err != nil {
		return &Stage{err: s.err}
	}

	changes := make(map[storageKey][]byte)
	s.sm.Journal(func(key, value interface{}) bool {
		changes[key.(storageKey)] = value.([]byte)
		return true
	})
	return &Stage{
		kv:      s.kv,
		cache:   s.cache,
		changes: changes,
	}
}

func persistentKey(k storageKey) []byte {
	persistent := make([]byte, 0, 1+20+32)
	persistent = append(persistent, 's')
	persistent = append(persistent, k.addr.Bytes()...)
	persistent = append(persistent, k.key.Bytes()...)
	return persistent
}
