// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"

	"github.com/voltio/volt-chain/state"
	"github.com/voltio/volt-chain/volt"
)

// Auction sequence (the id of the next auction to create)

func (a *Auction) GetSequence(state *state.State) (seq uint64) {
	state.DecodeStorage(volt.AuctionModuleAddr, AuctionSequenceKey, func(raw []byte) error {
		if len(raw) == 0 {
			seq = 0
			return nil
		}
		seq = binary.BigEndian.Uint64(raw)
		return nil
	})
	return
}

func (a *Auction) SetSequence(state *state.State, seq uint64) {
	state.EncodeStorage(volt.AuctionModuleAddr, AuctionSequenceKey, func() ([]byte, error) {
		var raw [8]byte
		binary.BigEndian.PutUint64(raw[:], seq)
		return raw[:], nil
	})
}

// SeedSequence writes the genesis value of the auction sequence. Used by the
// genesis build only.
func SeedSequence(state *state.State, seq uint64) {
	state.EncodeStorage(volt.AuctionModuleAddr, AuctionSequenceKey, func() ([]byte, error) {
		var raw [8]byte
		binary.BigEndian.PutUint64(raw[:], seq)
		return raw[:], nil
	})
}

// Auction registry

func (a *Auction) GetAuction(state *state.State, auctionID uint64) (result *AuctionData) {
	state.DecodeStorage(volt.AuctionModuleAddr, RegistryKey(auctionID), func(raw []byte) error {
		if len(raw) == 0 {
			result = nil
			return nil
		}
		decoder := gob.NewDecoder(bytes.NewBuffer(raw))
		var data AuctionData
		if err := decoder.Decode(&data); err != nil {
			log.Warn("error during decoding auction data", "err", err)
			result = nil
			return nil
		}
		result = &data
		return nil
	})
	return
}

func (a *Auction) SetAuction(state *state.State, data *AuctionData) {
	state.EncodeStorage(volt.AuctionModuleAddr, RegistryKey(data.AuctionID), func() ([]byte, error) {
		buf := bytes.NewBuffer([]byte{})
		encoder := gob.NewEncoder(buf)
		err := encoder.Encode(data)
		return buf.Bytes(), err
	})
}

func (a *Auction) RemoveAuction(state *state.State, auctionID uint64) {
	state.SetRawStorage(volt.AuctionModuleAddr, RegistryKey(auctionID), []byte{})
}

func (a *Auction) HasAuction(state *state.State, auctionID uint64) bool {
	return a.GetAuction(state, auctionID) != nil
}

// Participant roster

func (a *Auction) GetRoster(state *state.State, addr volt.Address) (result *AuctionRoster) {
	state.DecodeStorage(volt.AuctionModuleAddr, RosterKey(addr), func(raw []byte) error {
		if len(raw) == 0 {
			result = nil
			return nil
		}
		decoder := gob.NewDecoder(bytes.NewBuffer(raw))
		var roster AuctionRoster
		if err := decoder.Decode(&roster); err != nil {
			log.Warn("error during decoding auction roster", "err", err)
			result = nil
			return nil
		}
		result = &roster
		return nil
	})
	return
}

func (a *Auction) SetRoster(state *state.State, addr volt.Address, roster *AuctionRoster) {
	state.EncodeStorage(volt.AuctionModuleAddr, RosterKey(addr), func() ([]byte, error) {
		buf := bytes.NewBuffer([]byte{})
		encoder := gob.NewEncoder(buf)
		err := encoder.Encode(roster)
		return buf.Bytes(), err
	})
}

// Execution queue

func (a *Auction) GetQueueBucket(state *state.State, blockNum uint32) (result QueueBucket) {
	state.DecodeStorage(volt.AuctionModuleAddr, QueueKey(blockNum), func(raw []byte) error {
		if len(raw) == 0 {
			result = QueueBucket{}
			return nil
		}
		decoder := gob.NewDecoder(bytes.NewBuffer(raw))
		var bucket QueueBucket
		if err := decoder.Decode(&bucket); err != nil {
			log.Warn("error during decoding execution queue bucket", "err", err)
			result = QueueBucket{}
			return nil
		}
		result = bucket
		return nil
	})
	return
}

func (a *Auction) SetQueueBucket(state *state.State, blockNum uint32, bucket QueueBucket) {
	if len(bucket) == 0 {
		state.SetRawStorage(volt.AuctionModuleAddr, QueueKey(blockNum), []byte{})
		return
	}
	state.EncodeStorage(volt.AuctionModuleAddr, QueueKey(blockNum), func() ([]byte, error) {
		buf := bytes.NewBuffer([]byte{})
		encoder := gob.NewEncoder(buf)
		err := encoder.Encode(bucket)
		return buf.Bytes(), err
	})
}

func (a *Auction) QueueContains(state *state.State, blockNum uint32, auctionID uint64) bool {
	return a.GetQueueBucket(state, blockNum).Contains(auctionID)
}
