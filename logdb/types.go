// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

import (
	"github.com/voltio/volt-chain/tx"
	"github.com/voltio/volt-chain/volt"
)

const eventTableSchema = `CREATE TABLE IF NOT EXISTS event (
	blockID	BLOB(32),
	eventIndex INTEGER,
	blockNumber INTEGER,
	blockTime INTEGER,
	txID BLOB(32),
	txOrigin BLOB(20),
	address BLOB(20),
	topic0 BLOB(32),
	topic1 BLOB(32),
	topic2 BLOB(32),
	topic3 BLOB(32),
	topic4 BLOB(32),
	data BLOB,
	PRIMARY KEY (blockID, eventIndex)
);
CREATE INDEX IF NOT EXISTS eventBlockNumberIndex ON event(blockNumber);
CREATE INDEX IF NOT EXISTS eventTopic0Index ON event(topic0);`

//Event represents tx.Event that can be stored in db.
type Event struct {
	BlockID     volt.Bytes32
	Index       uint32
	BlockNumber uint32
	BlockTime   uint64
	TxID        volt.Bytes32
	TxOrigin    volt.Address
	Address     volt.Address // always a module address
	Topics      [5]*volt.Bytes32
	Data        []byte
}

//newEvent converts tx.Event to Event.
func newEvent(blockID volt.Bytes32, blockNumber uint32, blockTime uint64, index uint32, txID volt.Bytes32, txOrigin volt.Address, txEvent *tx.Event) *Event {
	ev := &Event{
		BlockID:     blockID,
		Index:       index,
		BlockNumber: blockNumber,
		BlockTime:   blockTime,
		TxID:        txID,
		TxOrigin:    txOrigin,
		Address:     txEvent.Address,
		Data:        txEvent.Data,
	}
	for i := 0; i < len(txEvent.Topics) && i < len(ev.Topics); i++ {
		ev.Topics[i] = &txEvent.Topics[i]
	}
	return ev
}

type RangeType string

const (
	Block RangeType = "block"
	Time  RangeType = "time"
)

type Order string

const (
	ASC  Order = "asc"
	DESC Order = "desc"
)

type Range struct {
	Unit RangeType
	From uint64
	To   uint64
}

type Options struct {
	Offset uint64
	Limit  uint64
}

type EventCriteria struct {
	Address *volt.Address // always a module address
	Topics  [5]*volt.Bytes32
}

//EventFilter filter
type EventFilter struct {
	CriteriaSet []*EventCriteria
	Range       *Range
	Options     *Options
	Order       Order //default asc
}
