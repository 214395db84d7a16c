// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltio/volt-chain/logdb"
	"github.com/voltio/volt-chain/tx"
	"github.com/voltio/volt-chain/volt"
)

var (
	moduleAddr = volt.AuctionModuleAddr
	topicA     = volt.Blake2b([]byte("topic-a"))
	topicB     = volt.Blake2b([]byte("topic-b"))
)

func commitBlock(t *testing.T, db *logdb.LogDB, blockNum uint32, topics []volt.Bytes32) {
	blockID := volt.Blake2b([]byte{byte(blockNum)})
	txID := volt.Blake2b([]byte("tx"), []byte{byte(blockNum)})
	origin := volt.BytesToAddress([]byte("origin"))

	batch := db.Prepare(blockID, blockNum, uint64(blockNum)*10)
	batch.ForTransaction(txID, origin).Insert(tx.Events{
		{Address: moduleAddr, Topics: topics, Data: []byte("payload")},
	})
	require.NoError(t, batch.Commit())
}

func TestFilterEvents(t *testing.T) {
	db, err := logdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	commitBlock(t, db, 1, []volt.Bytes32{topicA})
	commitBlock(t, db, 2, []volt.Bytes32{topicB})
	commitBlock(t, db, 3, []volt.Bytes32{topicA})

	all, err := db.FilterEvents(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byTopic, err := db.FilterEvents(context.Background(), &logdb.EventFilter{
		CriteriaSet: []*logdb.EventCriteria{
			{Address: &moduleAddr, Topics: [5]*volt.Bytes32{&topicA}},
		},
	})
	require.NoError(t, err)
	assert.Len(t, byTopic, 2)

	ranged, err := db.FilterEvents(context.Background(), &logdb.EventFilter{
		Range: &logdb.Range{Unit: logdb.Block, From: 2, To: 3},
	})
	require.NoError(t, err)
	assert.Len(t, ranged, 2)

	desc, err := db.FilterEvents(context.Background(), &logdb.EventFilter{Order: logdb.DESC})
	require.NoError(t, err)
	require.Len(t, desc, 3)
	assert.Equal(t, uint32(3), desc[0].BlockNumber)
	assert.Equal(t, uint32(1), desc[2].BlockNumber)

	limited, err := db.FilterEvents(context.Background(), &logdb.EventFilter{
		Options: &logdb.Options{Offset: 0, Limit: 1},
	})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestEventFields(t *testing.T) {
	db, err := logdb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	commitBlock(t, db, 7, []volt.Bytes32{topicA, topicB})

	events, err := db.FilterEvents(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, moduleAddr, ev.Address)
	assert.Equal(t, uint32(7), ev.BlockNumber)
	assert.Equal(t, uint64(70), ev.BlockTime)
	assert.Equal(t, []byte("payload"), ev.Data)
	require.NotNil(t, ev.Topics[0])
	assert.Equal(t, topicA, *ev.Topics[0])
	require.NotNil(t, ev.Topics[1])
	assert.Equal(t, topicB, *ev.Topics[1])
	assert.Nil(t, ev.Topics[2])
}
