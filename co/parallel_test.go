// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package co_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voltio/volt-chain/co"
)

func TestParallel(t *testing.T) {
	n := 50
	var count int64
	fn := func() {
		time.Sleep(time.Millisecond * 2)
		atomic.AddInt64(&count, 1)
	}

	<-co.Parallel(func(queue chan<- func()) {
		for i := 0; i < n; i++ {
			queue <- fn
		}
	})
	assert.Equal(t, int64(n), atomic.LoadInt64(&count))
}

func TestGoes(t *testing.T) {
	var g co.Goes
	var count int64
	for i := 0; i < 10; i++ {
		g.Go(func() {
			atomic.AddInt64(&count, 1)
		})
	}
	<-g.Done()
	assert.Equal(t, int64(10), atomic.LoadInt64(&count))
}
