// Copyright (c) 2026 The VoltChain developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package co

import (
	"runtime"
	"sync"
)

// Parallel to run a batch of work using as many CPU as it can.
func Parallel(cb func(chan<- func())) <-chan struct{} {
	queue := make(chan func(), 32)
	defer close(queue)

	done := make(chan struct{})
	nGo := runtime.NumCPU()

	var wg sync.WaitGroup
	wg.Add(nGo)
	go func() {
		defer close(done)
		wg.Wait()
	}()

	for i := 0; i < nGo; i++ {
		go func() {
			defer wg.Done()
			for work := range queue {
				work()
			}
		}()
	}
	cb(queue)
	return done
}
