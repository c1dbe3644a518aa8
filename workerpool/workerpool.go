// Copyright 2025 go-transpose Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs index-parallel loops on a fixed set of long-lived
// goroutines.
//
// A Pool is meant to be created once and shared by many transposes. Splitting
// a large image into leaf regions produces hundreds of small jobs per call;
// paying for goroutine creation on every call costs more than the copies.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	err := transpose.TransposeParallel(pool, in, w, out, h, w, h, 1, transpose.NoFlip, transpose.NoFlop)
//
// A nil *Pool is valid and runs everything on the calling goroutine.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of worker goroutines fed from one channel.
type Pool struct {
	workers int
	tasks   chan task
	once    sync.Once
	closed  atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with n workers, or GOMAXPROCS workers if n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: n,
		tasks:   make(chan task, 2*n),
	}
	for range n {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers, 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.workers
}

// Close stops the workers once queued work drains. After Close the pool keeps
// working, sequentially. Close is idempotent.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// usable returns how many workers to fan out to for n items, or 0 when the
// work should run inline.
func (p *Pool) usable(n int) int {
	if p == nil || p.closed.Load() {
		return 0
	}
	w := min(p.workers, n)
	if w <= 1 {
		return 0
	}
	return w
}

// fanOut queues run(i) for i in [0, w) and waits for all of them.
func (p *Pool) fanOut(w int, run func(i int)) {
	var wg sync.WaitGroup
	wg.Add(w)
	for i := range w {
		p.tasks <- task{run: func() { run(i) }, done: &wg}
	}
	wg.Wait()
}

// ParallelFor calls fn over contiguous chunks covering [0, n), one chunk per
// worker, and returns when all chunks are done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	w := p.usable(n)
	if w == 0 {
		fn(0, n)
		return
	}
	chunk := (n + w - 1) / w
	p.fanOut(w, func(i int) {
		start := i * chunk
		if start >= n {
			return
		}
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n). Workers claim indices
// from a shared counter, which balances uneven items. Returns when all items
// are done.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	w := p.usable(n)
	if w == 0 {
		for i := range n {
			fn(i)
		}
		return
	}
	var next atomic.Int64
	p.fanOut(w, func(int) {
		for {
			i := int(next.Add(1) - 1)
			if i >= n {
				return
			}
			fn(i)
		}
	})
}
