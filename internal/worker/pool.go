// Package worker decodes and validates move tokens in parallel. Decoding and
// rule validation are pure, so tokens can be processed in any order against
// a shared game snapshot.
package worker

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/narmi-chess-go/internal/notation"
)

// WorkItem is one move token to process.
type WorkItem struct {
	Text  string
	Line  uint // Source line of the token (0 if unknown)
	Index int  // Position in the batch
}

// ProcessResult is the outcome for one token. Notation is set exactly when
// Err is nil.
type ProcessResult struct {
	Text     string
	Line     uint
	Index    int
	Notation *notation.Notation
	Err      error // Decode or rule error
}

// OK returns true if the token was processed without error.
func (r ProcessResult) OK() bool {
	return r.Err == nil
}

// ProcessFunc turns a work item into its result.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	failFast    bool
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Set once no further items should be processed
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size. Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithFailFast makes Run stop the pool at the first failed token.
func WithFailFast() PoolOption {
	return func(p *Pool) {
		p.failFast = true
	}
}

// NewPool creates a pool running processFunc.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues an item. It blocks while the work buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes the workers skip every item they have not started yet.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true once Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close ends submission, waits for the workers and then closes Results.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run processes items on a new pool and returns the results in item order.
// onResult, if not nil, is called from the collecting goroutine as each
// result arrives. With WithFailFast the pool is stopped at the first failed
// token, so later items may be missing from the results.
func Run(items []WorkItem, processFunc ProcessFunc, onResult func(ProcessResult), opts ...PoolOption) []ProcessResult {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for _, item := range items {
			if pool.IsStopped() {
				break
			}
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]ProcessResult, 0, len(items))
	for result := range pool.Results() {
		if onResult != nil {
			onResult(result)
		}
		if pool.failFast && !result.OK() {
			pool.Stop()
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
