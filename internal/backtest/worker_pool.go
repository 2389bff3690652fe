package backtest

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/ducminhle1904/swing-scanner/pkg/types"
)

// WorkerPool manages parallel partition scans
type WorkerPool struct {
	workerCount int
	jobQueue    chan PartitionJob
	resultQueue chan PartitionResult
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	scan        func(PartitionJob) []types.TradeRecord
}

// PartitionJob is one ticker's bars to scan
type PartitionJob struct {
	Ticker string
	Bars   []types.Bar
}

// PartitionResult is the outcome of scanning one partition
type PartitionResult struct {
	Ticker   string
	Trades   []types.TradeRecord
	Duration time.Duration
}

// NewWorkerPool creates a pool running scan on submitted partitions.
// The queues are buffered for bufferSize jobs so a submit-all then
// collect-all caller never blocks.
func NewWorkerPool(workerCount, bufferSize int, scan func(PartitionJob) []types.TradeRecord) *WorkerPool {
	if workerCount <= 0 {
		workerCount = runtime.NumCPU()
	}
	if bufferSize < 1 {
		bufferSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		workerCount: workerCount,
		jobQueue:    make(chan PartitionJob, bufferSize),
		resultQueue: make(chan PartitionResult, bufferSize),
		ctx:         ctx,
		cancel:      cancel,
		scan:        scan,
	}
}

// Start starts the workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// Stop stops the pool gracefully
func (wp *WorkerPool) Stop() {
	close(wp.jobQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
	wp.cancel()
}

// Submit queues a partition for scanning
func (wp *WorkerPool) Submit(job PartitionJob) error {
	select {
	case wp.jobQueue <- job:
		return nil
	case <-wp.ctx.Done():
		return wp.ctx.Err()
	}
}

// Results returns the channel completed partitions arrive on
func (wp *WorkerPool) Results() <-chan PartitionResult {
	return wp.resultQueue
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for {
		select {
		case job, ok := <-wp.jobQueue:
			if !ok {
				return
			}

			start := time.Now()
			result := PartitionResult{
				Ticker:   job.Ticker,
				Trades:   wp.scan(job),
				Duration: time.Since(start),
			}

			select {
			case wp.resultQueue <- result:
			case <-wp.ctx.Done():
				return
			}

		case <-wp.ctx.Done():
			return
		}
	}
}
