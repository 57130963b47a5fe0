package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
)

const defaultQueueSize = 1000

var ErrStopped = errors.New("operator: delegator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	storage    *storage.Storage
	logger     *logrus.Logger
	queue      chan ActionItem
	numWorkers int
	wg         sync.WaitGroup

	// mu guards stopped and the close of queue against in-flight sends.
	mu      sync.RWMutex
	stopped bool
}

func NewOperatorDelegator(s *storage.Storage, numWorkers int, logger *logrus.Logger) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		storage:    s,
		logger:     logger,
		queue:      make(chan ActionItem, defaultQueueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.storage, d.queue, d.logger)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
	d.logger.WithField("workers", d.numWorkers).Info("OperatorDelegator.Start")
}

// Stop closes the queue and waits for queued items to drain. Safe to call more than once.
func (d *OperatorDelegator) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
	d.logger.Info("OperatorDelegator.Stop")
}

// Process enqueues action and blocks until a worker has performed it or ctx is done.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.mu.RLock()
	if d.stopped {
		d.mu.RUnlock()
		return ErrStopped
	}
	select {
	case d.queue <- item:
		d.mu.RUnlock()
	case <-ctx.Done():
		d.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
