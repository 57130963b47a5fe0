package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/storage"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage *storage.Storage
	queue   chan ActionItem
	logger  *logrus.Logger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, logger *logrus.Logger) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
		logger:  logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		item.response <- ActionItemResponse{err: o.processItem(item)}
	}
}

func (o *Operator) processItem(item ActionItem) error {
	// The caller may have given up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		return err
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		o.logger.WithError(err).Error("Operator.processItem.Write")
		return err
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		if rollbackErr := writer.Rollback(); rollbackErr != nil {
			o.logger.WithError(rollbackErr).Error("Operator.processItem.Rollback")
		}
		return err
	}

	if err = writer.Commit(); err != nil {
		o.logger.WithError(err).Error("Operator.processItem.Commit")
		return err
	}

	return nil
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
