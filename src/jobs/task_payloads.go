package jobs

import (
	"encoding/json"

	"Backend-Adventura-001/src/models"

	"github.com/hibiken/asynq"
)

const TypeMergeSession = "session:merge"

// NewMergeSessionTask wraps a sessionEvents batch for background merging.
func NewMergeSessionTask(batch *models.EventBatch) (*asynq.Task, error) {
	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeMergeSession, payload), nil
}

const TypeRecordOrder = "order:record"

// NewRecordOrderTask wraps an order submission for background recording.
func NewRecordOrderTask(order *models.BookOrder) (*asynq.Task, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRecordOrder, payload), nil
}
