package jobs

import (
	"context"
	"encoding/json"
	"log"

	"Backend-Adventura-001/src/database"
	"Backend-Adventura-001/src/models"
	"Backend-Adventura-001/src/services/orders"
	"Backend-Adventura-001/src/services/sessions"

	"github.com/hibiken/asynq"
)

// HandleMergeSessionTask merges a queued batch into its session row.
// Concurrency 1 on the tracking queue keeps merges for one session ordered.
func HandleMergeSessionTask(ctx context.Context, t *asynq.Task) error {
	var batch models.EventBatch
	if err := json.Unmarshal(t.Payload(), &batch); err != nil {
		log.Println("❌ Batch payload decode error:", err)
		return err
	}

	row, err := sessions.MergeBatch(ctx, &batch)
	if err != nil {
		log.Println("⚠️ Session merge failed:", err)
		return err
	}

	log.Println("✅ Session merged:", row.SessionID)
	return nil
}

// HandleRecordOrderTask records a queued order submission.
func HandleRecordOrderTask(ctx context.Context, t *asynq.Task) error {
	var order models.BookOrder
	if err := json.Unmarshal(t.Payload(), &order); err != nil {
		log.Println("❌ Order payload decode error:", err)
		return err
	}

	recorded, err := orders.CreateOrder(ctx, &order)
	if err != nil {
		log.Println("⚠️ Order recording failed:", err)
		return err
	}

	log.Println("✅ Order recorded:", recorded.OrderID)
	return nil
}

// StartWorker runs the asynq worker next to the HTTP server. Tracking is
// best-effort by contract, so failed tasks are not retried.
func StartWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{
			Concurrency: 1,
			Queues:      map[string]int{"default": 1},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeMergeSession, HandleMergeSessionTask)
	mux.HandleFunc(TypeRecordOrder, HandleRecordOrderTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Worker stopped:", err)
		}
	}()

	log.Println("✅ Background worker started")
}
