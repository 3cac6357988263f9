package controllers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	DB "Backend-Adventura-001/src/database"
	"Backend-Adventura-001/src/jobs"
	"Backend-Adventura-001/src/models"
	"Backend-Adventura-001/src/services/orders"
	"Backend-Adventura-001/src/services/sessions"
	"Backend-Adventura-001/src/services/track"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

// trackFailure reports a processing error as a structured JSON body. The
// collection endpoint never answers with an HTTP error status: the client
// fires and forgets and must not see a transport failure.
func trackFailure(c *fiber.Ctx, err error) error {
	log.Println("⚠️ Tracking payload rejected:", err)
	return c.JSON(models.TrackResponse{Success: false, Error: err.Error()})
}

// TrackEvent godoc
// @Summary      Ingest a tracking payload
// @Description  Accepts an order (no eventType), a sessionEvents batch, or a single miscellaneous event
// @Tags         track
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.TrackResponse
// @Router       /track [post]
func TrackEvent(c *fiber.Ctx) error {
	// The browser client posts as text/plain to skip the CORS preflight, so
	// dispatch on the raw body rather than the content type.
	body := c.Body()

	var probe struct {
		EventType string `json:"eventType"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return trackFailure(c, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch probe.EventType {
	case "":
		// No eventType means an order submission.
		var order models.BookOrder
		if err := json.Unmarshal(body, &order); err != nil {
			return trackFailure(c, err)
		}
		if enqueued(jobs.NewRecordOrderTask(&order)) {
			return c.JSON(models.TrackResponse{Success: true})
		}
		recorded, err := orders.CreateOrder(ctx, &order)
		if err != nil {
			return trackFailure(c, err)
		}
		return c.JSON(models.TrackResponse{Success: true, OrderID: recorded.OrderID})

	case models.EventSession:
		var batch models.EventBatch
		if err := json.Unmarshal(body, &batch); err != nil {
			return trackFailure(c, err)
		}
		if enqueued(jobs.NewMergeSessionTask(&batch)) {
			return c.JSON(models.TrackResponse{Success: true})
		}
		if _, err := sessions.MergeBatch(ctx, &batch); err != nil {
			return trackFailure(c, err)
		}
		return c.JSON(models.TrackResponse{Success: true})

	default:
		// Anything else is a single event, best effort.
		var payload models.EventPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return trackFailure(c, err)
		}
		if err := track.RecordMiscEvent(ctx, &payload); err != nil {
			log.Println("⚠️ Misc event dropped:", err)
		}
		return c.JSON(models.TrackResponse{Success: true})
	}
}

// enqueued hands a task to the background worker when asynq is up. Tracking
// tasks are not retried; losing one is the accepted outcome.
func enqueued(task *asynq.Task, err error) bool {
	if err != nil || DB.AsynqClient == nil {
		return false
	}
	if _, err := DB.AsynqClient.Enqueue(task, asynq.MaxRetry(0)); err != nil {
		log.Println("⚠️ Enqueue failed, processing inline:", err)
		return false
	}
	return true
}

// VisitorPing godoc
// @Summary      Count a page-load ping
// @Tags         track
// @Produce      json
// @Success      200  {object}  models.TrackResponse
// @Router       /track [get]
func VisitorPing(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	visits, err := track.CountVisitor(ctx)
	if err != nil {
		return trackFailure(c, err)
	}
	return c.JSON(models.TrackResponse{Success: true, Visits: visits})
}
