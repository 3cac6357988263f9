package track

import (
	"context"
	"log"
	"time"

	DB "Backend-Adventura-001/src/database"
	"Backend-Adventura-001/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordMiscEvent stores a payload whose eventType is neither an order nor a
// session batch. Best effort only: the caller logs the error and moves on.
func RecordMiscEvent(ctx context.Context, payload *models.EventPayload) error {
	ev := models.MiscEvent{
		ID:        uuid.NewString(),
		SessionID: payload.SessionID,
		EventType: payload.EventType,
		Timestamp: payload.Timestamp,
		Details:   payload.Details,
	}
	if ev.Timestamp == "" {
		ev.Timestamp = time.Now().Format(time.RFC3339)
	}

	_, err := DB.EventCollection.InsertOne(ctx, ev)
	return err
}

// CountVisitor bumps the visitor counter and returns the new total. Fired by
// the page-load ping; the client never reads the response.
func CountVisitor(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	res := DB.CounterCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": "visitors"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return 0, err
	}

	log.Printf("[track] visitor #%d", counter.Seq)
	return counter.Seq, nil
}
