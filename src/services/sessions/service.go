package sessions

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	DB "Backend-Adventura-001/src/database"
	"Backend-Adventura-001/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Two batches for the same session race on the read-modify-write of its row,
// so merges take a per-session lock: Redis SetNX when Redis is up, an
// in-process mutex otherwise.
const (
	lockTTL     = 10 * time.Second
	lockRetry   = 50 * time.Millisecond
	lockRetries = 100
)

// ErrSessionBusy means another merge holds the session lock and did not
// release it within the retry window. The caller decides whether to retry.
var ErrSessionBusy = errors.New("session merge already in progress")

type localLock struct {
	mu   sync.Mutex
	refs int
}

var (
	localLocks   = map[string]*localLock{}
	localLocksMu sync.Mutex
)

func lockSession(sessionID string) (func(), error) {
	if DB.RedisClient != nil {
		key := "session-lock:" + sessionID
		for i := 0; i < lockRetries; i++ {
			ok, err := DB.RedisClient.SetNX(DB.RedisCtx, key, "1", lockTTL).Result()
			if err != nil {
				log.Println("⚠️ Redis lock unavailable, falling back to local lock:", err)
				return lockLocal(sessionID), nil
			}
			if ok {
				return func() { DB.RedisClient.Del(DB.RedisCtx, key) }, nil
			}
			time.Sleep(lockRetry)
		}
		// The Redis holder is still alive, so a local fallback would break
		// cross-instance exclusion exactly when it matters.
		return nil, ErrSessionBusy
	}
	return lockLocal(sessionID), nil
}

// lockLocal serializes merges within this process. Entries are refcounted
// and removed on release so the map does not accumulate one mutex per
// session ever seen.
func lockLocal(sessionID string) func() {
	localLocksMu.Lock()
	l, ok := localLocks[sessionID]
	if !ok {
		l = &localLock{}
		localLocks[sessionID] = l
	}
	l.refs++
	localLocksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		localLocksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(localLocks, sessionID)
		}
		localLocksMu.Unlock()
	}
}

// MergeBatch folds a sessionEvents batch into the single row for its
// session. The row is located by exact sessionId match and updated in
// place; a new row is created only when none exists, so at most one row per
// session survives every merge.
func MergeBatch(ctx context.Context, batch *models.EventBatch) (*models.SessionRow, error) {
	if batch == nil || batch.SessionID == "" {
		return nil, errors.New("sessionId is required")
	}

	unlock, err := lockSession(batch.SessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var row models.SessionRow
	err = DB.SessionRowCollection.FindOne(ctx, bson.M{"sessionId": batch.SessionID}).Decode(&row)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
		row = models.SessionRow{SessionID: batch.SessionID}
	}

	ApplyBatch(&row, batch)

	opts := options.Replace().SetUpsert(true)
	_, err = DB.SessionRowCollection.ReplaceOne(ctx, bson.M{"sessionId": batch.SessionID}, &row, opts)
	if err != nil {
		return nil, err
	}

	log.Printf("[sessions] merged sessionId=%s events=%d eventCount=%d",
		batch.SessionID, len(batch.Details.Events), row.EventCount)

	return &row, nil
}

// GetSessionRow returns the aggregate row for one session.
func GetSessionRow(ctx context.Context, sessionID string) (*models.SessionRow, error) {
	var row models.SessionRow
	err := DB.SessionRowCollection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&row)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("session not found")
		}
		return nil, err
	}
	return &row, nil
}

// GetAllSessionRows lists aggregate rows for the admin dashboard.
func GetAllSessionRows(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["sessionId"] = bson.M{"$regex": params.Search, "$options": "i"}
	}

	total, err := DB.SessionRowCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.SessionRowCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.SessionRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(rows, total, params), nil
}
