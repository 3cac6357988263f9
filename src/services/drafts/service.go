package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	DB "Backend-Adventura-001/src/database"
	"Backend-Adventura-001/src/models"

	"github.com/redis/go-redis/v9"
)

// Server-side mirror of the client draft store so a reader can resume the
// form on another device. Values are JSON strings under string keys, the
// same shape the client keeps locally.

var ErrNoRedis = errors.New("draft sync requires Redis")

func currentKey(clientID string) string { return fmt.Sprintf("draft:current:%s", clientID) }
func allKey(clientID string) string     { return fmt.Sprintf("draft:all:%s", clientID) }

// CompositeID derives the all-drafts key for one snapshot from the child's
// name, the parent's email and the creation time.
func CompositeID(childName, parentEmail string, t time.Time) string {
	return fmt.Sprintf("%s-%s-%d", childName, parentEmail, t.UnixMilli())
}

// ReplaceByTitlePrefix drops every draft whose title starts with the child's
// name before the new snapshot is appended, so renaming details never piles
// up stale copies of the same book.
func ReplaceByTitlePrefix(list []models.FormDraft, childName string, draft models.FormDraft) []models.FormDraft {
	kept := make([]models.FormDraft, 0, len(list)+1)
	for _, d := range list {
		if childName != "" && strings.HasPrefix(d.Title, childName) {
			continue
		}
		kept = append(kept, d)
	}
	return append(kept, draft)
}

// SaveDraft stores the current draft and folds it into the all-drafts list.
func SaveDraft(ctx context.Context, clientID string, draft *models.FormDraft) (*models.FormDraft, error) {
	if DB.RedisClient == nil {
		log.Println("⚠️ Redis not available. Draft sync skipped.")
		return nil, ErrNoRedis
	}

	now := time.Now()
	draft.Status = models.DraftStatus
	draft.SavedAt = now.Format(time.RFC3339)
	if draft.Title == "" {
		draft.Title = draft.FormData.ChildName + "'s Adventure"
	}
	if draft.ID == "" {
		draft.ID = CompositeID(draft.FormData.ChildName, draft.FormData.ParentEmail, now)
	}

	raw, err := json.Marshal(draft)
	if err != nil {
		return nil, err
	}
	if err := DB.RedisClient.Set(ctx, currentKey(clientID), raw, 0).Err(); err != nil {
		return nil, err
	}

	list, err := ListDrafts(ctx, clientID)
	if err != nil {
		return nil, err
	}
	list = ReplaceByTitlePrefix(list, draft.FormData.ChildName, *draft)

	rawList, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	if err := DB.RedisClient.Set(ctx, allKey(clientID), rawList, 0).Err(); err != nil {
		return nil, err
	}

	return draft, nil
}

// LoadDraft returns the current draft, or nil when none exists. A corrupted
// entry is cleared and treated as absent so the form always loads.
func LoadDraft(ctx context.Context, clientID string) (*models.FormDraft, error) {
	if DB.RedisClient == nil {
		return nil, ErrNoRedis
	}

	raw, err := DB.RedisClient.Get(ctx, currentKey(clientID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var draft models.FormDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		log.Println("⚠️ Corrupted draft cleared for client", clientID)
		DB.RedisClient.Del(ctx, currentKey(clientID))
		return nil, nil
	}
	return &draft, nil
}

// ListDrafts returns the all-drafts list, clearing it when corrupted.
func ListDrafts(ctx context.Context, clientID string) ([]models.FormDraft, error) {
	if DB.RedisClient == nil {
		return nil, ErrNoRedis
	}

	raw, err := DB.RedisClient.Get(ctx, allKey(clientID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var list []models.FormDraft
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Println("⚠️ Corrupted draft list cleared for client", clientID)
		DB.RedisClient.Del(ctx, allKey(clientID))
		return nil, nil
	}
	return list, nil
}

// DeleteDraft removes one snapshot from the all-drafts list, and clears the
// current slot too when it holds the same draft.
func DeleteDraft(ctx context.Context, clientID, draftID string) error {
	if DB.RedisClient == nil {
		return ErrNoRedis
	}

	list, err := ListDrafts(ctx, clientID)
	if err != nil {
		return err
	}

	kept := make([]models.FormDraft, 0, len(list))
	for _, d := range list {
		if d.ID != draftID {
			kept = append(kept, d)
		}
	}

	rawList, err := json.Marshal(kept)
	if err != nil {
		return err
	}
	if err := DB.RedisClient.Set(ctx, allKey(clientID), rawList, 0).Err(); err != nil {
		return err
	}

	current, err := LoadDraft(ctx, clientID)
	if err != nil {
		return err
	}
	if current != nil && current.ID == draftID {
		return DB.RedisClient.Del(ctx, currentKey(clientID)).Err()
	}
	return nil
}
