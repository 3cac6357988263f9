package client

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"Backend-Adventura-001/src/models"
)

// Storage keys for the book-creation flow.
const (
	currentDraftKey    = "storybookDraft"
	allDraftsKey       = "storybookDrafts"
	finalizedBookKey   = "storybookFinalizedBook"
	currentOrderKey    = "storybookCurrentOrder"
	completedOrdersKey = "storybookCompletedOrders"
)

// DraftStore persists the in-progress form. One current draft lives in the
// primary slot; named snapshots accumulate in the all-drafts list.
type DraftStore struct {
	store  Storage
	now    func() time.Time
	loaded bool
	dirty  bool
}

func NewDraftStore(store Storage) *DraftStore {
	return &DraftStore{store: store, now: time.Now}
}

// draftID derives the snapshot key from child name, parent email and
// creation time.
func draftID(form models.FormState, t time.Time) string {
	return fmt.Sprintf("%s-%s-%d", form.ChildName, form.ParentEmail, t.UnixMilli())
}

// SaveDraft captures the whole form plus the current step. The snapshot
// replaces any prior list entry whose title starts with the child's name, so
// reworking one book never piles up stale copies.
func (s *DraftStore) SaveDraft(form models.FormState, currentStep int) *models.FormDraft {
	now := s.now()
	draft := models.FormDraft{
		ID:          draftID(form, now),
		Title:       form.ChildName + "'s Adventure",
		FormData:    form,
		CurrentStep: currentStep,
		SavedAt:     now.Format(time.RFC3339),
		Status:      models.DraftStatus,
	}

	if raw, err := json.Marshal(draft); err == nil {
		s.store.Set(currentDraftKey, string(raw))
	}

	list := s.Drafts()
	kept := make([]models.FormDraft, 0, len(list)+1)
	for _, d := range list {
		if form.ChildName != "" && strings.HasPrefix(d.Title, form.ChildName) {
			continue
		}
		kept = append(kept, d)
	}
	kept = append(kept, draft)
	if raw, err := json.Marshal(kept); err == nil {
		s.store.Set(allDraftsKey, string(raw))
	}

	s.dirty = false
	return &draft
}

// LoadDraft restores the current draft on startup. A corrupted entry is
// cleared and the form starts empty; the page load never fails.
func (s *DraftStore) LoadDraft() *models.FormDraft {
	defer func() { s.loaded = true }()

	raw, ok := s.store.Get(currentDraftKey)
	if !ok || raw == "" {
		return nil
	}

	var draft models.FormDraft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		log.Printf("[client] corrupted draft cleared: %v", err)
		s.store.Delete(currentDraftKey)
		return nil
	}
	return &draft
}

// Drafts returns the snapshot list, clearing it when corrupted.
func (s *DraftStore) Drafts() []models.FormDraft {
	raw, ok := s.store.Get(allDraftsKey)
	if !ok || raw == "" {
		return nil
	}

	var list []models.FormDraft
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("[client] corrupted draft list cleared: %v", err)
		s.store.Delete(allDraftsKey)
		return nil
	}
	return list
}

// DeleteDraft removes one snapshot, and the current slot when it holds the
// same draft.
func (s *DraftStore) DeleteDraft(id string) {
	list := s.Drafts()
	kept := make([]models.FormDraft, 0, len(list))
	for _, d := range list {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if raw, err := json.Marshal(kept); err == nil {
		s.store.Set(allDraftsKey, string(raw))
	}

	// Read the slot directly: going through LoadDraft would arm the
	// dirty-flag tracking as a side effect.
	if raw, ok := s.store.Get(currentDraftKey); ok && raw != "" {
		var current models.FormDraft
		if err := json.Unmarshal([]byte(raw), &current); err == nil && current.ID == id {
			s.store.Delete(currentDraftKey)
		}
	}
}

// MarkChanged flags unsaved changes. Changes reported before the initial
// load completes are the restore itself, not user edits, and are ignored.
func (s *DraftStore) MarkChanged() {
	if s.loaded {
		s.dirty = true
	}
}

// HasUnsavedChanges reports whether a tracked field changed since the last
// save.
func (s *DraftStore) HasUnsavedChanges() bool {
	return s.dirty
}

// SaveFinalizedBook stores the completed book data ahead of checkout.
func (s *DraftStore) SaveFinalizedBook(form models.FormState) {
	if raw, err := json.Marshal(form); err == nil {
		s.store.Set(finalizedBookKey, string(raw))
	}
}

// FinalizedBook returns the completed book data, if any.
func (s *DraftStore) FinalizedBook() *models.FormState {
	raw, ok := s.store.Get(finalizedBookKey)
	if !ok || raw == "" {
		return nil
	}
	var form models.FormState
	if err := json.Unmarshal([]byte(raw), &form); err != nil {
		s.store.Delete(finalizedBookKey)
		return nil
	}
	return &form
}

// BeginOrder remembers the order id being checked out.
func (s *DraftStore) BeginOrder(orderID string) {
	s.store.Set(currentOrderKey, orderID)
}

// CompleteOrder moves the current order onto the completed list and clears
// the checkout state.
func (s *DraftStore) CompleteOrder() {
	orderID, ok := s.store.Get(currentOrderKey)
	if !ok || orderID == "" {
		return
	}

	var completed []string
	if raw, ok := s.store.Get(completedOrdersKey); ok && raw != "" {
		// A corrupted list restarts empty.
		_ = json.Unmarshal([]byte(raw), &completed)
	}
	completed = append(completed, orderID)

	if raw, err := json.Marshal(completed); err == nil {
		s.store.Set(completedOrdersKey, string(raw))
	}
	s.store.Delete(currentOrderKey)
	s.store.Delete(currentDraftKey)
	s.store.Delete(finalizedBookKey)
}
