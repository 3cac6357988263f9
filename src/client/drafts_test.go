package client

import (
	"testing"

	"Backend-Adventura-001/src/models"

	"github.com/stretchr/testify/assert"
)

func sampleForm(child string) models.FormState {
	return models.FormState{
		ParentName:  "Somchai",
		ParentEmail: "somchai@example.com",
		ChildName:   child,
		ChildAge:    7,
		Adventures: []models.Adventure{
			{Title: "Space", Activities: []string{"launch", "moonwalk"}},
		},
	}
}

func TestDraftRoundTrip(t *testing.T) {
	store := NewMemoryStorage()
	s := NewDraftStore(store)

	saved := s.SaveDraft(sampleForm("Mali"), 3)
	assert.Equal(t, models.DraftStatus, saved.Status)
	assert.NotEmpty(t, saved.SavedAt)

	loaded := NewDraftStore(store).LoadDraft()
	assert.NotNil(t, loaded)
	assert.Equal(t, saved.FormData, loaded.FormData)
	assert.Equal(t, 3, loaded.CurrentStep)
}

func TestCorruptedDraftCleared(t *testing.T) {
	store := NewMemoryStorage()
	store.Set(currentDraftKey, `{"formData":{"childName":"Ma`) // truncated JSON

	s := NewDraftStore(store)
	assert.Nil(t, s.LoadDraft(), "corrupted draft loads as empty form")

	_, ok := store.Get(currentDraftKey)
	assert.False(t, ok, "the corrupted key is cleared")
}

func TestDraftListReplacement(t *testing.T) {
	store := NewMemoryStorage()
	s := NewDraftStore(store)

	s.SaveDraft(sampleForm("Mali"), 1)
	s.SaveDraft(sampleForm("Anan"), 1)
	assert.Len(t, s.Drafts(), 2)

	// Saving Mali again replaces her old snapshot instead of stacking.
	s.SaveDraft(sampleForm("Mali"), 4)
	list := s.Drafts()
	assert.Len(t, list, 2)

	var maliSteps []int
	for _, d := range list {
		if d.FormData.ChildName == "Mali" {
			maliSteps = append(maliSteps, d.CurrentStep)
		}
	}
	assert.Equal(t, []int{4}, maliSteps)
}

func TestDeleteDraft(t *testing.T) {
	store := NewMemoryStorage()
	s := NewDraftStore(store)

	saved := s.SaveDraft(sampleForm("Mali"), 2)
	s.DeleteDraft(saved.ID)

	assert.Empty(t, s.Drafts())
	assert.Nil(t, s.LoadDraft(), "current slot cleared when it held the deleted draft")
}

// Deleting a snapshot must not arm the dirty-flag tracking: only an explicit
// LoadDraft marks the initial restore as complete.
func TestDeleteDraftKeepsRestoreStatePristine(t *testing.T) {
	store := NewMemoryStorage()
	s := NewDraftStore(store)
	saved := s.SaveDraft(sampleForm("Mali"), 2)

	fresh := NewDraftStore(store)
	fresh.DeleteDraft(saved.ID)

	fresh.MarkChanged()
	assert.False(t, fresh.HasUnsavedChanges(), "changes before the initial load are the restore itself")
}

func TestUnsavedChangeDetection(t *testing.T) {
	store := NewMemoryStorage()
	s := NewDraftStore(store)
	s.SaveDraft(sampleForm("Mali"), 1)

	restored := NewDraftStore(store)

	// Changes reported while restoring are not user edits.
	restored.MarkChanged()
	assert.False(t, restored.HasUnsavedChanges())

	restored.LoadDraft()
	restored.MarkChanged()
	assert.True(t, restored.HasUnsavedChanges())

	restored.SaveDraft(sampleForm("Mali"), 2)
	assert.False(t, restored.HasUnsavedChanges(), "saving clears the flag")
}

func TestOrderLifecycleKeys(t *testing.T) {
	store := NewMemoryStorage()
	s := NewDraftStore(store)

	s.SaveDraft(sampleForm("Mali"), 5)
	s.SaveFinalizedBook(sampleForm("Mali"))
	s.BeginOrder("ORD-00007")
	s.CompleteOrder()

	_, hasCurrent := store.Get(currentOrderKey)
	assert.False(t, hasCurrent)
	_, hasDraft := store.Get(currentDraftKey)
	assert.False(t, hasDraft)
	_, hasBook := store.Get(finalizedBookKey)
	assert.False(t, hasBook)

	raw, ok := store.Get(completedOrdersKey)
	assert.True(t, ok)
	assert.Contains(t, raw, "ORD-00007")
}
