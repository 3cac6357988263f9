package drafts

import (
	"testing"
	"time"

	"Backend-Adventura-001/src/models"

	"github.com/stretchr/testify/assert"
)

func TestCompositeID(t *testing.T) {
	at := time.UnixMilli(1741942013589)
	id := CompositeID("Mali", "somchai@example.com", at)
	assert.Equal(t, "Mali-somchai@example.com-1741942013589", id)
}

func TestReplaceByTitlePrefix(t *testing.T) {
	mali := models.FormDraft{ID: "1", Title: "Mali's Adventure", CurrentStep: 1}
	anan := models.FormDraft{ID: "2", Title: "Anan's Adventure", CurrentStep: 2}
	updated := models.FormDraft{ID: "3", Title: "Mali's Adventure", CurrentStep: 4}

	t.Run("PriorSnapshotReplaced", func(t *testing.T) {
		list := ReplaceByTitlePrefix([]models.FormDraft{mali, anan}, "Mali", updated)
		assert.Len(t, list, 2)
		assert.Equal(t, "2", list[0].ID)
		assert.Equal(t, "3", list[1].ID)
	})

	t.Run("EmptyChildNameReplacesNothing", func(t *testing.T) {
		unnamed := models.FormDraft{ID: "4", Title: "'s Adventure"}
		list := ReplaceByTitlePrefix([]models.FormDraft{mali, anan}, "", unnamed)
		assert.Len(t, list, 3)
	})

	t.Run("AppendsToEmptyList", func(t *testing.T) {
		list := ReplaceByTitlePrefix(nil, "Mali", mali)
		assert.Equal(t, []models.FormDraft{mali}, list)
	})
}
