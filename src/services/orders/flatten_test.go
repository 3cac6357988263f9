package orders

import (
	"encoding/json"
	"testing"
	"time"

	"Backend-Adventura-001/src/models"

	"github.com/stretchr/testify/assert"
)

func sampleOrder() *models.BookOrder {
	return &models.BookOrder{
		OrderID:    "ORD-00042",
		ParentName: "Somchai Jaidee",
		Email:      "somchai@example.com",
		Phone:      "+66 81 234 5678",
		ChildName:  "Mali",
		ChildAge:   7,
		BookTitle:  "Mali and the Sky Whale",
		Adventures: []models.Adventure{
			{Title: "Space", Activities: []string{"launch", "moonwalk"}, ImageDescription: "a silver rocket"},
			{Title: "Ocean", Activities: []string{"dive"}},
		},
		SessionID: "2025-03-14-09-26-53-589-123",
		CreatedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestFlattenColumnOrder(t *testing.T) {
	row, err := Flatten(sampleOrder())
	assert.NoError(t, err)

	cols := row.Columns()
	assert.Len(t, cols, 17)
	assert.Equal(t, "ORD-00042", cols[0])
	assert.Equal(t, "2025-03-14T10:00:00Z", cols[1])
	assert.Equal(t, "Somchai Jaidee", cols[2])
	assert.Equal(t, "somchai@example.com", cols[3])
	assert.Equal(t, "Mali", cols[9])
	assert.Equal(t, "7", cols[10])
	assert.Equal(t, "2", cols[14], "adventure count")
	assert.Equal(t, "2025-03-14-09-26-53-589-123", cols[16])
}

func TestFlattenAdventuresCell(t *testing.T) {
	row, err := Flatten(sampleOrder())
	assert.NoError(t, err)

	// The nested list survives as one JSON cell.
	var adventures []models.Adventure
	assert.NoError(t, json.Unmarshal([]byte(row.AdventuresJSON), &adventures))
	assert.Len(t, adventures, 2)
	assert.Equal(t, "Space", adventures[0].Title)
	assert.Equal(t, []string{"launch", "moonwalk"}, adventures[0].Activities)
}

func TestFlattenEmptyAdventures(t *testing.T) {
	order := sampleOrder()
	order.Adventures = nil

	row, err := Flatten(order)
	assert.NoError(t, err)
	assert.Equal(t, "0", row.AdventureCount)
	assert.Equal(t, "null", row.AdventuresJSON)
}
