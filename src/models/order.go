package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Adventure is one repeatable "experience" block of the book-creation form.
type Adventure struct {
	Title            string   `json:"title" bson:"title"`
	Activities       []string `json:"activities,omitempty" bson:"activities,omitempty"`
	ImageDescription string   `json:"imageDescription,omitempty" bson:"imageDescription,omitempty"`
}

// BookOrder is a completed personalized-book order as submitted by the
// client at checkout.
type BookOrder struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderID string             `bson:"orderId,omitempty" json:"orderId,omitempty"` // human-facing, e.g. ORD-00042

	ParentName string `bson:"parentName" json:"parentName" validate:"required"`
	Email      string `bson:"email" json:"email" validate:"required,email"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string `bson:"address,omitempty" json:"address,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`

	ChildName   string `bson:"childName" json:"childName" validate:"required"`
	ChildAge    int    `bson:"childAge,omitempty" json:"childAge,omitempty" validate:"omitempty,gte=0,lte=18"`
	ChildGender string `bson:"childGender,omitempty" json:"childGender,omitempty"`

	BookTitle  string      `bson:"bookTitle,omitempty" json:"bookTitle,omitempty"`
	Dedication string      `bson:"dedication,omitempty" json:"dedication,omitempty"`
	Adventures []Adventure `bson:"adventures,omitempty" json:"adventures,omitempty"`

	SessionID string    `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// OrderRow is the flattened record appended to the order sheet. Column order
// is fixed; the adventures list is serialized as one JSON cell.
type OrderRow struct {
	OrderID        string `bson:"orderId" json:"orderId"`
	CreatedAt      string `bson:"createdAt" json:"createdAt"`
	ParentName     string `bson:"parentName" json:"parentName"`
	Email          string `bson:"email" json:"email"`
	Phone          string `bson:"phone" json:"phone"`
	Address        string `bson:"address" json:"address"`
	City           string `bson:"city" json:"city"`
	PostalCode     string `bson:"postalCode" json:"postalCode"`
	Country        string `bson:"country" json:"country"`
	ChildName      string `bson:"childName" json:"childName"`
	ChildAge       string `bson:"childAge" json:"childAge"`
	ChildGender    string `bson:"childGender" json:"childGender"`
	BookTitle      string `bson:"bookTitle" json:"bookTitle"`
	Dedication     string `bson:"dedication" json:"dedication"`
	AdventureCount string `bson:"adventureCount" json:"adventureCount"`
	AdventuresJSON string `bson:"adventuresJson" json:"adventuresJson"`
	SessionID      string `bson:"sessionId" json:"sessionId"`
}

// Columns returns the cells in the exact order the order sheet expects.
func (r *OrderRow) Columns() []string {
	return []string{
		r.OrderID,
		r.CreatedAt,
		r.ParentName,
		r.Email,
		r.Phone,
		r.Address,
		r.City,
		r.PostalCode,
		r.Country,
		r.ChildName,
		r.ChildAge,
		r.ChildGender,
		r.BookTitle,
		r.Dedication,
		r.AdventureCount,
		r.AdventuresJSON,
		r.SessionID,
	}
}
