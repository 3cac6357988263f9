package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	DB "Backend-Adventura-001/src/database"
	"Backend-Adventura-001/src/models"
	"Backend-Adventura-001/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// NextOrderID reserves the next human-facing order id. The counter lives in
// its own document and is advanced with an atomic $inc, so concurrent
// checkouts cannot be handed the same id.
func NextOrderID(ctx context.Context) (string, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	res := DB.CounterCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": "orders"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	if err := res.Decode(&counter); err != nil {
		return "", err
	}
	return fmt.Sprintf("ORD-%05d", counter.Seq), nil
}

// Flatten maps a nested order into the fixed column layout of the order
// sheet. The adventures list is serialized into a single JSON cell.
func Flatten(order *models.BookOrder) (*models.OrderRow, error) {
	adventures, err := json.Marshal(order.Adventures)
	if err != nil {
		return nil, err
	}

	createdAt := order.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &models.OrderRow{
		OrderID:        order.OrderID,
		CreatedAt:      createdAt.Format(time.RFC3339),
		ParentName:     order.ParentName,
		Email:          order.Email,
		Phone:          order.Phone,
		Address:        order.Address,
		City:           order.City,
		PostalCode:     order.PostalCode,
		Country:        order.Country,
		ChildName:      order.ChildName,
		ChildAge:       strconv.Itoa(order.ChildAge),
		ChildGender:    order.ChildGender,
		BookTitle:      order.BookTitle,
		Dedication:     order.Dedication,
		AdventureCount: strconv.Itoa(len(order.Adventures)),
		AdventuresJSON: string(adventures),
		SessionID:      order.SessionID,
	}, nil
}

// CreateOrder validates and records a completed order: the structured
// document plus the flattened sheet row.
func CreateOrder(ctx context.Context, order *models.BookOrder) (*models.BookOrder, error) {
	if err := validate.Struct(order); err != nil {
		return nil, err
	}
	// Phone is optional, but a present value must look like a number.
	if order.Phone != "" && !utils.IsValidPhone(order.Phone) {
		return nil, errors.New("invalid phone number")
	}

	orderID, err := NextOrderID(ctx)
	if err != nil {
		return nil, err
	}

	order.ID = primitive.NewObjectID()
	order.OrderID = orderID
	order.CreatedAt = time.Now()

	if _, err := DB.OrderCollection.InsertOne(ctx, order); err != nil {
		return nil, err
	}

	row, err := Flatten(order)
	if err != nil {
		return nil, err
	}
	if _, err := DB.OrderRowCollection.InsertOne(ctx, row); err != nil {
		return nil, err
	}

	log.Printf("[orders] recorded orderId=%s child=%s adventures=%d",
		order.OrderID, order.ChildName, len(order.Adventures))

	return order, nil
}

// GetOrderByID fetches one order by its human-facing id.
func GetOrderByID(ctx context.Context, orderID string) (*models.BookOrder, error) {
	var order models.BookOrder
	err := DB.OrderCollection.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("order not found")
		}
		return nil, err
	}
	return &order, nil
}

// GetAllOrders lists orders for the admin dashboard, newest first by
// default.
func GetAllOrders(ctx context.Context, params models.PaginationParams) (*models.PaginatedResponse, error) {
	filter := bson.M{}
	if params.Search != "" {
		filter["$or"] = []bson.M{
			{"orderId": bson.M{"$regex": params.Search, "$options": "i"}},
			{"email": bson.M{"$regex": params.Search, "$options": "i"}},
			{"childName": bson.M{"$regex": params.Search, "$options": "i"}},
		}
	}

	total, err := DB.OrderCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	findOpts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(params.GetSortOrder())

	cursor, err := DB.OrderCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.BookOrder
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	return models.NewPaginatedResponse(results, total, params), nil
}
