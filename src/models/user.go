package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User เจ้าหน้าที่ฝั่ง backoffice
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password,omitempty" json:"-"` // accepted from the client, never returned
	Role     string             `bson:"role" json:"role"`
	Name     string             `bson:"name,omitempty" json:"name"`
}
