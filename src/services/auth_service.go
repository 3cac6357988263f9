package services

import (
	"context"
	"errors"
	"strings"

	DB "Backend-Adventura-001/src/database"
	"Backend-Adventura-001/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser checks backoffice credentials against the users
// collection.
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	var dbUser models.User
	err := DB.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid email or password")
	}

	return &models.User{
		ID:    dbUser.ID,
		Name:  dbUser.Name,
		Email: dbUser.Email,
		Role:  dbUser.Role,
	}, nil
}

// FindUserByID loads a backoffice account by its hex object id.
func FindUserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid user id")
	}

	var user models.User
	if err := DB.UserCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		return nil, errors.New("user not found")
	}
	user.Password = ""
	return &user, nil
}

// CreateUser registers a backoffice account with a bcrypt-hashed password.
func CreateUser(ctx context.Context, user *models.User) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Email = strings.ToLower(user.Email)
	user.Password = string(hash)
	if user.Role == "" {
		user.Role = "Admin"
	}

	count, err := DB.UserCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("email already registered")
	}

	_, err = DB.UserCollection.InsertOne(ctx, user)
	return err
}
