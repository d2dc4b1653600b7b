package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockTest represents a practice test listed on the public site
type MockTest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Link        string             `bson:"link" json:"link"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
}

// MockTestRequest is the payload for creating a mock test
type MockTestRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Link        string `json:"link" binding:"required"`
}
