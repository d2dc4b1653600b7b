package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Opportunity types
const (
	TypeInternship = "internship"
	TypeJob        = "job"
	TypeHackathon  = "hackathon"
)

// Opportunity statuses
const (
	OpportunityStatusActive = "active"
	OpportunityStatusClosed = "closed"
)

// ValidOpportunityType reports whether t is one of the enumerated kinds
func ValidOpportunityType(t string) bool {
	return t == TypeInternship || t == TypeJob || t == TypeHackathon
}

// Opportunity represents a listed internship, job or hackathon posting
type Opportunity struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Type          string             `bson:"type" json:"type"`
	Link          string             `bson:"link" json:"link"`
	Company       string             `bson:"company,omitempty" json:"company,omitempty"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Deadline      *time.Time         `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Status        string             `bson:"status" json:"status"`
	IsPaid        bool               `bson:"is_paid" json:"isPaid"`
	PaymentAmount float64            `bson:"payment_amount,omitempty" json:"paymentAmount,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
}

// OpportunityRequest is the payload for creating an opportunity
type OpportunityRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description" binding:"required"`
	Type          string     `json:"type" binding:"required"`
	Link          string     `json:"link" binding:"required"`
	Company       string     `json:"company"`
	Location      string     `json:"location"`
	Deadline      *time.Time `json:"deadline"`
	IsPaid        bool       `json:"isPaid"`
	PaymentAmount string     `json:"paymentAmount"`
}

// OpportunityUpdate is the payload for a partial update. Nil fields are
// left untouched.
type OpportunityUpdate struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Type          *string    `json:"type"`
	Link          *string    `json:"link"`
	Company       *string    `json:"company"`
	Location      *string    `json:"location"`
	Deadline      *time.Time `json:"deadline"`
	Status        *string    `json:"status"`
	IsPaid        *bool      `json:"isPaid"`
	PaymentAmount *string    `json:"paymentAmount"`
}
