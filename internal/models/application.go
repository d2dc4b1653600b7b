package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application statuses. Accepted and rejected are terminal.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusAccepted = "accepted"
	ApplicationStatusRejected = "rejected"
)

// Bulk actions
const (
	BulkActionApprove = "approve"
	BulkActionReject  = "reject"
	BulkActionDelete  = "delete"
)

// Application represents a candidate submission against one opportunity.
// Resume holds the generated filename inside the uploads directory, never a
// caller-supplied path.
type Application struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OpportunityID   primitive.ObjectID `bson:"opportunity_id" json:"opportunityId"`
	OpportunityType string             `bson:"opportunity_type" json:"opportunityType"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone" json:"phone"`
	Resume          string             `bson:"resume" json:"resume"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
}

// BulkActionRequest is the payload for a batched moderation operation
type BulkActionRequest struct {
	IDs    []string `json:"ids" binding:"required"`
	Action string   `json:"action" binding:"required"`
}

// BulkActionResult reports per-id outcomes of a bulk action. Failures never
// abort the rest of the batch.
type BulkActionResult struct {
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed,omitempty"`
}
