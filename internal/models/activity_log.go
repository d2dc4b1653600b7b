package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityLog records an admin action for audit purposes
type ActivityLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"userId"`
	Username  string             `bson:"username" json:"username"`
	Action    string             `bson:"action" json:"action"`
	Entity    string             `bson:"entity" json:"entity"`
	EntityID  string             `bson:"entity_id,omitempty" json:"entityId,omitempty"`
	Method    string             `bson:"method" json:"method"`
	Path      string             `bson:"path" json:"path"`
	ClientIP  string             `bson:"client_ip" json:"clientIp"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
