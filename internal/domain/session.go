package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session represents one scheduled training session belonging to a client.
// Only the calendar date of Date is meaningful. Time-of-day is always
// midnight UTC (normalized on write) and carries no information.
type Session struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OwnerID     primitive.ObjectID `bson:"ownerId" json:"ownerId"` // The client this session belongs to
	Date        time.Time          `bson:"date" json:"date"`
	Name        string             `bson:"name" json:"name"` // e.g. "Leg day", "5k tempo run"
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	VideoURL    string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Deleted     bool               `bson:"deleted" json:"deleted"` // Soft delete: record is retained, hidden everywhere
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// NormalizeDate truncates a session date to midnight UTC so that two
// sessions on the same calendar day always compare equal on Date.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
