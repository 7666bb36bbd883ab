package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NavLink is one entry of the site navbar, managed as content.
type NavLink struct {
	Label string `bson:"label" json:"label"`
	Href  string `bson:"href" json:"href"`
	Order int    `bson:"order" json:"order"`
}

// SiteContent holds the content-managed pieces of the marketing pages.
// There is a single document per site; the repository seeds defaults
// when none exists.
type SiteContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SiteName  string             `bson:"siteName" json:"siteName"`
	Navbar    []NavLink          `bson:"navbar" json:"navbar"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
