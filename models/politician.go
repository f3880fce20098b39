package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Politician is the single profile row behind the public site
type Politician struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Title       string             `bson:"title" json:"title"`
	Bio         string             `bson:"bio" json:"bio"`
	Photo       string             `bson:"photo" json:"photo"`
	Email       string             `bson:"email" json:"email"`
	Phone       string             `bson:"phone" json:"phone"`
	SocialLinks map[string]string  `bson:"social_links" json:"social_links"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
