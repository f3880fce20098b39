package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueCategory enum
type IssueCategory string

const (
	Roads     IssueCategory = "Roads"
	Water     IssueCategory = "Water"
	Education IssueCategory = "Education"
	Health    IssueCategory = "Health"
	Security  IssueCategory = "Security"
	Other     IssueCategory = "Other"
)

// IssueStatus enum. Staff may overwrite with any member; there is no
// enforced progression between stages.
type IssueStatus string

const (
	Received    IssueStatus = "Received"
	UnderReview IssueStatus = "Under Review"
	Forwarded   IssueStatus = "Forwarded"
	Resolved    IssueStatus = "Resolved"
)

// IssuePriority enum
type IssuePriority string

const (
	PriorityNormal   IssuePriority = "Normal"
	PriorityHigh     IssuePriority = "High"
	PriorityCritical IssuePriority = "Critical"
)

// Wards are the six administrative subdivisions of the constituency
var Wards = []string{
	"Kapsoit",
	"Ainamoi",
	"Kapkugerwet",
	"Kipchebor",
	"Kipchimchim",
	"Kapsaos",
}

// ValidCategory reports whether s is a member of the category enum
func ValidCategory(s string) bool {
	switch IssueCategory(s) {
	case Roads, Water, Education, Health, Security, Other:
		return true
	}
	return false
}

// ValidStatus reports whether s is a member of the status enum
func ValidStatus(s string) bool {
	switch IssueStatus(s) {
	case Received, UnderReview, Forwarded, Resolved:
		return true
	}
	return false
}

// ValidPriority reports whether s is a member of the priority enum
func ValidPriority(s string) bool {
	switch IssuePriority(s) {
	case PriorityNormal, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ValidWard reports whether s is one of the six wards
func ValidWard(s string) bool {
	for _, w := range Wards {
		if w == s {
			return true
		}
	}
	return false
}

// Issue represents a citizen-reported problem subject to staff triage.
// Everything except Status and Priority is immutable after submission.
type Issue struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   string             `bson:"description" json:"description"`
	Category      IssueCategory      `bson:"category" json:"category"`
	Ward          string             `bson:"ward" json:"ward"`
	ReporterName  string             `bson:"reporter_name" json:"reporter_name"`
	ReporterPhone *string            `bson:"reporter_phone" json:"reporter_phone"`
	LocationLat   *float64           `bson:"location_lat" json:"location_lat"`
	LocationLng   *float64           `bson:"location_lng" json:"location_lng"`
	ImageURL      *string            `bson:"image_url" json:"image_url"`
	Status        IssueStatus        `bson:"status" json:"status"`
	Priority      IssuePriority      `bson:"priority" json:"priority"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
