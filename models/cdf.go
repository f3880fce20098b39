package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CDFAllocation records a financial-year allocation of constituency
// development funds and how much of it has been disbursed
type CDFAllocation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FinancialYear   string             `bson:"financial_year" json:"financial_year"`
	AmountAllocated float64            `bson:"amount_allocated" json:"amount_allocated"`
	AmountDisbursed float64            `bson:"amount_disbursed" json:"amount_disbursed"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}

// CDFProject is a development project funded from an allocation
type CDFProject struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Description   *string            `bson:"description" json:"description"`
	Sector        string             `bson:"sector" json:"sector"`
	FinancialYear *string            `bson:"financial_year" json:"financial_year"`
	Amount        *float64           `bson:"amount" json:"amount"`
	Status        string             `bson:"status" json:"status"`
	Location      *string            `bson:"location" json:"location"`
	ImageURL      *string            `bson:"image_url" json:"image_url"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}
