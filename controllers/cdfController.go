package controllers

import (
	"context"
	"net/http"
	"time"

	"ainamoi-portal-be/config"
	"ainamoi-portal-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetCDFAllocations returns all fund allocations, newest financial year first
func GetCDFAllocations(c *gin.Context) {
	collection := config.GetCollection("cdf_allocations")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "financial_year", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve allocations"})
		return
	}
	defer cursor.Close(ctx)

	allocations := []models.CDFAllocation{}
	if err := cursor.All(ctx, &allocations); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode allocations"})
		return
	}

	c.JSON(http.StatusOK, allocations)
}

// CreateCDFAllocation inserts a new allocation row
// createAllocationInput keeps amount_allocated a pointer so a legitimate
// zero-shilling allocation still satisfies the required binding
type createAllocationInput struct {
	FinancialYear   string   `json:"financial_year" binding:"required"`
	AmountAllocated *float64 `json:"amount_allocated" binding:"required"`
	AmountDisbursed float64  `json:"amount_disbursed"`
	Status          string   `json:"status" binding:"required"`
}

func CreateCDFAllocation(c *gin.Context) {
	var input createAllocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	allocation := models.CDFAllocation{
		ID:              primitive.NewObjectID(),
		FinancialYear:   input.FinancialYear,
		AmountAllocated: *input.AmountAllocated,
		AmountDisbursed: input.AmountDisbursed,
		Status:          input.Status,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	collection := config.GetCollection("cdf_allocations")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := collection.InsertOne(ctx, allocation); err != nil {
		config.Log.WithError(err).Error("failed to insert allocation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create allocation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": allocation.ID.Hex()})
}

// UpdateCDFAllocation applies partial updates to an allocation
func UpdateCDFAllocation(c *gin.Context) {
	allocationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}

	var input struct {
		FinancialYear   *string  `json:"financial_year,omitempty"`
		AmountAllocated *float64 `json:"amount_allocated,omitempty"`
		AmountDisbursed *float64 `json:"amount_disbursed,omitempty"`
		Status          *string  `json:"status,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.FinancialYear != nil {
		update["financial_year"] = *input.FinancialYear
	}
	if input.AmountAllocated != nil {
		update["amount_allocated"] = *input.AmountAllocated
	}
	if input.AmountDisbursed != nil {
		update["amount_disbursed"] = *input.AmountDisbursed
	}
	if input.Status != nil {
		update["status"] = *input.Status
	}

	collection := config.GetCollection("cdf_allocations")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": allocationID}, bson.M{"$set": update})
	if err != nil {
		config.Log.WithError(err).Error("failed to update allocation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update allocation"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Allocation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteCDFAllocation removes an allocation
func DeleteCDFAllocation(c *gin.Context) {
	allocationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allocation ID"})
		return
	}

	collection := config.GetCollection("cdf_allocations")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": allocationID})
	if err != nil {
		config.Log.WithError(err).Error("failed to delete allocation")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete allocation"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Allocation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCDFProjects returns all development projects, newest first
func GetCDFProjects(c *gin.Context) {
	collection := config.GetCollection("cdf_projects")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}
	defer cursor.Close(ctx)

	projects := []models.CDFProject{}
	if err := cursor.All(ctx, &projects); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode projects"})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateCDFProject inserts a new project
func CreateCDFProject(c *gin.Context) {
	var input struct {
		Title         string   `json:"title" binding:"required"`
		Description   *string  `json:"description,omitempty"`
		Sector        string   `json:"sector" binding:"required"`
		FinancialYear *string  `json:"financial_year,omitempty"`
		Amount        *float64 `json:"amount,omitempty"`
		Status        string   `json:"status" binding:"required"`
		Location      *string  `json:"location,omitempty"`
		ImageURL      *string  `json:"image_url,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := models.CDFProject{
		ID:            primitive.NewObjectID(),
		Title:         input.Title,
		Description:   input.Description,
		Sector:        input.Sector,
		FinancialYear: input.FinancialYear,
		Amount:        input.Amount,
		Status:        input.Status,
		Location:      input.Location,
		ImageURL:      input.ImageURL,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	collection := config.GetCollection("cdf_projects")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := collection.InsertOne(ctx, project); err != nil {
		config.Log.WithError(err).Error("failed to insert project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": project.ID.Hex()})
}

// UpdateCDFProject applies partial updates to a project
func UpdateCDFProject(c *gin.Context) {
	projectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var input struct {
		Title         *string  `json:"title,omitempty"`
		Description   *string  `json:"description,omitempty"`
		Sector        *string  `json:"sector,omitempty"`
		FinancialYear *string  `json:"financial_year,omitempty"`
		Amount        *float64 `json:"amount,omitempty"`
		Status        *string  `json:"status,omitempty"`
		Location      *string  `json:"location,omitempty"`
		ImageURL      *string  `json:"image_url,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.Sector != nil {
		update["sector"] = *input.Sector
	}
	if input.FinancialYear != nil {
		update["financial_year"] = *input.FinancialYear
	}
	if input.Amount != nil {
		update["amount"] = *input.Amount
	}
	if input.Status != nil {
		update["status"] = *input.Status
	}
	if input.Location != nil {
		update["location"] = *input.Location
	}
	if input.ImageURL != nil {
		update["image_url"] = *input.ImageURL
	}

	collection := config.GetCollection("cdf_projects")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := collection.UpdateOne(ctx, bson.M{"_id": projectID}, bson.M{"$set": update})
	if err != nil {
		config.Log.WithError(err).Error("failed to update project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteCDFProject removes a project
func DeleteCDFProject(c *gin.Context) {
	projectID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	collection := config.GetCollection("cdf_projects")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := collection.DeleteOne(ctx, bson.M{"_id": projectID})
	if err != nil {
		config.Log.WithError(err).Error("failed to delete project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
