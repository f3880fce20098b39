package controllers

import (
	"context"
	"net/http"
	"time"

	"ainamoi-portal-be/config"
	"ainamoi-portal-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetPolitician returns the single profile row behind the public site
func GetPolitician(c *gin.Context) {
	collection := config.GetCollection("politician")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var profile models.Politician
	err := collection.FindOne(ctx, bson.M{}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdatePolitician updates the one profile row. There is exactly one; the
// handler looks it up first rather than trusting a client-provided ID.
func UpdatePolitician(c *gin.Context) {
	var input struct {
		Name        *string            `json:"name,omitempty"`
		Title       *string            `json:"title,omitempty"`
		Bio         *string            `json:"bio,omitempty"`
		Photo       *string            `json:"photo,omitempty"`
		Email       *string            `json:"email,omitempty"`
		Phone       *string            `json:"phone,omitempty"`
		SocialLinks *map[string]string `json:"social_links,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := config.GetCollection("politician")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var current models.Politician
	if err := collection.FindOne(ctx, bson.M{}).Decode(&current); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.Bio != nil {
		update["bio"] = *input.Bio
	}
	if input.Photo != nil {
		update["photo"] = *input.Photo
	}
	if input.Email != nil {
		update["email"] = *input.Email
	}
	if input.Phone != nil {
		update["phone"] = *input.Phone
	}
	if input.SocialLinks != nil {
		update["social_links"] = *input.SocialLinks
	}

	_, err := collection.UpdateOne(ctx, bson.M{"_id": current.ID}, bson.M{"$set": update})
	if err != nil {
		config.Log.WithError(err).Error("failed to update profile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
