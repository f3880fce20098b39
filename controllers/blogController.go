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

// GetBlogPosts returns all posts, newest date first
func GetBlogPosts(c *gin.Context) {
	blogCollection := config.GetCollection("blog_posts")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := blogCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve posts"})
		return
	}
	defer cursor.Close(ctx)

	posts := []models.BlogPost{}
	if err := cursor.All(ctx, &posts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// CreateBlogPost inserts a new post
func CreateBlogPost(c *gin.Context) {
	var input struct {
		Slug     string   `json:"slug" binding:"required"`
		Title    string   `json:"title" binding:"required"`
		Date     string   `json:"date" binding:"required"`
		Excerpt  string   `json:"excerpt"`
		Content  string   `json:"content"`
		Images   []string `json:"images"`
		Captions []string `json:"captions"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.BlogPost{
		ID:        primitive.NewObjectID(),
		Slug:      input.Slug,
		Title:     input.Title,
		Date:      input.Date,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Images:    input.Images,
		Captions:  input.Captions,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	blogCollection := config.GetCollection("blog_posts")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := blogCollection.InsertOne(ctx, post); err != nil {
		config.Log.WithError(err).Error("failed to insert blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": post.ID.Hex()})
}

// UpdateBlogPost applies partial updates to a post
func UpdateBlogPost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	var input struct {
		Slug     *string   `json:"slug,omitempty"`
		Title    *string   `json:"title,omitempty"`
		Date     *string   `json:"date,omitempty"`
		Excerpt  *string   `json:"excerpt,omitempty"`
		Content  *string   `json:"content,omitempty"`
		Images   *[]string `json:"images,omitempty"`
		Captions *[]string `json:"captions,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Slug != nil {
		update["slug"] = *input.Slug
	}
	if input.Title != nil {
		update["title"] = *input.Title
	}
	if input.Date != nil {
		update["date"] = *input.Date
	}
	if input.Excerpt != nil {
		update["excerpt"] = *input.Excerpt
	}
	if input.Content != nil {
		update["content"] = *input.Content
	}
	if input.Images != nil {
		update["images"] = *input.Images
	}
	if input.Captions != nil {
		update["captions"] = *input.Captions
	}

	blogCollection := config.GetCollection("blog_posts")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := blogCollection.UpdateOne(ctx, bson.M{"_id": postID}, bson.M{"$set": update})
	if err != nil {
		config.Log.WithError(err).Error("failed to update blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteBlogPost removes a post
func DeleteBlogPost(c *gin.Context) {
	postID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID"})
		return
	}

	blogCollection := config.GetCollection("blog_posts")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := blogCollection.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		config.Log.WithError(err).Error("failed to delete blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
