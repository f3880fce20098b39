package controllers

import (
	"errors"
	"net/http"

	"ainamoi-portal-be/repository"
	"ainamoi-portal-be/services"

	"github.com/gin-gonic/gin"
)

var issueService *services.IssueService

// InitIssueController wires the issue workflow service
func InitIssueController(svc *services.IssueService) {
	issueService = svc
}

// SubmitIssue handles a citizen report from the public submission form.
// Binding rejects short titles/descriptions before any store call; status
// and priority are server-assigned regardless of what the client sent.
func SubmitIssue(c *gin.Context) {
	var input services.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	issue, err := issueService.Submit(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCategory),
			errors.Is(err, services.ErrInvalidWard),
			errors.Is(err, services.ErrUnpairedLocation):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit issue"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": issue.ID.Hex()})
}

// GetIssues returns all reports for the moderation dashboard, newest first
func GetIssues(c *gin.Context) {
	issues, err := issueService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": issues})
}

// UpdateIssueStatus overwrites the triage stage of one report
func UpdateIssueStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	err := issueService.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, services.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status"})
	case errors.Is(err, repository.ErrIssueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Issue not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update issue"})
	}
}

// UpdateIssuePriority overwrites the severity of one report
func UpdateIssuePriority(c *gin.Context) {
	var input struct {
		Priority string `json:"priority" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	err := issueService.UpdatePriority(c.Request.Context(), c.Param("id"), input.Priority)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case errors.Is(err, services.ErrInvalidPriority):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid priority"})
	case errors.Is(err, repository.ErrIssueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Issue not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update issue"})
	}
}
