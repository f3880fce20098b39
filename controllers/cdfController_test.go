package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindAllocationInput(t *testing.T, payload string) (createAllocationInput, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/admin/cdf/allocations", strings.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	var input createAllocationInput
	err := c.ShouldBindJSON(&input)
	return input, err
}

func TestCreateAllocationInputAcceptsZeroAmount(t *testing.T) {
	input, err := bindAllocationInput(t, `{
		"financial_year": "2023/2024",
		"amount_allocated": 0,
		"status": "Pending"
	}`)
	require.NoError(t, err)
	require.NotNil(t, input.AmountAllocated)
	assert.Equal(t, 0.0, *input.AmountAllocated)
}

func TestCreateAllocationInputRejectsMissingAmount(t *testing.T) {
	_, err := bindAllocationInput(t, `{
		"financial_year": "2023/2024",
		"status": "Pending"
	}`)
	assert.Error(t, err)
}
