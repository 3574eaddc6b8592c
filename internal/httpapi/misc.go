package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (a *API) welcome(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to budgetapp")
}

// createTestEntry is a diagnostic echo endpoint for smoke testing the stack.
func (a *API) createTestEntry(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	entry, err := a.store.CreateTestEntry(text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
