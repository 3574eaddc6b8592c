package httpapi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"budgetapp/internal/store"

	"github.com/gin-gonic/gin"
)

// parseDate accepts a plain calendar date and falls back to RFC3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// parseOperationID turns the :id path parameter into a numeric id. Anything
// that does not parse is treated the same as a nonexistent record.
func parseOperationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (a *API) createOperation(c *gin.Context) {
	userID, _ := caller(c)
	var req struct {
		Value       *float64 `json:"value"`
		Date        *string  `json:"date"`
		Description string   `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Value == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return
	}
	if req.Date == nil || *req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	date, err := parseDate(*req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	op, err := a.store.CreateOperation(userID, *req.Value, date, strings.TrimSpace(req.Description))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, op)
}

func (a *API) listOperations(c *gin.Context) {
	userID, _ := caller(c)
	ops, err := a.store.OperationsByCreator(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, ops)
}

func (a *API) getOperation(c *gin.Context) {
	userID, _ := caller(c)
	id, ok := parseOperationID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "operation not found"})
		return
	}
	op, err := a.store.OperationByID(userID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "operation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"operation": op})
}

// updateOperation applies a partial update. The whole payload is validated
// before anything is written, so an invalid field leaves the record untouched.
func (a *API) updateOperation(c *gin.Context) {
	userID, _ := caller(c)
	id, ok := parseOperationID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "operation not found"})
		return
	}
	var req struct {
		Value       *float64 `json:"value"`
		Date        *string  `json:"date"`
		Description *string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	upd := store.OperationUpdate{Value: req.Value}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		upd.Date = &date
	}
	if req.Description != nil {
		trimmed := strings.TrimSpace(*req.Description)
		upd.Description = &trimmed
	}
	op, err := a.store.UpdateOperation(userID, id, upd)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "operation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"operation": op})
}

func (a *API) deleteOperation(c *gin.Context) {
	userID, _ := caller(c)
	id, ok := parseOperationID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "operation not found"})
		return
	}
	op, err := a.store.DeleteOperation(userID, id)
	if err != nil {
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "operation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"operation": op})
}
