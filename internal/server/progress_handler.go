package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuentaconmigo/conmigo/internal/achievements"
	"github.com/cuentaconmigo/conmigo/internal/progress"
)

// ProgressHandler serves progress snapshots, completions and the
// achievement catalog.
type ProgressHandler struct {
	Service *progress.Service
}

// Get returns the user's snapshot, defaults included.
func (h *ProgressHandler) Get(c *gin.Context) {
	snap, err := h.Service.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Complete applies a lesson completion.
func (h *ProgressHandler) Complete(c *gin.Context) {
	var req struct {
		LessonID int  `json:"lesson_id" binding:"required"`
		Score    *int `json:"score" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	snap, unlocked, err := h.Service.Complete(c.Request.Context(), currentUserID(c), req.LessonID, *req.Score)
	switch {
	case errors.Is(err, progress.ErrInvalidScore):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be non-negative"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update progress"})
	default:
		c.JSON(http.StatusOK, gin.H{"progress": snap, "new_achievements": unlocked})
	}
}

// Reset restores the default snapshot.
func (h *ProgressHandler) Reset(c *gin.Context) {
	snap, err := h.Service.Reset(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset progress"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Achievements returns the catalog with per-user unlock state.
func (h *ProgressHandler) Achievements(c *gin.Context) {
	snap, err := h.Service.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load progress"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": achievements.WithStatus(snap)})
}
