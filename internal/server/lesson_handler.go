package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cuentaconmigo/conmigo/internal/lessons"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

// LessonHandler serves catalog CRUD.
type LessonHandler struct {
	Service *lessons.Service
}

type lessonRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category" binding:"required"`
	Difficulty  string         `json:"difficulty" binding:"required"`
	Points      int            `json:"points"`
	Content     map[string]any `json:"content"`
	Position    int            `json:"position"`
}

func (r *lessonRequest) record(id int) *store.LessonRecord {
	return &store.LessonRecord{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Difficulty:  r.Difficulty,
		Points:      r.Points,
		Content:     r.Content,
		Position:    r.Position,
	}
}

// List returns the full catalog.
func (h *LessonHandler) List(c *gin.Context) {
	list, err := h.Service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list lessons"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lessons": list})
}

// Get returns one lesson.
func (h *LessonHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson id"})
		return
	}

	lesson, err := h.Service.ByID(c.Request.Context(), id)
	switch {
	case errors.Is(err, lessons.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load lesson"})
	default:
		c.JSON(http.StatusOK, lesson)
	}
}

// Create adds a lesson to the catalog.
func (h *LessonHandler) Create(c *gin.Context) {
	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), req.record(0))
	switch {
	case errors.Is(err, lessons.ErrInvalidLesson):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lesson"})
	default:
		c.JSON(http.StatusCreated, created)
	}
}

// Update replaces an existing lesson.
func (h *LessonHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson id"})
		return
	}

	var req lessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), req.record(id))
	switch {
	case errors.Is(err, lessons.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lesson not found"})
	case errors.Is(err, lessons.ErrInvalidLesson):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lesson"})
	default:
		c.JSON(http.StatusOK, updated)
	}
}

// Delete removes a lesson.
func (h *LessonHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lesson id"})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lesson"})
		return
	}
	c.Status(http.StatusNoContent)
}
