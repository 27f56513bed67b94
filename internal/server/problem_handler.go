package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuentaconmigo/conmigo/internal/adaptive"
	"github.com/cuentaconmigo/conmigo/internal/problemgen"
	"github.com/cuentaconmigo/conmigo/internal/store"
)

// ProblemHandler serves adaptively generated problems and records
// answer attempts.
type ProblemHandler struct {
	Adaptive  *adaptive.Service
	Generator *problemgen.Generator
	Attempts  store.AttemptRepo
}

// Next generates a problem at the tier the user's recent history calls
// for. An optional operation query pins the operation; otherwise one is
// chosen at random. A difficulty query overrides the adaptive tier.
func (h *ProblemHandler) Next(c *gin.Context) {
	userID := currentUserID(c)

	difficulty := problemgen.Difficulty(c.Query("difficulty"))
	if difficulty == "" {
		target, err := h.Adaptive.Target(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute difficulty"})
			return
		}
		difficulty = target
	}

	problem, err := h.Generator.Generate(difficulty, problemgen.Operation(c.Query("operation")))
	switch {
	case errors.Is(err, problemgen.ErrInvalidDifficulty), errors.Is(err, problemgen.ErrInvalidOperation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate problem"})
	default:
		c.JSON(http.StatusOK, gin.H{"problem": problem, "text": problem.Text()})
	}
}

// RecordAttempt stores an answered problem for the success-rate window.
func (h *ProblemHandler) RecordAttempt(c *gin.Context) {
	userID := currentUserID(c)

	var req struct {
		Operation  string `json:"operation" binding:"required"`
		Difficulty string `json:"difficulty" binding:"required"`
		Operand1   int    `json:"operand1"`
		Operand2   int    `json:"operand2"`
		Given      int    `json:"given"`
		Answer     int    `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	if !problemgen.Operation(req.Operation).Valid() || !problemgen.Difficulty(req.Difficulty).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown operation or difficulty"})
		return
	}

	rec := store.AttemptRecord{
		UserID:     userID,
		Operation:  req.Operation,
		Difficulty: req.Difficulty,
		Operand1:   req.Operand1,
		Operand2:   req.Operand2,
		Given:      req.Given,
		Answer:     req.Answer,
		IsCorrect:  req.Given == req.Answer,
	}
	if err := h.Attempts.Append(c.Request.Context(), rec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record attempt"})
		return
	}

	rate, err := h.Adaptive.SuccessRate(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute success rate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"is_correct": rec.IsCorrect, "success_rate": rate})
}
