package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuentaconmigo/conmigo/internal/store"
)

// validFontSizes are the sizes the client knows how to render.
var validFontSizes = map[string]bool{"small": true, "medium": true, "large": true}

// SettingsHandler serves per-user accessibility settings.
type SettingsHandler struct {
	Settings store.SettingsRepo
}

// Get returns the user's settings, defaults when never saved.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.Settings.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Save replaces the user's settings.
func (h *SettingsHandler) Save(c *gin.Context) {
	var req store.AccessibilitySettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}
	if req.FontSize == "" {
		req.FontSize = "medium"
	}
	if !validFontSizes[req.FontSize] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown font size"})
		return
	}

	if err := h.Settings.Save(c.Request.Context(), currentUserID(c), req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, req)
}
