package handlers

import (
	"net/http"

	"suite46-pickup/menu"
	"suite46-pickup/middleware"
	"suite46-pickup/statemachine"

	"github.com/gin-gonic/gin"
)

func (s *Storefront) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": s.cfg.StoreName + " pickup ordering",
	})
}

// GetMenu returns the catalog with the pricing inputs the cart needs
func (s *Storefront) GetMenu(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"store":       s.cfg.StoreName,
		"categories":  menu.Categories(),
		"tax_rate":    s.cfg.TaxRate,
		"tip_presets": s.cfg.TipPresets,
	})
}

func (s *Storefront) GetPickupSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": len(s.slots), "slots": s.slots})
}

// GetStateMachineInfo returns the submission lifecycle for documentation
func (s *Storefront) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine": statemachine.GetAllTransitions(),
		"description":   "Order submission lifecycle for one storefront session",
	})
}

// StartSession issues a token for a new anonymous storefront session
func (s *Storefront) StartSession(c *gin.Context) {
	token, sid, err := middleware.NewSessionToken(s.cfg.SessionSecret, s.cfg.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"token":      token,
		"session_id": sid,
		"expires_in": int(s.cfg.SessionTTL.Seconds()),
	})
}
