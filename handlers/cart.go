package handlers

import (
	"net/http"
	"strconv"

	"suite46-pickup/menu"
	"suite46-pickup/middleware"
	"suite46-pickup/models"
	"suite46-pickup/pricing"

	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Items   []models.CartLine `json:"items"`
	Count   int               `json:"count"`
	TipRate float64           `json:"tip_rate"`
	Totals  pricing.Totals    `json:"totals"`
	Display map[string]string `json:"display"`
}

func (s *Storefront) cartView(sess *session, tipRate float64) cartResponse {
	lines := sess.cart.Lines()
	totals := pricing.Calculate(lines, s.cfg.TaxRate, tipRate)
	return cartResponse{
		Items:   lines,
		Count:   sess.cart.Count(),
		TipRate: tipRate,
		Totals:  totals,
		Display: map[string]string{
			"subtotal": pricing.FormatUSD(totals.Subtotal),
			"tax":      pricing.FormatUSD(totals.Tax),
			"tip":      pricing.FormatUSD(totals.Tip),
			"total":    pricing.FormatUSD(totals.Total),
		},
	}
}

// currentSession loads the caller's session or answers 500
func (s *Storefront) currentSession(c *gin.Context) (*session, bool) {
	sess, err := s.session(middleware.GetSessionID(c))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load your cart"})
		return nil, false
	}
	return sess, true
}

// GetCart returns lines and totals. ?tip= previews another preset; by
// default the tip from the draft form is used.
func (s *Storefront) GetCart(c *gin.Context) {
	sess, ok := s.currentSession(c)
	if !ok {
		return
	}

	tipRate := sess.pipeline.Form().TipRate
	if raw := c.Query("tip"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil || !pricing.ValidTip(s.cfg.TipPresets, rate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Tip must be one of the preset options", "tip_presets": s.cfg.TipPresets})
			return
		}
		tipRate = rate
	}
	c.JSON(http.StatusOK, s.cartView(sess, tipRate))
}

// AddCartItem adds one unit of a menu item
func (s *Storefront) AddCartItem(c *gin.Context) {
	item, found := menu.Lookup(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	sess, ok := s.currentSession(c)
	if !ok {
		return
	}
	if err := sess.cart.Add(item.ID, item.Name, item.Price); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update your cart"})
		return
	}
	c.JSON(http.StatusOK, s.cartView(sess, sess.pipeline.Form().TipRate))
}

// DecrementCartItem removes one unit; the line disappears at zero
func (s *Storefront) DecrementCartItem(c *gin.Context) {
	sess, ok := s.currentSession(c)
	if !ok {
		return
	}
	if err := sess.cart.Decrement(c.Param("id")); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update your cart"})
		return
	}
	c.JSON(http.StatusOK, s.cartView(sess, sess.pipeline.Form().TipRate))
}

func (s *Storefront) ClearCart(c *gin.Context) {
	sess, ok := s.currentSession(c)
	if !ok {
		return
	}
	if err := sess.cart.Clear(); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clear your cart"})
		return
	}
	c.JSON(http.StatusOK, s.cartView(sess, sess.pipeline.Form().TipRate))
}
