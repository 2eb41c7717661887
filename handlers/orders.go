package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"suite46-pickup/models"
	"suite46-pickup/order"
	"suite46-pickup/pricing"
	"suite46-pickup/returnflow"
	"suite46-pickup/submission"

	"github.com/gin-gonic/gin"
)

const msgBadRequest = "Please check your order details"

type SubmitOrderRequest struct {
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Email   string         `json:"email"`
	Pickup  string         `json:"pickup"`
	Notes   string         `json:"notes"`
	PayMode models.PayMode `json:"pay_mode" binding:"omitempty,oneof=pickup prepay"`
	TipRate *float64       `json:"tip_rate"`
}

// GetForm returns the draft order form and where the session's submission stands
func (s *Storefront) GetForm(c *gin.Context) {
	sess, ok := s.currentSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"form":  sess.pipeline.Form(),
		"state": sess.pipeline.State(),
	})
}

// SubmitOrder places the order for the current cart.
// POST /api/orders
func (s *Storefront) SubmitOrder(c *gin.Context) {
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
		return
	}

	sess, ok := s.currentSession(c)
	if !ok {
		return
	}

	form := submission.Form{
		Customer: order.Customer{
			Name:   req.Name,
			Phone:  req.Phone,
			Email:  req.Email,
			Pickup: req.Pickup,
			Notes:  req.Notes,
		},
		PayMode: req.PayMode,
		TipRate: sess.pipeline.Form().TipRate,
	}
	if form.PayMode == "" {
		form.PayMode = models.PayAtPickup
	}
	if req.TipRate != nil {
		form.TipRate = *req.TipRate
	}

	// A dropped connection must not abandon an order halfway through intake;
	// the pipeline's own timeout still bounds the attempt.
	out, err := sess.pipeline.Submit(context.WithoutCancel(c.Request.Context()), form)
	if err != nil {
		var ve *submission.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		case errors.Is(err, submission.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": submission.MsgInFlight})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusBadGateway, gin.H{
				"error": submission.UserMessage(err),
				"state": sess.pipeline.State(),
			})
		}
		return
	}

	if out.State == models.SubmissionRedirected {
		c.JSON(http.StatusOK, gin.H{
			"order_id":     out.OrderID,
			"state":        out.State,
			"redirect_url": out.RedirectURL,
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  submission.MsgPlaced,
		"order_id": out.OrderID,
		"state":    out.State,
		"order":    out.Record,
	})
}

// GetLocalOrders returns the orders kept in this session's local log
func (s *Storefront) GetLocalOrders(c *gin.Context) {
	sess, ok := s.currentSession(c)
	if !ok {
		return
	}
	orders, err := order.LocalOrders(sess.kv)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

type returnResponse struct {
	returnflow.View
	TotalDisplay string `json:"total_display,omitempty"`
	MenuURL      string `json:"menu_url"`
}

// CheckoutReturn resolves the page shown when hosted checkout sends the
// customer back.
// GET /api/checkout/return?paid=success&order_id=...
func (s *Storefront) CheckoutReturn(c *gin.Context) {
	sess, ok := s.currentSession(c)
	if !ok {
		return
	}

	query := c.Request.URL.Query()
	view := returnflow.Resolve(query, order.LoadLast(sess.kv))

	resp := returnResponse{View: view}
	if view.Itemized {
		resp.TotalDisplay = pricing.FormatUSD(view.Total)
	}

	origin, err := url.Parse(s.cfg.PublicOrigin)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bad public origin"})
		return
	}
	origin.RawQuery = c.Request.URL.RawQuery
	resp.MenuURL = returnflow.MenuURL(origin)

	c.JSON(http.StatusOK, resp)
}
