package routes

import (
	"suite46-pickup/handlers"
	"suite46-pickup/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Storefront, secret []byte) {
	r.GET("/health", h.Health)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/menu", h.GetMenu)
		public.GET("/pickup-slots", h.GetPickupSlots)
		public.GET("/state-machine", h.GetStateMachineInfo)
		public.POST("/session", h.StartSession)
	}

	// ── Session routes ─────────────────────────────────────────────
	sess := r.Group("/api")
	sess.Use(middleware.SessionRequired(secret))
	{
		cart := sess.Group("/cart")
		{
			cart.GET("", h.GetCart)
			cart.DELETE("", h.ClearCart)
			cart.POST("/items/:id", h.AddCartItem)
			cart.DELETE("/items/:id", h.DecrementCartItem)
		}

		sess.GET("/form", h.GetForm)

		orders := sess.Group("/orders")
		{
			orders.POST("", h.SubmitOrder)
			orders.GET("/local", h.GetLocalOrders)
		}

		sess.GET("/checkout/return", h.CheckoutReturn)
	}
}
