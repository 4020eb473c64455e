package handler

import (
	"errors"
	"net/http"

	"greenbasket-be/internal/cart"
	"greenbasket-be/internal/logger"
	"greenbasket-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartHandler struct {
	svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	productID, err := utils.ToInt(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.svc.AddToCart(c.Request.Context(), userID, productID); err != nil {
		switch {
		case errors.Is(err, cart.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, cart.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": "not enough stock"})
		default:
			logger.FromCtx(c.Request.Context()).Error("add to cart failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add to cart"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "added to cart"})
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	productID, err := utils.ToInt(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	if err := h.svc.RemoveFromCart(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, cart.ErrNotInCart) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product is not in the cart"})
			return
		}
		logger.FromCtx(c.Request.Context()).Error("remove from cart failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove from cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed from cart"})
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	items, err := h.svc.GetCart(c.Request.Context(), userID)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("fetch cart failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cart"})
		return
	}

	c.JSON(http.StatusOK, items)
}
