package handler

import (
	"errors"
	"net/http"

	"greenbasket-be/internal/logger"
	"greenbasket-be/internal/order"
	"greenbasket-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type checkoutItemRequest struct {
	ProductID int     `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Weight    float64 `json:"weight" binding:"gte=0"`
}

type checkoutRequest struct {
	Items          []checkoutItemRequest `json:"items" binding:"required"`
	Address        string                `json:"address" binding:"required"`
	UseBonusPoints bool                  `json:"useBonusPoints"`
}

// Checkout places an order for the submitted line items: it redeems
// bonus points when asked, decrements stock, records sales statistics,
// clears the cart and accrues new points, all in one transaction.
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "items and address are required"})
		return
	}

	items := make([]order.CheckoutItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = order.CheckoutItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Weight:    it.Weight,
		}
	}

	receipt, err := h.svc.Checkout(c.Request.Context(), order.CheckoutParams{
		UserID:         userID,
		Items:          items,
		Address:        req.Address,
		UseBonusPoints: req.UseBonusPoints,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyOrder),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrMissingAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, order.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, order.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": "not enough stock for one of the products"})
		default:
			logger.FromCtx(c.Request.Context()).Error("checkout failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":           "order placed",
		"order":             receipt.Order,
		"bonusPointsEarned": receipt.BonusPointsEarned,
	})
}

func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	orders, err := h.svc.GetOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("list orders failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}
