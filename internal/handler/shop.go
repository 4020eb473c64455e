package handler

import (
	"errors"
	"net/http"

	"greenbasket-be/internal/logger"
	"greenbasket-be/internal/shop"
	"greenbasket-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShopHandler struct {
	svc shop.Service
}

func NewShopHandler(svc shop.Service) *ShopHandler {
	return &ShopHandler{svc: svc}
}

func (h *ShopHandler) List(c *gin.Context) {
	shops, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("list shops failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch shops"})
		return
	}
	c.JSON(http.StatusOK, shops)
}

func (h *ShopHandler) Create(c *gin.Context) {
	var req struct {
		Name    string  `json:"name" binding:"required"`
		Address *string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	s, err := h.svc.Create(c.Request.Context(), req.Name, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, shop.ErrMissingName):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		case errors.Is(err, shop.ErrShopTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "shop already exists"})
		default:
			logger.FromCtx(c.Request.Context()).Error("create shop failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create shop"})
		}
		return
	}

	c.JSON(http.StatusCreated, s)
}

func (h *ShopHandler) Delete(c *gin.Context) {
	id, err := utils.ToInt(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop id"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, shop.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
			return
		}
		logger.FromCtx(c.Request.Context()).Error("delete shop failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete shop"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "shop deleted"})
}
