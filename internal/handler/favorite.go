package handler

import (
	"errors"
	"net/http"

	"greenbasket-be/internal/favorite"
	"greenbasket-be/internal/logger"
	"greenbasket-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FavoriteHandler struct {
	svc favorite.Service
}

func NewFavoriteHandler(svc favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

func (h *FavoriteHandler) Add(c *gin.Context) {
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

	if err := h.svc.Add(c.Request.Context(), userID, productID); err != nil {
		switch {
		case errors.Is(err, favorite.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, favorite.ErrAlreadyFavorite):
			c.JSON(http.StatusBadRequest, gin.H{"error": "product is already a favorite"})
		default:
			logger.FromCtx(c.Request.Context()).Error("add favorite failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add favorite"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "added to favorites"})
}

func (h *FavoriteHandler) Remove(c *gin.Context) {
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

	if err := h.svc.Remove(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, favorite.ErrNotInFavorites) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product is not in favorites"})
			return
		}
		logger.FromCtx(c.Request.Context()).Error("remove favorite failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "removed from favorites"})
}

func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	favorites, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("list favorites failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, favorites)
}
