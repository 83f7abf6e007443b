package tracker

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc *Service
	log *logrus.Logger
}

func NewHandler(svc *Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

func errorBody(msg string) gin.H {
	return gin.H{"status": "error", "message": msg}
}

// AddItems handles POST /api/items.
func (h *Handler) AddItems(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostURL == "" || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, errorBody("Missing or invalid data (postUrl or items array required)"))
		return
	}

	ids, err := h.svc.TrackItems(c.Request.Context(), req.PostURL, req.Items)
	if err != nil {
		if errors.Is(err, ErrNoValidItems) {
			c.JSON(http.StatusBadRequest, errorBody("No valid items were tracked."))
			return
		}
		h.log.WithError(err).Error("AddItems: track items failed")
		c.JSON(http.StatusInternalServerError, errorBody("failed to track items"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":           "success",
		"message":          fmt.Sprintf("%d items tracked successfully", len(ids)),
		"tracked_item_ids": ids,
	})
}

// ListItems handles GET /api/items.
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.svc.ListItems(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("ListItems: list failed")
		c.JSON(http.StatusInternalServerError, errorBody("failed to fetch items"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemHistory handles GET /api/items/:id/history.
func (h *Handler) GetItemHistory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody("Item not found"))
		return
	}
	history, err := h.svc.ItemHistory(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, errorBody("Item not found"))
			return
		}
		h.log.WithError(err).Error("GetItemHistory: fetch failed")
		c.JSON(http.StatusInternalServerError, errorBody("failed to fetch history"))
		return
	}
	c.JSON(http.StatusOK, history)
}

// DeleteItem handles DELETE /api/items/:id.
func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody("Item not found"))
		return
	}
	if err := h.svc.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, errorBody("Item not found"))
			return
		}
		h.log.WithError(err).Error("DeleteItem: delete failed")
		c.JSON(http.StatusInternalServerError, errorBody("failed to delete item"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Item deleted successfully"})
}
