package api

import (
	"errors"
	"net/http"

	resdto "gig-negotiation/internal/handler/dto/response"
	"gig-negotiation/internal/handler/httperr"
	"gig-negotiation/internal/handler/middleware"
	"gig-negotiation/internal/usecase/commands"
	"gig-negotiation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	commands commands.NotificationCommands
	queries  queries.NotificationQueries
}

func NewNotificationHandler(cmd commands.NotificationCommands, qry queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		commands: cmd,
		queries:  qry,
	}
}

// @Summary List notifications
// @Description List the current user's notifications, newest first, with the unread count
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.NotificationFeedResponse
// @Failure 401 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	feed, err := h.queries.ListForUser(c.Request.Context(), userID, 0)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationFeed(feed))
}

// @Summary Mark notification read
// @Description Mark one of the current user's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification ID format", nil)
		return
	}

	if err := h.commands.MarkRead(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, commands.ErrNotificationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications read
// @Description Mark all of the current user's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MarkAllReadResponse
// @Failure 401 {object} map[string]string
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errIdentityMissing, "Internal server error", nil)
		return
	}

	count, err := h.commands.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.MarkAllReadResponse{Updated: count})
}
