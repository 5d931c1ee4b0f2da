package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/yashxjain/hrsmile-backend-go/internal/domain/notification"
	"github.com/yashxjain/hrsmile-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkAsRead(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// Create implements NotificationHandler.
func (h *NotificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req notification.CreateNotificationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create notification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _, err := actorFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	req.SenderID = actorID

	created, err := h.notificationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Notification sent successfully", created)
}

// List implements NotificationHandler.
func (h *NotificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actorID, _, err := actorFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.notificationService.List(r.Context(), notification.ListNotificationsRequest{
		EmployeeID: actorID,
		UnreadOnly: r.URL.Query().Get("unread_only") == "true",
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.Total,
	})
}

// MarkAsRead implements NotificationHandler.
func (h *NotificationHandlerImpl) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	var req notification.MarkAsReadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MarkAsRead decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _, err := actorFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	req.EmployeeID = actorID

	if err := h.notificationService.MarkAsRead(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Notifications marked as read", nil)
}
