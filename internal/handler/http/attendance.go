package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/attendance"
	"github.com/yashxjain/hrsmile-backend-go/internal/domain/user"
	"github.com/yashxjain/hrsmile-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Punch(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// actorFromClaims pulls the acting identity out of the verified JWT.
func actorFromClaims(r *http.Request) (employeeID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", err
	}

	employeeID, _ = claims["employee_id"].(string)
	roleStr, _ := claims["role"].(string)
	return employeeID, user.ParseRole(roleStr), nil
}

// Punch implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Punch(w http.ResponseWriter, r *http.Request) {
	var req attendance.PunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Punch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	actorID, _, err := actorFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}
	req.EmployeeID = actorID

	punch, err := h.attendanceService.Punch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded successfully", punch)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, err := actorFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.attendanceService.ListAttendance(r.Context(), attendance.ListAttendanceRequest{
		ActorEmployeeID: actorID,
		ActorRole:       actorRole,
		EmployeeID:      r.URL.Query().Get("employee_id"),
		Page:            page,
		Limit:           limit,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: int64(result.Total),
	})
}

// Export implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, err := actorFromClaims(r)
	if err != nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	data, err := h.attendanceService.ExportAttendance(r.Context(), attendance.ExportAttendanceRequest{
		ActorEmployeeID: actorID,
		ActorRole:       actorRole,
		EmployeeID:      r.URL.Query().Get("employee_id"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="attendance.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		slog.Error("Export write error", "error", err)
	}
}
