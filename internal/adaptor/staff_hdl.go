package adaptor

import (
	"encoding/json"
	"net/http"

	"pos-backend/internal/data/repository"
	"pos-backend/internal/dto/request"
	"pos-backend/internal/usecase"
	"pos-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StaffHandler struct {
	service usecase.StaffService
	log     *zap.Logger
}

func NewStaffHandler(service usecase.StaffService, log *zap.Logger) *StaffHandler {
	return &StaffHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/staff
func (h *StaffHandler) Create(w http.ResponseWriter, r *http.Request) {
	auth, ok := utils.GetAuthContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Please provide email and name", validationErrors)
		return
	}

	resp, err := h.service.Create(r.Context(), auth.UserID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create staff")
		return
	}

	utils.ResponseCreated(w, "Staff member created successfully", resp)
}

// List handles GET /api/staff?role=&status=&search=
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	query := request.StaffListQuery{
		Role:   r.URL.Query().Get("role"),
		Status: r.URL.Query().Get("status"),
		Search: r.URL.Query().Get("search"),
	}

	if validationErrors := utils.ValidateStruct(query); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid query parameters", validationErrors)
		return
	}

	resp, err := h.service.List(r.Context(), repository.StaffFilter{
		Role:   query.Role,
		Status: query.Status,
		Search: query.Search,
	})
	if err != nil {
		handleServiceError(w, h.log, err, "list staff")
		return
	}

	utils.ResponseSuccess(w, "Staff retrieved", resp)
}

// Get handles GET /api/staff/{id}
func (h *StaffHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get staff")
		return
	}

	utils.ResponseSuccess(w, "Staff retrieved", map[string]any{"staff": resp})
}

// Update handles PUT /api/staff/{id}
func (h *StaffHandler) Update(w http.ResponseWriter, r *http.Request) {
	auth, ok := utils.GetAuthContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	var req request.UpdateStaffRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	resp, err := h.service.Update(r.Context(), auth.UserID, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update staff")
		return
	}

	utils.ResponseSuccess(w, "Staff member updated successfully", map[string]any{"staff": resp})
}

// Deactivate handles PATCH /api/staff/{id}/deactivate
func (h *StaffHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, false, "Staff member deactivated successfully")
}

// Reactivate handles PATCH /api/staff/{id}/reactivate
func (h *StaffHandler) Reactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, true, "Staff member reactivated successfully")
}

// Delete handles DELETE /api/staff/{id} - hard delete, admin dilindungi
func (h *StaffHandler) Delete(w http.ResponseWriter, r *http.Request) {
	auth, ok := utils.GetAuthContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), auth.UserID, id); err != nil {
		handleServiceError(w, h.log, err, "delete staff")
		return
	}

	utils.ResponseSuccess(w, "Staff member deleted permanently", nil)
}

// ResetPassword handles POST /api/staff/{id}/reset-password
func (h *StaffHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	auth, ok := utils.GetAuthContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	resp, err := h.service.ResetPassword(r.Context(), auth.UserID, id)
	if err != nil {
		handleServiceError(w, h.log, err, "reset staff password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", resp)
}

// ==================== HELPERS ====================

func (h *StaffHandler) setActive(w http.ResponseWriter, r *http.Request, active bool, message string) {
	auth, ok := utils.GetAuthContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, ok := h.staffID(w, r)
	if !ok {
		return
	}

	if err := h.service.SetActive(r.Context(), auth.UserID, id, active); err != nil {
		handleServiceError(w, h.log, err, "update staff status")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}

func (h *StaffHandler) staffID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid staff id", nil)
		return uuid.Nil, false
	}
	return id, true
}
