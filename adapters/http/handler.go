package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gruzdev-dev/codex-employees/core/domain"
	"github.com/gruzdev-dev/codex-employees/core/services"
	"github.com/gruzdev-dev/codex-employees/pkg/logger"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

const (
	msgBodyTooLarge = "request body too large"
	msgInvalidBody  = "invalid request body"
	msgInvalidID    = "invalid employee id"
	msgNoneDeleted  = "\nRows Deleted: 0"
)

type Handler struct {
	employeeService *services.EmployeeService
	log             *slog.Logger
}

func NewHandler(employeeService *services.EmployeeService, log *slog.Logger) *Handler {
	return &Handler{
		employeeService: employeeService,
		log:             log,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/employees", h.GetAllEmployees).Methods(http.MethodGet)
	router.HandleFunc("/employees", h.AddEmployee).Methods(http.MethodPost)
	router.HandleFunc("/employees", h.UpdateEmployee).Methods(http.MethodPut)
	router.HandleFunc("/employees/{id}", h.DeleteEmployee).Methods(http.MethodDelete)
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.GetAllEmployees(r.Context())
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	h.writeJSON(w, r, http.StatusOK, employees)
}

func (h *Handler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}

	added, err := h.employeeService.AddEmployee(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	h.writeJSON(w, r, http.StatusOK, added)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeEmployee(w, r)
	if !ok {
		return
	}

	updated, err := h.employeeService.UpdateEmployee(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	h.writeJSON(w, r, http.StatusOK, updated)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeText(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	rows, err := h.employeeService.DeleteEmployee(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, msgNoneDeleted)
		return
	}

	writeText(w, http.StatusOK, "Rows Deleted: "+strconv.Itoa(rows))
}

func (h *Handler) decodeEmployee(w http.ResponseWriter, r *http.Request) (domain.EmployeeInput, bool) {
	var input domain.EmployeeInput
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&input); err != nil {
		h.log.DebugContext(r.Context(), "failed to decode employee", logger.Err(err))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeText(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return domain.EmployeeInput{}, false
		}
		writeText(w, http.StatusBadRequest, msgInvalidBody)
		return domain.EmployeeInput{}, false
	}
	return input, true
}

// writeError maps a service error to its status; notFoundSuffix is appended
// to the body of a 404.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, notFoundSuffix string) {
	switch {
	case errors.Is(err, domain.ErrIDExists):
		writeText(w, http.StatusBadRequest, domain.ErrIDExists.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		writeText(w, http.StatusBadRequest, domain.ErrInvalidInput.Error())
	case errors.Is(err, domain.ErrIDNotFound):
		writeText(w, http.StatusNotFound, domain.ErrIDNotFound.Error()+notFoundSuffix)
	default:
		h.log.ErrorContext(r.Context(), "request failed", logger.Err(err))
		writeText(w, http.StatusInternalServerError, domain.ErrInternal.Error())
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.ErrorContext(r.Context(), "failed to encode response", logger.Err(err))
	}
}

// writeText writes msg verbatim; http.Error would append a newline.
func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}
