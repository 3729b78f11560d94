package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/passgen"
	"github.com/vaultpass/passgen-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	client, _ := middleware.ClientFromContext(r.Context())

	resp, err := h.service.Generate(r.Context(), client, req)
	if err != nil {
		if errors.Is(err, passgen.ErrInvalidConfiguration) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleAlphabet handles POST /api/v1/alphabet requests.
func (h *GeneratorHandler) HandleAlphabet(w http.ResponseWriter, r *http.Request) {
	var req model.AlphabetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Alphabet(req)
	if err != nil {
		if errors.Is(err, passgen.ErrInvalidConfiguration) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleListAudit handles GET /api/v1/audit requests.
func (h *GeneratorHandler) HandleListAudit(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse("limit must be a positive integer"))
			return
		}
		limit = n
	}

	records, err := h.service.RecentAudit(r.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrAuditDisabled) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}
