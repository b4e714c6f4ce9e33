package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okonu/portfolio-api/pkg/binder"
	"github.com/okonu/portfolio-api/pkg/response"
)

// Handler exposes the contact-form HTTP surface.
type Handler struct {
	svc *Service
	dev bool
}

// NewHandler creates the handler. dev controls whether error responses carry
// underlying error detail.
func NewHandler(svc *Service, dev bool) *Handler {
	return &Handler{svc: svc, dev: dev}
}

// Register mounts the contact routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/send-email", h.submit)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := binder.JSON()(r, &req); err != nil {
		response.WriteError(w, response.WrapError(http.StatusBadRequest, "Invalid request body", err), h.dev)
		return
	}

	result, err := h.svc.Submit(r.Context(), req)
	if err != nil {
		response.WriteError(w, err, h.dev)
		return
	}

	response.JSON(w, http.StatusOK, result)
}
