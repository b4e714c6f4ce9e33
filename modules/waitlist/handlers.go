package waitlist

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/okonu/portfolio-api/pkg/binder"
	"github.com/okonu/portfolio-api/pkg/clientip"
	"github.com/okonu/portfolio-api/pkg/response"
)

// JoinRequest is the wire shape of a signup. UTM fields fall back to query
// parameters when absent from the body, so tracked links work without a
// client that forwards them.
type JoinRequest struct {
	Email       string `json:"email"`
	UTMSource   string `json:"utm_source" query:"utm_source"`
	UTMMedium   string `json:"utm_medium" query:"utm_medium"`
	UTMCampaign string `json:"utm_campaign" query:"utm_campaign"`
}

type healthBody struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Storage   string `json:"storage,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Handler exposes the waitlist HTTP surface.
type Handler struct {
	svc *Service
	dev bool
}

// NewHandler creates the handler. dev controls whether error responses carry
// underlying error detail.
func NewHandler(svc *Service, dev bool) *Handler {
	return &Handler{svc: svc, dev: dev}
}

// Register mounts the waitlist routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/waitlist", h.join)
	r.Get("/waitlist/health", h.health)
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := binder.JSON()(r, &req); err != nil {
		response.WriteError(w, response.WrapError(http.StatusBadRequest, "Invalid request body", err), h.dev)
		return
	}
	if err := binder.Query()(r, &req); err != nil {
		response.WriteError(w, response.WrapError(http.StatusBadRequest, "Invalid request body", err), h.dev)
		return
	}

	result, err := h.svc.Join(r.Context(), Signup{
		Email:       req.Email,
		IPAddress:   clientip.FromContext(r.Context()),
		UTMSource:   req.UTMSource,
		UTMMedium:   req.UTMMedium,
		UTMCampaign: req.UTMCampaign,
	})
	if err != nil {
		response.WriteError(w, err, h.dev)
		return
	}

	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
	}
	response.JSON(w, status, result)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Health(r.Context()); err != nil {
		body := healthBody{Message: "Waitlist system health check failed"}
		if h.dev {
			body.Error = err.Error()
		}
		response.JSON(w, http.StatusInternalServerError, body)
		return
	}

	response.JSON(w, http.StatusOK, healthBody{
		Success:   true,
		Message:   "Waitlist system is operational",
		Storage:   "MongoDB",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
