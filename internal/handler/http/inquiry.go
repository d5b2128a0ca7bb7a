package http

import (
	"log/slog"
	"net/http"

	"github.com/hellospace/storefront/internal/service"
	"github.com/hellospace/storefront/pkg/httputil"
)

// InquiryHandler serves the contact, consultation, and newsletter endpoints.
type InquiryHandler struct {
	service *service.InquiryService
	logger  *slog.Logger
}

// NewInquiryHandler creates an inquiry handler.
func NewInquiryHandler(svc *service.InquiryService, logger *slog.Logger) *InquiryHandler {
	return &InquiryHandler{service: svc, logger: logger}
}

// SubmitContact handles POST /api/v1/inquiries/contact.
func (h *InquiryHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req service.ContactInput
	if err := httputil.DecodeValid(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	inquiry, err := h.service.SubmitContact(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusAccepted, inquiry)
}

// SubmitConsultation handles POST /api/v1/inquiries/consultation.
func (h *InquiryHandler) SubmitConsultation(w http.ResponseWriter, r *http.Request) {
	var req service.ConsultationInput
	if err := httputil.DecodeValid(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	inquiry, err := h.service.SubmitConsultation(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusAccepted, inquiry)
}

// SubscribeNewsletter handles POST /api/v1/inquiries/newsletter.
func (h *InquiryHandler) SubscribeNewsletter(w http.ResponseWriter, r *http.Request) {
	var req service.NewsletterInput
	if err := httputil.DecodeValid(r, &req); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	inquiry, err := h.service.SubscribeNewsletter(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	httputil.WriteData(w, http.StatusAccepted, inquiry)
}
