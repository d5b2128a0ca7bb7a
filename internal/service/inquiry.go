package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hellospace/storefront/internal/domain"
	"github.com/hellospace/storefront/internal/sender"
	"github.com/hellospace/storefront/pkg/validate"
)

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

// ConsultationInput is a design consultation request.
type ConsultationInput struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	RoomType      string `json:"room_type" validate:"required,oneof=living-room bedroom kitchen dining-room office other"`
	Budget        string `json:"budget" validate:"required"`
	PreferredDate string `json:"preferred_date"`
	Message       string `json:"message"`
}

// NewsletterInput is a newsletter signup.
type NewsletterInput struct {
	Email string `json:"email" validate:"required,email"`
}

// InquiryService accepts customer inquiries and hands them to the configured
// delivery channel.
type InquiryService struct {
	sender sender.Sender
	logger *slog.Logger
}

// NewInquiryService creates an inquiry service.
func NewInquiryService(snd sender.Sender, logger *slog.Logger) *InquiryService {
	return &InquiryService{sender: snd, logger: logger}
}

// SubmitContact accepts a contact form submission.
func (s *InquiryService) SubmitContact(ctx context.Context, input ContactInput) (*domain.Inquiry, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	inquiry := &domain.Inquiry{
		ID:        uuid.New().String(),
		Type:      domain.InquiryTypeContact,
		Name:      input.Name,
		Email:     normalizeEmail(input.Email),
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	return s.deliver(ctx, inquiry)
}

// SubmitConsultation accepts a design consultation request.
func (s *InquiryService) SubmitConsultation(ctx context.Context, input ConsultationInput) (*domain.Inquiry, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	inquiry := &domain.Inquiry{
		ID:            uuid.New().String(),
		Type:          domain.InquiryTypeConsultation,
		Name:          input.Name,
		Email:         normalizeEmail(input.Email),
		Phone:         input.Phone,
		RoomType:      input.RoomType,
		Budget:        input.Budget,
		PreferredDate: input.PreferredDate,
		Message:       input.Message,
		CreatedAt:     time.Now().UTC(),
	}

	return s.deliver(ctx, inquiry)
}

// SubscribeNewsletter accepts a newsletter signup.
func (s *InquiryService) SubscribeNewsletter(ctx context.Context, input NewsletterInput) (*domain.Inquiry, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	inquiry := &domain.Inquiry{
		ID:        uuid.New().String(),
		Type:      domain.InquiryTypeNewsletter,
		Email:     normalizeEmail(input.Email),
		CreatedAt: time.Now().UTC(),
	}

	return s.deliver(ctx, inquiry)
}

func (s *InquiryService) deliver(ctx context.Context, inquiry *domain.Inquiry) (*domain.Inquiry, error) {
	if err := s.sender.Send(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("deliver inquiry via %s: %w", s.sender.Name(), err)
	}

	s.logger.InfoContext(ctx, "inquiry received",
		slog.String("inquiry_id", inquiry.ID),
		slog.String("type", inquiry.Type),
	)

	return inquiry, nil
}
