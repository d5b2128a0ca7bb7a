package domain

import "time"

// Inquiry types.
const (
	InquiryTypeContact      = "contact"
	InquiryTypeConsultation = "consultation"
	InquiryTypeNewsletter   = "newsletter"
)

// Inquiry is a customer message submitted through the storefront: a contact
// form entry, a design consultation request, or a newsletter signup.
type Inquiry struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message,omitempty"`

	// Consultation-specific fields.
	RoomType      string `json:"room_type,omitempty"`
	Budget        string `json:"budget,omitempty"`
	PreferredDate string `json:"preferred_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
