package models

import "time"

// SubmissionKind identifies which form on the site produced a
// submission. Kinds double as Kafka topic suffixes and database
// discriminators.
type SubmissionKind string

const (
	SubmissionReservation  SubmissionKind = "reservation"
	SubmissionFeedback     SubmissionKind = "feedback"
	SubmissionContact      SubmissionKind = "contact"
	SubmissionCareer       SubmissionKind = "career"
	SubmissionPrivateEvent SubmissionKind = "private_event"
	SubmissionBanquet      SubmissionKind = "banquet"
)

// Submission is one captured form entry. Payload carries the
// kind-specific fields as submitted, already validated at the handler.
type Submission struct {
	ID        string                 `json:"id"`
	Kind      SubmissionKind         `json:"kind"`
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	Payload   map[string]interface{} `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

// ReservationRequest is the payload of the table reservation form.
type ReservationRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	Venue      string `json:"venue" binding:"required,oneof=food bar cafe"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	PartySize  int    `json:"party_size" binding:"required,min=1,max=40"`
	Occasion   string `json:"occasion"`
	SpecialReq string `json:"special_request"`
}

// FeedbackRequest is the payload of the feedback form.
type FeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Venue   string `json:"venue" binding:"omitempty,oneof=food bar cafe"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message" binding:"required"`
}

// ContactRequest is the payload of the contact form.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// CareerRequest is the payload of the careers form.
type CareerRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
	Position  string `json:"position" binding:"required"`
	ResumeURL string `json:"resume_url" binding:"omitempty,url"`
	Message   string `json:"message"`
}

// EventRequest covers both private events and banquet enquiries; the
// handler sets the submission kind from the route.
type EventRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	EventType  string `json:"event_type" binding:"required"`
	Date       string `json:"date" binding:"required"`
	GuestCount int    `json:"guest_count" binding:"required,min=1"`
	Message    string `json:"message"`
}
