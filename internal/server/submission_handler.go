package server

import (
	"net/http"
	"time"

	"github.com/amberleaf/menuforge/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// accept persists a validated submission and announces it. Kafka
// publish failures are logged and swallowed; the guest already has a
// confirmed booking either way.
func (s *Server) accept(c *gin.Context, kind models.SubmissionKind, name, email, phone string, payload map[string]interface{}) {
	sub := &models.Submission{
		ID:        uuid.NewString(),
		Kind:      kind,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(c.Request.Context(), sub); err != nil {
		log.Errorf("failed to persist %s submission: %v", kind, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save submission"})
		return
	}

	if err := s.notifier.Announce(sub); err != nil {
		log.Warnf("failed to announce %s submission %s: %v", kind, sub.ID, err)
	}

	c.JSON(http.StatusCreated, gin.H{"id": sub.ID, "status": "received"})
}

func (s *Server) createReservation(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.accept(c, models.SubmissionReservation, req.Name, req.Email, req.Phone, map[string]interface{}{
		"venue":           req.Venue,
		"date":            req.Date,
		"time":            req.Time,
		"party_size":      req.PartySize,
		"occasion":        req.Occasion,
		"special_request": req.SpecialReq,
	})
}

func (s *Server) createFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.accept(c, models.SubmissionFeedback, req.Name, req.Email, req.Phone, map[string]interface{}{
		"venue":   req.Venue,
		"rating":  req.Rating,
		"message": req.Message,
	})
}

func (s *Server) createContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.accept(c, models.SubmissionContact, req.Name, req.Email, req.Phone, map[string]interface{}{
		"subject": req.Subject,
		"message": req.Message,
	})
}

func (s *Server) createCareer(c *gin.Context) {
	var req models.CareerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.accept(c, models.SubmissionCareer, req.Name, req.Email, req.Phone, map[string]interface{}{
		"position":   req.Position,
		"resume_url": req.ResumeURL,
		"message":    req.Message,
	})
}

func (s *Server) createEvent(kind models.SubmissionKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		s.accept(c, kind, req.Name, req.Email, req.Phone, map[string]interface{}{
			"event_type":  req.EventType,
			"date":        req.Date,
			"guest_count": req.GuestCount,
			"message":     req.Message,
		})
	}
}
