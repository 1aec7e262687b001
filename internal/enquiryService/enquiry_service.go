package enquiry

import (
	"fmt"
	"strings"

	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"auction-backend/internal/realtime"
	"auction-backend/internal/repository"
	"auction-backend/utils"
)

// EnquiryService defines the business logic for contact-form submissions
type EnquiryService struct {
	store     repository.AuctionStore
	publisher realtime.Publisher
}

// NewEnquiryService creates a new EnquiryService instance
func NewEnquiryService(store repository.AuctionStore, publisher realtime.Publisher) *EnquiryService {
	return &EnquiryService{
		store:     store,
		publisher: publisher,
	}
}

// Submit validates and stores a public enquiry. The record is read-only
// once created.
func (s *EnquiryService) Submit(name, email, message string) (model.Enquiry, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)
	if name == "" || email == "" || message == "" {
		return model.Enquiry{}, fmt.Errorf("service: %w - name, email and message are required", auctionerrors.ErrInvalidEnquiry)
	}

	record := model.Enquiry{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.store.CreateEnquiry(&record); err != nil {
		return model.Enquiry{}, fmt.Errorf("service: failed to store enquiry from %s: %w", name, err)
	}

	s.logActivity(model.ActivityEnquiry, fmt.Sprintf("New enquiry from %s", name))

	return record, nil
}

// logActivity appends an audit entry and broadcasts it to viewers.
func (s *EnquiryService) logActivity(entryType, description string) {
	entry, err := s.store.AppendActivity(entryType, description)
	if err != nil {
		utils.Warn("failed to append activity entry", map[string]any{
			"type":        entryType,
			"description": description,
			"error":       err.Error(),
		})
		return
	}
	s.publisher.Publish(realtime.Event{Name: realtime.EventActivityUpdate, Payload: entry})
}
