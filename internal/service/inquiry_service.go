package service

import (
	"context"
	"fmt"

	"homefinder/internal/model"
	"homefinder/internal/repository"
)

// InquiryService is the buyer-to-realtor messaging channel scoped to a home.
type InquiryService interface {
	Inquire(ctx context.Context, buyerID, homeID int, text string) (*model.Message, error)
	ListByHome(ctx context.Context, homeID int) ([]model.MessageView, error)
}

type inquiryService struct {
	messageRepo repository.MessageRepository
	homes       HomeService
}

// NewInquiryService creates a new InquiryService
func NewInquiryService(messageRepo repository.MessageRepository, homes HomeService) InquiryService {
	return &inquiryService{messageRepo: messageRepo, homes: homes}
}

// Inquire records a buyer's question about a home. The receiving realtor is
// always the home's current owner, resolved server-side and never taken
// from caller input.
func (s *inquiryService) Inquire(ctx context.Context, buyerID, homeID int, text string) (*model.Message, error) {
	owner, err := s.homes.GetOwner(ctx, homeID)
	if err != nil {
		return nil, err // ErrHomeNotFound passes through untouched
	}

	message := &model.Message{
		Text:      text,
		RealtorID: owner.ID,
		BuyerID:   buyerID,
		HomeID:    homeID,
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to create inquiry message: %w", err)
	}
	return message, nil
}

// ListByHome returns every inquiry for a home with the sending buyer's
// contact projection. Access is restricted to the owning realtor by the
// guard in front of this call.
func (s *inquiryService) ListByHome(ctx context.Context, homeID int) ([]model.MessageView, error) {
	messages, err := s.messageRepo.FindByHome(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages by home: %w", err)
	}
	return messages, nil
}
