package feedback

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/feedback"
	"github.com/teampulse/teampulse-backend-go/internal/domain/hierarchy"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
)

type FeedbackServiceImpl struct {
	feedbackRepo feedback.FeedbackRepository
	store        hierarchy.Store
	guard        *accessservice.Guard
}

func NewFeedbackService(
	feedbackRepo feedback.FeedbackRepository,
	store hierarchy.Store,
	guard *accessservice.Guard,
) feedback.FeedbackService {
	return &FeedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		store:        store,
		guard:        guard,
	}
}

// GiveFeedback implements feedback.FeedbackService. Anyone may give feedback
// to any existing user; reading it back is what the policy engine gates.
func (s *FeedbackServiceImpl) GiveFeedback(ctx context.Context, req feedback.CreateFeedbackRequest) (feedback.FeedbackResponse, error) {
	if err := req.Validate(); err != nil {
		return feedback.FeedbackResponse{}, err
	}

	actor, err := s.guard.Actor(ctx)
	if err != nil {
		return feedback.FeedbackResponse{}, err
	}

	if actor.ID == req.RecipientID {
		return feedback.FeedbackResponse{}, feedback.ErrSelfFeedback
	}

	_, found, err := s.store.FindByID(ctx, req.RecipientID)
	if err != nil {
		return feedback.FeedbackResponse{}, fmt.Errorf("failed to resolve recipient: %w", err)
	}
	if !found {
		return feedback.FeedbackResponse{}, feedback.ErrRecipientNotFound
	}

	created, err := s.feedbackRepo.Create(ctx, feedback.Feedback{
		SenderID:    actor.ID,
		RecipientID: req.RecipientID,
		Category:    feedback.Category(req.Category),
		Body:        req.Body,
	})
	if err != nil {
		return feedback.FeedbackResponse{}, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback.ToResponse(created), nil
}

// ListForUser implements feedback.FeedbackService.
func (s *FeedbackServiceImpl) ListForUser(ctx context.Context, targetOwnerID string) ([]feedback.FeedbackResponse, error) {
	if err := s.guard.RequireOwnerAccess(ctx, targetOwnerID); err != nil {
		return nil, err
	}

	records, err := s.feedbackRepo.ListByRecipient(ctx, targetOwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	responses := make([]feedback.FeedbackResponse, 0, len(records))
	for _, f := range records {
		responses = append(responses, feedback.ToResponse(f))
	}
	return responses, nil
}
