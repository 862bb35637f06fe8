package performance

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/performance"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
)

type ReviewServiceImpl struct {
	reviewRepo performance.ReviewRepository
	guard      *accessservice.Guard
}

func NewReviewService(reviewRepo performance.ReviewRepository, guard *accessservice.Guard) performance.ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		guard:      guard,
	}
}

// CreateReview implements performance.ReviewService.
func (s *ReviewServiceImpl) CreateReview(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	actor, err := s.guard.Actor(ctx)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	if actor.ID == req.UserID {
		return performance.ReviewResponse{}, performance.ErrSelfReview
	}

	if err := s.guard.RequireOwnerAccess(ctx, req.UserID); err != nil {
		return performance.ReviewResponse{}, err
	}

	exists, err := s.reviewRepo.ExistsByReviewerAndPeriod(ctx, actor.ID, req.UserID, req.Period)
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return performance.ReviewResponse{}, performance.ErrDuplicateForPeriod
	}

	created, err := s.reviewRepo.Create(ctx, performance.Review{
		UserID:     req.UserID,
		ReviewerID: actor.ID,
		Period:     req.Period,
		Rating:     req.Rating,
		Notes:      req.Notes,
	})
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to create review: %w", err)
	}

	return performance.ToResponse(created), nil
}

// ListForUser implements performance.ReviewService.
func (s *ReviewServiceImpl) ListForUser(ctx context.Context, targetOwnerID string) ([]performance.ReviewResponse, error) {
	if err := s.guard.RequireOwnerAccess(ctx, targetOwnerID); err != nil {
		return nil, err
	}

	records, err := s.reviewRepo.ListByUser(ctx, targetOwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	responses := make([]performance.ReviewResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, performance.ToResponse(r))
	}
	return responses, nil
}
