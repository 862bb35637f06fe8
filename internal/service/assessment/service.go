package assessment

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/assessment"
	accessservice "github.com/teampulse/teampulse-backend-go/internal/service/access"
)

type AssessmentServiceImpl struct {
	assessmentRepo assessment.AssessmentRepository
	guard          *accessservice.Guard
}

func NewAssessmentService(assessmentRepo assessment.AssessmentRepository, guard *accessservice.Guard) assessment.AssessmentService {
	return &AssessmentServiceImpl{
		assessmentRepo: assessmentRepo,
		guard:          guard,
	}
}

// SubmitSelfAssessment implements assessment.AssessmentService. The owner is
// always the actor, so no policy check is needed beyond authentication.
func (s *AssessmentServiceImpl) SubmitSelfAssessment(ctx context.Context, req assessment.SubmitAssessmentRequest) (assessment.AssessmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assessment.AssessmentResponse{}, err
	}

	actor, err := s.guard.Actor(ctx)
	if err != nil {
		return assessment.AssessmentResponse{}, err
	}

	exists, err := s.assessmentRepo.ExistsByUserAndPeriod(ctx, actor.ID, req.Period)
	if err != nil {
		return assessment.AssessmentResponse{}, fmt.Errorf("failed to check existing assessment: %w", err)
	}
	if exists {
		return assessment.AssessmentResponse{}, assessment.ErrPeriodAlreadySubmitted
	}

	created, err := s.assessmentRepo.Create(ctx, assessment.Assessment{
		UserID:  actor.ID,
		Period:  req.Period,
		Score:   req.Score,
		Summary: req.Summary,
	})
	if err != nil {
		return assessment.AssessmentResponse{}, fmt.Errorf("failed to create assessment: %w", err)
	}

	return assessment.ToResponse(created), nil
}

// ListForUser implements assessment.AssessmentService.
func (s *AssessmentServiceImpl) ListForUser(ctx context.Context, targetOwnerID string) ([]assessment.AssessmentResponse, error) {
	if err := s.guard.RequireOwnerAccess(ctx, targetOwnerID); err != nil {
		return nil, err
	}

	records, err := s.assessmentRepo.ListByUser(ctx, targetOwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}

	responses := make([]assessment.AssessmentResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, assessment.ToResponse(a))
	}
	return responses, nil
}
