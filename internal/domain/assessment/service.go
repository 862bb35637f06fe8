package assessment

import "context"

type AssessmentService interface {
	// SubmitSelfAssessment records the authenticated actor's assessment for a period.
	SubmitSelfAssessment(ctx context.Context, req SubmitAssessmentRequest) (AssessmentResponse, error)

	// ListForUser returns targetOwnerID's assessments, policy-gated.
	ListForUser(ctx context.Context, targetOwnerID string) ([]AssessmentResponse, error)
}
