package assessment

import "context"

type AssessmentRepository interface {
	Create(ctx context.Context, newAssessment Assessment) (Assessment, error)
	ListByUser(ctx context.Context, userID string) ([]Assessment, error)
	ExistsByUserAndPeriod(ctx context.Context, userID, period string) (bool, error)
}
