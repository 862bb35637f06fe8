package postgresql

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/assessment"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
)

type assessmentRepositoryImpl struct {
	db *database.DB
}

func NewAssessmentRepository(db *database.DB) assessment.AssessmentRepository {
	return &assessmentRepositoryImpl{db: db}
}

// Create implements assessment.AssessmentRepository.
func (r *assessmentRepositoryImpl) Create(ctx context.Context, newAssessment assessment.Assessment) (assessment.Assessment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO assessments (user_id, period, score, summary)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, period, score, summary, created_at
	`

	var created assessment.Assessment
	err := q.QueryRow(ctx, query,
		newAssessment.UserID,
		newAssessment.Period,
		newAssessment.Score,
		newAssessment.Summary,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Period,
		&created.Score,
		&created.Summary,
		&created.CreatedAt,
	)
	if err != nil {
		return assessment.Assessment{}, fmt.Errorf("failed to insert assessment: %w", err)
	}

	return created, nil
}

// ListByUser implements assessment.AssessmentRepository.
func (r *assessmentRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]assessment.Assessment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, period, score, summary, created_at
		FROM assessments
		WHERE user_id = $1
		ORDER BY period DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	var records []assessment.Assessment
	for rows.Next() {
		var a assessment.Assessment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Period, &a.Score, &a.Summary, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read assessments: %w", err)
	}

	return records, nil
}

// ExistsByUserAndPeriod implements assessment.AssessmentRepository.
func (r *assessmentRepositoryImpl) ExistsByUserAndPeriod(ctx context.Context, userID, period string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM assessments WHERE user_id = $1 AND period = $2)
	`, userID, period).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check assessment existence: %w", err)
	}
	return exists, nil
}
