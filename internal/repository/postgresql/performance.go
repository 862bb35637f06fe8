package postgresql

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/performance"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
)

type reviewRepositoryImpl struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) performance.ReviewRepository {
	return &reviewRepositoryImpl{db: db}
}

// Create implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) Create(ctx context.Context, newReview performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (user_id, reviewer_id, period, rating, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, reviewer_id, period, rating, notes, created_at
	`

	var created performance.Review
	err := q.QueryRow(ctx, query,
		newReview.UserID,
		newReview.ReviewerID,
		newReview.Period,
		newReview.Rating,
		newReview.Notes,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.ReviewerID,
		&created.Period,
		&created.Rating,
		&created.Notes,
		&created.CreatedAt,
	)
	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to insert review: %w", err)
	}

	return created, nil
}

// ListByUser implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, reviewer_id, period, rating, notes, created_at
		FROM performance_reviews
		WHERE user_id = $1
		ORDER BY period DESC, created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var records []performance.Review
	for rows.Next() {
		var rev performance.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.ReviewerID, &rev.Period, &rev.Rating, &rev.Notes, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		records = append(records, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return records, nil
}

// ExistsByReviewerAndPeriod implements performance.ReviewRepository.
func (r *reviewRepositoryImpl) ExistsByReviewerAndPeriod(ctx context.Context, reviewerID, userID, period string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM performance_reviews
			WHERE reviewer_id = $1 AND user_id = $2 AND period = $3
		)
	`, reviewerID, userID, period).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check review existence: %w", err)
	}
	return exists, nil
}
