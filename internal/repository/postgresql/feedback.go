package postgresql

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/feedback"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
)

type feedbackRepositoryImpl struct {
	db *database.DB
}

func NewFeedbackRepository(db *database.DB) feedback.FeedbackRepository {
	return &feedbackRepositoryImpl{db: db}
}

// Create implements feedback.FeedbackRepository.
func (r *feedbackRepositoryImpl) Create(ctx context.Context, newFeedback feedback.Feedback) (feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO feedbacks (sender_id, recipient_id, category, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sender_id, recipient_id, category, body, created_at
	`

	var created feedback.Feedback
	err := q.QueryRow(ctx, query,
		newFeedback.SenderID,
		newFeedback.RecipientID,
		newFeedback.Category,
		newFeedback.Body,
	).Scan(
		&created.ID,
		&created.SenderID,
		&created.RecipientID,
		&created.Category,
		&created.Body,
		&created.CreatedAt,
	)
	if err != nil {
		return feedback.Feedback{}, fmt.Errorf("failed to insert feedback: %w", err)
	}

	return created, nil
}

// ListByRecipient implements feedback.FeedbackRepository.
func (r *feedbackRepositoryImpl) ListByRecipient(ctx context.Context, recipientID string) ([]feedback.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, sender_id, recipient_id, category, body, created_at
		FROM feedbacks
		WHERE recipient_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	var records []feedback.Feedback
	for rows.Next() {
		var f feedback.Feedback
		if err := rows.Scan(&f.ID, &f.SenderID, &f.RecipientID, &f.Category, &f.Body, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feedback: %w", err)
		}
		records = append(records, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read feedback: %w", err)
	}

	return records, nil
}
