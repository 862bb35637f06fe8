package postgresql

import (
	"context"
	"fmt"

	"github.com/teampulse/teampulse-backend-go/internal/domain/achievement"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/database"
)

type achievementRepositoryImpl struct {
	db *database.DB
}

func NewAchievementRepository(db *database.DB) achievement.AchievementRepository {
	return &achievementRepositoryImpl{db: db}
}

// Create implements achievement.AchievementRepository.
func (r *achievementRepositoryImpl) Create(ctx context.Context, newAchievement achievement.Achievement) (achievement.Achievement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO achievements (user_id, awarded_by_id, title, description, awarded_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, awarded_by_id, title, description, awarded_at, created_at
	`

	var created achievement.Achievement
	err := q.QueryRow(ctx, query,
		newAchievement.UserID,
		newAchievement.AwardedByID,
		newAchievement.Title,
		newAchievement.Description,
		newAchievement.AwardedAt,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.AwardedByID,
		&created.Title,
		&created.Description,
		&created.AwardedAt,
		&created.CreatedAt,
	)
	if err != nil {
		return achievement.Achievement{}, fmt.Errorf("failed to insert achievement: %w", err)
	}

	return created, nil
}

// ListByUser implements achievement.AchievementRepository.
func (r *achievementRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]achievement.Achievement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, awarded_by_id, title, description, awarded_at, created_at
		FROM achievements
		WHERE user_id = $1
		ORDER BY awarded_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query achievements: %w", err)
	}
	defer rows.Close()

	var records []achievement.Achievement
	for rows.Next() {
		var a achievement.Achievement
		if err := rows.Scan(&a.ID, &a.UserID, &a.AwardedByID, &a.Title, &a.Description, &a.AwardedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read achievements: %w", err)
	}

	return records, nil
}
