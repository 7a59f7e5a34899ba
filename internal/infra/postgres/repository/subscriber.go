package repository

import (
	"context"
	"fmt"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/infra/postgres"
)

// SubscriberRepository lists users who receive the daily ayah.
type SubscriberRepository struct {
	db postgres.DBTX
}

func NewSubscriberRepository(db postgres.DBTX) *SubscriberRepository {
	return &SubscriberRepository{db: db}
}

// ListDailySubscribers returns active users with the daily ayah enabled whose
// ID is greater than afterID. Keyset paging keeps the walk stable while
// earlier pages deactivate users.
func (r *SubscriberRepository) ListDailySubscribers(ctx context.Context, limit int, afterID int64) ([]*entities.DailySubscriber, error) {
	query := `
		SELECT u.id, u.chat_id, us.translation_edition, us.reciter
		FROM users u
		INNER JOIN user_settings us ON us.user_id = u.id
		WHERE u.is_active = true
		  AND us.daily_ayah = true
		  AND u.id > $2
		ORDER BY u.id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit, afterID)
	if err != nil {
		return nil, fmt.Errorf("list daily subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*entities.DailySubscriber
	for rows.Next() {
		var sub entities.DailySubscriber
		if err := rows.Scan(
			&sub.UserID,
			&sub.ChatID,
			&sub.TranslationEdition,
			&sub.Reciter,
		); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subscribers = append(subscribers, &sub)
	}

	return subscribers, rows.Err()
}
