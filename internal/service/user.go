package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/devdanalmag/MakTab-platform/internal/domain/entities"
	"github.com/devdanalmag/MakTab-platform/internal/quran"
)

type UserService struct {
	tr       Transactor
	repos    TxRepositories
	defaults quran.Editions
}

func NewUserService(tr Transactor, repos TxRepositories, defaults quran.Editions) *UserService {
	return &UserService{tr: tr, repos: repos, defaults: defaults}
}

// EnsureUser stores the user together with default settings in one transaction.
// It reports whether the user is new.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) (bool, error) {
	var created bool

	err := s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users, settings := s.repos(tx)

		var err error
		created, err = users.Save(ctx, entities.NewUser(userID, chatID))
		if err != nil {
			return err
		}

		defaults := entities.NewUserSettings(userID, s.defaults.Translation, s.defaults.Reciter)
		if err := settings.Create(ctx, defaults); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("ensure user: %w", err)
	}

	return created, nil
}

// Deactivate stops all deliveries to a user.
func (s *UserService) Deactivate(ctx context.Context, userID int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		users, _ := s.repos(tx)
		return users.Deactivate(ctx, userID)
	})
}
