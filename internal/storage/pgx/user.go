package pgx

import (
	"context"
	"errors"

	"devmatch/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	const query = `
		SELECT id, username, first_name, last_name, profile_types
		  FROM users
		 WHERE id = $1;
	`

	var user domain.User
	err := s.getExecutor(ctx).QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.ProfileTypes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
