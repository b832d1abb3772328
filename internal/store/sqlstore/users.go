package sqlstore

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/01moynul/inkwell-api/internal/models"
)

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    int64     `db:"created_at"`
}

func (r userRow) toModel() models.User {
	return models.User{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		PasswordHash: r.PasswordHash,
		CreatedAt:    fromMillis(r.CreatedAt),
	}
}

var userColumns = []string{"id", "email", "name", "password_hash", "created_at"}

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	_, err := s.exec(ctx, "create_user", sq.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Name, user.PasswordHash, toMillis(user.CreatedAt)))
	return err
}

func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	var row userRow
	if err := s.get(ctx, "get_user", &row, sq.Select(userColumns...).From("users").Where(sq.Eq{"id": id})); err != nil {
		return models.User{}, err
	}
	return row.toModel(), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var row userRow
	if err := s.get(ctx, "get_user_by_email", &row, sq.Select(userColumns...).From("users").Where(sq.Eq{"email": email})); err != nil {
		return models.User{}, err
	}
	return row.toModel(), nil
}
