package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontolabs/ponto-backend-go/internal/domain/user"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, name, password_hash, google_id, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.GoogleID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	return &u, nil
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, name, password_hash, google_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.GoogleID,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}

	return &u, nil
}

// Create implements user.Repository.
func (r *userRepositoryImpl) Create(ctx context.Context, u *user.User) (*user.User, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO users (email, name, password_hash, google_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, name, password_hash, google_id, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, insertQuery, u.Email, u.Name, u.PasswordHash, u.GoogleID).Scan(
		&created.ID,
		&created.Email,
		&created.Name,
		&created.PasswordHash,
		&created.GoogleID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, user.ErrEmailConflict
		}
		return nil, err
	}

	return &created, nil
}

// LinkGoogleAccount implements user.Repository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, userID string, googleID string) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE users
		SET google_id = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, updateQuery, googleID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
