package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bgarnr/hekacms/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the slice of pgxpool.Pool the repository needs. pgxmock
// satisfies it in tests.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository implements domain.CredentialStore on a users table.
type PostgresRepository struct {
	db PgxIface
}

func NewPostgresRepository(db PgxIface) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, email, password_hash, role, refresh_token, is_active, created_at, updated_at, last_login_at`

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 LIMIT 1`, userColumns)

	user, err := r.scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 LIMIT 1`, userColumns)

	user, err := r.scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, refresh_token, is_active, created_at, updated_at, last_login_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, user.ID, user.Email, user.PasswordHash, user.Role.String(),
		nullableString(user.RefreshToken), user.IsActive, user.CreatedAt, user.UpdatedAt, user.LastLoginAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Save(ctx context.Context, user *domain.User) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET email = $2, password_hash = $3, role = $4, refresh_token = $5,
		    is_active = $6, updated_at = $7, last_login_at = $8
		WHERE id = $1
	`, user.ID, user.Email, user.PasswordHash, user.Role.String(),
		nullableString(user.RefreshToken), user.IsActive, user.UpdatedAt, user.LastLoginAt)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no user with id %s", user.ID)
	}

	return nil
}

func (r *PostgresRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user         domain.User
		role         string
		refreshToken *string
		lastLoginAt  *time.Time
	)

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &role, &refreshToken,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt, &lastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	user.Role = domain.Role(role)
	if refreshToken != nil {
		user.RefreshToken = *refreshToken
	}
	user.LastLoginAt = lastLoginAt

	return &user, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
