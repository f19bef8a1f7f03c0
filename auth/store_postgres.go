package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const pgUniqueViolation = "23505"

// PostgresUserStore implements UserStore on a pgx connection pool.
// Duplicate emails are rejected by the users_email_key unique constraint, so
// the insert itself is the existence check.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewPostgresUserStore creates a PostgresUserStore.
func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

func (s *PostgresUserStore) CreateUser(ctx context.Context, user *User) error {
	query := `INSERT INTO users (id, email, password, name, age, gender, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.pool.Exec(ctx, query,
		user.ID, user.Email, user.HashedPassword, user.Name, user.Age, user.Gender,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *PostgresUserStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, email, password, name, age, gender, created_at, updated_at
              FROM users WHERE email = $1`
	return s.scanUser(s.pool.QueryRow(ctx, query, email))
}

func (s *PostgresUserStore) GetUserByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT id, email, password, name, age, gender, created_at, updated_at
              FROM users WHERE id = $1`
	return s.scanUser(s.pool.QueryRow(ctx, query, id))
}

func (s *PostgresUserStore) scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(
		&user.ID, &user.Email, &user.HashedPassword, &user.Name, &user.Age, &user.Gender,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
