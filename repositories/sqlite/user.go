package sqlite

import (
	"candidate-notes/domain"
	"candidate-notes/errors"
	"context"
	"database/sql"
	stdErrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, created_at`

func (u UserRepository) CreateUser(ctx context.Context, name, email, hashedPassword string) (domain.User, error) {
	user := domain.User{
		ID:           domain.UserID(uuid.NewString()),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.User{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(1) FROM users WHERE email = ?`, user.Email).Scan(&exists); err != nil {
		return domain.User{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists > 0 {
		return domain.User{}, errors.ErrUserAlreadyExists
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?)`,
		string(user.ID), user.Name, user.Email, user.PasswordHash, user.CreatedAt.UnixNano()); err != nil {
		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (u UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := u.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, strings.ToLower(strings.TrimSpace(email)))
	return scanUser(row)
}

func (u UserRepository) GetUserByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	row := u.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, string(id))
	return scanUser(row)
}

// FindUserByName returns the oldest user carrying exactly this name.
func (u UserRepository) FindUserByName(ctx context.Context, name string) (domain.User, error) {
	row := u.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE name = ? ORDER BY created_at, rowid LIMIT 1`, name)
	return scanUser(row)
}

func (u UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := u.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY name, created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		user      domain.User
		id        string
		createdAt int64
	)
	err := row.Scan(&id, &user.Name, &user.Email, &user.PasswordHash, &createdAt)
	if stdErrors.Is(err, sql.ErrNoRows) {
		return domain.User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	user.ID = domain.UserID(id)
	user.CreatedAt = toTime(createdAt)
	return user, nil
}
