package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	"gearguard/pkg/constants"
	apperrors "gearguard/pkg/errors"
)

const uniqueViolationCode = "23505"

type UserRepositoryInterface interface {
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	FindByID(ctx context.Context, id uint64) (*entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (uint64, error)
	GetTechnicians(ctx context.Context) ([]entities.User, error)
	GetTeamMembers(ctx context.Context, teamID uint64) ([]entities.User, error)
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

const userFields = "id, username, password, name, role, avatar_url, team_id"

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Role, &u.AvatarURL, &u.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка сканирования пользователя: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username = $1`, userFields)
	return scanUser(r.storage.QueryRow(ctx, query, username))
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userFields)
	return scanUser(r.storage.QueryRow(ctx, query, id))
}

func (r *UserRepository) CreateUser(ctx context.Context, user entities.User) (uint64, error) {
	query := `
		INSERT INTO users (username, password, name, role, avatar_url, team_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	role := user.Role
	if role == "" {
		role = constants.RoleTechnician
	}

	var id uint64
	err := r.storage.QueryRow(ctx, query,
		user.Username, user.Password, user.Name, role, user.AvatarURL, user.TeamID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return 0, apperrors.ErrConflict
		}
		return 0, fmt.Errorf("ошибка создания пользователя: %w", err)
	}
	return id, nil
}

func (r *UserRepository) GetTechnicians(ctx context.Context) ([]entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE role = $1 ORDER BY name`, userFields)
	return r.queryUsers(ctx, query, constants.RoleTechnician)
}

func (r *UserRepository) GetTeamMembers(ctx context.Context, teamID uint64) ([]entities.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE team_id = $1 ORDER BY name`, userFields)
	return r.queryUsers(ctx, query, teamID)
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]entities.User, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения пользователей: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.Name, &u.Role, &u.AvatarURL, &u.TeamID); err != nil {
			return nil, fmt.Errorf("ошибка сканирования пользователя в списке: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
