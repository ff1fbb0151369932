package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/fantamatto/fantamatto/internal/domain/errors"
	"github.com/fantamatto/fantamatto/internal/domain/model"
	"github.com/fantamatto/fantamatto/internal/domain/repository"
)

const (
	publicListLimit = 100
	adminListLimit  = 1000
)

// pgxPool is the subset of pgxpool.Pool the storage relies on, kept as an
// interface so tests can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type mattoRepository struct {
	storage *Storage
}

type statsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Matti() repository.MattoRepository {
	return &mattoRepository{storage: s}
}

func (s *Storage) Stats() repository.StatsRepository {
	return &statsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id TEXT PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            total_points BIGINT NOT NULL DEFAULT 0,
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS matti (
            id TEXT PRIMARY KEY,
            user_id TEXT NOT NULL,
            username TEXT NOT NULL,
            photo_data TEXT NOT NULL,
            nickname TEXT NOT NULL DEFAULT '',
            description TEXT NOT NULL DEFAULT '',
            rarity TEXT NOT NULL,
            points BIGINT NOT NULL,
            is_approved BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_users_points ON users(total_points DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_matti_created ON matti(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_matti_user ON matti(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const userColumns = `id, username, password_hash, total_points, is_active, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.TotalPoints, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3) RETURNING total_points, is_active, created_at`
	u := model.User{ID: uuid.NewString(), Username: username, PasswordHash: passwordHash}
	err := r.storage.pool.QueryRow(ctx, query, u.ID, username, passwordHash).Scan(&u.TotalPoints, &u.IsActive, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) Leaderboard(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE is_active
                   ORDER BY total_points DESC LIMIT $1`
	return r.queryUsers(ctx, query, publicListLimit)
}

func (r *userRepository) ListAll(ctx context.Context) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users
                   ORDER BY created_at DESC LIMIT $1`
	return r.queryUsers(ctx, query, adminListLimit)
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...any) ([]model.User, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.TotalPoints, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, id string, update model.UserUpdate) (*model.User, error) {
	set := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if update.Username != nil {
		add("username", *update.Username)
	}
	if update.PasswordHash != nil {
		add("password_hash", *update.PasswordHash)
	}
	if update.TotalPoints != nil {
		add("total_points", *update.TotalPoints)
	}
	if update.IsActive != nil {
		add("is_active", *update.IsActive)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id=$%d RETURNING %s`, strings.Join(set, ", "), len(args), userColumns)

	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, args...))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// AdjustPoints applies delta to the user's running total with a single
// atomic increment, so concurrent adjustments compose instead of racing.
func (r *userRepository) AdjustPoints(ctx context.Context, id string, delta int64) error {
	const query = `UPDATE users SET total_points = total_points + $2 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) ResetAllPoints(ctx context.Context) error {
	const query = `UPDATE users SET total_points = 0`
	_, err := r.storage.pool.Exec(ctx, query)
	return err
}

// --- MattoRepository implementation ---

const mattoColumns = `id, user_id, username, photo_data, nickname, description, rarity, points, is_approved, created_at`

func scanMatto(row pgx.Row) (*model.Matto, error) {
	var m model.Matto
	err := row.Scan(&m.ID, &m.UserID, &m.Username, &m.PhotoData, &m.Nickname, &m.Description, &m.Rarity, &m.Points, &m.IsApproved, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *mattoRepository) Create(ctx context.Context, matto *model.Matto) (*model.Matto, error) {
	const query = `INSERT INTO matti (id, user_id, username, photo_data, nickname, description, rarity, points, is_approved)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING created_at`
	created := *matto
	created.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query,
		created.ID, created.UserID, created.Username, created.PhotoData,
		created.Nickname, created.Description, created.Rarity, created.Points, created.IsApproved,
	).Scan(&created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *mattoRepository) GetByID(ctx context.Context, id string) (*model.Matto, error) {
	const query = `SELECT ` + mattoColumns + ` FROM matti WHERE id=$1`
	return scanMatto(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *mattoRepository) ListApproved(ctx context.Context) ([]model.Matto, error) {
	const query = `SELECT ` + mattoColumns + ` FROM matti WHERE is_approved
                   ORDER BY created_at DESC LIMIT $1`
	return r.queryMatti(ctx, query, publicListLimit)
}

func (r *mattoRepository) ListApprovedByUser(ctx context.Context, userID string) ([]model.Matto, error) {
	const query = `SELECT ` + mattoColumns + ` FROM matti WHERE user_id=$1 AND is_approved
                   ORDER BY created_at DESC LIMIT $2`
	return r.queryMatti(ctx, query, userID, publicListLimit)
}

func (r *mattoRepository) ListAll(ctx context.Context) ([]model.Matto, error) {
	const query = `SELECT ` + mattoColumns + ` FROM matti
                   ORDER BY created_at DESC LIMIT $1`
	return r.queryMatti(ctx, query, adminListLimit)
}

func (r *mattoRepository) queryMatti(ctx context.Context, query string, args ...any) ([]model.Matto, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Matto
	for rows.Next() {
		var m model.Matto
		if err := rows.Scan(&m.ID, &m.UserID, &m.Username, &m.PhotoData, &m.Nickname, &m.Description, &m.Rarity, &m.Points, &m.IsApproved, &m.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *mattoRepository) Update(ctx context.Context, id string, update model.MattoUpdate) (*model.Matto, error) {
	set := make([]string, 0, 5)
	args := make([]any, 0, 6)
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s=$%d", column, len(args)))
	}

	if update.Nickname != nil {
		add("nickname", *update.Nickname)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Rarity != nil {
		add("rarity", *update.Rarity)
	}
	if update.IsApproved != nil {
		add("is_approved", *update.IsApproved)
	}
	if update.Points != nil {
		add("points", *update.Points)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE matti SET %s WHERE id=$%d RETURNING %s`, strings.Join(set, ", "), len(args), mattoColumns)
	return scanMatto(r.storage.pool.QueryRow(ctx, query, args...))
}

func (r *mattoRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM matti WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *mattoRepository) DeleteByUser(ctx context.Context, userID string) error {
	const query = `DELETE FROM matti WHERE user_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, userID)
	return err
}

// --- StatsRepository implementation ---

func (r *statsRepository) Collect(ctx context.Context) (*model.Stats, error) {
	const query = `SELECT
                     (SELECT COUNT(*) FROM users),
                     (SELECT COUNT(*) FROM matti),
                     (SELECT COALESCE(SUM(total_points), 0) FROM users),
                     (SELECT COUNT(*) FROM matti WHERE NOT is_approved)`
	var stats model.Stats
	err := r.storage.pool.QueryRow(ctx, query).Scan(&stats.TotalUsers, &stats.TotalMatti, &stats.TotalPoints, &stats.PendingMatti)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
