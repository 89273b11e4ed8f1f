package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/sureshift/backend/internal/domain/errors"
	"github.com/sureshift/backend/internal/domain/model"
	"github.com/sureshift/backend/internal/domain/repository"
)

const uniqueViolationCode = "23505"

// Pool abstracts the pgxpool operations used by the storage layer.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type adminRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type statusRepository struct {
	storage *Storage
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
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
func (s *Storage) Admins() repository.AdminRepository {
	return &adminRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Statuses() repository.StatusRepository {
	return &statusRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS admins (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            order_id VARCHAR(20) UNIQUE NOT NULL,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL,
            pickup_date DATE NOT NULL,
            pickup_time TEXT NOT NULL,
            pickup_address TEXT NOT NULL,
            drop_address TEXT NOT NULL,
            purpose TEXT NOT NULL,
            entry_date DATE NOT NULL DEFAULT CURRENT_DATE
        )`,
		`CREATE TABLE IF NOT EXISTS status (
            id SERIAL PRIMARY KEY,
            order_id VARCHAR(20) UNIQUE,
            status TEXT NOT NULL
        )`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- AdminRepository implementation ---

func (r *adminRepository) Create(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	const query = `INSERT INTO admins (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, username, passwordHash).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	a.Username = username
	a.PasswordHash = passwordHash
	return &a, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	const query = `SELECT id, username, password_hash, created_at FROM admins WHERE username=$1`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*model.Admin, error) {
	const query = `SELECT id, username, password_hash, created_at FROM admins WHERE id=$1`
	var a model.Admin
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (order_id, name, email, phone, pickup_date, pickup_time, pickup_address, drop_address, purpose)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING id, entry_date`
	err := r.storage.pool.QueryRow(ctx, query,
		order.OrderID, order.Name, order.Email, order.Phone,
		order.PickupDate, order.PickupTime, order.PickupAddress,
		order.DropAddress, order.Purpose,
	).Scan(&order.ID, &order.EntryDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, order_id, name, email, phone, pickup_date, pickup_time,
                          pickup_address, drop_address, purpose, entry_date
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.OrderID, &o.Name, &o.Email, &o.Phone,
		&o.PickupDate, &o.PickupTime, &o.PickupAddress,
		&o.DropAddress, &o.Purpose, &o.EntryDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

// viewQuery joins orders with their current status. The join is a full outer
// join keyed on order_id: no foreign key constrains the status table, so rows
// may exist on either side without a counterpart.
const viewQuery = `SELECT o.id, o.order_id, o.name, o.email, o.phone, o.pickup_date, o.pickup_time,
                          o.pickup_address, o.drop_address, o.purpose, o.entry_date,
                          s.order_id, s.status
                   FROM orders AS o
                   FULL OUTER JOIN status AS s ON o.order_id = s.order_id`

func (r *orderRepository) ListWithStatus(ctx context.Context) ([]model.OrderStatusView, error) {
	rows, err := r.storage.pool.Query(ctx, viewQuery+` ORDER BY o.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderStatusView
	for rows.Next() {
		view, err := scanView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) GetViewByOrderID(ctx context.Context, orderID string) (*model.OrderStatusView, error) {
	rows, err := r.storage.pool.Query(ctx, viewQuery+` WHERE o.order_id = $1 OR s.order_id = $1`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domainErrors.ErrNotFound
	}

	view, err := scanView(rows)
	if err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return view, nil
}

func scanView(rows pgx.Rows) (*model.OrderStatusView, error) {
	var (
		id            *int64
		orderID       *string
		name          *string
		email         *string
		phone         *string
		pickupDate    *time.Time
		pickupTime    *string
		pickupAddress *string
		dropAddress   *string
		purpose       *string
		entryDate     *time.Time
		statusOrderID *string
		status        *string
	)

	if err := rows.Scan(&id, &orderID, &name, &email, &phone, &pickupDate, &pickupTime,
		&pickupAddress, &dropAddress, &purpose, &entryDate, &statusOrderID, &status); err != nil {
		return nil, err
	}

	view := model.OrderStatusView{Status: status}
	if id != nil {
		view.Order = &model.Order{
			ID:            *id,
			OrderID:       *orderID,
			Name:          *name,
			Email:         *email,
			Phone:         *phone,
			PickupDate:    *pickupDate,
			PickupTime:    *pickupTime,
			PickupAddress: *pickupAddress,
			DropAddress:   *dropAddress,
			Purpose:       *purpose,
			EntryDate:     *entryDate,
		}
		view.OrderID = *orderID
	}
	if statusOrderID != nil {
		view.OrderID = *statusOrderID
	}
	return &view, nil
}

// --- StatusRepository implementation ---

func (r *statusRepository) Upsert(ctx context.Context, orderID, status string) error {
	const query = `INSERT INTO status (order_id, status)
                   VALUES ($1, $2)
                   ON CONFLICT (order_id)
                   DO UPDATE SET status = EXCLUDED.status`
	_, err := r.storage.pool.Exec(ctx, query, orderID, status)
	return err
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
