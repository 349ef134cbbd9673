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

	domainErrors "github.com/grocermart/partnersync/internal/domain/errors"
	"github.com/grocermart/partnersync/internal/domain/model"
	"github.com/grocermart/partnersync/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage uses, kept as an
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

type orderRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type storeRepository struct {
	storage *Storage
}

type deliveryCenterRepository struct {
	storage *Storage
}

type userRepository struct {
	storage *Storage
}

type taxRepository struct {
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
func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Stores() repository.StoreRepository {
	return &storeRepository{storage: s}
}

func (s *Storage) DeliveryCenters() repository.DeliveryCenterRepository {
	return &deliveryCenterRepository{storage: s}
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Taxes() repository.TaxRepository {
	return &taxRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS delivery_centers (
            code TEXT PRIMARY KEY,
            name TEXT NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS stores (
            code TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            delivery_center_code TEXT NOT NULL REFERENCES delivery_centers(code)
        )`,
		`CREATE TABLE IF NOT EXISTS users (
            email TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS taxes (
            code TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            rate DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            ean TEXT PRIMARY KEY,
            ref TEXT NOT NULL DEFAULT '',
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            unit_of_measure TEXT NOT NULL DEFAULT '',
            quantity_per_unit DOUBLE PRECISION NOT NULL DEFAULT 1,
            base_price DOUBLE PRECISION NOT NULL,
            tax_code TEXT NOT NULL REFERENCES taxes(code),
            active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS purchase_orders (
            id TEXT PRIMARY KEY,
            user_email TEXT NOT NULL REFERENCES users(email),
            store_code TEXT NOT NULL REFERENCES stores(code),
            status TEXT NOT NULL,
            subtotal DOUBLE PRECISION NOT NULL DEFAULT 0,
            tax_total DOUBLE PRECISION NOT NULL DEFAULT 0,
            final_total DOUBLE PRECISION NOT NULL DEFAULT 0,
            server_sent_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS purchase_order_items (
            order_id TEXT NOT NULL REFERENCES purchase_orders(id) ON DELETE CASCADE,
            position INT NOT NULL,
            ean TEXT NOT NULL,
            ref TEXT NOT NULL DEFAULT '',
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            unit_of_measure TEXT NOT NULL DEFAULT '',
            quantity_per_unit DOUBLE PRECISION NOT NULL DEFAULT 1,
            quantity INT NOT NULL,
            base_price DOUBLE PRECISION NOT NULL,
            tax_rate DOUBLE PRECISION NOT NULL,
            PRIMARY KEY (order_id, position)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_products_active ON products(active)`,
		`CREATE INDEX IF NOT EXISTS idx_purchase_orders_store ON purchase_orders(store_code)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	const query = `SELECT id, user_email, store_code, status, subtotal, tax_total, final_total,
                          server_sent_at, created_at, updated_at
                   FROM purchase_orders WHERE id=$1`
	var o model.PurchaseOrder
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserEmail, &o.StoreCode, &o.Status,
		&o.Subtotal, &o.TaxTotal, &o.FinalTotal,
		&o.ServerSentAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) GetItems(ctx context.Context, orderID string) ([]model.PurchaseOrderItem, error) {
	const query = `SELECT order_id, position, ean, ref, title, description, unit_of_measure,
                          quantity_per_unit, quantity, base_price, tax_rate
                   FROM purchase_order_items WHERE order_id=$1 ORDER BY position`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PurchaseOrderItem
	for rows.Next() {
		var it model.PurchaseOrderItem
		if err := rows.Scan(
			&it.OrderID, &it.Position, &it.EAN, &it.Ref, &it.Title, &it.Description,
			&it.UnitOfMeasure, &it.QuantityPerUnit, &it.Quantity, &it.BasePrice, &it.TaxRate,
		); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) MarkSentToPartner(ctx context.Context, id string, sentAt time.Time) error {
	const query = `UPDATE purchase_orders
                   SET server_sent_at=$2, status=$3, updated_at=NOW()
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, sentAt, model.OrderStatusSent)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ProductRepository implementation ---

const productColumns = `p.ean, p.ref, p.title, p.description, p.unit_of_measure,
                        p.quantity_per_unit, p.base_price, p.tax_code, t.rate,
                        p.active, p.created_at, p.updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.EAN, &p.Ref, &p.Title, &p.Description, &p.UnitOfMeasure,
		&p.QuantityPerUnit, &p.BasePrice, &p.TaxCode, &p.TaxRate,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) list(ctx context.Context, query string) ([]model.Product, error) {
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+`
                        FROM products p JOIN taxes t ON t.code = p.tax_code
                        ORDER BY p.ean`)
}

func (r *productRepository) ListActive(ctx context.Context) ([]model.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+`
                        FROM products p JOIN taxes t ON t.code = p.tax_code
                        WHERE p.active ORDER BY p.ean`)
}

func (r *productRepository) GetByEAN(ctx context.Context, ean string) (*model.Product, error) {
	const query = `SELECT ` + productColumns + `
                   FROM products p JOIN taxes t ON t.code = p.tax_code
                   WHERE p.ean=$1`
	p, err := scanProduct(r.storage.pool.QueryRow(ctx, query, ean))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// --- StoreRepository implementation ---

func (r *storeRepository) ListAll(ctx context.Context) ([]model.Store, error) {
	const query = `SELECT code, name, delivery_center_code FROM stores ORDER BY code`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Store
	for rows.Next() {
		var s model.Store
		if err := rows.Scan(&s.Code, &s.Name, &s.DeliveryCenterCode); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *storeRepository) GetByCode(ctx context.Context, code string) (*model.Store, error) {
	const query = `SELECT code, name, delivery_center_code FROM stores WHERE code=$1`
	var s model.Store
	err := r.storage.pool.QueryRow(ctx, query, code).Scan(&s.Code, &s.Name, &s.DeliveryCenterCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// --- DeliveryCenterRepository implementation ---

func (r *deliveryCenterRepository) ListAll(ctx context.Context) ([]model.DeliveryCenter, error) {
	const query = `SELECT code, name FROM delivery_centers ORDER BY code`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DeliveryCenter
	for rows.Next() {
		var dc model.DeliveryCenter
		if err := rows.Scan(&dc.Code, &dc.Name); err != nil {
			return nil, err
		}
		result = append(result, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *deliveryCenterRepository) GetByCode(ctx context.Context, code string) (*model.DeliveryCenter, error) {
	const query = `SELECT code, name FROM delivery_centers WHERE code=$1`
	var dc model.DeliveryCenter
	err := r.storage.pool.QueryRow(ctx, query, code).Scan(&dc.Code, &dc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &dc, nil
}

// --- UserRepository implementation ---

func (r *userRepository) ListAll(ctx context.Context) ([]model.User, error) {
	const query = `SELECT email, name, created_at FROM users ORDER BY email`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.Email, &u.Name, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT email, name, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- TaxRepository implementation ---

func (r *taxRepository) ListAll(ctx context.Context) ([]model.Tax, error) {
	const query = `SELECT code, name, rate FROM taxes ORDER BY code`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Tax
	for rows.Next() {
		var tax model.Tax
		if err := rows.Scan(&tax.Code, &tax.Name, &tax.Rate); err != nil {
			return nil, err
		}
		result = append(result, tax)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *taxRepository) GetByCode(ctx context.Context, code string) (*model.Tax, error) {
	const query = `SELECT code, name, rate FROM taxes WHERE code=$1`
	var tax model.Tax
	err := r.storage.pool.QueryRow(ctx, query, code).Scan(&tax.Code, &tax.Name, &tax.Rate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &tax, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}
