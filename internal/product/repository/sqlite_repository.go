package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ridloal/go-inventory-service/internal/platform/logger"
	"github.com/ridloal/go-inventory-service/internal/product/domain"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	Init(ctx context.Context) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*domain.Stats, error)
}

type sqliteProductRepository struct {
	db *sql.DB
}

func NewSQLiteProductRepository(db *sql.DB) ProductRepository {
	return &sqliteProductRepository{db: db}
}

// AUTOINCREMENT keeps ids from ever being reused after a delete.
const createTableStmt = `CREATE TABLE IF NOT EXISTS products (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	category TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price REAL NOT NULL,
	description TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

// Init creates the products table if it does not exist yet and seeds sample
// data when the table is empty. Safe to run on every startup.
func (r *sqliteProductRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableStmt); err != nil {
		logger.Error("Init: failed to create products table", err)
		return err
	}
	r.seedIfEmpty(ctx)
	return nil
}

var sampleProducts = []struct {
	name        string
	category    string
	quantity    int
	price       float64
	description string
}{
	{"Laptop Pro", "Electronics", 15, 1299.99, "High-performance laptop"},
	{"Wireless Mouse", "Electronics", 45, 29.99, "Ergonomic wireless mouse"},
	{"Office Chair", "Furniture", 8, 199.99, "Comfortable office chair"},
	{"Coffee Beans", "Food", 120, 12.99, "Premium coffee beans"},
	{"Notebook Set", "Office Supplies", 200, 8.99, "Pack of 3 notebooks"},
}

// seedIfEmpty inserts the sample data set, but only when no row exists yet.
// Seeding problems are logged and swallowed so they never block startup.
func (r *sqliteProductRepository) seedIfEmpty(ctx context.Context) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		logger.Error("seedIfEmpty: failed to check product count", err)
		return
	}
	if count > 0 {
		return
	}

	for _, sample := range sampleProducts {
		description := sample.description
		p := domain.Product{
			Name:        sample.name,
			Category:    sample.category,
			Quantity:    sample.quantity,
			Price:       sample.price,
			Description: &description,
		}
		if err := r.CreateProduct(ctx, &p); err != nil {
			logger.Error("seedIfEmpty: failed to insert sample product "+sample.name, err)
			return
		}
	}
	logger.Info("Seeded products table with %d sample products", len(sampleProducts))
}

func (r *sqliteProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT id, name, category, quantity, price, description, created_at, updated_at FROM products ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		var description sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Price, &description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			logger.Error("ListProducts: scan failed", err)
			return nil, err
		}
		if description.Valid {
			p.Description = &description.String
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		logger.Error("ListProducts: rows iteration error", err)
		return nil, err
	}
	return products, nil
}

func (r *sqliteProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT id, name, category, quantity, price, description, created_at, updated_at FROM products WHERE id = ?`
	var p domain.Product
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Price, &description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.Error("GetProductByID: query failed", err)
		return nil, err
	}
	if description.Valid {
		p.Description = &description.String
	}
	return &p, nil
}

func (r *sqliteProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	query := `INSERT INTO products (name, category, quantity, price, description, created_at, updated_at)
              VALUES (?, ?, ?, ?, ?, ?, ?)`
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	var description sql.NullString
	if product.Description != nil {
		description = sql.NullString{String: *product.Description, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.Category, product.Quantity, product.Price, description,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		logger.Error("CreateProduct: failed to insert product", err)
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		logger.Error("CreateProduct: failed to read generated id", err)
		return err
	}
	product.ID = id
	return nil
}

// UpdateProduct rewrites every mutable column of the row; created_at is left
// untouched and updated_at is refreshed even when nothing else changed.
func (r *sqliteProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query := `UPDATE products SET name = ?, category = ?, quantity = ?, price = ?, description = ?, updated_at = ? WHERE id = ?`
	product.UpdatedAt = time.Now().UTC()

	var description sql.NullString
	if product.Description != nil {
		description = sql.NullString{String: *product.Description, Valid: true}
	}

	res, err := r.db.ExecContext(ctx, query,
		product.Name, product.Category, product.Quantity, product.Price, description,
		product.UpdatedAt, product.ID,
	)
	if err != nil {
		logger.Error("UpdateProduct: failed to update product", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.Error("UpdateProduct: failed to read affected rows", err)
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *sqliteProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		logger.Error("DeleteProduct: failed to delete product", err)
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		logger.Error("DeleteProduct: failed to read affected rows", err)
		return err
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *sqliteProductRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	// SUM over zero rows is NULL in SQLite; COALESCE pins the aggregates to 0
	// so an empty table still yields a complete stats row.
	query := `SELECT
		COUNT(*) AS total_products,
		COALESCE(SUM(quantity), 0) AS total_items,
		COUNT(DISTINCT category) AS categories,
		COALESCE(SUM(quantity * price), 0) AS total_value
	FROM products`

	var s domain.Stats
	if err := r.db.QueryRowContext(ctx, query).Scan(&s.TotalProducts, &s.TotalItems, &s.Categories, &s.TotalValue); err != nil {
		logger.Error("GetStats: query failed", err)
		return nil, err
	}
	return &s, nil
}
