package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/ridloal/go-inventory-service/internal/platform/database"
	"github.com/ridloal/go-inventory-service/internal/product/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := database.Connect(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func setupRepo(t *testing.T) (ProductRepository, *sql.DB) {
	t.Helper()
	db := openTestDB(t, filepath.Join(t.TempDir(), "inventory.db"))
	repo := NewSQLiteProductRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo, db
}

func strPtr(s string) *string { return &s }

func TestInit_SeedsEmptyTable(t *testing.T) {
	repo, _ := setupRepo(t)

	products, err := repo.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestInit_IsIdempotent(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	// Second startup against the same database must not duplicate the
	// table or the seed rows.
	require.NoError(t, repo.Init(ctx))
	require.NoError(t, repo.Init(ctx))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestInit_NeverReseedsAfterChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.db")
	ctx := context.Background()

	db := openTestDB(t, path)
	repo := NewSQLiteProductRepository(db)
	require.NoError(t, repo.Init(ctx))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.DeleteProduct(ctx, products[0].ID))
	require.NoError(t, db.Close())

	// Simulated restart: a non-empty table must stay untouched.
	db2 := openTestDB(t, path)
	repo2 := NewSQLiteProductRepository(db2)
	require.NoError(t, repo2.Init(ctx))

	products, err = repo2.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestCreateProduct_GetRoundTrip(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	p := &domain.Product{
		Name:        "USB Hub",
		Category:    "Electronics",
		Quantity:    30,
		Price:       24.5,
		Description: strPtr("7-port hub"),
	}
	require.NoError(t, repo.CreateProduct(ctx, p))
	assert.NotZero(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())
	assert.False(t, p.UpdatedAt.IsZero())

	got, err := repo.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "USB Hub", got.Name)
	assert.Equal(t, "Electronics", got.Category)
	assert.Equal(t, 30, got.Quantity)
	assert.Equal(t, 24.5, got.Price)
	require.NotNil(t, got.Description)
	assert.Equal(t, "7-port hub", *got.Description)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestCreateProduct_NilDescription(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	p := &domain.Product{Name: "Desk Lamp", Category: "Furniture", Quantity: 3, Price: 35.0}
	require.NoError(t, repo.CreateProduct(ctx, p))

	got, err := repo.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
}

func TestGetProductByID_NotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.GetProductByID(context.Background(), 99999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProduct_ReplacesFieldsAndAdvancesUpdatedAt(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	p := &domain.Product{Name: "Monitor", Category: "Electronics", Quantity: 10, Price: 249.99}
	require.NoError(t, repo.CreateProduct(ctx, p))
	createdAt := p.CreatedAt
	updatedAt := p.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	updated := &domain.Product{
		ID:          p.ID,
		Name:        "Monitor 27\"",
		Category:    "Displays",
		Quantity:    7,
		Price:       219.99,
		Description: strPtr("IPS panel"),
	}
	require.NoError(t, repo.UpdateProduct(ctx, updated))

	got, err := repo.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monitor 27\"", got.Name)
	assert.Equal(t, "Displays", got.Category)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, 219.99, got.Price)
	require.NotNil(t, got.Description)
	assert.Equal(t, "IPS panel", *got.Description)
	assert.True(t, got.CreatedAt.Equal(createdAt), "created_at must never change")
	assert.True(t, got.UpdatedAt.After(updatedAt), "updated_at must advance on update")
}

func TestUpdateProduct_NotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	err := repo.UpdateProduct(context.Background(), &domain.Product{
		ID: 99999, Name: "Ghost", Category: "None", Quantity: 1, Price: 1,
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	p := &domain.Product{Name: "Cable", Category: "Electronics", Quantity: 100, Price: 4.99}
	require.NoError(t, repo.CreateProduct(ctx, p))

	require.NoError(t, repo.DeleteProduct(ctx, p.ID))

	_, err := repo.GetProductByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	// Deleting the same id again is not success.
	assert.ErrorIs(t, repo.DeleteProduct(ctx, p.ID), ErrProductNotFound)
}

func TestListProducts_OrderedByNewestFirst(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	a := &domain.Product{Name: "Product A", Category: "Test", Quantity: 1, Price: 1}
	require.NoError(t, repo.CreateProduct(ctx, a))
	time.Sleep(10 * time.Millisecond)
	b := &domain.Product{Name: "Product B", Category: "Test", Quantity: 1, Price: 1}
	require.NoError(t, repo.CreateProduct(ctx, b))

	products, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(products), 2)
	assert.Equal(t, "Product B", products[0].Name)
	assert.Equal(t, "Product A", products[1].Name)
}

func TestGetStats_EmptyTableIsAllZeros(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `DELETE FROM products`)
	require.NoError(t, err)

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalProducts)
	assert.Equal(t, int64(0), stats.TotalItems)
	assert.Equal(t, int64(0), stats.Categories)
	assert.Equal(t, 0.0, stats.TotalValue)
}

func TestGetStats_OverSeedData(t *testing.T) {
	repo, _ := setupRepo(t)

	stats, err := repo.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalProducts)
	assert.Equal(t, int64(388), stats.TotalItems)
	assert.Equal(t, int64(4), stats.Categories)
	expectedValue := 15*1299.99 + 45*29.99 + 8*199.99 + 120*12.99 + 200*8.99
	assert.InDelta(t, expectedValue, stats.TotalValue, 0.001)
}
