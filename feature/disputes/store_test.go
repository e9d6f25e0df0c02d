package disputes

import (
	"context"
	"testing"

	"dispute-reconciler/core/database"
	"dispute-reconciler/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupStore opens a fresh in-memory sqlite store, migrated and seeded.
func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := NewStore(db, zap.NewNop())
	require.NoError(t, store.Migrate(context.Background()))
	_, err = store.Seed(context.Background())
	require.NoError(t, err)
	return store
}

// setupMockDB creates a mock GORM DB using the mysql dialector.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}
	return gormDB, mock
}

func TestStore_Seed(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "case_001", all[0].DisputeID)
	assert.True(t, all[0].Amount.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Product Not Received", all[1].Reason)

	// Seeding a populated table is a no-op.
	n, err := store.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_GetByID(t *testing.T) {
	store := setupStore(t)

	d, err := store.GetByID(context.Background(), "case_004")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "txn_007", d.TransactionID)

	d, err = store.GetByID(context.Background(), "case_999")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestStore_GetByStatus(t *testing.T) {
	store := setupStore(t)

	open, err := store.GetByStatus(context.Background(), "OPEN")
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, "case_001", open[0].DisputeID)
	assert.Equal(t, "case_004", open[1].DisputeID)

	won, err := store.GetByStatus(context.Background(), "won")
	require.NoError(t, err)
	assert.Empty(t, won)
}

func TestStore_Add(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	d := reconcile.Dispute{DisputeID: "case_010", TransactionID: "txn_010", Amount: decimal.RequireFromString("12.34"), Currency: "EUR", Status: "Open", Reason: "Fraud"}
	require.NoError(t, store.Add(ctx, d))

	got, err := store.GetByID(ctx, "case_010")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Amount.Equal(d.Amount))
	assert.Equal(t, "EUR", got.Currency)

	err = store.Add(ctx, d)
	assert.ErrorIs(t, err, ErrExists)
}

func TestStore_Update(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	updated, err := store.Update(ctx, reconcile.Dispute{DisputeID: "case_001", TransactionID: "txn_001", Amount: decimal.NewFromInt(120), Currency: "USD", Status: "Won", Reason: "Fraud"})
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := store.GetByID(ctx, "case_001")
	require.NoError(t, err)
	assert.Equal(t, "Won", got.Status)
	assert.True(t, got.Amount.Equal(decimal.NewFromInt(120)))

	updated, err = store.Update(ctx, reconcile.Dispute{DisputeID: "ghost"})
	require.NoError(t, err)
	assert.False(t, updated)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStore_VerifySchema(t *testing.T) {
	t.Run("SQLite", func(t *testing.T) {
		assert.NoError(t, setupStore(t).VerifySchema())
	})

	t.Run("MySQLMissingColumn", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `disputes`").WillReturnRows(
			sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
				AddRow("dispute_id", "varchar(64)", "NO", "PRI", nil, "").
				AddRow("transaction_id", "varchar(64)", "YES", "", nil, "").
				AddRow("amount", "varchar(64)", "YES", "", nil, "").
				AddRow("currency", "varchar(8)", "YES", "", nil, "").
				AddRow("status", "varchar(32)", "YES", "MUL", nil, ""))

		err := NewStore(db, nil).VerifySchema()
		assert.ErrorIs(t, err, ErrSchemaMismatch)
		assert.ErrorContains(t, err, "reason")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_MySQL(t *testing.T) {
	t.Run("GetAll", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `disputes` ORDER BY dispute_id").WillReturnRows(
			sqlmock.NewRows([]string{"dispute_id", "transaction_id", "amount", "currency", "status", "reason"}).
				AddRow("case_001", "txn_001", "100.00", "USD", "Open", "Fraud"))

		all, err := NewStore(db, nil).GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.True(t, all[0].Amount.Equal(decimal.NewFromInt(100)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetAllError", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `disputes`").WillReturnError(assert.AnError)

		_, err := NewStore(db, nil).GetAll(context.Background())
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SELECT \\* FROM `disputes` WHERE dispute_id = \\?").
			WillReturnRows(sqlmock.NewRows([]string{"dispute_id"}))

		d, err := NewStore(db, nil).GetByID(context.Background(), "case_404")
		require.NoError(t, err)
		assert.Nil(t, d)
	})
}
