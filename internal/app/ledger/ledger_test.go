package ledger

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Одно подключение, иначе :memory: у каждого подключения своя
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&ds.Commodity{}))
	return db
}

func seedCommodity(t *testing.T, db *gorm.DB, number, presale, sales int) ds.Commodity {
	t.Helper()

	c := ds.Commodity{
		Name:          "Стол",
		Colour:        "white",
		Size:          "120x60",
		Brand:         "IKEA",
		Number:        number,
		PresaleNumber: presale,
		SalesVolume:   sales,
		Price:         4990,
		PurchasePrice: 3100,
	}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func getCommodity(t *testing.T, db *gorm.DB, id int) ds.Commodity {
	t.Helper()

	var c ds.Commodity
	require.NoError(t, db.Where("id = ?", id).First(&c).Error)
	return c
}

func TestReservePresale(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	c := seedCommodity(t, db, 100, 10, 0)

	require.NoError(t, l.ReservePresale(db, c.ID, 5))

	got := getCommodity(t, db, c.ID)
	assert.Equal(t, 100, got.Number)
	assert.Equal(t, 15, got.PresaleNumber)
	assert.Equal(t, 0, got.SalesVolume)
}

func TestReservePresaleMayExceedStock(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	c := seedCommodity(t, db, 3, 0, 0)

	// Резерв не ограничен физическим остатком
	require.NoError(t, l.ReservePresale(db, c.ID, 50))

	got := getCommodity(t, db, c.ID)
	assert.Equal(t, 3, got.Number)
	assert.Equal(t, 50, got.PresaleNumber)
}

func TestReservePresaleUnknownCommodity(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	err := l.ReservePresale(db, 42, 1)
	assert.ErrorIs(t, err, ds.ErrNotFound)
}

func TestReleasePresale(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	c := seedCommodity(t, db, 100, 15, 0)

	require.NoError(t, l.ReleasePresale(db, c.ID, 5))

	got := getCommodity(t, db, c.ID)
	assert.Equal(t, 10, got.PresaleNumber)
}

func TestReleasePresaleClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	c := seedCommodity(t, db, 100, 3, 0)

	require.NoError(t, l.ReleasePresale(db, c.ID, 10))

	got := getCommodity(t, db, c.ID)
	assert.Equal(t, 0, got.PresaleNumber)
}

func TestReleasePresaleDeletedCommodityIsNoop(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	c := seedCommodity(t, db, 100, 10, 0)
	require.NoError(t, db.Delete(&ds.Commodity{}, c.ID).Error)

	// Товар мягко удалён — возврат резерва молча пропускается
	assert.NoError(t, l.ReleasePresale(db, c.ID, 5))
}

func TestConfirmCustomerSale(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	c := seedCommodity(t, db, 100, 15, 7)

	require.NoError(t, l.ConfirmCustomerSale(db, c.ID, 5))

	got := getCommodity(t, db, c.ID)
	assert.Equal(t, 95, got.Number)
	assert.Equal(t, 10, got.PresaleNumber)
	assert.Equal(t, 12, got.SalesVolume)
}

func TestConfirmCustomerSaleInsufficientStock(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	c := seedCommodity(t, db, 2, 5, 0)

	err := l.ConfirmCustomerSale(db, c.ID, 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ds.ErrInsufficientStock)

	var insufficient *ds.InsufficientStockError
	require.True(t, errors.As(err, &insufficient))
	assert.Equal(t, c.ID, insufficient.CommodityID)
	assert.Equal(t, "Стол", insufficient.Name)
	assert.Equal(t, 2, insufficient.Stock)
	assert.Equal(t, 5, insufficient.Requested)

	// Счётчики не изменились
	got := getCommodity(t, db, c.ID)
	assert.Equal(t, 2, got.Number)
	assert.Equal(t, 5, got.PresaleNumber)
	assert.Equal(t, 0, got.SalesVolume)
}

func TestConfirmCustomerSalePresaleClampsAtZero(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	// Резерв меньше списываемого количества
	c := seedCommodity(t, db, 100, 2, 0)

	require.NoError(t, l.ConfirmCustomerSale(db, c.ID, 5))

	got := getCommodity(t, db, c.ID)
	assert.Equal(t, 95, got.Number)
	assert.Equal(t, 0, got.PresaleNumber)
	assert.Equal(t, 5, got.SalesVolume)
}

func TestConfirmPurchaseReceipt(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	c := seedCommodity(t, db, 50, 0, 0)

	require.NoError(t, l.ConfirmPurchaseReceipt(db, c.ID, 20))

	got := getCommodity(t, db, c.ID)
	assert.Equal(t, 70, got.Number)
	assert.Equal(t, 0, got.PresaleNumber)
	assert.Equal(t, 0, got.SalesVolume)
}

func TestConfirmPurchaseReceiptUnknownCommodity(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger()

	err := l.ConfirmPurchaseReceipt(db, 42, 20)
	assert.ErrorIs(t, err, ds.ErrNotFound)
}
