package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/a957924278/mogutouERP-go/internal/app/auth"
	"github.com/a957924278/mogutouERP-go/internal/app/ds"
	"github.com/a957924278/mogutouERP-go/internal/app/ledger"
	"github.com/a957924278/mogutouERP-go/internal/app/repository"
)

// newTestRepo - репозиторий поверх sqlite в памяти
func newTestRepo(t *testing.T) *repository.Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&ds.User{},
		&ds.Commodity{},
		&ds.CustomerOrder{},
		&ds.CustomerOrderItem{},
		&ds.PurchaseOrder{},
		&ds.PurchaseOrderItem{},
	))

	return repository.NewWithDB(db)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", 15*time.Minute, 7*24*time.Hour)
}

func seedUser(t *testing.T, repo *repository.Repository, name, tel, role string) ds.User {
	t.Helper()

	user := ds.User{
		Name:     name,
		Tel:      tel,
		Role:     role,
		Password: "$2a$10$invalidhashforseedonly000000000000000000000000000000",
	}
	require.NoError(t, repo.CreateUser(&user))
	return user
}

func seedCommodity(t *testing.T, repo *repository.Repository, name string, number, presale int) ds.Commodity {
	t.Helper()

	c := ds.Commodity{
		Name:          name,
		Colour:        "black",
		Size:          "M",
		Brand:         "ACME",
		Number:        number,
		PresaleNumber: presale,
		Price:         100,
		PurchasePrice: 60,
	}
	require.NoError(t, repo.CreateCommodity(&c))
	return c
}

func getCommodity(t *testing.T, repo *repository.Repository, id int) ds.Commodity {
	t.Helper()

	c, err := repo.GetCommodity(id)
	require.NoError(t, err)
	return c
}

func newLedger() *ledger.Ledger {
	return ledger.NewLedger()
}
