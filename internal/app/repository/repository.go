package repository

import (
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Repository — доступ к БД через GORM. Все лукапы автоматически исключают
// мягко удалённые строки (gorm.DeletedAt).
type Repository struct {
	db *gorm.DB
}

// New - подключение к Postgres
func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	return &Repository{db: db}, nil
}

// NewWithDB - создание репозитория поверх готового подключения (тесты)
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTransaction - координатор транзакций: fn выполняется в одной
// транзакции, любая ошибка откатывает её целиком и возвращается без изменений.
func (r *Repository) WithTransaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// DB - прямой доступ к подключению (для нетранзакционных выборок)
func (r *Repository) DB() *gorm.DB {
	return r.db
}
