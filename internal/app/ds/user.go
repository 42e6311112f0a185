package ds

import (
	"time"

	"gorm.io/gorm"
)

// Роли пользователей системы
const (
	RoleAdmin = "admin" // администратор: полный доступ к каталогу и заказам
	RoleUser  = "user"  // обычный сотрудник: только просмотр каталога
)

// User — пользователь системы. Телефон уникален среди активных пользователей.
type User struct {
	ID        string         `json:"id" gorm:"primaryKey;type:text"`
	Name      string         `json:"name" gorm:"not null"`
	Tel       string         `json:"tel" gorm:"not null;index"`
	Role      string         `json:"role" gorm:"not null"`
	Password  string         `json:"-" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string { return "users" }

// IsAdmin - проверка роли администратора
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
