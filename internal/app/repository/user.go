package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
)

// CreateUser - создание пользователя
func (r *Repository) CreateUser(user *ds.User) error {
	// Генерируем UUID если он не задан
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return r.db.Create(user).Error
}

// GetUser - получение пользователя по ID
func (r *Repository) GetUser(id string) (ds.User, error) {
	var user ds.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.User{}, ds.ErrNotFound
	}
	if err != nil {
		return ds.User{}, err
	}
	return user, nil
}

// GetUserByTel - получение пользователя по телефону (уникален среди активных)
func (r *Repository) GetUserByTel(tel string) (ds.User, error) {
	var user ds.User
	err := r.db.Where("tel = ?", tel).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.User{}, ds.ErrNotFound
	}
	if err != nil {
		return ds.User{}, err
	}
	return user, nil
}

// UpdateUser - обновление пользователя
func (r *Repository) UpdateUser(user *ds.User) error {
	return r.db.Save(user).Error
}

// DeleteUser - мягкое удаление пользователя
func (r *Repository) DeleteUser(id string) error {
	res := r.db.Where("id = ?", id).Delete(&ds.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ds.ErrNotFound
	}
	return nil
}
