package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/a957924278/mogutouERP-go/internal/app/ds"
)

// CreateCommodity - создание товара
func (r *Repository) CreateCommodity(c *ds.Commodity) error {
	return r.db.Create(c).Error
}

// GetCommodity - получение товара по ID (исключая удалённые)
func (r *Repository) GetCommodity(id int) (ds.Commodity, error) {
	var commodity ds.Commodity
	err := r.db.Where("id = ?", id).First(&commodity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ds.Commodity{}, ds.ErrNotFound
	}
	if err != nil {
		return ds.Commodity{}, err
	}
	return commodity, nil
}

// GetCommodities - постраничный список товаров с поиском по названию
func (r *Repository) GetCommodities(name string, page, limit int) ([]ds.Commodity, int64, error) {
	var commodities []ds.Commodity

	query := r.db.Model(&ds.Commodity{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Find(&commodities).Error; err != nil {
		return nil, 0, err
	}

	return commodities, total, nil
}

// UpdateCommodityFields - частичное обновление описательных полей товара
func (r *Repository) UpdateCommodityFields(id int, fields map[string]interface{}) (ds.Commodity, error) {
	res := r.db.Model(&ds.Commodity{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return ds.Commodity{}, res.Error
	}
	if res.RowsAffected == 0 {
		return ds.Commodity{}, ds.ErrNotFound
	}
	return r.GetCommodity(id)
}

// DeleteCommodity - мягкое удаление товара
func (r *Repository) DeleteCommodity(id int) error {
	res := r.db.Where("id = ?", id).Delete(&ds.Commodity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ds.ErrNotFound
	}
	return nil
}
