package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mini-mall-api/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateWithItems 订单头和明细在同一事务内显式写入：
// 任何一步失败整体回滚，不会出现有头无明细或孤儿明细
func (r *OrderRepo) CreateWithItems(ctx context.Context, o *domain.Order) error {
	items := o.Items
	o.Items = nil
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = o.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	o.Items = items
	return err
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &o, err
}

func (r *OrderRepo) List(ctx context.Context, f domain.OrderFilter, offset, limit int) ([]domain.Order, int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Order{})
	if f.UserID != 0 {
		tx = tx.Where("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		tx = tx.Where("status = ?", f.Status)
	}
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []domain.Order
	if err := tx.Preload("Items").Offset(offset).Limit(limit).Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// Update 只落头部字段，不触碰明细（总额和快照价在创建后不变）
func (r *OrderRepo) Update(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Omit("Items", "TotalAmount").Save(o).Error
}

// Delete 连同明细一起删除（级联归属）
func (r *OrderRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&domain.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&domain.Order{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
