package repository

import (
	"context"

	"shop/internal/domain/model"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 注文明細一括作成
func (r *OrderGormRepository) CreateBulk(ctx context.Context, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

func (r *OrderGormRepository) ListByUserID(ctx context.Context, userID int64) ([]model.OrderLine, error) {
	var lines []model.OrderLine

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&lines).Error
	if err != nil {
		return []model.OrderLine{}, err
	}

	return lines, nil
}
