package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	// 全商品をID順で返す。
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	// 渡されたフィールドだけを更新する。空mapはそのまま成功。
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
}
