package repository

import (
	"context"

	"shop/internal/domain/model"
)

type CartRepository interface {
	// ユーザーのカート明細をID順で一覧取得
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// 同一商品は数量加算
	UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) error
	// ユーザーの明細を全削除
	ClearByUserID(ctx context.Context, userID int64) error
}
