package repository

import (
	"context"

	"shop/internal/domain/model"
)

type OrderRepository interface {
	// 1回のチェックアウト分をまとめて作成
	CreateBulk(ctx context.Context, lines []model.OrderLine) error
	// ユーザーの注文明細を新しい順に返す
	ListByUserID(ctx context.Context, userID int64) ([]model.OrderLine, error)
}
