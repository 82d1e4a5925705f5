package usecase

import (
	"context"
	"errors"
	"time"

	"shop/internal/domain/model"
	repo "shop/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// OrderUsecase はチェックアウトと注文履歴を持つ。
type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderLineOutput struct {
	ProductID  int64     `json:"product_id"`
	Name       string    `json:"name"`
	Quantity   int64     `json:"quantity"`
	TotalPrice float64   `json:"total_price"`
	OrderDate  time.Time `json:"order_date"`
	OrderRef   string    `json:"order_ref"`
}

type CheckoutOutput struct {
	OrderRef string            `json:"order_ref"`
	Lines    []OrderLineOutput `json:"lines"`
	Total    float64           `json:"total"`
}

// Checkout はカート全明細を注文明細へ変換し、カートを空にする。
// 全体が1トランザクション。途中で商品が消えていたら何も残さず失敗する。
// 空カートは何もしないで成功。
func (u *OrderUsecase) Checkout(ctx context.Context, userID int64) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, ErrValidation
	}

	var out CheckoutOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.Carts().ListByUserID(ctx, userID)
		if err != nil {
			return ErrInternal
		}
		if len(items) == 0 {
			out = CheckoutOutput{Lines: []OrderLineOutput{}}
			return nil
		}

		ref := uuid.NewString()
		now := time.Now()

		orderLines := make([]model.OrderLine, 0, len(items))
		outLines := make([]OrderLineOutput, 0, len(items))

		for _, it := range items {
			// 価格は「確定時点」のproductsの値のスナップショット
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return ErrProductNotFound
			}
			if err != nil {
				return ErrInternal
			}

			lineTotal := float64(it.Quantity) * p.Price

			orderLines = append(orderLines, model.OrderLine{
				OrderRef:   ref,
				UserID:     userID,
				ProductID:  it.ProductID,
				Quantity:   it.Quantity,
				TotalPrice: lineTotal,
				OrderDate:  now,
			})

			outLines = append(outLines, OrderLineOutput{
				ProductID:  it.ProductID,
				Name:       p.Name,
				Quantity:   it.Quantity,
				TotalPrice: lineTotal,
				OrderDate:  now,
				OrderRef:   ref,
			})
		}

		if err := r.Orders().CreateBulk(ctx, orderLines); err != nil {
			return ErrInternal
		}

		// 明細を作ったら同じTxでカートをクリア（二重注文防止）
		if err := r.Carts().ClearByUserID(ctx, userID); err != nil {
			return ErrInternal
		}

		out = CheckoutOutput{
			OrderRef: ref,
			Lines:    outLines,
			Total:    lo.SumBy(outLines, func(l OrderLineOutput) float64 { return l.TotalPrice }),
		}
		return nil
	})

	if err != nil {
		return CheckoutOutput{}, err
	}
	return out, nil
}

// ListOrders はユーザーの注文明細を新しい順に返す。商品名は表示用に解決する。
func (u *OrderUsecase) ListOrders(ctx context.Context, userID int64) ([]OrderLineOutput, error) {
	if userID <= 0 {
		return []OrderLineOutput{}, ErrValidation
	}

	var outs []OrderLineOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		lines, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return ErrInternal
		}

		outs = make([]OrderLineOutput, 0, len(lines))
		for _, l := range lines {
			name := ""
			if p, err := r.Products().FindByID(ctx, l.ProductID); err == nil {
				name = p.Name
			}
			outs = append(outs, OrderLineOutput{
				ProductID:  l.ProductID,
				Name:       name,
				Quantity:   l.Quantity,
				TotalPrice: l.TotalPrice,
				OrderDate:  l.OrderDate,
				OrderRef:   l.OrderRef,
			})
		}
		return nil
	})

	if err != nil {
		return []OrderLineOutput{}, err
	}
	return outs, nil
}
