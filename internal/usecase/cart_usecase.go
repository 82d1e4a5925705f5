package usecase

import (
	"context"
	"errors"

	"shop/internal/repository"

	"github.com/samber/lo"
)

// CartUsecase はカート閲覧・追加の業務ロジック。
// チェックアウトはトランザクション境界が要るので OrderUsecase が持つ。
type CartUsecase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartUsecase(carts repository.CartRepository, products repository.ProductRepository) *CartUsecase {
	return &CartUsecase{carts: carts, products: products}
}

type AddToCartInput struct {
	ProductID int64
	Quantity  int64
}

// price は「今の」商品価格。カートはスナップショットを持たない。
type CartLineView struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type CartView struct {
	Lines []CartLineView `json:"lines"`
	Total float64        `json:"total"`
}

// AddToCart はカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddToCartInput) error {
	if userID <= 0 {
		return ErrValidation
	}
	if in.ProductID <= 0 {
		return ErrValidation
	}
	if in.Quantity < 1 {
		return ErrValidation
	}

	// 商品の存在チェック
	if _, err := u.products.FindByID(ctx, in.ProductID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return ErrInternal
	}

	if err := u.carts.UpsertByUserAndProduct(ctx, userID, in.ProductID, in.Quantity); err != nil {
		return ErrInternal
	}
	return nil
}

// ViewCart は明細と合計を返す読み取り専用の操作。
// 合計 = Σ(数量 × 現在価格)。
func (u *CartUsecase) ViewCart(ctx context.Context, userID int64) (CartView, error) {
	if userID <= 0 {
		return CartView{}, ErrValidation
	}

	items, err := u.carts.ListByUserID(ctx, userID)
	if err != nil {
		return CartView{}, ErrInternal
	}

	lines := make([]CartLineView, 0, len(items))
	for _, it := range items {
		p, err := u.products.FindByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return CartView{}, ErrProductNotFound
			}
			return CartView{}, ErrInternal
		}

		lines = append(lines, CartLineView{
			ProductID: it.ProductID,
			Name:      p.Name,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
			LineTotal: float64(it.Quantity) * p.Price,
		})
	}

	total := lo.SumBy(lines, func(l CartLineView) float64 { return l.LineTotal })

	return CartView{Lines: lines, Total: total}, nil
}
