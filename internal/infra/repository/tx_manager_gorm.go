package repository

import (
	"context"

	repo "shop/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products repo.ProductRepository
	carts    repo.CartRepository
	orders   repo.OrderRepository
}

func (r *txReposGorm) Products() repo.ProductRepository { return r.products }
func (r *txReposGorm) Carts() repo.CartRepository       { return r.carts }
func (r *txReposGorm) Orders() repo.OrderRepository     { return r.orders }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products: NewProductGormRepository(tx),
			carts:    NewCartGormRepository(tx),
			orders:   NewOrderGormRepository(tx),
		}
		return fn(r)
	})
}
