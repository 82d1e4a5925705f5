package usecase

import (
	"context"
	"errors"
	"strings"

	"shop/internal/domain/model"
	"shop/internal/repository"

	"github.com/samber/mo"
)

type CatalogUsecase struct {
	products repository.ProductRepository
}

func NewCatalogUsecase(products repository.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products}
}

type AddProductInput struct {
	Name        string
	Description string
	Price       float64
}

// 更新入力。mo.Option で「渡されなかった」と「ゼロ値を設定したい」を区別する。
// 空文字の名前や価格0も、Someで渡せば設定できる。
type UpdateProductInput struct {
	Name        mo.Option[string]
	Description mo.Option[string]
	Price       mo.Option[float64]
}

func (u *CatalogUsecase) AddProduct(ctx context.Context, in AddProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, ErrValidation
	}
	if in.Price < 0 {
		return model.Product{}, ErrValidation
	}

	p := model.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, ErrInternal
	}
	return created, nil
}

// UpdateProduct はSomeのフィールドだけ適用する。Noneは現状維持。
func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) error {
	if id <= 0 {
		return ErrValidation
	}

	fields := map[string]interface{}{}

	if name, ok := in.Name.Get(); ok {
		fields["name"] = name
	}
	if desc, ok := in.Description.Get(); ok {
		fields["description"] = desc
	}
	if price, ok := in.Price.Get(); ok {
		if price < 0 {
			return ErrValidation
		}
		fields["price"] = price
	}

	if err := u.products.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return ErrInternal
	}
	return nil
}

// ListProducts は全商品を登録順で返す。
func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.products.List(ctx)
	if err != nil {
		return []model.Product{}, ErrInternal
	}
	return products, nil
}
