package usecase_test

import (
	"context"
	"testing"

	"shop/internal/domain/model"
	"shop/internal/repository"
	"shop/internal/usecase"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func TestCatalogUsecase_AddProduct_Success(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	in := model.Product{Name: "Coffee", Description: "beans", Price: 10.0}
	pRepo.On("Create", mock.Anything, in).Return(model.Product{ID: 1, Name: "Coffee", Description: "beans", Price: 10.0}, nil)

	created, err := uc.AddProduct(ctx, usecase.AddProductInput{Name: "Coffee", Description: "beans", Price: 10.0})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestCatalogUsecase_AddProduct_Invalid(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCatalogUsecase(new(ProductRepoMock))

	_, err := uc.AddProduct(ctx, usecase.AddProductInput{Name: "", Price: 10})
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = uc.AddProduct(ctx, usecase.AddProductInput{Name: "Coffee", Price: -1})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestCatalogUsecase_UpdateProduct_OnlyPrice(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	// Noneのフィールドはmapに現れない＝名前と説明は触らない
	pRepo.On("UpdateFields", mock.Anything, int64(1), map[string]interface{}{"price": 12.5}).Return(nil)

	err := uc.UpdateProduct(ctx, 1, usecase.UpdateProductInput{Price: mo.Some(12.5)})
	assert.NoError(t, err)
	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_UpdateProduct_ZeroPriceIsApplied(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	// Some(0) は「0円に設定」。Noneとは区別される。
	pRepo.On("UpdateFields", mock.Anything, int64(1), map[string]interface{}{"price": 0.0}).Return(nil)

	err := uc.UpdateProduct(ctx, 1, usecase.UpdateProductInput{Price: mo.Some(0.0)})
	assert.NoError(t, err)
	pRepo.AssertExpectations(t)
}

func TestCatalogUsecase_UpdateProduct_NothingToChange(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("UpdateFields", mock.Anything, int64(1), map[string]interface{}{}).Return(nil)

	err := uc.UpdateProduct(ctx, 1, usecase.UpdateProductInput{})
	assert.NoError(t, err)
}

func TestCatalogUsecase_UpdateProduct_NotFound(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	pRepo.On("UpdateFields", mock.Anything, int64(99), mock.Anything).Return(repository.ErrNotFound)

	err := uc.UpdateProduct(ctx, 99, usecase.UpdateProductInput{Name: mo.Some("x")})
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)
}

func TestCatalogUsecase_UpdateProduct_NegativePrice(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCatalogUsecase(new(ProductRepoMock))

	err := uc.UpdateProduct(ctx, 1, usecase.UpdateProductInput{Price: mo.Some(-5.0)})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestCatalogUsecase_ListProducts(t *testing.T) {
	ctx := context.Background()
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCatalogUsecase(pRepo)

	items := []model.Product{
		{ID: 1, Name: "A", Price: 10},
		{ID: 2, Name: "B", Price: 5},
	}
	pRepo.On("List", mock.Anything).Return(items, nil)

	out, err := uc.ListProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Name)
}
