package usecase_test

import (
	"context"
	"testing"

	"shop/internal/domain/model"
	"shop/internal/repository"
	"shop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartRepoMock) UpsertByUserAndProduct(ctx context.Context, userID int64, productID int64, addQty int64) error {
	args := m.Called(ctx, userID, productID, addQty)
	return args.Error(0)
}

func (m *CartRepoMock) ClearByUserID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestCartUsecase_AddToCart_Success(t *testing.T) {
	ctx := context.Background()
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	products.On("FindByID", mock.Anything, int64(3)).Return(model.Product{ID: 3, Name: "Tea", Price: 4.5}, nil)
	carts.On("UpsertByUserAndProduct", mock.Anything, int64(1), int64(3), int64(2)).Return(nil)

	err := uc.AddToCart(ctx, 1, usecase.AddToCartInput{ProductID: 3, Quantity: 2})
	assert.NoError(t, err)
	carts.AssertExpectations(t)
}

func TestCartUsecase_AddToCart_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repository.ErrNotFound)

	err := uc.AddToCart(ctx, 1, usecase.AddToCartInput{ProductID: 99, Quantity: 1})
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	carts.AssertNotCalled(t, "UpsertByUserAndProduct", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddToCart_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewCartUsecase(new(CartRepoMock), new(ProductRepoMock))

	err := uc.AddToCart(ctx, 1, usecase.AddToCartInput{ProductID: 3, Quantity: 0})
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestCartUsecase_ViewCart_Total(t *testing.T) {
	ctx := context.Background()
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 10, Quantity: 2},
		{ID: 2, UserID: 1, ProductID: 11, Quantity: 1},
	}, nil)
	products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "A", Price: 10.0}, nil)
	products.On("FindByID", mock.Anything, int64(11)).Return(model.Product{ID: 11, Name: "B", Price: 5.0}, nil)

	view, err := uc.ViewCart(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, view.Lines, 2)
	assert.InDelta(t, 25.0, view.Total, 1e-9)
	assert.InDelta(t, 20.0, view.Lines[0].LineTotal, 1e-9)
	assert.InDelta(t, 5.0, view.Lines[1].LineTotal, 1e-9)
}

// 読み取り専用：2回呼んでも同じ結果
func TestCartUsecase_ViewCart_Idempotent(t *testing.T) {
	ctx := context.Background()
	carts := new(CartRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(carts, products)

	carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 10, Quantity: 2},
	}, nil)
	products.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "A", Price: 10.0}, nil)

	first, err := uc.ViewCart(ctx, 1)
	assert.NoError(t, err)
	second, err := uc.ViewCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCartUsecase_ViewCart_Empty(t *testing.T) {
	ctx := context.Background()
	carts := new(CartRepoMock)
	uc := usecase.NewCartUsecase(carts, new(ProductRepoMock))

	carts.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	view, err := uc.ViewCart(ctx, 1)
	assert.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Zero(t, view.Total)
}
