package usecase

import "errors"

var (
	// 入力不足・形式不正
	ErrValidation = errors.New("validation error")
	// 認証失敗（どちらが間違いかは教えない）
	ErrInvalidCredentials = errors.New("invalid credentials")
	// 参照先の商品が無い
	ErrProductNotFound = errors.New("product not found")
	// ユーザー名が使用済み
	ErrDuplicateUsername = errors.New("username already exists")
	// DB等の内部failure
	ErrInternal = errors.New("internal error")
)
