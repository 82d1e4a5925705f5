package validator

import (
	"context"
	"strings"

	"shop/internal/usecase"
)

type accountValidator struct{}

// Usecaseは interface を依存注入
func NewAccountValidator() usecase.AccountValidator {
	return &accountValidator{}
}

// 会員登録の入力を検証。重複チェックはDBのunique制約に任せる。
func (v *accountValidator) ValidateRegister(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)

	// 必須チェック
	if username == "" || password == "" {
		return usecase.ErrValidation
	}

	if len(username) > 255 {
		return usecase.ErrValidation
	}

	return nil
}

// ログインの入力を検証
func (v *accountValidator) ValidateLogin(ctx context.Context, username string, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return usecase.ErrValidation
	}

	return nil
}
