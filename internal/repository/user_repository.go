package repository

import (
	"context"
	"errors"

	"shop/internal/domain/model"
)

// ユーザー名重複を統一
var ErrDuplicateUsername = errors.New("duplicate username")

// 保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。username 重複は ErrDuplicateUsername。
	Create(ctx context.Context, user *model.User) error
	// usernameからユーザーを1件取得する。見つからなければ nil, nil。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// IDからユーザーを1件取得する。
	FindByID(ctx context.Context, userID int64) (*model.User, error)
}
