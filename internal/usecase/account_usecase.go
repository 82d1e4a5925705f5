package usecase

import (
	"context"
	"errors"

	"shop/internal/domain/model"
	"shop/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// usecaseがValidatorInterfaceに依存する約束
type AccountValidator interface {
	ValidateRegister(ctx context.Context, username string, password string) error
	ValidateLogin(ctx context.Context, username string, password string) error
}

type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AccountUsecase struct {
	users     repository.UserRepository
	validator AccountValidator
}

func NewAccountUsecase(users repository.UserRepository, validator AccountValidator) *AccountUsecase {
	return &AccountUsecase{users: users, validator: validator}
}

func (u *AccountUsecase) Register(ctx context.Context, in RegisterInput) (UserDTO, error) {
	// 入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, in.Username, in.Password); err != nil {
		return UserDTO{}, err
	}

	// パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserDTO{}, ErrInternal
	}

	user := &model.User{
		Username:     in.Username,
		PasswordHash: string(pwHash),
	}

	// 保存。unique違反はrepoが ErrDuplicateUsername で返す。
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return UserDTO{}, ErrDuplicateUsername
		}
		return UserDTO{}, ErrInternal
	}

	return toUserDTO(user), nil
}

// Login はIDを返すだけ。セッションやトークンは発行しない（呼び出し側が保持する）。
func (u *AccountUsecase) Login(ctx context.Context, in LoginInput) (UserDTO, error) {
	if err := u.validator.ValidateLogin(ctx, in.Username, in.Password); err != nil {
		return UserDTO{}, err
	}

	user, err := u.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return UserDTO{}, ErrInternal
	}
	if user == nil {
		return UserDTO{}, ErrInvalidCredentials
	}

	// パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return UserDTO{}, ErrInvalidCredentials
	}

	return toUserDTO(user), nil
}

func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
	}
}
