package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/yatube/internal/model"
	"github.com/d60-Lab/yatube/internal/repository"
)

var ErrBadCredentials = errors.New("bad credentials")

// UserService 最小身份服务：注册与口令校验，签发逻辑在 middleware/auth
type UserService interface {
	Signup(ctx context.Context, username, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Signup(ctx context.Context, username, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &model.User{Username: username, Email: email, Password: string(hash)}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err)
	}
	return u, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, asNotFound(err)
	}
	return u, nil
}
