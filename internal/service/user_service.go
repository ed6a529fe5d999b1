package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mini-mall-api/internal/domain"
	"mini-mall-api/pkg/utils"
)

type UpdateUserInput struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	FullName *string `json:"fullName" binding:"omitempty,max=100"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

type UserService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserService(users domain.UserRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) List(ctx context.Context, q string, offset, limit int) ([]domain.User, int64, error) {
	return s.users.List(ctx, q, offset, limit)
}

func (s *UserService) Get(ctx context.Context, id uint) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
	}
	return u, nil
}

// UpdateMe 用户改自己的资料；换邮箱要查重
func (s *UserService) UpdateMe(ctx context.Context, actor *domain.User, in UpdateUserInput) (*domain.User, error) {
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != actor.Email {
			existing, err := s.users.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
			}
			actor.Email = email
		}
	}
	if in.FullName != nil {
		actor.FullName = *in.FullName
	}
	if in.Password != nil {
		actor.PasswordHash = utils.HashPassword(*in.Password)
	}
	if err := s.users.Update(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

// SetActive 管理端启用/停用账号，用户从不物理删除
func (s *UserService) SetActive(ctx context.Context, id uint, active bool) (*domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsActive = active
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user active toggled", zap.Uint("uid", id), zap.Bool("active", active))
	return u, nil
}

// SetAdmin 管理端授予/收回管理员
func (s *UserService) SetAdmin(ctx context.Context, id uint, admin bool) (*domain.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	u.IsAdmin = admin
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user admin toggled", zap.Uint("uid", id), zap.Bool("admin", admin))
	return u, nil
}
