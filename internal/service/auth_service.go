package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mini-mall-api/internal/core/auth"
	"mini-mall-api/internal/domain"
	"mini-mall-api/pkg/utils"
)

type RegisterInput struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"omitempty,max=100"`
}

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, log: log}
}

// Authenticate 按用户名查找并校验密码。
// 用户不存在和密码错误返回同一个错误，不暴露差异
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		s.log.Warn("login failed", zap.String("username", username))
		return nil, domain.ErrInvalidCredentials
	}
	if !u.IsActive {
		s.log.Warn("inactive user login rejected", zap.Uint("uid", u.ID))
		return nil, fmt.Errorf("%w: account deactivated", domain.ErrForbidden)
	}
	return u, nil
}

// Login 认证通过后签发访问令牌
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	u, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", nil, err
	}
	tok, err := s.jwter.Issue(u.ID, u.Username, u.Role())
	if err != nil {
		return "", nil, err
	}
	s.log.Info("user logged in", zap.Uint("uid", u.ID), zap.String("username", u.Username))
	return tok, u, nil
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", domain.ErrConflict)
	}
	if existing, err := s.users.FindByUsername(ctx, username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: username already taken", domain.ErrConflict)
	}

	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: utils.HashPassword(in.Password),
		FullName:     in.FullName,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.Uint("uid", u.ID), zap.String("username", u.Username))
	return u, nil
}

// Resolve 把令牌 claims 还原成当前用户，未激活视同无权限
func (s *AuthService) Resolve(ctx context.Context, claims *auth.Claims) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, claims.UID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("%w: user", domain.ErrNotFound)
	}
	if !u.IsActive {
		return nil, fmt.Errorf("%w: account deactivated", domain.ErrForbidden)
	}
	return u, nil
}
