package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mini-mall-api/internal/domain"
)

type PostInput struct {
	Title       string `json:"title" binding:"required,max=200"`
	Content     string `json:"content"`
	IsPublished bool   `json:"isPublished"`
}

type PostService struct {
	posts domain.PostRepository
	log   *zap.Logger
}

func NewPostService(posts domain.PostRepository, log *zap.Logger) *PostService {
	return &PostService{posts: posts, log: log}
}

func (s *PostService) List(ctx context.Context, f domain.PostFilter, offset, limit int) ([]domain.Post, int64, error) {
	return s.posts.List(ctx, f, offset, limit)
}

func (s *PostService) Get(ctx context.Context, id uint) (*domain.Post, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: post", domain.ErrNotFound)
	}
	return p, nil
}

func (s *PostService) Create(ctx context.Context, authorID uint, in PostInput) (*domain.Post, error) {
	p := &domain.Post{
		Title:       in.Title,
		Content:     in.Content,
		AuthorID:    authorID,
		IsPublished: in.IsPublished,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("post created", zap.Uint("id", p.ID), zap.Uint("author", authorID))
	return p, nil
}

// Update 作者本人或管理员
func (s *PostService) Update(ctx context.Context, actor *domain.User, id uint, in PostInput) (*domain.Post, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != actor.ID && !actor.IsAdmin {
		return nil, fmt.Errorf("%w: not your post", domain.ErrForbidden)
	}
	p.Title = in.Title
	p.Content = in.Content
	p.IsPublished = in.IsPublished
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if p.AuthorID != actor.ID && !actor.IsAdmin {
		return fmt.Errorf("%w: not your post", domain.ErrForbidden)
	}
	return s.posts.Delete(ctx, id)
}
