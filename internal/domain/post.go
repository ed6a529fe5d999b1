package domain

import (
	"context"
	"time"
)

type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:200;not null;index" json:"title"`
	Content     string    `gorm:"type:text" json:"content"`
	AuthorID    uint      `gorm:"index;not null" json:"authorId"`
	IsPublished bool      `gorm:"not null;default:false" json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Post) TableName() string { return "posts" }

// PostFilter 文章列表筛选（authorID=0 不限作者）
type PostFilter struct {
	AuthorID      uint
	PublishedOnly bool
}

type PostRepository interface {
	Create(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id uint) (*Post, error)
	List(ctx context.Context, f PostFilter, offset, limit int) ([]Post, int64, error)
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uint) error
}
