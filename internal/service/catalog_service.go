package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mini-mall-api/internal/domain"
)

type ProductInput struct {
	Name          string          `json:"name" binding:"required,max=100"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stockQuantity"`
	CategoryID    *uint           `json:"categoryId"`
	ImageURL      string          `json:"imageUrl"`
	IsActive      *bool           `json:"isActive"`
}

type ProductService struct {
	products   domain.ProductRepository
	categories domain.CategoryRepository
	log        *zap.Logger
}

func NewProductService(products domain.ProductRepository, categories domain.CategoryRepository, log *zap.Logger) *ProductService {
	return &ProductService{products: products, categories: categories, log: log}
}

func (s *ProductService) List(ctx context.Context, f domain.ProductFilter, offset, limit int) ([]domain.Product, int64, error) {
	return s.products.List(ctx, f, offset, limit)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*domain.Product, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: product", domain.ErrNotFound)
	}
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be >= 0", domain.ErrValidation)
	}
	if in.CategoryID != nil {
		c, err := s.categories.FindByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("%w: category %d", domain.ErrNotFound, *in.CategoryID)
		}
	}
	p := &domain.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		CategoryID:    in.CategoryID,
		ImageURL:      in.ImageURL,
		IsActive:      true,
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("product created", zap.Uint("id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *ProductService) Update(ctx context.Context, id uint, in ProductInput) (*domain.Product, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be >= 0", domain.ErrValidation)
	}
	if in.CategoryID != nil {
		c, err := s.categories.FindByID(ctx, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("%w: category %d", domain.ErrNotFound, *in.CategoryID)
		}
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.StockQuantity = in.StockQuantity
	p.CategoryID = in.CategoryID
	p.ImageURL = in.ImageURL
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.products.Delete(ctx, id)
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description"`
	ParentID    *uint  `json:"parentId"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

type CategoryService struct {
	categories domain.CategoryRepository
	log        *zap.Logger
}

func NewCategoryService(categories domain.CategoryRepository, log *zap.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) List(ctx context.Context, parentID *uint, activeOnly bool) ([]domain.Category, error) {
	return s.categories.List(ctx, parentID, activeOnly)
}

func (s *CategoryService) Get(ctx context.Context, id uint) (*domain.Category, error) {
	c, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: category", domain.ErrNotFound)
	}
	return c, nil
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	if in.ParentID != nil {
		parent, err := s.categories.FindByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, fmt.Errorf("%w: parent category %d", domain.ErrNotFound, *in.ParentID)
		}
	}
	c := &domain.Category{
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		SortOrder:   in.SortOrder,
		IsActive:    true,
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Update(ctx context.Context, id uint, in CategoryInput) (*domain.Category, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.ParentID != nil {
		if err := s.checkParentCycle(ctx, id, *in.ParentID); err != nil {
			return nil, err
		}
	}
	c.Name = in.Name
	c.Description = in.Description
	c.ParentID = in.ParentID
	c.SortOrder = in.SortOrder
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if err := s.categories.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.categories.Delete(ctx, id)
}

// checkParentCycle 沿父链向上走，遇到自身说明成环，写入前拒绝
func (s *CategoryService) checkParentCycle(ctx context.Context, id, parentID uint) error {
	cur := parentID
	for cur != 0 {
		if cur == id {
			return fmt.Errorf("%w: category parent cycle", domain.ErrValidation)
		}
		p, err := s.categories.FindByID(ctx, cur)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%w: parent category %d", domain.ErrNotFound, cur)
		}
		if p.ParentID == nil {
			return nil
		}
		cur = *p.ParentID
	}
	return nil
}
