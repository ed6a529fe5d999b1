package repo

import "gorm.io/gorm"

// Repository 聚合全部 gorm 仓储，main 里一次构造
type Repository struct {
	Users      *UserRepo
	Products   *ProductRepo
	Categories *CategoryRepo
	Orders     *OrderRepo
	Posts      *PostRepo
	Stats      *StatsRepo
}

func New(db *gorm.DB) *Repository {
	return &Repository{
		Users:      NewUserRepo(db),
		Products:   NewProductRepo(db),
		Categories: NewCategoryRepo(db),
		Orders:     NewOrderRepo(db),
		Posts:      NewPostRepo(db),
		Stats:      NewStatsRepo(db),
	}
}
