package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order 的 TotalAmount 在创建时一次性算定，之后不随商品价格变动
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"index;not null" json:"userId"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	Status          OrderStatus     `gorm:"size:16;not null;default:pending" json:"status"`
	ShippingAddress string          `gorm:"type:text" json:"shippingAddress"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

// OrderItem 的 Price 是下单时的快照价，与商品现价解耦
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"orderId"`
	ProductID uint            `gorm:"index;not null" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderFilter 订单列表筛选（userID=0 表示不限用户）
type OrderFilter struct {
	UserID uint
	Status OrderStatus
}

type OrderRepository interface {
	// CreateWithItems 在同一事务里写入订单头和全部明细，全部成功或全部回滚
	CreateWithItems(ctx context.Context, o *Order) error
	FindByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, f OrderFilter, offset, limit int) ([]Order, int64, error)
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uint) error
}
