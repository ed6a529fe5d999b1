package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"mini-mall-api/internal/domain"
)

type OrderItemInput struct {
	ProductID uint            `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required"`
	Price     decimal.Decimal `json:"price"`
}

type CreateOrderInput struct {
	ShippingAddress string           `json:"shippingAddress"`
	Items           []OrderItemInput `json:"items" binding:"required"`
}

type OrderService struct {
	orders   domain.OrderRepository
	products domain.ProductRepository
	log      *zap.Logger
}

func NewOrderService(orders domain.OrderRepository, products domain.ProductRepository, log *zap.Logger) *OrderService {
	return &OrderService{orders: orders, products: products, log: log}
}

// Create 下单：校验明细、用精确小数算总额、订单头+明细一个事务落库。
// 明细价格是调用方给定的快照价，落库后不再跟随商品现价变动
func (s *OrderService) Create(ctx context.Context, userID uint, in CreateOrderInput) (*domain.Order, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", domain.ErrValidation)
	}

	ids := make([]uint, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == 0 {
			return nil, fmt.Errorf("%w: product_id required", domain.ErrValidation)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be > 0", domain.ErrValidation)
		}
		if it.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price must be >= 0", domain.ErrValidation)
		}
		ids = append(ids, it.ProductID)
	}

	// 所有商品必须存在，否则整单拒绝，不落任何行
	known, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	exists := make(map[uint]struct{}, len(known))
	for _, p := range known {
		exists[p.ID] = struct{}{}
	}
	for _, it := range in.Items {
		if _, ok := exists[it.ProductID]; !ok {
			return nil, fmt.Errorf("%w: product %d", domain.ErrNotFound, it.ProductID)
		}
	}

	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	o := &domain.Order{
		UserID:          userID,
		TotalAmount:     total,
		Status:          domain.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
		Items:           items,
	}
	if err := s.orders.CreateWithItems(ctx, o); err != nil {
		s.log.Error("create order failed", zap.Error(err), zap.Uint("uid", userID))
		return nil, err
	}
	s.log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.Uint("uid", userID),
		zap.String("total", total.StringFixed(2)),
		zap.Int("items", len(items)),
	)
	return o, nil
}

// List 管理员可看全部订单，普通用户只看自己的
func (s *OrderService) List(ctx context.Context, actor *domain.User, status domain.OrderStatus, offset, limit int) ([]domain.Order, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	f := domain.OrderFilter{Status: status}
	if !actor.IsAdmin {
		f.UserID = actor.ID
	}
	return s.orders.List(ctx, f, offset, limit)
}

// Get 归属校验：非本人且非管理员返回 ErrForbidden，与“不存在”可区分
func (s *OrderService) Get(ctx context.Context, actor *domain.User, id uint) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("%w: order", domain.ErrNotFound)
	}
	if o.UserID != actor.ID && !actor.IsAdmin {
		return nil, fmt.Errorf("%w: not your order", domain.ErrForbidden)
	}
	return o, nil
}

type UpdateOrderInput struct {
	Status          *domain.OrderStatus `json:"status"`
	ShippingAddress *string             `json:"shippingAddress"`
}

// Update 只允许改状态和收货地址；总额创建后不可变
func (s *OrderService) Update(ctx context.Context, actor *domain.User, id uint, in UpdateOrderInput) (*domain.Order, error) {
	o, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *in.Status)
		}
		o.Status = *in.Status
	}
	if in.ShippingAddress != nil {
		o.ShippingAddress = *in.ShippingAddress
	}
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Delete 管理员操作，明细随订单级联删除
func (s *OrderService) Delete(ctx context.Context, actor *domain.User, id uint) error {
	if !actor.IsAdmin {
		return fmt.Errorf("%w: admin only", domain.ErrForbidden)
	}
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return fmt.Errorf("%w: order", domain.ErrNotFound)
	}
	return s.orders.Delete(ctx, id)
}
