package services

import (
	"context"

	"marketplace-service/internal/domain"
	rabbit "marketplace-service/internal/infra/rabbitmq"
	"marketplace-service/internal/pkg/logger"
	"marketplace-service/internal/repository"
)

type OrderService struct {
	orders    repository.OrderRepository
	carts     repository.CartRepository
	publisher rabbit.PublisherInterface
	log       *logger.Logger
}

func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository, pub rabbit.PublisherInterface, log *logger.Logger) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		publisher: pub,
		log:       log.With("service", "OrderService"),
	}
}

// PlaceOrder converts the user's cart into an immutable order. With no
// selection the whole cart is checked out and then cleared; with a selection
// only the matching lines are consumed and the rest stay in the cart.
//
// Product prices are read once, together with the cart lines; the order
// total and every item snapshot come from that single read, so they stay
// mutually consistent even if a product price changes mid-flight.
func (s *OrderService) PlaceOrder(ctx context.Context, user domain.User, selectedLineIDs []uint) (domain.OrderView, error) {
	lines, err := s.loadCartLines(ctx, user.ID)
	if err != nil {
		return domain.OrderView{}, err
	}
	// The empty-cart check applies to the whole cart, before any selection
	// filtering.
	if len(lines) == 0 {
		return domain.OrderView{}, domain.ErrCartEmpty
	}
	cartID := lines[0].CartID

	working := lines
	selective := len(selectedLineIDs) > 0
	if selective {
		selected := make(map[uint]bool, len(selectedLineIDs))
		for _, id := range selectedLineIDs {
			selected[id] = true
		}
		// Ids that match none of the user's own lines are dropped silently;
		// only a selection matching nothing at all is an error.
		working = make([]domain.CartItem, 0, len(lines))
		for _, line := range lines {
			if selected[line.ID] {
				working = append(working, line)
			}
		}
		if len(working) == 0 {
			return domain.OrderView{}, domain.ErrNoValidItemsSelected
		}
	}

	items := make([]domain.OrderItem, 0, len(working))
	consumed := make([]uint, 0, len(working))
	for i := range working {
		line := &working[i]
		items = append(items, domain.OrderItem{
			ProductID:          line.ProductID,
			ProductName:        line.Product.Name,
			ProductDescription: line.Product.Description,
			Price:              line.Product.Price,
			Quantity:           line.Quantity,
		})
		consumed = append(consumed, line.ID)
	}

	order := &domain.Order{
		UserID: user.ID,
		Total:  domain.OrderTotal(items),
		Status: domain.StatusPending,
		Items:  items,
	}

	lineIDs := consumed
	if !selective {
		// Full checkout clears the entire cart, sweeping up lines that may
		// have been added after the read. Accepted race.
		lineIDs = nil
	}
	if err := s.orders.PlaceOrder(ctx, order, cartID, lineIDs); err != nil {
		return domain.OrderView{}, err
	}

	go s.publishOrderCreated(context.Background(), order)

	return order.View(), nil
}

func (s *OrderService) loadCartLines(ctx context.Context, userID string) ([]domain.CartItem, error) {
	cart, err := s.carts.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, nil
	}
	return s.carts.FindLinesByCart(ctx, cart.ID)
}

func (s *OrderService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Total:     order.Total,
		ItemCount: len(order.Items),
		CreatedAt: order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		s.log.Error("failed to publish order.created", "orderId", order.ID, "error", err)
	}
}

// GetOrderByID is owner-scoped: a nonexistent order and another user's order
// produce the same ErrOrderNotFound so existence cannot be probed.
func (s *OrderService) GetOrderByID(ctx context.Context, user domain.User, id uint) (domain.OrderView, error) {
	order, err := s.orders.FindByIDAndUser(ctx, id, user.ID)
	if err != nil {
		return domain.OrderView{}, err
	}
	if order == nil {
		return domain.OrderView{}, domain.ErrOrderNotFound
	}
	return order.View(), nil
}

// GetOrderHistory pages through the user's orders newest-first. Pages past
// the end return an empty list with accurate metadata.
func (s *OrderService) GetOrderHistory(ctx context.Context, user domain.User, page, pageSize int) ([]domain.OrderView, domain.PageMeta, error) {
	page, pageSize = domain.NormalizePage(page, pageSize)

	total, err := s.orders.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}

	orders, err := s.orders.FindByUser(ctx, user.ID, page, pageSize)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}

	views := make([]domain.OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, orders[i].View())
	}
	return views, domain.NewPageMeta(page, pageSize, total), nil
}
