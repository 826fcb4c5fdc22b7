package services

import (
	"context"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/pkg/logger"
	"marketplace-service/internal/repository"

	"github.com/shopspring/decimal"
)

type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	log      *logger.Logger
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository, log *logger.Logger) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		log:      log.With("service", "CartService"),
	}
}

// GetOrCreateCart returns the user's cart, creating the row on first access.
func (s *CartService) GetOrCreateCart(ctx context.Context, user domain.User) (*domain.Cart, error) {
	return s.carts.GetOrCreateByUser(ctx, user.ID)
}

// AddItem appends quantity to an existing line for the product, or creates a
// new line. Quantity zero is accepted and stored.
func (s *CartService) AddItem(ctx context.Context, user domain.User, productID uint, quantity int) (*domain.CartItem, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	cart, err := s.carts.GetOrCreateByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	line, err := s.carts.FindLine(ctx, cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		line = &domain.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.carts.CreateLine(ctx, line); err != nil {
			return nil, err
		}
	} else {
		line.Quantity += quantity
		if err := s.carts.SaveLine(ctx, line); err != nil {
			return nil, err
		}
	}

	line.Product = *product
	return line, nil
}

// UpdateItem overwrites the line's quantity; it is not additive.
func (s *CartService) UpdateItem(ctx context.Context, user domain.User, productID uint, quantity int) (*domain.CartItem, error) {
	cart, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, domain.ErrCartNotFound
	}

	line, err := s.carts.FindLine(ctx, cart.ID, productID)
	if err != nil {
		return nil, err
	}
	if line == nil {
		return nil, domain.ErrItemNotFound
	}

	line.Quantity = quantity
	if err := s.carts.SaveLine(ctx, line); err != nil {
		return nil, err
	}
	return line, nil
}

func (s *CartService) RemoveItem(ctx context.Context, user domain.User, productID uint) error {
	cart, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if cart == nil {
		return domain.ErrCartNotFound
	}

	deleted, err := s.carts.DeleteLine(ctx, cart.ID, productID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrItemNotFound
	}
	return nil
}

// Clear deletes every line of the user's cart. A missing cart is a
// successful no-op, not an error.
func (s *CartService) Clear(ctx context.Context, user domain.User) error {
	cart, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if cart == nil {
		return nil
	}
	return s.carts.DeleteLinesByCart(ctx, cart.ID)
}

// ViewWithTotals prices each line at the product's current price and sums
// subtotals and quantities. A user without a cart gets a zero-valued view;
// unlike the mutation paths, reading never persists a cart row.
func (s *CartService) ViewWithTotals(ctx context.Context, user domain.User) (domain.CartView, error) {
	view := domain.CartView{
		Items: []domain.CartItemView{},
		Total: decimal.Zero,
	}

	cart, err := s.carts.FindByUser(ctx, user.ID)
	if err != nil {
		return view, err
	}
	if cart == nil {
		return view, nil
	}

	lines, err := s.carts.FindLinesByCart(ctx, cart.ID)
	if err != nil {
		return view, err
	}

	view.ID = cart.ID
	view.CreatedAt = cart.CreatedAt
	view.UpdatedAt = cart.UpdatedAt
	for i := range lines {
		line := &lines[i]
		view.Items = append(view.Items, domain.CartItemView{
			ID:       line.ID,
			Product:  line.Product.Snapshot(),
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		})
		view.Total = view.Total.Add(line.Subtotal())
		view.ItemCount += line.Quantity
	}
	return view, nil
}
