package services

import (
	"context"
	"errors"
	"testing"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/mocks"
	"marketplace-service/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCartService(carts *mocks.MockCartRepository, products *mocks.MockProductRepository) *CartService {
	return NewCartService(carts, products, logger.NewNop())
}

func TestCartService_AddItem(t *testing.T) {
	product := testProduct(1, "Widget", "10.00")
	cart := &domain.Cart{ID: testCartID, UserID: testUserID}

	tests := []struct {
		name          string
		quantity      int
		setupMocks    func(*mocks.MockCartRepository, *mocks.MockProductRepository)
		expectedError error
		expectedQty   int
	}{
		{
			name:     "creates a new line",
			quantity: 2,
			setupMocks: func(carts *mocks.MockCartRepository, products *mocks.MockProductRepository) {
				products.On("FindByID", mock.Anything, uint(1)).Return(product, nil)
				carts.On("GetOrCreateByUser", mock.Anything, testUserID).Return(cart, nil)
				carts.On("FindLine", mock.Anything, testCartID, uint(1)).Return(nil, nil)
				carts.On("CreateLine", mock.Anything, mock.AnythingOfType("*domain.CartItem")).Return(nil)
			},
			expectedQty: 2,
		},
		{
			name:     "increments an existing line",
			quantity: 3,
			setupMocks: func(carts *mocks.MockCartRepository, products *mocks.MockProductRepository) {
				products.On("FindByID", mock.Anything, uint(1)).Return(product, nil)
				carts.On("GetOrCreateByUser", mock.Anything, testUserID).Return(cart, nil)
				existing := testCartLine(11, testCartID, product, 2)
				carts.On("FindLine", mock.Anything, testCartID, uint(1)).Return(&existing, nil)
				carts.On("SaveLine", mock.Anything, mock.AnythingOfType("*domain.CartItem")).Return(nil)
			},
			expectedQty: 5,
		},
		{
			name:     "zero quantity line is allowed",
			quantity: 0,
			setupMocks: func(carts *mocks.MockCartRepository, products *mocks.MockProductRepository) {
				products.On("FindByID", mock.Anything, uint(1)).Return(product, nil)
				carts.On("GetOrCreateByUser", mock.Anything, testUserID).Return(cart, nil)
				carts.On("FindLine", mock.Anything, testCartID, uint(1)).Return(nil, nil)
				carts.On("CreateLine", mock.Anything, mock.AnythingOfType("*domain.CartItem")).Return(nil)
			},
			expectedQty: 0,
		},
		{
			name:     "unknown product",
			quantity: 1,
			setupMocks: func(carts *mocks.MockCartRepository, products *mocks.MockProductRepository) {
				products.On("FindByID", mock.Anything, uint(1)).Return(nil, nil)
			},
			expectedError: domain.ErrProductNotFound,
		},
		{
			name:     "product lookup failure propagates",
			quantity: 1,
			setupMocks: func(carts *mocks.MockCartRepository, products *mocks.MockProductRepository) {
				products.On("FindByID", mock.Anything, uint(1)).Return(nil, errors.New("db down"))
			},
			expectedError: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := new(mocks.MockCartRepository)
			products := new(mocks.MockProductRepository)
			tt.setupMocks(carts, products)

			svc := newCartService(carts, products)
			line, err := svc.AddItem(context.Background(), testUser, 1, tt.quantity)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, line)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedQty, line.Quantity)
				assert.Equal(t, product.ID, line.ProductID)
			}
			carts.AssertExpectations(t)
			products.AssertExpectations(t)
		})
	}
}

// Repeated adds of the same product always land on a single line whose
// quantity is the running sum.
func TestCartService_AddItem_AccumulatesOnOneLine(t *testing.T) {
	product := testProduct(1, "Widget", "10.00")
	cart := &domain.Cart{ID: testCartID, UserID: testUserID}

	carts := new(mocks.MockCartRepository)
	products := new(mocks.MockProductRepository)
	products.On("FindByID", mock.Anything, uint(1)).Return(product, nil)
	carts.On("GetOrCreateByUser", mock.Anything, testUserID).Return(cart, nil)

	// First add finds no line and creates one; every later add finds the
	// line holding the running sum and saves the incremented quantity.
	var lastSaved domain.CartItem
	recordSave := func(args mock.Arguments) {
		lastSaved = *args.Get(1).(*domain.CartItem)
	}

	carts.On("FindLine", mock.Anything, testCartID, uint(1)).Return(nil, nil).Once()
	carts.On("CreateLine", mock.Anything, mock.MatchedBy(func(l *domain.CartItem) bool {
		return l.Quantity == 2
	})).Return(nil).Once()

	afterCreate := testCartLine(11, testCartID, product, 2)
	carts.On("FindLine", mock.Anything, testCartID, uint(1)).Return(&afterCreate, nil).Once()
	carts.On("SaveLine", mock.Anything, mock.AnythingOfType("*domain.CartItem")).Return(nil).Run(recordSave).Once()

	afterZeroAdd := testCartLine(11, testCartID, product, 2)
	carts.On("FindLine", mock.Anything, testCartID, uint(1)).Return(&afterZeroAdd, nil).Once()
	carts.On("SaveLine", mock.Anything, mock.AnythingOfType("*domain.CartItem")).Return(nil).Run(recordSave).Once()

	svc := newCartService(carts, products)
	for _, qty := range []int{2, 0, 5} {
		_, err := svc.AddItem(context.Background(), testUser, 1, qty)
		assert.NoError(t, err)
	}

	assert.Equal(t, 7, lastSaved.Quantity)
	assert.Equal(t, uint(11), lastSaved.ID)
}

func TestCartService_UpdateItem(t *testing.T) {
	product := testProduct(1, "Widget", "10.00")
	cart := &domain.Cart{ID: testCartID, UserID: testUserID}

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockCartRepository)
		expectedError error
	}{
		{
			name: "overwrites quantity",
			setupMocks: func(carts *mocks.MockCartRepository) {
				carts.On("FindByUser", mock.Anything, testUserID).Return(cart, nil)
				existing := testCartLine(11, testCartID, product, 2)
				carts.On("FindLine", mock.Anything, testCartID, uint(1)).Return(&existing, nil)
				carts.On("SaveLine", mock.Anything, mock.MatchedBy(func(l *domain.CartItem) bool {
					return l.Quantity == 9
				})).Return(nil)
			},
		},
		{
			name: "no cart",
			setupMocks: func(carts *mocks.MockCartRepository) {
				carts.On("FindByUser", mock.Anything, testUserID).Return(nil, nil)
			},
			expectedError: domain.ErrCartNotFound,
		},
		{
			name: "no line for product",
			setupMocks: func(carts *mocks.MockCartRepository) {
				carts.On("FindByUser", mock.Anything, testUserID).Return(cart, nil)
				carts.On("FindLine", mock.Anything, testCartID, uint(1)).Return(nil, nil)
			},
			expectedError: domain.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := new(mocks.MockCartRepository)
			products := new(mocks.MockProductRepository)
			tt.setupMocks(carts)

			svc := newCartService(carts, products)
			line, err := svc.UpdateItem(context.Background(), testUser, 1, 9)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, line)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 9, line.Quantity)
			}
			carts.AssertExpectations(t)
		})
	}
}

func TestCartService_RemoveItem(t *testing.T) {
	cart := &domain.Cart{ID: testCartID, UserID: testUserID}

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockCartRepository)
		expectedError error
	}{
		{
			name: "removes the line",
			setupMocks: func(carts *mocks.MockCartRepository) {
				carts.On("FindByUser", mock.Anything, testUserID).Return(cart, nil)
				carts.On("DeleteLine", mock.Anything, testCartID, uint(1)).Return(true, nil)
			},
		},
		{
			name: "no cart",
			setupMocks: func(carts *mocks.MockCartRepository) {
				carts.On("FindByUser", mock.Anything, testUserID).Return(nil, nil)
			},
			expectedError: domain.ErrCartNotFound,
		},
		{
			name: "no line",
			setupMocks: func(carts *mocks.MockCartRepository) {
				carts.On("FindByUser", mock.Anything, testUserID).Return(cart, nil)
				carts.On("DeleteLine", mock.Anything, testCartID, uint(1)).Return(false, nil)
			},
			expectedError: domain.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := new(mocks.MockCartRepository)
			products := new(mocks.MockProductRepository)
			tt.setupMocks(carts)

			svc := newCartService(carts, products)
			err := svc.RemoveItem(context.Background(), testUser, 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			carts.AssertExpectations(t)
		})
	}
}

func TestCartService_Clear_NoCartIsNoOp(t *testing.T) {
	carts := new(mocks.MockCartRepository)
	products := new(mocks.MockProductRepository)
	carts.On("FindByUser", mock.Anything, testUserID).Return(nil, nil)

	svc := newCartService(carts, products)
	assert.NoError(t, svc.Clear(context.Background(), testUser))
	carts.AssertNotCalled(t, "DeleteLinesByCart", mock.Anything, mock.Anything)
}

func TestCartService_Clear(t *testing.T) {
	carts := new(mocks.MockCartRepository)
	products := new(mocks.MockProductRepository)
	cart := &domain.Cart{ID: testCartID, UserID: testUserID}
	carts.On("FindByUser", mock.Anything, testUserID).Return(cart, nil)
	carts.On("DeleteLinesByCart", mock.Anything, testCartID).Return(nil)

	svc := newCartService(carts, products)
	assert.NoError(t, svc.Clear(context.Background(), testUser))
	carts.AssertExpectations(t)
}

func TestCartService_ViewWithTotals(t *testing.T) {
	productA := testProduct(1, "Product A", "10.00")
	productB := testProduct(2, "Product B", "5.00")
	cart := &domain.Cart{ID: testCartID, UserID: testUserID}

	carts := new(mocks.MockCartRepository)
	products := new(mocks.MockProductRepository)
	carts.On("FindByUser", mock.Anything, testUserID).Return(cart, nil)
	carts.On("FindLinesByCart", mock.Anything, testCartID).Return([]domain.CartItem{
		testCartLine(11, testCartID, productA, 2),
		testCartLine(12, testCartID, productB, 3),
	}, nil)

	svc := newCartService(carts, products)
	view, err := svc.ViewWithTotals(context.Background(), testUser)

	assert.NoError(t, err)
	assert.Equal(t, testCartID, view.ID)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, "20.00", view.Items[0].Subtotal.StringFixed(2))
	assert.Equal(t, "15.00", view.Items[1].Subtotal.StringFixed(2))
	assert.Equal(t, "35.00", view.Total.StringFixed(2))
	assert.Equal(t, 5, view.ItemCount)
}

// The read path returns a zero view without creating a cart row.
func TestCartService_ViewWithTotals_NoCart(t *testing.T) {
	carts := new(mocks.MockCartRepository)
	products := new(mocks.MockProductRepository)
	carts.On("FindByUser", mock.Anything, testUserID).Return(nil, nil)

	svc := newCartService(carts, products)
	view, err := svc.ViewWithTotals(context.Background(), testUser)

	assert.NoError(t, err)
	assert.Zero(t, view.ID)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
	assert.Zero(t, view.ItemCount)
	carts.AssertNotCalled(t, "GetOrCreateByUser", mock.Anything, mock.Anything)
}
