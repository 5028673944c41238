package cart

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/emidobak1/happy-snail/internal/domain"
)

// Service owns all cart mutations. Every mutation loads the session's cart,
// applies the change in memory, and synchronously writes the whole cart
// back to the store (write-through).
type Service struct {
	store Store
	sfg   singleflight.Group // collapses concurrent loads of the same session
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
	}
}

// GetCart returns the session's cart. A missing or unparseable stored
// payload yields a fresh empty cart, never an error.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(sessionID, func() (interface{}, error) {
		cart, err := s.store.Get(ctx, sessionID)
		if err == nil {
			return cart, nil
		}

		if errors.Is(err, ErrCorruptCart) {
			log.Printf("discarding corrupt cart for session %s: %v", sessionID, err)
			return s.emptyCart(sessionID), nil
		}
		if errors.Is(err, ErrCartNotFound) {
			return s.emptyCart(sessionID), nil
		}

		return nil, err
	})

	if err != nil {
		return nil, err
	}

	// collapsed loads share one result; each caller mutates its own copy
	return v.(*domain.Cart).Clone(), nil
}

// AddItem puts a product in the cart. If the product already has a line,
// the quantities are merged rather than appending a duplicate line.
func (s *Service) AddItem(ctx context.Context, sessionID string, product *domain.Product, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}

	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if line := cart.Find(product.ID); line != nil {
		line.Quantity += quantity
	} else {
		cart.Lines = append(cart.Lines, domain.CartLine{
			ProductID:   product.ID,
			Name:        product.Name,
			Price:       product.Price,
			Description: product.Description,
			ImageURL:    product.ImageURL,
			Quantity:    quantity,
			AddedAt:     now,
		})
	}

	return s.save(ctx, sessionID, cart)
}

// UpdateQuantity sets the quantity of the line for productID. Quantities
// below 1 are rejected as a no-op: the cart is returned unchanged.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		return cart, nil
	}

	line := cart.Find(productID)
	if line == nil {
		return cart, nil
	}
	line.Quantity = quantity

	return s.save(ctx, sessionID, cart)
}

// RemoveItem drops the line for productID.
func (s *Service) RemoveItem(ctx context.Context, sessionID string, productID int64) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i, line := range cart.Lines {
		if line.ProductID == productID {
			cart.Lines = append(cart.Lines[:i], cart.Lines[i+1:]...)
			break
		}
	}

	return s.save(ctx, sessionID, cart)
}

// ClearCart removes the session's cart entirely, in memory and in the store.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		log.Printf("store delete cart error: %v", err)
		return err
	}
	return nil
}

func (s *Service) save(ctx context.Context, sessionID string, cart *domain.Cart) (*domain.Cart, error) {
	cart.UpdatedAt = s.now()
	if err := s.store.Set(ctx, sessionID, cart); err != nil {
		log.Printf("store set cart error: %v", err)
		return nil, err
	}
	return cart, nil
}

func (s *Service) emptyCart(sessionID string) *domain.Cart {
	now := s.now()
	return &domain.Cart{
		SessionID: sessionID,
		Lines:     nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
