package cart

import (
	"context"
	"errors"

	"github.com/emidobak1/happy-snail/internal/domain"
)

// Store persists one cart per session under a named slot. The full cart is
// written back after every mutation.
type Store interface {
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Set(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

var (
	// ErrCartNotFound is returned when no cart has been stored for the session.
	ErrCartNotFound = errors.New("cart not found")

	// ErrCorruptCart is returned when the stored payload does not parse.
	// Callers recover by starting from an empty cart.
	ErrCorruptCart = errors.New("stored cart is corrupt")
)
