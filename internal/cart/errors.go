// Package cart implements the in-progress sale: line accumulation with
// snapshot prices and the split of the total across payment channels.
// State is ephemeral — nothing is persisted until settlement.
package cart

import "errors"

var (
	// ErrStockExceeded: the requested quantity would exceed the product's
	// currently known stock. The cart is left unchanged.
	ErrStockExceeded = errors.New("stock insuficiente")

	// ErrNegativePrice: price overrides below zero are rejected as a no-op.
	ErrNegativePrice = errors.New("el precio no puede ser negativo")

	// ErrLineNotFound: the referenced product has no line in the cart.
	ErrLineNotFound = errors.New("el producto no está en el carrito")
)
