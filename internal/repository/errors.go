package repository

import "errors"

// ErrStockConflict: a conditional stock update matched no row, meaning the
// product's stock changed concurrently and the guard (stock >= qty) failed.
var ErrStockConflict = errors.New("stock insuficiente")
