// Package storage is the durable key-value port the storefront keeps session
// state in: the cart snapshot, the last prepaid order and the local order log.
package storage

import "errors"

// Keys used by the storefront. Values are JSON documents.
const (
	CartKey        = "s46_cart"
	LastOrderKey   = "s46_last_order"
	LocalOrdersKey = "s46_local_orders"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is a flat key-value map. A single writer per key is assumed, so there
// is no versioning or conflict handling.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}
