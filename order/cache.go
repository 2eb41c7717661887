package order

import (
	"errors"
	"fmt"

	"suite46-pickup/models"
	"suite46-pickup/storage"

	"github.com/goccy/go-json"
)

// SaveLast caches the order a customer is about to pay for, so the payment
// return can show what was bought.
func SaveLast(kv storage.Store, rec models.OrderRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode last order: %w", err)
	}
	return kv.Set(storage.LastOrderKey, raw)
}

// LoadLast returns the cached order, or nil if there is none or it is unreadable.
func LoadLast(kv storage.Store) *models.OrderRecord {
	raw, err := kv.Get(storage.LastOrderKey)
	if err != nil {
		return nil
	}
	var rec models.OrderRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil
	}
	return &rec
}

// LocalOrders reads the fallback order log. An unreadable log reads as empty.
func LocalOrders(kv storage.Store) ([]models.OrderRecord, error) {
	raw, err := kv.Get(storage.LocalOrdersKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load local orders: %w", err)
	}
	var recs []models.OrderRecord
	if err := json.Unmarshal(raw, &recs); err != nil {
		return nil, nil
	}
	return recs, nil
}

// AppendLocal adds rec to the fallback log used when no intake endpoint is
// configured. A corrupt log is replaced rather than blocking the order.
func AppendLocal(kv storage.Store, rec models.OrderRecord) error {
	recs, err := LocalOrders(kv)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(append(recs, rec))
	if err != nil {
		return fmt.Errorf("encode local orders: %w", err)
	}
	if err := kv.Set(storage.LocalOrdersKey, raw); err != nil {
		return fmt.Errorf("save local orders: %w", err)
	}
	return nil
}
