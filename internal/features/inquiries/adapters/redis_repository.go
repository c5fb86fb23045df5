package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"roadways-api/internal/core/kvstore"
	"roadways-api/internal/features/inquiries/domain"
)

// inquiriesKey is the fixed store key inherited from the original site data.
const inquiriesKey = "dr_inquiries"

// RedisInquiryRepository implements ports.InquiryRepository over the
// key-value store.
type RedisInquiryRepository struct {
	store kvstore.Store
}

// NewRedisInquiryRepository creates a new RedisInquiryRepository.
func NewRedisInquiryRepository(store kvstore.Store) *RedisInquiryRepository {
	return &RedisInquiryRepository{
		store: store,
	}
}

// List loads the inquiry collection. An absent key is an empty collection,
// not an error.
func (r *RedisInquiryRepository) List(ctx context.Context) ([]domain.Inquiry, error) {
	data, err := r.store.Get(ctx, inquiriesKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load inquiries: %w", err)
	}

	var inquiries []domain.Inquiry
	if err := json.Unmarshal(data, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal inquiries: %w", err)
	}

	return inquiries, nil
}

// Replace persists the full collection wholesale.
func (r *RedisInquiryRepository) Replace(ctx context.Context, inquiries []domain.Inquiry) error {
	if inquiries == nil {
		inquiries = []domain.Inquiry{}
	}

	data, err := json.Marshal(inquiries)
	if err != nil {
		return fmt.Errorf("failed to marshal inquiries: %w", err)
	}

	if err := r.store.Set(ctx, inquiriesKey, data); err != nil {
		return fmt.Errorf("failed to save inquiries: %w", err)
	}

	return nil
}
