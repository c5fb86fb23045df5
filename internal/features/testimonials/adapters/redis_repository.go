package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"roadways-api/internal/core/kvstore"
	"roadways-api/internal/features/testimonials/domain"
)

// testimonialsKey is the fixed store key inherited from the original site data.
const testimonialsKey = "dr_testimonials"

// RedisTestimonialRepository implements ports.TestimonialRepository over the
// key-value store.
type RedisTestimonialRepository struct {
	store kvstore.Store
}

// NewRedisTestimonialRepository creates a new RedisTestimonialRepository.
func NewRedisTestimonialRepository(store kvstore.Store) *RedisTestimonialRepository {
	return &RedisTestimonialRepository{
		store: store,
	}
}

// List loads the testimonial collection. An absent key is an empty
// collection, not an error.
func (r *RedisTestimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	data, err := r.store.Get(ctx, testimonialsKey)
	if err != nil {
		if errors.Is(err, kvstore.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}

	var testimonials []domain.Testimonial
	if err := json.Unmarshal(data, &testimonials); err != nil {
		return nil, fmt.Errorf("failed to unmarshal testimonials: %w", err)
	}

	return testimonials, nil
}

// Replace persists the full collection wholesale.
func (r *RedisTestimonialRepository) Replace(ctx context.Context, testimonials []domain.Testimonial) error {
	if testimonials == nil {
		testimonials = []domain.Testimonial{}
	}

	data, err := json.Marshal(testimonials)
	if err != nil {
		return fmt.Errorf("failed to marshal testimonials: %w", err)
	}

	if err := r.store.Set(ctx, testimonialsKey, data); err != nil {
		return fmt.Errorf("failed to save testimonials: %w", err)
	}

	return nil
}
