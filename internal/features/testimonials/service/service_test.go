package service

import (
	"context"
	"errors"
	"testing"

	"roadways-api/internal/features/testimonials/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTestimonialRepository is a mock implementation of ports.TestimonialRepository.
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Replace(ctx context.Context, testimonials []domain.Testimonial) error {
	args := m.Called(ctx, testimonials)
	return args.Error(0)
}

func TestTestimonialService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		svc := NewTestimonialService(mockRepo)

		mockRepo.On("List", ctx).Return([]domain.Testimonial{}, nil).Once()
		mockRepo.On("Replace", ctx, mock.AnythingOfType("[]domain.Testimonial")).Return(nil).Once()

		testimonial, err := svc.Submit(ctx, "Asha", "Jaipur Traders", "Owner", "Reliable and on time.", 5)
		require.NoError(t, err)
		assert.NotEmpty(t, testimonial.ID)
		assert.False(t, testimonial.Approved, "submissions start unapproved")
		mockRepo.AssertExpectations(t)
	})

	t.Run("InvalidRating", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		svc := NewTestimonialService(mockRepo)

		_, err := svc.Submit(ctx, "Asha", "", "", "Great", 6)
		assert.ErrorIs(t, err, domain.ErrInvalidRating)

		_, err = svc.Submit(ctx, "Asha", "", "", "Great", 0)
		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	})

	t.Run("MissingQuote", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		svc := NewTestimonialService(mockRepo)

		_, err := svc.Submit(ctx, "Asha", "", "", "", 4)
		assert.ErrorIs(t, err, domain.ErrMissingQuote)
	})
}

func TestTestimonialService_ListApproved(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockTestimonialRepository)
	svc := NewTestimonialService(mockRepo)

	mockRepo.On("List", ctx).Return([]domain.Testimonial{
		{ID: "t1", Quote: "Great", Rating: 5, Approved: true},
		{ID: "t2", Quote: "Pending", Rating: 4, Approved: false},
	}, nil).Once()

	approved, err := svc.ListApproved(ctx)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, "t1", approved[0].ID)
}

func TestTestimonialService_SetApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		svc := NewTestimonialService(mockRepo)

		mockRepo.On("List", ctx).Return([]domain.Testimonial{
			{ID: "t1", Quote: "Great", Rating: 5},
		}, nil).Once()
		mockRepo.On("Replace", ctx, mock.MatchedBy(func(ts []domain.Testimonial) bool {
			return len(ts) == 1 && ts[0].Approved
		})).Return(nil).Once()

		err := svc.SetApproval(ctx, "t1", true)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		svc := NewTestimonialService(mockRepo)

		mockRepo.On("List", ctx).Return([]domain.Testimonial{}, nil).Once()

		err := svc.SetApproval(ctx, "ghost", true)
		assert.ErrorIs(t, err, ErrTestimonialNotFound)
	})
}

func TestTestimonialService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresConfirmation", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		svc := NewTestimonialService(mockRepo)

		err := svc.Delete(ctx, "t1", false)
		assert.ErrorIs(t, err, ErrDeleteNotConfirmed)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		svc := NewTestimonialService(mockRepo)

		mockRepo.On("List", ctx).Return([]domain.Testimonial{
			{ID: "t1", Quote: "Great", Rating: 5},
		}, nil).Once()
		mockRepo.On("Replace", ctx, []domain.Testimonial{}).Return(nil).Once()

		err := svc.Delete(ctx, "t1", true)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		svc := NewTestimonialService(mockRepo)

		mockRepo.On("List", ctx).Return(nil, errors.New("db error")).Once()

		err := svc.Delete(ctx, "t1", true)
		assert.Error(t, err)
	})
}
