package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"roadways-api/internal/features/inquiries/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInquiryRepository is a mock implementation of ports.InquiryRepository.
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) List(ctx context.Context) ([]domain.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) Replace(ctx context.Context, inquiries []domain.Inquiry) error {
	args := m.Called(ctx, inquiries)
	return args.Error(0)
}

func TestInquiryService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockInquiryRepository)
		svc := NewInquiryService(mockRepo)
		submitted := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
		svc.now = func() time.Time { return submitted }

		mockRepo.On("List", ctx).Return([]domain.Inquiry{}, nil).Once()
		mockRepo.On("Replace", ctx, mock.AnythingOfType("[]domain.Inquiry")).Return(nil).Once()

		inquiry, err := svc.Submit(ctx, "Ravi", "+91 98765 43210", "Full Truck Load", "Need a quote for Delhi to Mumbai")
		require.NoError(t, err)
		assert.NotEmpty(t, inquiry.ID)
		assert.Equal(t, domain.InquiryStatusNew, inquiry.Status, "submissions start as new")
		assert.Equal(t, submitted, inquiry.Date)
		mockRepo.AssertExpectations(t)
	})

	t.Run("MissingContact", func(t *testing.T) {
		mockRepo := new(MockInquiryRepository)
		svc := NewInquiryService(mockRepo)

		_, err := svc.Submit(ctx, "", "+91 98765 43210", "", "")
		assert.ErrorIs(t, err, domain.ErrMissingContact)

		_, err = svc.Submit(ctx, "Ravi", "", "", "")
		assert.ErrorIs(t, err, domain.ErrMissingContact)
	})

	t.Run("AppendsToExisting", func(t *testing.T) {
		mockRepo := new(MockInquiryRepository)
		svc := NewInquiryService(mockRepo)

		mockRepo.On("List", ctx).Return([]domain.Inquiry{
			{ID: "q1", Name: "Meena", Phone: "12345"},
		}, nil).Once()
		mockRepo.On("Replace", ctx, mock.MatchedBy(func(qs []domain.Inquiry) bool {
			return len(qs) == 2 && qs[0].ID == "q1"
		})).Return(nil).Once()

		_, err := svc.Submit(ctx, "Ravi", "+91 98765 43210", "", "")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestInquiryService_SetStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockInquiryRepository)
		svc := NewInquiryService(mockRepo)

		mockRepo.On("List", ctx).Return([]domain.Inquiry{
			{ID: "q1", Name: "Ravi", Phone: "12345", Status: domain.InquiryStatusNew},
		}, nil).Once()
		mockRepo.On("Replace", ctx, mock.MatchedBy(func(qs []domain.Inquiry) bool {
			return len(qs) == 1 && qs[0].Status == domain.InquiryStatusResolved
		})).Return(nil).Once()

		err := svc.SetStatus(ctx, "q1", "resolved")
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		mockRepo := new(MockInquiryRepository)
		svc := NewInquiryService(mockRepo)

		err := svc.SetStatus(ctx, "q1", "archived")
		assert.ErrorIs(t, err, domain.ErrInvalidInquiryStatus)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockInquiryRepository)
		svc := NewInquiryService(mockRepo)

		mockRepo.On("List", ctx).Return([]domain.Inquiry{}, nil).Once()

		err := svc.SetStatus(ctx, "ghost", "viewed")
		assert.ErrorIs(t, err, ErrInquiryNotFound)
	})
}

func TestInquiryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("RequiresConfirmation", func(t *testing.T) {
		mockRepo := new(MockInquiryRepository)
		svc := NewInquiryService(mockRepo)

		err := svc.Delete(ctx, "q1", false)
		assert.ErrorIs(t, err, ErrDeleteNotConfirmed)
	})

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockInquiryRepository)
		svc := NewInquiryService(mockRepo)

		mockRepo.On("List", ctx).Return([]domain.Inquiry{
			{ID: "q1", Name: "Ravi", Phone: "12345"},
		}, nil).Once()
		mockRepo.On("Replace", ctx, []domain.Inquiry{}).Return(nil).Once()

		err := svc.Delete(ctx, "q1", true)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepoError", func(t *testing.T) {
		mockRepo := new(MockInquiryRepository)
		svc := NewInquiryService(mockRepo)

		mockRepo.On("List", ctx).Return(nil, errors.New("db error")).Once()

		err := svc.Delete(ctx, "q1", true)
		assert.Error(t, err)
	})
}
