package use_cases

import (
	"context"

	"github.com/mirola777/songboard/internal/domain"
	"github.com/stretchr/testify/mock"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) SearchByName(ctx context.Context, text string) ([]domain.Track, error) {
	args := m.Called(ctx, text)
	tracks, _ := args.Get(0).([]domain.Track)
	return tracks, args.Error(1)
}

func (m *mockCatalog) GetByID(ctx context.Context, trackID string) (*domain.Track, error) {
	args := m.Called(ctx, trackID)
	track, _ := args.Get(0).(*domain.Track)
	return track, args.Error(1)
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) BuildPaymentForm(order domain.PaymentOrder) (string, error) {
	args := m.Called(order)
	return args.String(0), args.Error(1)
}

func (m *mockGateway) VerifyCallback(params map[string]string) bool {
	args := m.Called(params)
	return args.Bool(0)
}
