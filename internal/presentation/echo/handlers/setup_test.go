package handlers

import (
	"context"
	"testing"

	"github.com/mirola777/songboard/internal/application/use_cases"
	"github.com/mirola777/songboard/internal/domain"
	"github.com/mirola777/songboard/internal/infrastructure/epay"
	gormdb "github.com/mirola777/songboard/internal/infrastructure/gorm"
	"github.com/mirola777/songboard/internal/utils/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "letmein"

type stubCatalog struct {
	tracks map[string]domain.Track
}

func (s *stubCatalog) SearchByName(_ context.Context, _ string) ([]domain.Track, error) {
	out := make([]domain.Track, 0, len(s.tracks))
	for _, t := range s.tracks {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubCatalog) GetByID(_ context.Context, id string) (*domain.Track, error) {
	t, ok := s.tracks[id]
	if !ok {
		return nil, domain.ErrCatalogTrackNotFound
	}
	return &t, nil
}

func newTestGateway() *epay.Gateway {
	return epay.NewGateway(epay.Config{
		MerchantID:  "1001",
		MerchantKey: "secret",
		APIURL:      "https://pay.example.com",
		NotifyURL:   "http://localhost:3000/payments/callback",
		ReturnURL:   "http://localhost:3000/payments/return",
	})
}

func setupContainer(t *testing.T) *use_cases.Container {
	t.Helper()
	db, err := gormdb.NewTestConnection()
	require.NoError(t, err)

	catalog := &stubCatalog{tracks: map[string]domain.Track{
		"7qiZfU4dY1lWllzX7mPBI3": {
			ID:         "7qiZfU4dY1lWllzX7mPBI3",
			Title:      "Shape of You",
			ArtistName: "Ed Sheeran",
		},
	}}

	container, err := use_cases.NewContainer(db, &config.Config{
		AdminSecret:          testAdminSecret,
		DefaultPaymentAmount: decimal.RequireFromString("5.00"),
		OrderPrefix:          "song",
		PaymentCacheSize:     8,
	}, catalog, newTestGateway())
	require.NoError(t, err)
	return container
}

func submitSample(t *testing.T, container *use_cases.Container) uint {
	t.Helper()
	created, err := container.SubmitRequest.Execute(context.Background(), domain.SubmitRequest{
		RequesterNameLocal: "李雷",
		RequesterNameAlt:   "Lei Li",
		SongTitle:          "Shape of You",
		Artist:             "Ed Sheeran",
	})
	require.NoError(t, err)
	return created.ID
}
