package use_cases

import (
	"context"
	"errors"
	"testing"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
	"github.com/mirola777/songboard/internal/infrastructure/cache"
	gormdb "github.com/mirola777/songboard/internal/infrastructure/gorm"
	"github.com/mirola777/songboard/internal/infrastructure/gorm/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminSecret = "letmein"

func setupRepo(t *testing.T) domain.SongRequestRepository {
	t.Helper()
	db, err := gormdb.NewTestConnection()
	require.NoError(t, err)
	return repositories.NewSongRequestRepo(db)
}

func setupCache(t *testing.T) *cache.PaymentStatusCache {
	t.Helper()
	c, err := cache.NewPaymentStatusCache(16)
	require.NoError(t, err)
	return c
}

func seedRequest(t *testing.T, repo domain.SongRequestRepository, title string) *domain.SongRequest {
	t.Helper()
	request := &domain.SongRequest{
		RequesterNameLocal: "李雷",
		RequesterNameAlt:   "Lei Li",
		SongTitle:          title,
		Artist:             "Ed Sheeran",
		Status:             domain.RequestStatusPending,
		PaymentStatus:      domain.PaymentStatusUnpaid,
		PaymentAmount:      decimal.RequireFromString("5.00"),
	}
	require.NoError(t, repo.Create(context.Background(), request))
	return request
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}
