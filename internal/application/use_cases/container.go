package use_cases

import (
	"fmt"

	"github.com/mirola777/songboard/internal/domain"
	"github.com/mirola777/songboard/internal/infrastructure/cache"
	"github.com/mirola777/songboard/internal/infrastructure/gorm/repositories"
	"github.com/mirola777/songboard/internal/utils/config"
	"gorm.io/gorm"
)

type Container struct {
	HealthCheck        *HealthCheckUseCase
	SearchTracks       *SearchTracksUseCase
	SubmitRequest      *SubmitRequestUseCase
	ListRequests       *ListRequestsUseCase
	UpdateStatus       *UpdateStatusUseCase
	SetPriority        *SetPriorityUseCase
	DeleteRequest      *DeleteRequestUseCase
	CreatePaymentOrder *CreatePaymentOrderUseCase
	ConfirmPayment     *ConfirmPaymentUseCase
	GetPaymentStatus   *GetPaymentStatusUseCase
}

func NewContainer(
	db *gorm.DB,
	cfg *config.Config,
	catalog domain.CatalogClient,
	gateway domain.PaymentGateway,
) (*Container, error) {
	repo := repositories.NewSongRequestRepo(db)

	paidCache, err := cache.NewPaymentStatusCache(cfg.PaymentCacheSize)
	if err != nil {
		return nil, fmt.Errorf("payment status cache: %w", err)
	}

	return &Container{
		HealthCheck:        NewHealthCheckUseCase(db),
		SearchTracks:       NewSearchTracksUseCase(catalog),
		SubmitRequest:      NewSubmitRequestUseCase(repo, catalog, cfg.DefaultPaymentAmount),
		ListRequests:       NewListRequestsUseCase(repo),
		UpdateStatus:       NewUpdateStatusUseCase(repo, cfg.AdminSecret),
		SetPriority:        NewSetPriorityUseCase(repo, cfg.AdminSecret),
		DeleteRequest:      NewDeleteRequestUseCase(repo, paidCache, cfg.AdminSecret),
		CreatePaymentOrder: NewCreatePaymentOrderUseCase(repo, gateway, cfg.OrderPrefix),
		ConfirmPayment:     NewConfirmPaymentUseCase(repo, gateway, paidCache),
		GetPaymentStatus:   NewGetPaymentStatusUseCase(repo, paidCache),
	}, nil
}
