package use_cases

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type HealthCheckUseCase struct {
	db *gorm.DB
}

func NewHealthCheckUseCase(db *gorm.DB) *HealthCheckUseCase {
	return &HealthCheckUseCase{
		db: db,
	}
}

// Execute reports whether the request store answers a ping.
func (uc *HealthCheckUseCase) Execute(ctx context.Context) error {
	sqlDB, err := uc.db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}
