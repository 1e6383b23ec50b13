package use_cases

import (
	"context"
	"errors"
	"time"

	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
	"github.com/mirola777/songboard/internal/utils/orderid"
)

type CreatePaymentOrderUseCase struct {
	repo        domain.SongRequestRepository
	gateway     domain.PaymentGateway
	orderPrefix string
	now         func() time.Time
}

func NewCreatePaymentOrderUseCase(
	repo domain.SongRequestRepository,
	gateway domain.PaymentGateway,
	orderPrefix string,
) *CreatePaymentOrderUseCase {
	return &CreatePaymentOrderUseCase{
		repo:        repo,
		gateway:     gateway,
		orderPrefix: orderPrefix,
		now:         time.Now,
	}
}

// Execute returns the self-submitting checkout form for a request.
func (uc *CreatePaymentOrderUseCase) Execute(ctx context.Context, id uint, method domain.PayMethod, clientIP string) (string, error) {
	if !domain.ValidPayMethods[method] {
		return "", apperrors.ErrInvalidPaymentMethod(string(method))
	}

	request, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return "", apperrors.ErrInternal().WithCause(err)
	}
	if request == nil {
		return "", apperrors.ErrSongRequestNotFound()
	}
	if request.PaymentStatus == domain.PaymentStatusPaid {
		return "", apperrors.ErrRequestAlreadyPaid()
	}

	form, err := uc.gateway.BuildPaymentForm(domain.PaymentOrder{
		OrderID:   orderid.Format(uc.orderPrefix, request.ID, uc.now()),
		Amount:    request.PaymentAmount,
		ItemName:  request.SongTitle,
		PayMethod: method,
		ClientIP:  clientIP,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPayMethod) {
			return "", apperrors.ErrInvalidPaymentMethod(string(method))
		}
		return "", apperrors.ErrPaymentGateway().WithCause(err)
	}
	return form, nil
}
