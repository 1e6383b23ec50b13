package use_cases

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/mirola777/songboard/internal/domain"
	"github.com/mirola777/songboard/internal/infrastructure/epay"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEpayGateway() *epay.Gateway {
	return epay.NewGateway(epay.Config{
		MerchantID:  "1001",
		MerchantKey: "secret",
		APIURL:      "https://pay.example.com",
		NotifyURL:   "http://localhost:3000/payments/callback",
		ReturnURL:   "http://localhost:3000/payments/return",
	})
}

func signedCallback(gw *epay.Gateway, orderID, money, tradeStatus string) map[string]string {
	params := map[string]string{
		"pid":          "1001",
		"trade_no":     "2024090122001",
		"out_trade_no": orderID,
		"type":         "alipay",
		"name":         "Shape of You",
		"money":        money,
		"trade_status": tradeStatus,
	}
	params["sign"] = gw.Sign(params)
	params["sign_type"] = "MD5"
	return params
}

func TestCreatePaymentOrder(t *testing.T) {
	repo := setupRepo(t)
	request := seedRequest(t, repo, "Shape of You")
	gateway := new(mockGateway)
	gateway.On("BuildPaymentForm", mock.MatchedBy(func(o domain.PaymentOrder) bool {
		return o.OrderID == fmt.Sprintf("song_%d_1690000000000", request.ID) &&
			o.Amount.Equal(decimal.RequireFromString("5")) &&
			o.ItemName == "Shape of You" &&
			o.PayMethod == domain.PayMethodWxpay &&
			o.ClientIP == "10.0.0.8"
	})).Return("<form></form>", nil)

	uc := NewCreatePaymentOrderUseCase(repo, gateway, "song")
	uc.now = func() time.Time { return time.UnixMilli(1690000000000) }

	form, err := uc.Execute(context.Background(), request.ID, domain.PayMethodWxpay, "10.0.0.8")

	require.NoError(t, err)
	assert.Equal(t, "<form></form>", form)
	gateway.AssertExpectations(t)
}

func TestCreatePaymentOrder_Rejections(t *testing.T) {
	repo := setupRepo(t)
	request := seedRequest(t, repo, "Shape of You")
	gateway := new(mockGateway)
	uc := NewCreatePaymentOrderUseCase(repo, gateway, "song")
	ctx := context.Background()

	_, err := uc.Execute(ctx, request.ID, "paypal", "")
	assertAppError(t, err, "INVALID_PAYMENT_METHOD")

	_, err = uc.Execute(ctx, 9999, domain.PayMethodAlipay, "")
	assertAppError(t, err, "SONG_REQUEST_NOT_FOUND")

	_, err = repo.MarkPaid(ctx, request.ID, decimal.RequireFromString("5.00"), time.Now())
	require.NoError(t, err)
	_, err = uc.Execute(ctx, request.ID, domain.PayMethodAlipay, "")
	assertAppError(t, err, "REQUEST_ALREADY_PAID")

	gateway.AssertNotCalled(t, "BuildPaymentForm", mock.Anything)
}

func TestCreatePaymentOrder_GatewayFailure(t *testing.T) {
	repo := setupRepo(t)
	request := seedRequest(t, repo, "Shape of You")
	gateway := new(mockGateway)
	gateway.On("BuildPaymentForm", mock.Anything).Return("", errors.New("template broke"))
	uc := NewCreatePaymentOrderUseCase(repo, gateway, "song")

	_, err := uc.Execute(context.Background(), request.ID, domain.PayMethodAlipay, "")

	assertAppError(t, err, "PAYMENT_GATEWAY_ERROR")
}

func TestConfirmPayment_MarksPaid(t *testing.T) {
	repo := setupRepo(t)
	paidCache := setupCache(t)
	gw := newEpayGateway()
	request := seedRequest(t, repo, "Shape of You")
	uc := NewConfirmPaymentUseCase(repo, gw, paidCache)
	ctx := context.Background()

	orderID := fmt.Sprintf("song_%d_1690000000000", request.ID)
	result, err := uc.Execute(ctx, signedCallback(gw, orderID, "5.00", "TRADE_SUCCESS"))
	require.NoError(t, err)
	assert.Equal(t, request.ID, result.RequestID)
	assert.Equal(t, "5.00", result.Amount.StringFixed(2))

	stored, err := repo.FindByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, stored.PaymentStatus)
	assert.Equal(t, 1, stored.Priority)
	assert.True(t, decimal.RequireFromString("5").Equal(stored.PaymentAmount))
	require.NotNil(t, stored.PaymentTime)

	status, cached := paidCache.Get(request.ID)
	assert.True(t, cached)
	assert.Equal(t, domain.PaymentStatusPaid, status)
}

func TestConfirmPayment_ReplayIsIdempotent(t *testing.T) {
	repo := setupRepo(t)
	gw := newEpayGateway()
	request := seedRequest(t, repo, "Shape of You")
	uc := NewConfirmPaymentUseCase(repo, gw, setupCache(t))
	ctx := context.Background()

	params := signedCallback(gw, fmt.Sprintf("song_%d_1690000000000", request.ID), "5.00", "TRADE_SUCCESS")

	uc.now = func() time.Time { return time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC) }
	_, err := uc.Execute(ctx, params)
	require.NoError(t, err)
	first, _ := repo.FindByID(ctx, request.ID)

	uc.now = func() time.Time { return time.Date(2024, 9, 1, 12, 5, 0, 0, time.UTC) }
	_, err = uc.Execute(ctx, params)
	require.NoError(t, err)
	second, _ := repo.FindByID(ctx, request.ID)

	assert.Equal(t, first.PaymentStatus, second.PaymentStatus)
	assert.Equal(t, first.Priority, second.Priority)
	assert.True(t, first.PaymentAmount.Equal(second.PaymentAmount))
	require.NotNil(t, second.PaymentTime)
	assert.True(t, first.PaymentTime.Equal(*second.PaymentTime))
}

func TestConfirmPayment_Rejections(t *testing.T) {
	gw := newEpayGateway()

	tests := []struct {
		name    string
		params  func(id uint) map[string]string
		errCode string
	}{
		{
			name: "tampered amount",
			params: func(id uint) map[string]string {
				p := signedCallback(gw, fmt.Sprintf("song_%d_1690000000000", id), "5.00", "TRADE_SUCCESS")
				p["money"] = "0.01"
				return p
			},
			errCode: "INVALID_SIGNATURE",
		},
		{
			name: "missing signature",
			params: func(id uint) map[string]string {
				p := signedCallback(gw, fmt.Sprintf("song_%d_1690000000000", id), "5.00", "TRADE_SUCCESS")
				delete(p, "sign")
				return p
			},
			errCode: "INVALID_SIGNATURE",
		},
		{
			name: "trade not successful",
			params: func(id uint) map[string]string {
				return signedCallback(gw, fmt.Sprintf("song_%d_1690000000000", id), "5.00", "WAIT_BUYER_PAY")
			},
			errCode: "PAYMENT_NOT_SUCCESSFUL",
		},
		{
			name: "malformed order id",
			params: func(id uint) map[string]string {
				return signedCallback(gw, "garbage", "5.00", "TRADE_SUCCESS")
			},
			errCode: "INVALID_ORDER_ID",
		},
		{
			name: "non numeric amount",
			params: func(id uint) map[string]string {
				return signedCallback(gw, fmt.Sprintf("song_%d_1690000000000", id), "five", "TRADE_SUCCESS")
			},
			errCode: "INVALID_PAYMENT_AMOUNT",
		},
		{
			name: "zero amount",
			params: func(id uint) map[string]string {
				return signedCallback(gw, fmt.Sprintf("song_%d_1690000000000", id), "0", "TRADE_SUCCESS")
			},
			errCode: "INVALID_PAYMENT_AMOUNT",
		},
		{
			name: "unknown request",
			params: func(id uint) map[string]string {
				return signedCallback(gw, "song_9999_1690000000000", "5.00", "TRADE_SUCCESS")
			},
			errCode: "SONG_REQUEST_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := setupRepo(t)
			request := seedRequest(t, repo, "Shape of You")
			uc := NewConfirmPaymentUseCase(repo, gw, setupCache(t))

			_, err := uc.Execute(context.Background(), tt.params(request.ID))
			assertAppError(t, err, tt.errCode)

			stored, _ := repo.FindByID(context.Background(), request.ID)
			assert.Equal(t, domain.PaymentStatusUnpaid, stored.PaymentStatus)
			assert.Nil(t, stored.PaymentTime)
		})
	}
}

func TestGetPaymentStatus(t *testing.T) {
	repo := setupRepo(t)
	paidCache := setupCache(t)
	request := seedRequest(t, repo, "Shape of You")
	uc := NewGetPaymentStatusUseCase(repo, paidCache)
	ctx := context.Background()

	status, err := uc.Execute(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusUnpaid, status)
	assert.Equal(t, 0, paidCache.Len())

	_, err = repo.MarkPaid(ctx, request.ID, decimal.RequireFromString("5.00"), time.Now())
	require.NoError(t, err)

	status, err = uc.Execute(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, status)
	_, cached := paidCache.Get(request.ID)
	assert.True(t, cached)

	_, err = uc.Execute(ctx, 9999)
	assertAppError(t, err, "SONG_REQUEST_NOT_FOUND")
}

func TestGetPaymentStatus_Summary(t *testing.T) {
	repo := setupRepo(t)
	request := seedRequest(t, repo, "Shape of You")
	uc := NewGetPaymentStatusUseCase(repo, setupCache(t))

	summary, err := uc.Summary(context.Background(), request.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusUnpaid, summary.PaymentStatus)
	assert.Equal(t, "5.00", summary.PaymentAmount.StringFixed(2))

	_, err = uc.Summary(context.Background(), 9999)
	assertAppError(t, err, "SONG_REQUEST_NOT_FOUND")
}

func TestConfirmPayment_UnderscoredOrderPrefix(t *testing.T) {
	repo := setupRepo(t)
	gw := newEpayGateway()
	request := seedRequest(t, repo, "Shape of You")

	var issued domain.PaymentOrder
	gateway := new(mockGateway)
	gateway.On("BuildPaymentForm", mock.Anything).
		Run(func(args mock.Arguments) { issued = args.Get(0).(domain.PaymentOrder) }).
		Return("<form></form>", nil)
	order := NewCreatePaymentOrderUseCase(repo, gateway, "campus_song")
	_, err := order.Execute(context.Background(), request.ID, domain.PayMethodAlipay, "")
	require.NoError(t, err)
	require.Contains(t, issued.OrderID, "campus_song_")

	confirm := NewConfirmPaymentUseCase(repo, gw, setupCache(t))
	_, err = confirm.Execute(context.Background(), signedCallback(gw, issued.OrderID, "5.00", "TRADE_SUCCESS"))
	require.NoError(t, err)

	stored, _ := repo.FindByID(context.Background(), request.ID)
	assert.Equal(t, domain.PaymentStatusPaid, stored.PaymentStatus)
	assert.Equal(t, 1, stored.Priority)
}
