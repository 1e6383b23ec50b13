package echo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	echofw "github.com/labstack/echo/v4"
	"github.com/mirola777/songboard/internal/application/use_cases"
	"github.com/mirola777/songboard/internal/domain"
	"github.com/mirola777/songboard/internal/infrastructure/epay"
	gormdb "github.com/mirola777/songboard/internal/infrastructure/gorm"
	"github.com/mirola777/songboard/internal/utils/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyCatalog struct{}

func (emptyCatalog) SearchByName(context.Context, string) ([]domain.Track, error) {
	return []domain.Track{}, nil
}

func (emptyCatalog) GetByID(context.Context, string) (*domain.Track, error) {
	return nil, domain.ErrCatalogTrackNotFound
}

func newTestServer(t *testing.T) (*echofw.Echo, *epay.Gateway) {
	t.Helper()
	db, err := gormdb.NewTestConnection()
	require.NoError(t, err)

	cfg := &config.Config{
		AppURL:               "http://localhost:3000",
		AdminSecret:          "letmein",
		DefaultPaymentAmount: decimal.RequireFromString("5.00"),
		OrderPrefix:          "song",
		PaymentReturnPath:    "/songs",
		PaymentCacheSize:     8,
		RateLimitPerSecond:   100,
		RateLimitBurst:       100,
	}
	gw := epay.NewGateway(epay.Config{MerchantID: "1001", MerchantKey: "secret", APIURL: "https://pay.example.com"})
	container, err := use_cases.NewContainer(db, cfg, emptyCatalog{}, gw)
	require.NoError(t, err)

	return NewServer(cfg, container).Echo(), gw
}

func serve(e *echofw.Echo, method, target, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echofw.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_SubmitPayAndPoll(t *testing.T) {
	e, gw := newTestServer(t)

	rec := serve(e, http.MethodPost, "/requests/submit", echofw.MIMEApplicationJSON,
		`{"requesterNameLocal":"李雷","requesterNameAlt":"Lei Li","songTitle":"Shape of You","artist":"Ed Sheeran"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-Id"))

	rec = serve(e, http.MethodGet, "/requests/1/payment-status", "", "")
	assert.JSONEq(t, `{"status":"unpaid"}`, rec.Body.String())

	params := map[string]string{
		"pid":          "1001",
		"trade_no":     "2024090122001",
		"out_trade_no": fmt.Sprintf("song_%d_1690000000000", 1),
		"type":         "alipay",
		"money":        "5.00",
		"trade_status": "TRADE_SUCCESS",
	}
	params["sign"] = gw.Sign(params)
	params["sign_type"] = "MD5"
	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}

	for i := 0; i < 2; i++ {
		rec = serve(e, http.MethodPost, "/payments/callback", echofw.MIMEApplicationForm, form.Encode())
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", rec.Body.String())
	}

	rec = serve(e, http.MethodGet, "/requests/1/payment-status", "", "")
	assert.JSONEq(t, `{"status":"paid"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/requests", "", "")
	assert.Contains(t, rec.Body.String(), `"priority":1`)
}

func TestRoutes_AdminForbidden(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, http.MethodPost, "/requests/submit", echofw.MIMEApplicationJSON,
		`{"requesterNameLocal":"李雷","requesterNameAlt":"Lei Li","songTitle":"Shape of You"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodPost, "/requests/1/status", echofw.MIMEApplicationJSON,
		`{"status":"played","adminSecret":"wrong"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADMIN_FORBIDDEN")

	rec = serve(e, http.MethodDelete, "/requests/1", echofw.MIMEApplicationJSON, `{"adminSecret":"letmein"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_PaymentStatusUnknown404(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, http.MethodGet, "/requests/42/payment-status", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "SONG_REQUEST_NOT_FOUND")
}

func TestRoutes_HealthAndMetrics(t *testing.T) {
	e, _ := newTestServer(t)

	rec := serve(e, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(e, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "songboard_http_requests_total")
}
