package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mirola777/songboard/internal/application/use_cases"
	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
	"github.com/mirola777/songboard/internal/infrastructure/metrics"
	"github.com/sirupsen/logrus"
)

type payBody struct {
	PayMethod domain.PayMethod `json:"payMethod" form:"payMethod"`
}

type PaymentHandler struct {
	createOrder      *use_cases.CreatePaymentOrderUseCase
	confirmPayment   *use_cases.ConfirmPaymentUseCase
	getPaymentStatus *use_cases.GetPaymentStatusUseCase
	returnURL        string
}

// NewPaymentHandler sends browsers coming back from the gateway to returnURL
// with a payment=success or payment=error query.
func NewPaymentHandler(container *use_cases.Container, returnURL string) *PaymentHandler {
	return &PaymentHandler{
		createOrder:      container.CreatePaymentOrder,
		confirmPayment:   container.ConfirmPayment,
		getPaymentStatus: container.GetPaymentStatus,
		returnURL:        returnURL,
	}
}

func (h *PaymentHandler) Pay(c echo.Context) error {
	id, err := parseRequestID(c)
	if err != nil {
		return err
	}
	var body payBody
	if err := c.Bind(&body); err != nil {
		return apperrors.ErrInvalidSongRequest("invalid request body")
	}

	form, err := h.createOrder.Execute(c.Request().Context(), id, body.PayMethod, c.RealIP())
	if err != nil {
		return err
	}
	return c.HTML(http.StatusOK, form)
}

func (h *PaymentHandler) PaymentStatus(c echo.Context) error {
	id, err := parseRequestID(c)
	if err != nil {
		return err
	}

	status, err := h.getPaymentStatus.Execute(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]domain.PaymentStatus{"status": status})
}

func (h *PaymentHandler) PaymentSummary(c echo.Context) error {
	id, err := parseRequestID(c)
	if err != nil {
		return err
	}

	summary, err := h.getPaymentStatus.Summary(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}

// Callback always acknowledges so the gateway stops retrying; failures
// only show up in logs and metrics.
func (h *PaymentHandler) Callback(c echo.Context) error {
	params, err := gatewayParams(c)
	if err == nil {
		_, err = h.confirmPayment.Execute(c.Request().Context(), params)
	}
	h.recordOutcome(c, params, err)
	return c.String(http.StatusOK, "success")
}

func (h *PaymentHandler) Return(c echo.Context) error {
	params, err := gatewayParams(c)
	if err == nil {
		_, err = h.confirmPayment.Execute(c.Request().Context(), params)
	}
	h.recordOutcome(c, params, err)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	return c.Redirect(http.StatusFound, h.returnURL+"?payment="+outcome)
}

func (h *PaymentHandler) recordOutcome(c echo.Context, params map[string]string, err error) {
	entry := logrus.WithFields(logrus.Fields{
		"trace_id":     c.Get("trace_id"),
		"out_trade_no": params["out_trade_no"],
		"trade_status": params["trade_status"],
	})
	if err != nil {
		metrics.RecordPaymentCallback("rejected")
		entry.WithError(err).Warn("payment notification rejected")
		return
	}
	metrics.RecordPaymentCallback("confirmed")
	entry.Info("payment confirmed")
}

// gatewayParams merges query and form values. A body value overrides the
// query value of the same key; within a source the first value wins.
func gatewayParams(c echo.Context) (map[string]string, error) {
	params := make(map[string]string)
	for k, v := range c.QueryParams() {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	if c.Request().Method == http.MethodGet {
		return params, nil
	}

	if _, err := c.FormParams(); err != nil {
		return params, err
	}
	req := c.Request()
	body := req.PostForm
	if req.MultipartForm != nil {
		body = req.MultipartForm.Value
	}
	for k, v := range body {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params, nil
}
