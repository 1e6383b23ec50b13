package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mirola777/songboard/internal/application/use_cases"
	"github.com/mirola777/songboard/internal/domain"
	apperrors "github.com/mirola777/songboard/internal/domain/errors"
)

type statusBody struct {
	Status      domain.RequestStatus `json:"status" form:"status"`
	AdminSecret string               `json:"adminSecret" form:"adminSecret"`
}

type priorityBody struct {
	Priority    *int   `json:"priority" form:"priority"`
	AdminSecret string `json:"adminSecret" form:"adminSecret"`
}

type adminBody struct {
	AdminSecret string `json:"adminSecret" form:"adminSecret"`
}

type RequestHandler struct {
	searchTracks  *use_cases.SearchTracksUseCase
	submitRequest *use_cases.SubmitRequestUseCase
	listRequests  *use_cases.ListRequestsUseCase
	updateStatus  *use_cases.UpdateStatusUseCase
	setPriority   *use_cases.SetPriorityUseCase
	deleteRequest *use_cases.DeleteRequestUseCase
}

func NewRequestHandler(container *use_cases.Container) *RequestHandler {
	return &RequestHandler{
		searchTracks:  container.SearchTracks,
		submitRequest: container.SubmitRequest,
		listRequests:  container.ListRequests,
		updateStatus:  container.UpdateStatus,
		setPriority:   container.SetPriority,
		deleteRequest: container.DeleteRequest,
	}
}

func (h *RequestHandler) Search(c echo.Context) error {
	var query domain.TrackQuery
	if err := c.Bind(&query); err != nil {
		return apperrors.ErrInvalidSongRequest("invalid request body")
	}

	tracks, err := h.searchTracks.Execute(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tracks)
}

func (h *RequestHandler) Submit(c echo.Context) error {
	var req domain.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidSongRequest("invalid request body")
	}

	created, err := h.submitRequest.Execute(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      created.ID,
	})
}

func (h *RequestHandler) List(c echo.Context) error {
	requests, err := h.listRequests.Execute(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

func (h *RequestHandler) UpdateStatus(c echo.Context) error {
	id, err := parseRequestID(c)
	if err != nil {
		return err
	}
	var body statusBody
	if err := c.Bind(&body); err != nil {
		return apperrors.ErrInvalidSongRequest("invalid request body")
	}

	if err := h.updateStatus.Execute(c.Request().Context(), id, body.Status, body.AdminSecret); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *RequestHandler) SetPriority(c echo.Context) error {
	id, err := parseRequestID(c)
	if err != nil {
		return err
	}
	var body priorityBody
	if err := c.Bind(&body); err != nil {
		return apperrors.ErrInvalidSongRequest("invalid request body")
	}
	if body.Priority == nil {
		return apperrors.ErrInvalidSongRequest("priority is required")
	}

	if err := h.setPriority.Execute(c.Request().Context(), id, *body.Priority, body.AdminSecret); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *RequestHandler) Delete(c echo.Context) error {
	id, err := parseRequestID(c)
	if err != nil {
		return err
	}
	var body adminBody
	if err := c.Bind(&body); err != nil {
		return apperrors.ErrInvalidSongRequest("invalid request body")
	}

	if err := h.deleteRequest.Execute(c.Request().Context(), id, body.AdminSecret); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
