package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/dto"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type ResourceHandler struct {
	svc service.ResourceService
}

func NewResourceHandler(svc service.ResourceService) *ResourceHandler {
	return &ResourceHandler{svc: svc}
}

func (h *ResourceHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/events/:eventId/resources")
	g.GET("", h.ListResources)
	g.GET("/public", h.ListPublicResources)
	g.PUT("", h.UpsertResource)
	g.DELETE("/:resourceId", h.DeleteResource)
	g.PUT("/:resourceId/reserve", h.Reserve)
}

func (h *ResourceHandler) ListResources(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	result, err := h.svc.List(c.Request().Context(), c.Param("eventId"), page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]dto.ResourceResponse, len(result.Items))
	for i, r := range result.Items {
		items[i] = dto.ToResourceResponse(&r)
	}

	return c.JSON(http.StatusOK, dto.ResourcePageResponse{
		Items:    items,
		Total:    result.Total,
		Page:     result.Page,
		PageSize: result.PageSize,
	})
}

func (h *ResourceHandler) ListPublicResources(c echo.Context) error {
	resources, err := h.svc.ListPublic(c.Request().Context(), c.Param("eventId"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.PublicResourceResponse, len(resources))
	for i, r := range resources {
		resp[i] = dto.ToPublicResourceResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ResourceHandler) UpsertResource(c echo.Context) error {
	var req dto.UpsertResourceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.Quantity < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "quantity must not be negative")
	}

	res := &models.EventResource{
		ID:       req.ID,
		Name:     req.Name,
		Type:     models.ResourceType(req.Type),
		Quantity: req.Quantity,
		Unit:     req.Unit,
		IsPublic: req.IsPublic,
		Price:    req.Price,
	}

	err := h.svc.Upsert(c.Request().Context(), c.Param("eventId"), res)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound), errors.Is(err, service.ErrResourceNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUnknownType):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNegativePrice), errors.Is(err, service.ErrResourceImmutable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToResourceResponse(res))
}

func (h *ResourceHandler) DeleteResource(c echo.Context) error {
	err := h.svc.Delete(c.Request().Context(), c.Param("eventId"), c.Param("resourceId"))
	if err != nil {
		if errors.Is(err, service.ErrResourceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *ResourceHandler) Reserve(c echo.Context) error {
	var req dto.ReserveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	res, err := h.svc.Reserve(c.Request().Context(), c.Param("eventId"), c.Param("resourceId"), req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrResourceNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCapacityExceeded):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidDelta):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToResourceResponse(res))
}
