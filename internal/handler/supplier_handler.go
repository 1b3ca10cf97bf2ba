package handler

import (
	"errors"
	"net/http"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/dto"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type SupplierHandler struct {
	svc service.SupplierService
}

func NewSupplierHandler(svc service.SupplierService) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

func (h *SupplierHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/suppliers")
	g.POST("", h.Create)
	g.GET("", h.ListAll)
	g.GET("/:id", h.Get)
	g.POST("/:id/products", h.AddProduct)
}

func (h *SupplierHandler) Create(c echo.Context) error {
	var req dto.CreateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	supplier := &models.Supplier{
		Name: req.Name,
		Type: models.ResourceType(req.Type),
	}
	for _, p := range req.Products {
		supplier.Products = append(supplier.Products, models.SupplierProduct{
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Unit:      p.Unit,
		})
	}

	if err := h.svc.Create(c.Request().Context(), supplier); err != nil {
		if errors.Is(err, service.ErrUnknownType) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

func (h *SupplierHandler) Get(c echo.Context) error {
	supplier, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "supplier not found")
	}
	return c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

func (h *SupplierHandler) ListAll(c echo.Context) error {
	suppliers, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		resp[i] = dto.ToSupplierResponse(&s)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SupplierHandler) AddProduct(c echo.Context) error {
	var req dto.ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if req.UnitPrice < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "unit_price must not be negative")
	}

	product := &models.SupplierProduct{
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Unit:      req.Unit,
	}

	if err := h.svc.AddProduct(c.Request().Context(), c.Param("id"), product); err != nil {
		if errors.Is(err, service.ErrSupplierNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		UnitPrice: product.UnitPrice,
		Unit:      product.Unit,
	})
}
