package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/dto"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

type ContractHandler struct {
	svc service.ContractService
}

func NewContractHandler(svc service.ContractService) *ContractHandler {
	return &ContractHandler{svc: svc}
}

func (h *ContractHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/contracts")
	g.GET("", h.ListAll)
	g.GET("/by-event/:id", h.ListByEvent)
	g.GET("/by-resource/:id", h.ListByResource)
	g.GET("/by-supplier/:id", h.ListBySupplier)
	g.GET("/by-product/:id", h.ListByProduct)
	g.POST("", h.Create)
	g.PUT("/upsert", h.Upsert)
	g.PUT("/:id/seal", h.Seal)
	g.DELETE("/by-resource/:id", h.DeleteByResource)
	g.DELETE("/by-resource-supplier/:id/:supplierId", h.DeleteByResourceAndSupplier)
	g.DELETE("/:id/:supplierId/:productId", h.DeleteByKey)
	g.DELETE("/:id", h.DeleteByID)
}

func (h *ContractHandler) ListAll(c echo.Context) error {
	contracts, err := h.svc.ListAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ContractResponse, len(contracts))
	for i, contract := range contracts {
		resp[i] = dto.ToContractResponse(&contract)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ContractHandler) ListByEvent(c echo.Context) error {
	return h.list(c, h.svc.ListByEvent)
}

func (h *ContractHandler) ListByResource(c echo.Context) error {
	return h.list(c, h.svc.ListByResource)
}

func (h *ContractHandler) ListBySupplier(c echo.Context) error {
	return h.list(c, h.svc.ListBySupplier)
}

func (h *ContractHandler) ListByProduct(c echo.Context) error {
	return h.list(c, h.svc.ListByProduct)
}

func (h *ContractHandler) list(c echo.Context, find func(ctx context.Context, id string) ([]models.Contract, error)) error {
	contracts, err := find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ContractResponse, len(contracts))
	for i, contract := range contracts {
		resp[i] = dto.ToContractResponse(&contract)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ContractHandler) Create(c echo.Context) error {
	contract, httpErr := bindContract(c)
	if httpErr != nil {
		return httpErr
	}

	if err := h.svc.Create(c.Request().Context(), contract); err != nil {
		return contractError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToContractResponse(contract))
}

func (h *ContractHandler) Upsert(c echo.Context) error {
	contract, httpErr := bindContract(c)
	if httpErr != nil {
		return httpErr
	}

	merged, err := h.svc.Upsert(c.Request().Context(), contract)
	if err != nil {
		return contractError(err)
	}
	return c.JSON(http.StatusOK, dto.ToContractResponse(merged))
}

func (h *ContractHandler) Seal(c echo.Context) error {
	contract, err := h.svc.Seal(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.ToContractResponse(contract))
}

func (h *ContractHandler) DeleteByID(c echo.Context) error {
	if err := h.svc.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ContractHandler) DeleteByKey(c echo.Context) error {
	return h.deleted(c, func() (int64, error) {
		return h.svc.DeleteByKey(c.Request().Context(), c.Param("id"), c.Param("supplierId"), c.Param("productId"))
	})
}

func (h *ContractHandler) DeleteByResource(c echo.Context) error {
	return h.deleted(c, func() (int64, error) {
		return h.svc.DeleteByResource(c.Request().Context(), c.Param("id"))
	})
}

func (h *ContractHandler) DeleteByResourceAndSupplier(c echo.Context) error {
	return h.deleted(c, func() (int64, error) {
		return h.svc.DeleteByResourceAndSupplier(c.Request().Context(), c.Param("id"), c.Param("supplierId"))
	})
}

func (h *ContractHandler) deleted(c echo.Context, del func() (int64, error)) error {
	count, err := del()
	if err != nil {
		if errors.Is(err, service.ErrContractNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, dto.DeletedResponse{Deleted: count})
}

func bindContract(c echo.Context) (*models.Contract, error) {
	var req dto.ContractRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.EventID == "" || req.ResourceID == "" || req.SupplierID == "" || req.ProductID == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "event_id, resource_id, supplier_id and product_id are required")
	}
	if req.Quantity <= 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "quantity must be positive")
	}
	if req.Price < 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}

	return &models.Contract{
		EventID:    req.EventID,
		ResourceID: req.ResourceID,
		SupplierID: req.SupplierID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Price:      req.Price,
	}, nil
}

func contractError(err error) error {
	switch {
	case errors.Is(err, service.ErrResourceNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrProductNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrContractExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTypeMismatch),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidPrice):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
