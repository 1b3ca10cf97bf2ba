package handler

import (
	"errors"
	"net/http"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/allocation"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/service"
	"github.com/labstack/echo/v4"
)

// AllocationHandler serves the resource → supplier → product rollup. The
// tree is rebuilt from current store state on every request; nothing is
// cached or persisted.
type AllocationHandler struct {
	resourceSvc service.ResourceService
	contractSvc service.ContractService
	supplierSvc service.SupplierService
}

func NewAllocationHandler(resourceSvc service.ResourceService, contractSvc service.ContractService, supplierSvc service.SupplierService) *AllocationHandler {
	return &AllocationHandler{
		resourceSvc: resourceSvc,
		contractSvc: contractSvc,
		supplierSvc: supplierSvc,
	}
}

func (h *AllocationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/events/:eventId/allocations", h.GetAllocations)
}

func (h *AllocationHandler) GetAllocations(c echo.Context) error {
	ctx := c.Request().Context()
	eventID := c.Param("eventId")

	// The tree must cover every resource of the event, so walk the paged
	// listing to the end. Contract and supplier lists are unpaginated.
	var resources []models.EventResource
	for page := 1; ; page++ {
		result, err := h.resourceSvc.List(ctx, eventID, page, service.MaxPageSize)
		if err != nil {
			if errors.Is(err, service.ErrEventNotFound) {
				return echo.NewHTTPError(http.StatusNotFound, err.Error())
			}
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		resources = append(resources, result.Items...)
		if len(result.Items) == 0 || int64(len(resources)) >= result.Total {
			break
		}
	}

	contracts, err := h.contractSvc.ListByEvent(ctx, eventID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	suppliers, err := h.supplierSvc.ListAll(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	tree := allocation.BuildTree(resources, contracts, suppliers)
	return c.JSON(http.StatusOK, tree)
}
