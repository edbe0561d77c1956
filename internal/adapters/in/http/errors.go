package http

import (
	"errors"
	"net/http"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/product"
	"supplychain/internal/core/domain/model/warehouse"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

const insufficientStockDetail = "Insufficient product quantity in the factory warehouse."

// respondError translates domain failures into HTTP responses. Validation
// and business-rule violations map to 400, missing objects to 404, policy
// denials to 403; everything else is an internal error with the detail
// withheld from the client.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, warehouse.ErrInsufficientStock):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: insufficientStockDetail})
	case errors.Is(err, services.ErrPermissionDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{
			Detail: "You do not have permission to perform this action.",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Detail: err.Error()})
	case errors.Is(err, order.ErrOrderLocked),
		errors.Is(err, product.ErrStillReferenced),
		errors.Is(err, product.ErrStillInCatalog),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Detail: "Internal server error.",
		})
	}
}

func badRequest(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Detail: detail})
}
