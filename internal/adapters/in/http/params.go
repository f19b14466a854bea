package http

import (
	"strconv"
	"time"

	"ridetrack/internal/core/application/usecases/queries"
	"ridetrack/internal/core/domain/model/kernel"
	"ridetrack/internal/core/domain/model/order"
	"ridetrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// intQueryParam parses an integer query parameter, returning 0 for absent or
// malformed values so the query constructor applies its defaults.
func intQueryParam(ctx echo.Context, name string) int {
	value, err := strconv.Atoi(ctx.QueryParam(name))
	if err != nil {
		return 0
	}
	return value
}

// bindOrderFilter reads the order listing filters from query parameters.
// Dates use the YYYY-MM-DD form; the end date covers its whole day.
func bindOrderFilter(ctx echo.Context) (queries.OrderFilter, int, int, error) {
	var filter queries.OrderFilter

	if raw := ctx.QueryParam("riderId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return filter, 0, 0, errs.NewValueIsInvalidErrorWithCause("riderId", err)
		}
		filter.RiderID = &id
	}
	if raw := ctx.QueryParam("driverId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return filter, 0, 0, errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
		filter.DriverID = &id
	}

	filter.Status = ctx.QueryParam("status")
	filter.PaymentStatus = ctx.QueryParam("paymentStatus")
	filter.OrderNumber = ctx.QueryParam("orderNumber")

	if raw := ctx.QueryParam("dateFrom"); raw != "" {
		from, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return filter, 0, 0, errs.NewValueIsInvalidErrorWithCause("dateFrom", err)
		}
		filter.DateFrom = &from
	}
	if raw := ctx.QueryParam("dateTo"); raw != "" {
		to, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return filter, 0, 0, errs.NewValueIsInvalidErrorWithCause("dateTo", err)
		}
		filter.DateTo = &to
	}

	return filter, intQueryParam(ctx, "page"), intQueryParam(ctx, "pageSize"), nil
}

// orderPatchFromRequest converts an update request into a domain patch,
// validating the driver id format up front.
func orderPatchFromRequest(req updateOrderRequest) (order.Patch, error) {
	patch := order.Patch{
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		ScheduledTime: req.ScheduledTime,
	}

	if req.DriverID != nil {
		id, err := kernel.UUIDFromString(*req.DriverID)
		if err != nil {
			return order.Patch{}, errs.NewValueIsInvalidErrorWithCause("driverId", err)
		}
		patch.DriverID = &id
	}
	if req.Status != nil {
		status := order.Status(*req.Status)
		patch.Status = &status
	}
	if req.PaymentStatus != nil {
		paymentStatus := order.PaymentStatus(*req.PaymentStatus)
		patch.PaymentStatus = &paymentStatus
	}

	return patch, nil
}
