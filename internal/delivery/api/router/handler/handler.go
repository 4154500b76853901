// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"loyalty/internal/delivery/api/response"
	deliverycontext "loyalty/internal/delivery/context"
	"loyalty/internal/domain/entity"
	domainerrors "loyalty/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateOnlyLayout = "2006-01-02"

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrBadRequest.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func principalFrom(c echo.Context) (entity.Principal, error) {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthorized
	}

	return principal, nil
}

func actorID(c echo.Context) *uuid.UUID {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return nil
	}
	id := principal.SubjectID

	return &id
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return id, nil
}

func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID")
	}

	return &id, nil
}

// pageQuery reads skip and take. Bounds are applied by the usecases.
func pageQuery(c echo.Context) (skip, take int, err error) {
	if skip, err = intQuery(c, "skip"); err != nil {
		return 0, 0, err
	}
	if take, err = intQuery(c, "take"); err != nil {
		return 0, 0, err
	}

	return skip, take, nil
}

func intQuery(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer")
	}

	return n, nil
}

// dateQuery accepts RFC 3339 timestamps or calendar dates. A calendar date used
// as an upper bound covers the whole day.
func dateQuery(c echo.Context, name string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse(dateOnlyLayout, raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(name + " must be YYYY-MM-DD or RFC 3339")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}

	return &t, nil
}

// activationFilterQuery reads the activation listing filters shared by several routes.
func activationFilterQuery(c echo.Context) (entity.ActivationFilter, error) {
	var (
		filter entity.ActivationFilter
		err    error
	)

	if filter.DealerID, err = optionalUUIDQuery(c, "dealerId"); err != nil {
		return filter, err
	}
	if filter.StaffID, err = optionalUUIDQuery(c, "staffId"); err != nil {
		return filter, err
	}
	if filter.CustomerID, err = optionalUUIDQuery(c, "customerId"); err != nil {
		return filter, err
	}
	if filter.DateFrom, err = dateQuery(c, "dateFrom", false); err != nil {
		return filter, err
	}
	if filter.DateTo, err = dateQuery(c, "dateTo", true); err != nil {
		return filter, err
	}
	if filter.Skip, filter.Take, err = pageQuery(c); err != nil {
		return filter, err
	}
	filter.Search = c.QueryParam("search")

	return filter, nil
}
