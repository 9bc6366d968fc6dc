package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/freelaconnect/marketplace-api/internal/api/middleware"
	"github.com/freelaconnect/marketplace-api/internal/core/domain"
)

const headerIdempotencyKey = "Idempotency-Key"

// ctxActor extracts the actor injected by the Auth middleware. A missing or
// zero actor means the route was wired without Auth; reject with 401.
func ctxActor(c echo.Context) (domain.Actor, error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok || actor.UserID == 0 {
		return domain.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}

// pathID parses a positive int64 path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.InvalidInput(fmt.Sprintf("invalid %s %q", name, c.Param(name)))
	}
	return id, nil
}

// bindAndValidate decodes the request body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domain.InvalidInput("invalid payload")
	}
	return c.Validate(req)
}
