package v1

import (
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/smart-parking/console/internal/repository/upstream"
	"github.com/smart-parking/console/internal/usecase/auth"
	"github.com/smart-parking/console/internal/usecase/demo"
	"github.com/smart-parking/console/internal/usecase/sqldb"
)

const (
	msgInternal           = "Internal server error"
	msgInvalidCredentials = "Invalid credentials"
	msgTokenRequired      = "Access token required"
	msgInvalidToken       = "Invalid token"
	msgGeneral            = "general error"
)

type response struct {
	Error   string `json:"error,omitempty" example:"message"`
	Message string `json:"message,omitempty" example:"message"`
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, response{Error: msg, Message: msg})
}

func ErrorResponse(c *gin.Context, err error) {
	var (
		validatorErr   validator.ValidationErrors
		nfErr          sqldb.NotFoundError
		notUniqueErr   sqldb.NotUniqueError
		dbErr          sqldb.DatabaseError
		upErr          *upstream.Error
		unreachableErr *upstream.UnreachableError
		netErr         net.Error
	)

	switch {
	case errors.As(err, &validatorErr):
		abort(c, http.StatusBadRequest, validatorErr.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		abort(c, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, demo.ErrRunInProgress), errors.Is(err, demo.ErrSessionActive):
		abort(c, http.StatusConflict, err.Error())
	case errors.As(err, &nfErr):
		notFoundErrorHandle(c, nfErr)
	case errors.As(err, &notUniqueErr):
		abort(c, http.StatusConflict, notUniqueErr.Console.FriendlyMessage())
	case errors.As(err, &dbErr):
		abort(c, http.StatusInternalServerError, dbErr.Console.FriendlyMessage())
	case errors.As(err, &upErr):
		upstreamErrorHandle(c, upErr, msgGeneral)
	case errors.As(err, &unreachableErr):
		unreachableErrorHandle(c, unreachableErr, msgGeneral)
	case errors.As(err, &netErr):
		abort(c, http.StatusGatewayTimeout, netErr.Error())
	default:
		abort(c, http.StatusInternalServerError, msgGeneral)
	}
}

// proxyErrorResponse answers a failed pass-through call. The backend status is
// kept and its detail preferred; anything else gets the route's generic message.
func proxyErrorResponse(c *gin.Context, err error, generic string) {
	var (
		upErr          *upstream.Error
		unreachableErr *upstream.UnreachableError
	)

	switch {
	case errors.As(err, &upErr):
		upstreamErrorHandle(c, upErr, generic)
	case errors.As(err, &unreachableErr):
		unreachableErrorHandle(c, unreachableErr, generic)
	default:
		abort(c, http.StatusInternalServerError, generic)
	}
}

func notFoundErrorHandle(c *gin.Context, err sqldb.NotFoundError) {
	message := "Error not found"
	if err.Console.FriendlyMessage() != "" {
		message = err.Console.FriendlyMessage()
	}

	abort(c, http.StatusNotFound, message)
}

func upstreamErrorHandle(c *gin.Context, err *upstream.Error, generic string) {
	msg := err.Detail
	if msg == "" {
		msg = generic
	}

	status := err.Status
	if status < http.StatusBadRequest || status > 599 {
		status = http.StatusBadGateway
	}

	abort(c, status, msg)
}

func unreachableErrorHandle(c *gin.Context, err *upstream.UnreachableError, generic string) {
	if err.Timeout() {
		abort(c, http.StatusGatewayTimeout, generic)

		return
	}

	abort(c, http.StatusBadGateway, generic)
}
