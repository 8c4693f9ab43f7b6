package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/smart-parking/console/internal/entity/dto/v1"
	"github.com/smart-parking/console/internal/usecase"
	"github.com/smart-parking/console/pkg/logger"
)

const (
	msgFetchStatus      = "Failed to fetch status"
	msgFetchSlots       = "Failed to fetch slots"
	msgUpdateSlot       = "Failed to update slot"
	msgFetchSessions    = "Failed to fetch sessions"
	msgManualExit       = "Failed to close session"
	msgFetchUsers       = "Failed to fetch users"
	msgFetchUser        = "Failed to fetch user"
	msgCreateUser       = "Failed to create user"
	msgUpdateUser       = "Failed to update user"
	msgDeleteUser       = "Failed to delete user"
	msgFetchWallet      = "Failed to fetch wallet"
	msgTopup            = "Failed to top up wallet"
	msgWalletTxns       = "Failed to fetch wallet transactions"
	maxForwardBodyBytes = 1 << 20
)

var (
	errValidatorEngine = errors.New("gin validator is not go-playground/validator")

	validationsOnce sync.Once
	validationsErr  error
)

// registerValidations adds the path parameter rules to gin's validator. The
// outcome of the first call is returned to every caller.
func registerValidations() error {
	validationsOnce.Do(func() {
		if binding.Validator == nil {
			validationsErr = errValidatorEngine

			return
		}

		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			validationsErr = errValidatorEngine

			return
		}

		validationsErr = v.RegisterValidation("rfid", dto.ValidateRFID)
	})

	return validationsErr
}

type backendRoutes struct {
	b usecase.Forwarder
	l logger.Interface
}

// NewBackendRoutes registers the endpoints relayed unchanged to the parking
// backend.
func NewBackendRoutes(handler *gin.RouterGroup, b usecase.Forwarder, l logger.Interface) {
	r := &backendRoutes{b, l}

	if err := registerValidations(); err != nil {
		l.Fatal(fmt.Errorf("http - v1 - registerValidations: %w", err))
	}

	handler.GET("/status", r.relay("/api/status", msgFetchStatus))

	slots := handler.Group("/slots")
	{
		slots.GET("", r.relay("/api/slots", msgFetchSlots))
		slots.PATCH(":id", r.relayID("/api/slots/", "", msgUpdateSlot))
	}

	sessions := handler.Group("/sessions")
	{
		sessions.GET("", r.relay("/api/sessions", msgFetchSessions))
		sessions.GET("active", r.relay("/api/sessions/active", msgFetchSessions))
		sessions.POST(":id/manual-exit", r.relayID("/api/sessions/", "/manual-exit", msgManualExit))
	}

	users := handler.Group("/users")
	{
		users.GET("", r.relay("/api/users", msgFetchUsers))
		users.POST("", r.relay("/api/users", msgCreateUser))
		users.GET(":rfid", r.relayRFID("/api/users/", "", msgFetchUser))
		users.PATCH(":rfid", r.relayRFID("/api/users/", "", msgUpdateUser))
		users.DELETE(":rfid", r.relayRFID("/api/users/", "", msgDeleteUser))
	}

	wallet := handler.Group("/wallet")
	{
		wallet.POST("topup", r.relay("/api/wallet/topup", msgTopup))
		wallet.GET(":rfid", r.relayRFID("/api/wallet/", "", msgFetchWallet))
		wallet.GET(":rfid/transactions", r.relayRFID("/api/wallet/", "/transactions", msgWalletTxns))
	}
}

func (r *backendRoutes) relay(path, generic string) gin.HandlerFunc {
	return func(c *gin.Context) {
		r.forward(c, path, generic)
	}
}

func (r *backendRoutes) relayRFID(prefix, suffix, generic string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p dto.RFIDParam
		if err := c.ShouldBindUri(&p); err != nil {
			ErrorResponse(c, err)

			return
		}

		r.forward(c, prefix+url.PathEscape(p.RFID)+suffix, generic)
	}
}

func (r *backendRoutes) relayID(prefix, suffix, generic string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p dto.IDParam
		if err := c.ShouldBindUri(&p); err != nil {
			ErrorResponse(c, err)

			return
		}

		r.forward(c, prefix+url.PathEscape(p.ID)+suffix, generic)
	}
}

func (r *backendRoutes) forward(c *gin.Context, path, generic string) {
	var body []byte

	if c.Request.Body != nil && c.Request.Method != http.MethodGet {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxForwardBodyBytes)

		raw, err := c.GetRawData()
		if err != nil {
			abort(c, http.StatusRequestEntityTooLarge, err.Error())

			return
		}

		if len(raw) > 0 {
			body = raw
		}
	}

	resp, err := r.b.Forward(c.Request.Context(), c.Request.Method, path, c.Request.URL.Query(), body)
	if err != nil {
		r.l.Error(err, "http - v1 - forward "+c.Request.Method+" "+path)
		proxyErrorResponse(c, err, generic)

		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = gin.MIMEJSON
	}

	c.Data(resp.Status, contentType, resp.Body)
}
