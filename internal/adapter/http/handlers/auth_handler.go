package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "barbearia_matheus/internal/adapter/http/dto/request"
	response "barbearia_matheus/internal/adapter/http/dto/response"
	"barbearia_matheus/internal/usecase"
	"barbearia_matheus/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler handles the console's two login flows: admin username/password
// and client login by CPF or phone.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// AdminLogin issues a bearer token for a back-office operator.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var payload request.AdminLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	admin, token, err := h.usecase.AdminLogin(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AdminLoginResponse{
		Token: token,
		Admin: response.FromAdmin(admin),
	})
}

// AdminLogout revokes the bearer token of the current session.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_TOKEN", "Missing bearer token", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.AdminLogout(c.Request.Context(), token); err != nil {
		log.Printf("[auth][handler] logout failed err=%v", err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ClientLogin resolves a client by CPF or phone; there is no password.
func (h *AuthHandler) ClientLogin(c *gin.Context) {
	var payload request.ClientLoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.ClientLogin(c.Request.Context(), payload.Identifier)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidIdentifier):
		return pkg.NewDomainErrorSimple("INVALID_IDENTIFIER", "Identifier must be a CPF or phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, usecase.ErrSessionExpired):
		return pkg.NewDomainErrorSimple("INVALID_SESSION", "Session is missing or expired", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
