package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/axanet-clients/internal/config"
	"github.com/BruksfildServices01/axanet-clients/internal/httperr"
	"github.com/BruksfildServices01/axanet-clients/internal/httpresp"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

// --------- Requests ---------

type TokenRequest struct {
	Operator string `json:"operator"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Token(c *gin.Context) {
	if !h.config.AuthEnabled() {
		httperr.Unavailable(c, "auth_disabled", "JWT_SECRET o API_PASSWORD_HASH no configurado.")
		return
	}

	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.config.APIPasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales inválidas.")
		return
	}

	operator := req.Operator
	if operator == "" {
		operator = "operador"
	}

	token, err := h.generateToken(operator)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "No se pudo generar el token.")
		return
	}

	httpresp.OK(c, gin.H{
		"token":      token,
		"expires_in": int(tokenTTL.Seconds()),
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(operator string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  operator,
		"role": "operator",
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
