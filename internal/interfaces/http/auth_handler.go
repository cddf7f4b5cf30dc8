package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billed-client/internal/application/dto"
	"github.com/jhoicas/billed-client/internal/application/session"
	"github.com/jhoicas/billed-client/internal/domain"
	"github.com/jhoicas/billed-client/pkg/logger"
)

// AuthHandler maneja login y logout de la sesión local.
type AuthHandler struct {
	uc  *session.LoginUseCase
	rec *RouteRecorder
	log *logger.Logger
}

// NewAuthHandler construye el handler de sesión.
func NewAuthHandler(uc *session.LoginUseCase, rec *RouteRecorder, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, rec: rec, log: log}
}

// Login godoc
// @Summary      Identificarse como Employee o Admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "type, email, password"
// @Success      200   {object}  dto.RedirectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	if err := h.uc.Login(c.UserContext(), in.Type, in.Email, in.Password); err != nil {
		if errors.Is(err, domain.ErrRolInvalido) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		h.log.Error().Err(err).Str("email", in.Email).Msg("login")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "LOGIN_FAILED", Message: err.Error()})
	}
	return c.JSON(dto.RedirectResponse{Redirect: string(h.rec.Last())})
}

// Logout godoc
// @Summary      Cerrar la sesión local
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.RedirectResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.RedirectResponse{Redirect: string(domain.RouteLogin)})
}
