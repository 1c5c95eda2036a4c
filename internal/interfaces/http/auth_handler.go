package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ignaciodev/inventario-api/internal/application/auth"
	"github.com/ignaciodev/inventario-api/internal/application/dto"
)

// AuthHandler maneja login y la información del usuario autenticado.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(resp)
}

// UserInfo godoc
// @Summary      Información del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserInfoDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/user-info [get]
func (h *AuthHandler) UserInfo(c *fiber.Ctx) error {
	info, err := h.uc.UserInfo(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(info)
}
