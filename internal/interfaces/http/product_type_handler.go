package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/application/usecase"
)

// ProductTypeHandler maneja el catálogo global de tipos de producto.
type ProductTypeHandler struct {
	uc *usecase.ProductTypeUseCase
}

func NewProductTypeHandler(uc *usecase.ProductTypeUseCase) *ProductTypeHandler {
	return &ProductTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de producto
// @Tags         tipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductTypeRequest  true  "datos del tipo"
// @Success      201   {object}  dto.ProductTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tipos [post]
func (h *ProductTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tipo, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tipo)
}

// List godoc
// @Summary      Listar tipos de producto
// @Tags         tipos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductTypeResponse
// @Router       /api/tipos [get]
func (h *ProductTypeHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	tipos, err := h.uc.List(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tipos)
}

// Delete godoc
// @Summary      Eliminar tipo de producto
// @Description  Los productos asociados quedan sin tipo, no se eliminan.
// @Tags         tipos
// @Security     Bearer
// @Param        id  path  string  true  "id del tipo"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tipos/{id} [delete]
func (h *ProductTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
