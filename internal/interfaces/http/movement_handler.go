package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ignaciodev/inventario-api/internal/application/dto"
	"github.com/ignaciodev/inventario-api/internal/application/inventory"
)

// MovementHandler maneja las peticiones HTTP del libro de movimientos.
type MovementHandler struct {
	apply *inventory.ApplyMovementUseCase
	list  *inventory.ListMovementsUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(apply *inventory.ApplyMovementUseCase, list *inventory.ListMovementsUseCase) *MovementHandler {
	return &MovementHandler{apply: apply, list: list}
}

// Create godoc
// @Summary      Registrar movimiento de inventario
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "producto, tipo_movimiento (ingreso|salida|ajuste), cantidad > 0"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	mov, err := h.apply.Apply(c.Context(), GetScope(c), inventory.ApplyMovementInput{
		ProductoID: in.Producto,
		Tipo:       in.TipoMovimiento,
		Cantidad:   in.Cantidad,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ID:             mov.ID,
		FechaHora:      mov.FechaHora,
		TipoMovimiento: string(mov.Tipo),
		Cantidad:       mov.Cantidad,
		Producto:       mov.ProductID,
	})
}

// List godoc
// @Summary      Listar movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        tipo          query  string  false  "ingreso|salida|ajuste"
// @Param        fecha_inicio  query  string  false  "YYYY-MM-DD"
// @Param        fecha_fin     query  string  false  "YYYY-MM-DD"
// @Param        search        query  string  false  "nombre o código del producto"
// @Param        ordering      query  string  false  "fecha_hora|cantidad, prefijo - para descendente"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var in dto.ListMovementsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}

	movements, err := h.list.List(c.Context(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(movements)
}
