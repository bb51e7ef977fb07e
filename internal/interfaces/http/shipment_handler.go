package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/export"
	"github.com/futmais/futmantos-api/internal/application/usecase"
)

// ShipmentHandler maneja las peticiones HTTP para envíos.
type ShipmentHandler struct {
	uc *usecase.ShipmentUseCase
}

// NewShipmentHandler construye el handler.
func NewShipmentHandler(uc *usecase.ShipmentUseCase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar envío
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShipmentRequest  true  "Datos del envío"
// @Success      201   {object}  dto.ShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shipments [post]
func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	shipment, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToShipmentResponse(*shipment))
}

// List godoc
// @Summary      Listar envíos
// @Tags         shipments
// @Produce      json
// @Success      200  {array}  dto.ShipmentResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	shipments := h.uc.List()
	out := make([]dto.ShipmentResponse, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, dto.ToShipmentResponse(s))
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar envíos a CSV
// @Tags         shipments
// @Produce      text/csv
// @Success      200  {string}  string  "CSV"
// @Router       /api/shipments/export [get]
func (h *ShipmentHandler) Export(c *fiber.Ctx) error {
	data, err := export.ShipmentsCSV(h.uc.List())
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.ShipmentsFilename(time.Now())+`"`)
	return c.Send(data)
}

// GetByID godoc
// @Summary      Obtener envío por ID
// @Tags         shipments
// @Produce      json
// @Param        id   path  string  true  "ID del envío"
// @Success      200  {object}  dto.ShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id} [get]
func (h *ShipmentHandler) GetByID(c *fiber.Ctx) error {
	shipment, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ToShipmentResponse(*shipment))
}

// Update godoc
// @Summary      Actualizar envío
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del envío"
// @Param        body  body  dto.UpdateShipmentRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ShipmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/shipments/{id} [put]
func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	shipment, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ToShipmentResponse(*shipment))
}

// Delete godoc
// @Summary      Eliminar envío
// @Tags         shipments
// @Param        id  path  string  true  "ID del envío"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/shipments/{id} [delete]
func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
