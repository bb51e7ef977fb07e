package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/usecase"
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// ReceiptGenerator puerto para el comprobante de venta en PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order) ([]byte, error)
}

// OrderHandler maneja las peticiones HTTP para pedidos.
type OrderHandler struct {
	uc       *usecase.OrderUseCase
	receipts ReceiptGenerator
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, receipts ReceiptGenerator) *OrderHandler {
	return &OrderHandler{uc: uc, receipts: receipts}
}

// List godoc
// @Summary      Listar pedidos (más recientes primero)
// @Tags         orders
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders := h.uc.List()
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.ToOrderResponse(o))
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ToOrderResponse(*order))
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pedido
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	order, err := h.uc.UpdateStatus(c.Params("id"), entity.OrderStatus(in.Status))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.ToOrderResponse(*order))
}

// Receipt godoc
// @Summary      Comprobante de venta en PDF
// @Tags         orders
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {string}  string  "PDF"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/receipt [get]
func (h *OrderHandler) Receipt(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	data, err := h.receipts.GenerateReceipt(c.Context(), order)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
