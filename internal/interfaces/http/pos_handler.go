package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/pos"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// POSHandler maneja el carrito y el checkout del punto de venta.
type POSHandler struct {
	cart     *pos.Cart
	checkout *pos.CheckoutUseCase
	state    *session.State
}

// NewPOSHandler construye el handler.
func NewPOSHandler(cart *pos.Cart, checkout *pos.CheckoutUseCase, state *session.State) *POSHandler {
	return &POSHandler{cart: cart, checkout: checkout, state: state}
}

// GetCart godoc
// @Summary      Ver carrito
// @Tags         pos
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/pos/cart [get]
func (h *POSHandler) GetCart(c *fiber.Ctx) error {
	return c.JSON(dto.ToCartResponse(h.cart.Items(), h.cart.Total()))
}

// ClearCart godoc
// @Summary      Vaciar carrito
// @Tags         pos
// @Success      204
// @Router       /api/pos/cart [delete]
func (h *POSHandler) ClearCart(c *fiber.Ctx) error {
	h.cart.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem godoc
// @Summary      Agregar producto al carrito
// @Description  Con el producto sin stock la operación es un no-op silencioso,
// @Description  igual que en el mostrador: el carrito vuelve sin la línea.
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pos/cart/items [post]
func (h *POSHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	product, ok := h.state.Product(in.ProductID)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	for i := 0; i < quantity; i++ {
		h.cart.Add(product)
	}
	return c.JSON(dto.ToCartResponse(h.cart.Items(), h.cart.Total()))
}

// RemoveItem godoc
// @Summary      Quitar línea del carrito
// @Tags         pos
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/pos/cart/items/{productId} [delete]
func (h *POSHandler) RemoveItem(c *fiber.Ctx) error {
	h.cart.Remove(c.Params("productId"))
	return c.JSON(dto.ToCartResponse(h.cart.Items(), h.cart.Total()))
}

// ChangeQuantity godoc
// @Summary      Sumar o restar unidades de una línea
// @Description  Delta negativo descuenta; un resultado en cero o menos se
// @Description  descarta y la línea conserva su cantidad.
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.ChangeQuantityRequest  true  "Delta"
// @Success      200  {object}  dto.CartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/pos/cart/items/{productId} [patch]
func (h *POSHandler) ChangeQuantity(c *fiber.Ctx) error {
	var in dto.ChangeQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	h.cart.ChangeQuantity(c.Params("productId"), in.Delta)
	return c.JSON(dto.ToCartResponse(h.cart.Items(), h.cart.Total()))
}

// Checkout godoc
// @Summary      Cerrar la venta en curso
// @Description  Con el carrito vacío responde 204 sin escribir nada.
// @Tags         pos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Medio de pago y cliente opcional"
// @Success      201   {object}  dto.OrderResponse
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pos/checkout [post]
func (h *POSHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	order, err := h.checkout.Checkout(c.Context(), entity.PaymentMethod(in.PaymentMethod), in.CustomerID)
	if err != nil {
		return fail(c, err)
	}
	if order == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToOrderResponse(*order))
}
