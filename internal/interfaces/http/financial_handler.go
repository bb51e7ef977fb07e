package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/export"
	"github.com/futmais/futmantos-api/internal/application/finance"
)

// FinancialHandler maneja los paneles y el libro financiero.
type FinancialHandler struct {
	uc *finance.UseCase
}

// NewFinancialHandler construye el handler.
func NewFinancialHandler(uc *finance.UseCase) *FinancialHandler {
	return &FinancialHandler{uc: uc}
}

// parsePeriod lee los parámetros de período comunes a los paneles:
// period=today|yesterday|7days|month|custom|total, month=yyyy-mm,
// start/end=yyyy-mm-dd.
func parsePeriod(c *fiber.Ctx) (finance.Period, error) {
	return finance.Parse(
		c.Query("period"),
		c.Query("month"),
		c.Query("start"),
		c.Query("end"),
		time.Now(),
	)
}

// Summary godoc
// @Summary      Resumen financiero del período
// @Tags         financial
// @Produce      json
// @Param        period  query  string  false  "today|yesterday|7days|month|custom|total"
// @Param        month   query  string  false  "yyyy-mm (con period=month)"
// @Param        start   query  string  false  "yyyy-mm-dd (con period=custom)"
// @Param        end     query  string  false  "yyyy-mm-dd (con period=custom)"
// @Success      200  {object}  dto.FinancialSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/financial/summary [get]
func (h *FinancialHandler) Summary(c *fiber.Ctx) error {
	period, err := parsePeriod(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(h.uc.Summary(period))
}

// Chart godoc
// @Summary      Serie mensual de ventas
// @Description  Sin ventas en el período devuelve la serie de andamiaje con
// @Description  placeholder=true; esos valores nunca son datos reales.
// @Tags         financial
// @Produce      json
// @Param        period  query  string  false  "today|yesterday|7days|month|custom|total"
// @Success      200  {object}  dto.FinancialChartResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/financial/chart [get]
func (h *FinancialHandler) Chart(c *fiber.Ctx) error {
	period, err := parsePeriod(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(h.uc.Chart(period))
}

// ListTransactions godoc
// @Summary      Listar movimientos del período
// @Tags         financial
// @Produce      json
// @Param        period  query  string  false  "today|yesterday|7days|month|custom|total"
// @Param        filter  query  string  false  "Tudo|Entradas|Saídas"
// @Success      200  {array}  dto.TransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/financial/transactions [get]
func (h *FinancialHandler) ListTransactions(c *fiber.Ctx) error {
	period, err := parsePeriod(c)
	if err != nil {
		return fail(c, err)
	}
	transactions, err := h.uc.Transactions(period, c.Query("filter"))
	if err != nil {
		return fail(c, err)
	}
	out := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, dto.ToTransactionResponse(t))
	}
	return c.JSON(out)
}

// CreateTransaction godoc
// @Summary      Registrar movimiento manual
// @Tags         financial
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransactionRequest  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/financial/transactions [post]
func (h *FinancialHandler) CreateTransaction(c *fiber.Ctx) error {
	var in dto.CreateTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	tx, err := h.uc.AddTransaction(in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToTransactionResponse(*tx))
}

// Export godoc
// @Summary      Exportar movimientos del período a CSV
// @Tags         financial
// @Produce      text/csv
// @Param        period  query  string  false  "today|yesterday|7days|month|custom|total"
// @Success      200  {string}  string  "CSV"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/financial/transactions/export [get]
func (h *FinancialHandler) Export(c *fiber.Ctx) error {
	period, err := parsePeriod(c)
	if err != nil {
		return fail(c, err)
	}
	transactions, err := h.uc.Transactions(period, c.Query("filter"))
	if err != nil {
		return fail(c, err)
	}
	data, err := export.TransactionsCSV(transactions)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename("financeiro", time.Now())+`"`)
	return c.Send(data)
}
