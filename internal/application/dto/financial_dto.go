package dto

import (
	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/domain/entity"
)

// CreateTransactionRequest entrada para registrar un movimiento manual en el
// libro financiero.
type CreateTransactionRequest struct {
	Description string          `json:"description" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Type        string          `json:"type" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Image       string          `json:"image"`
}

// TransactionResponse salida de un movimiento financiero.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Image       string          `json:"image,omitempty"`
}

// DayFlowResponse punto del flujo de caja semanal (Dom..Sáb).
type DayFlowResponse struct {
	Day     string          `json:"day"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// FinancialSummaryResponse resumen del período: totales, flujo semanal y un
// mensaje de desempeño ya formateado en moneda.
type FinancialSummaryResponse struct {
	TotalIncome      decimal.Decimal   `json:"total_income"`
	TotalExpenses    decimal.Decimal   `json:"total_expenses"`
	NetProfit        decimal.Decimal   `json:"net_profit"`
	OperationalCosts decimal.Decimal   `json:"operational_costs"`
	OrdersCount      int               `json:"orders_count"`
	OrdersRevenue    decimal.Decimal   `json:"orders_revenue"`
	AverageTicket    decimal.Decimal   `json:"average_ticket"`
	ProfitMargin     decimal.Decimal   `json:"profit_margin"`
	WeeklyFlow       []DayFlowResponse `json:"weekly_flow"`
	MaxFlow          decimal.Decimal   `json:"max_flow"`
	Performance      string            `json:"performance"`
}

// MonthPointResponse punto de la serie mensual de ingresos.
type MonthPointResponse struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// FinancialChartResponse serie mensual de ingresos. Placeholder indica que no
// había ventas registradas y la serie es ilustrativa.
type FinancialChartResponse struct {
	Series      []MonthPointResponse `json:"series"`
	Placeholder bool                 `json:"placeholder"`
}

// ToTransactionResponse convierte la entidad a su DTO.
func ToTransactionResponse(t entity.FinancialTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Date:        t.Date,
		Description: t.Description,
		Category:    string(t.Category),
		Type:        string(t.Type),
		Amount:      t.Amount,
		Status:      string(t.Status),
		Image:       t.Image,
	}
}
