package finance

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/futmais/futmantos-api/internal/application/dto"
	"github.com/futmais/futmantos-api/internal/application/pos"
	"github.com/futmais/futmantos-api/internal/application/session"
	"github.com/futmais/futmantos-api/internal/domain"
	"github.com/futmais/futmantos-api/internal/domain/entity"
	"github.com/futmais/futmantos-api/internal/domain/repository"
	"github.com/futmais/futmantos-api/pkg/logger"
	"github.com/futmais/futmantos-api/pkg/moneyfmt"
)

// Filtros de tipo sobre la lista de movimientos, con las etiquetas que usa
// el panel.
const (
	FilterAll      = "Tudo"
	FilterIncomes  = "Entradas"
	FilterExpenses = "Saídas"
)

// UseCase responde los paneles financieros leyendo el espejo de sesión y
// registra movimientos manuales en el libro.
type UseCase struct {
	txRepo repository.TransactionRepository
	state  *session.State
	log    *logger.Logger

	now      func() time.Time
	ledgerID func() string
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRepo repository.TransactionRepository, state *session.State, log *logger.Logger) *UseCase {
	return &UseCase{
		txRepo:   txRepo,
		state:    state,
		log:      log,
		now:      time.Now,
		ledgerID: pos.NewTransactionID,
	}
}

// Summary calcula los totales del período, el flujo semanal y los KPIs de
// pedidos (facturación, ticket medio, margen), más un resumen de desempeño
// en lenguaje natural con los montos en BRL.
func (uc *UseCase) Summary(p Period) dto.FinancialSummaryResponse {
	transactions := FilterTransactions(uc.state.Transactions(), p)
	orders := FilterOrders(uc.state.Orders(), p)

	totals := ComputeTotals(transactions)
	flow := WeeklyFlow(transactions)

	revenue := decimal.Zero
	cost := decimal.Zero
	for _, o := range orders {
		revenue = revenue.Add(o.Total)
		for _, item := range o.Items {
			cost = cost.Add(item.Product.Cost.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	avgTicket := decimal.Zero
	if len(orders) > 0 {
		avgTicket = revenue.Div(decimal.NewFromInt(int64(len(orders))))
	}
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = revenue.Sub(cost).Div(revenue).Mul(decimal.NewFromInt(100)).Round(1)
	}

	resp := dto.FinancialSummaryResponse{
		TotalIncome:      totals.TotalIncome,
		TotalExpenses:    totals.TotalExpenses,
		NetProfit:        totals.NetProfit,
		OperationalCosts: totals.OperationalCosts,
		OrdersCount:      len(orders),
		OrdersRevenue:    revenue,
		AverageTicket:    avgTicket,
		ProfitMargin:     margin,
		WeeklyFlow:       make([]dto.DayFlowResponse, 0, len(flow)),
		MaxFlow:          MaxFlow(flow),
		Performance:      performanceMessage(totals, len(orders)),
	}
	for _, f := range flow {
		resp.WeeklyFlow = append(resp.WeeklyFlow, dto.DayFlowResponse{
			Day:     f.Day,
			Income:  f.Income,
			Expense: f.Expense,
		})
	}
	return resp
}

// performanceMessage resumen de desempeño en pt-BR con los montos en BRL.
func performanceMessage(t Totals, ordersCount int) string {
	if ordersCount == 0 && t.TotalIncome.IsZero() && t.TotalExpenses.IsZero() {
		return "Sem movimentações no período selecionado."
	}
	if t.NetProfit.IsNegative() {
		return fmt.Sprintf(
			"Atenção: despesas de %s superaram as receitas de %s no período, resultando em prejuízo de %s.",
			moneyfmt.BRL(t.TotalExpenses), moneyfmt.BRL(t.TotalIncome), moneyfmt.BRL(t.NetProfit.Abs()),
		)
	}
	return fmt.Sprintf(
		"Receita de %s com %d vendas e lucro líquido de %s no período.",
		moneyfmt.BRL(t.TotalIncome), ordersCount, moneyfmt.BRL(t.NetProfit),
	)
}

// Chart serie mensual de ventas del período. Sin datos reales devuelve la
// serie de andamiaje marcada con el flag placeholder.
func (uc *UseCase) Chart(p Period) dto.FinancialChartResponse {
	orders := FilterOrders(uc.state.Orders(), p)
	series := MonthlySeries(orders)

	placeholder := len(series) == 0
	if placeholder {
		series = PlaceholderSeries()
	}

	resp := dto.FinancialChartResponse{
		Series:      make([]dto.MonthPointResponse, 0, len(series)),
		Placeholder: placeholder,
	}
	for _, pt := range series {
		resp.Series = append(resp.Series, dto.MonthPointResponse{Name: pt.Name, Value: pt.Value})
	}
	return resp
}

// Transactions lista los movimientos del período, más recientes primero,
// con filtro opcional por sentido (Tudo/Entradas/Saídas).
func (uc *UseCase) Transactions(p Period, filter string) ([]entity.FinancialTransaction, error) {
	transactions := FilterTransactions(uc.state.Transactions(), p)
	switch filter {
	case "", FilterAll:
		return transactions, nil
	case FilterIncomes:
		out := make([]entity.FinancialTransaction, 0, len(transactions))
		for _, t := range transactions {
			if t.Type == entity.TransactionIncome {
				out = append(out, t)
			}
		}
		return out, nil
	case FilterExpenses:
		out := make([]entity.FinancialTransaction, 0, len(transactions))
		for _, t := range transactions {
			if t.Type != entity.TransactionIncome {
				out = append(out, t)
			}
		}
		return out, nil
	}
	return nil, domain.ErrInvalidInput
}

// AddTransaction registra un movimiento manual en el libro (ajustes, gastos
// de marketing, pagos a proveedores). La fecha es siempre la actual y el
// monto debe ser positivo.
func (uc *UseCase) AddTransaction(req dto.CreateTransactionRequest) (*entity.FinancialTransaction, error) {
	if req.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidTransactionCategory(entity.TransactionCategory(req.Category)) {
		return nil, domain.ErrInvalidInput
	}
	txType := entity.TransactionType(req.Type)
	if txType != entity.TransactionIncome && txType != entity.TransactionExpense {
		return nil, domain.ErrInvalidInput
	}
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	status := entity.TransactionCompleted
	if req.Status != "" {
		status = entity.TransactionStatus(req.Status)
		switch status {
		case entity.TransactionCompleted, entity.TransactionPending, entity.TransactionPaid, entity.TransactionCancelled:
		default:
			return nil, domain.ErrInvalidInput
		}
	}

	tx := &entity.FinancialTransaction{
		ID:          uc.ledgerID(),
		Date:        entity.FormatDate(uc.now()),
		Description: req.Description,
		Category:    entity.TransactionCategory(req.Category),
		Type:        txType,
		Amount:      req.Amount,
		Status:      status,
		Image:       req.Image,
	}
	if err := uc.txRepo.Create(tx); err != nil {
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}
	uc.state.ApplyTransactionAdded(*tx)

	uc.log.Info().
		Str("transaction_id", tx.ID).
		Str("type", string(tx.Type)).
		Str("amount", tx.Amount.StringFixed(2)).
		Msg("movimiento registrado")
	return tx, nil
}
