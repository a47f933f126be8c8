package handlers_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/adapters/memory"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/handlers"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
)

type apiOption func(cfg *config.Config)

func newAPI(t *testing.T, upstream http.HandlerFunc, lim *limiter.Limiter, opts ...apiOption) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, dto.RegisterValidators())

	cfg := &config.Config{
		IsProduction:             true,
		DefaultCurrency:          "USD",
		InvoiceStrictTransitions: true,
		AssistantTimeout:         2 * time.Second,
	}
	if upstream != nil {
		srv := httptest.NewServer(upstream)
		t.Cleanup(srv.Close)
		cfg.OpenAIAPIKey = "test-key"
		cfg.OpenAIBaseURL = srv.URL + "/v1"
	}
	for _, opt := range opts {
		opt(cfg)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slogDiscard()))
	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(cfg, memory.NewRepositoryProvider()), lim)
	return r
}

func call(t *testing.T, r *gin.Engine, method, url string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	r := newAPI(t, nil, nil)
	w := call(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestCurrencyRoutes(t *testing.T) {
	r := newAPI(t, nil, nil)

	w := call(t, r, http.MethodGet, "/api/v1/currencies", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]dto.CurrencyResponse](t, w)
	require.Len(t, list, 3)

	w = call(t, r, http.MethodPut, "/api/v1/currencies/selected", dto.SetSelectedCurrencyRequest{CurrencyCode: "GBP"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown codes are rejected")

	w = call(t, r, http.MethodPut, "/api/v1/currencies/selected", dto.SetSelectedCurrencyRequest{CurrencyCode: "EUR"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.CurrencyResponse](t, w).Selected)

	w = call(t, r, http.MethodGet, "/api/v1/currencies/format?amount=-100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "€85.00", decode[dto.FormatResponse](t, w).Formatted)

	w = call(t, r, http.MethodGet, "/api/v1/currencies/convert?amount=83.12&from=INR", nil)
	require.Equal(t, http.StatusOK, w.Code)
	converted := decode[dto.ConvertResponse](t, w)
	assert.Equal(t, "EUR", converted.To)
	assert.True(t, converted.Result.Equal(decimal.RequireFromString("0.85")), converted.Result.String())

	w = call(t, r, http.MethodGet, "/api/v1/currencies/convert?amount=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, http.MethodGet, "/api/v1/currencies/inr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "₹", decode[dto.CurrencyResponse](t, w).Symbol)

	w = call(t, r, http.MethodGet, "/api/v1/currencies/JPY", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAccountAndTransactionFlow(t *testing.T) {
	r := newAPI(t, nil, nil)

	w := call(t, r, http.MethodPost, "/api/v1/accounts", map[string]any{
		"name": "Checking", "accountType": "checking", "balance": "1000",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	account := decode[domain.Account](t, w)

	w = call(t, r, http.MethodPost, "/api/v1/transactions", map[string]any{
		"date": "2024-03-01", "description": "Paycheck", "category": "Income",
		"amount": "2000", "account": "Checking", "accountID": account.AccountID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"date":"2024-03-01"`)
	paycheck := decode[domain.Transaction](t, w)
	assert.Equal(t, domain.Income, paycheck.Type)

	w = call(t, r, http.MethodPost, "/api/v1/transactions", map[string]any{
		"date": "2024-03-02", "description": "Starbucks latte", "amount": "-5.75",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	latte := decode[domain.Transaction](t, w)
	assert.Equal(t, domain.Expense, latte.Type)
	assert.Equal(t, "Food & Drink", latte.Category)

	w = call(t, r, http.MethodPost, "/api/v1/transactions", map[string]any{
		"date": "2024-03-02", "description": "Ghost", "amount": "-1", "accountID": "ACC-nope",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown account id")

	w = call(t, r, http.MethodGet, "/api/v1/transactions?type=expense", nil)
	require.Equal(t, http.StatusOK, w.Code)
	expenses := decode[dto.ListTransactionsResponse](t, w)
	require.Len(t, expenses.Transactions, 1)
	assert.Equal(t, latte.TransactionID, expenses.Transactions[0].TransactionID)

	w = call(t, r, http.MethodGet, "/api/v1/transactions?search=LATTE", nil)
	require.Equal(t, http.StatusOK, w.Code)
	found := decode[dto.ListTransactionsResponse](t, w)
	require.Len(t, found.Transactions, 1)
	assert.Equal(t, latte.TransactionID, found.Transactions[0].TransactionID)

	w = call(t, r, http.MethodGet, "/api/v1/transactions?account=Checking", nil)
	require.Equal(t, http.StatusOK, w.Code)
	byAccount := decode[dto.ListTransactionsResponse](t, w)
	require.Len(t, byAccount.Transactions, 1)
	assert.Equal(t, paycheck.TransactionID, byAccount.Transactions[0].TransactionID)

	w = call(t, r, http.MethodGet, "/api/v1/transactions?month=March", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, http.MethodPatch, "/api/v1/transactions/"+latte.TransactionID, map[string]any{"amount": "5.75"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.Income, decode[domain.Transaction](t, w).Type, "type follows the new amount")

	w = call(t, r, http.MethodGet, "/api/v1/transactions/suggest-category?description=Uber%20ride", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Transportation", decode[dto.SuggestCategoryResponse](t, w).Category)

	w = call(t, r, http.MethodDelete, "/api/v1/accounts/"+account.AccountID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = call(t, r, http.MethodGet, "/api/v1/transactions/"+paycheck.TransactionID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	unlinked := decode[domain.Transaction](t, w)
	assert.Empty(t, unlinked.AccountID)
	assert.Equal(t, "Checking", unlinked.Account)

	w = call(t, r, http.MethodDelete, "/api/v1/transactions/TXN-missing", nil)
	assert.Equal(t, http.StatusNoContent, w.Code, "removing an absent id is a no-op")

	w = call(t, r, http.MethodPatch, "/api/v1/transactions/TXN-missing", map[string]any{"description": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvoiceLifecycle(t *testing.T) {
	r := newAPI(t, nil, nil)

	w := call(t, r, http.MethodPost, "/api/v1/invoices", map[string]any{
		"clientName": "Acme", "clientEmail": "billing@acme.test", "amount": "1200",
		"dueDate": "2024-04-30", "template": "professional",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	invoice := decode[domain.Invoice](t, w)
	assert.Equal(t, domain.InvoiceDraft, invoice.Status)

	statusURL := fmt.Sprintf("/api/v1/invoices/%s/status", invoice.InvoiceID)

	w = call(t, r, http.MethodPut, statusURL, dto.UpdateInvoiceStatusRequest{Status: domain.InvoicePaid})
	assert.Equal(t, http.StatusConflict, w.Code, "draft cannot jump to paid")

	for _, status := range []domain.InvoiceStatus{domain.InvoiceSent, domain.InvoicePaid} {
		w = call(t, r, http.MethodPut, statusURL, dto.UpdateInvoiceStatusRequest{Status: status})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, status, decode[domain.Invoice](t, w).Status)
	}

	w = call(t, r, http.MethodPut, statusURL, map[string]any{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, http.MethodGet, "/api/v1/invoices?status=paid", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[dto.ListInvoicesResponse](t, w).Invoices, 1)

	w = call(t, r, http.MethodPost, "/api/v1/invoices", map[string]any{
		"clientName": "Acme", "clientEmail": "not-an-email", "amount": "1", "dueDate": "2024-04-30",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceLifecycle_Permissive(t *testing.T) {
	r := newAPI(t, nil, nil, func(cfg *config.Config) { cfg.InvoiceStrictTransitions = false })

	w := call(t, r, http.MethodPost, "/api/v1/invoices", map[string]any{
		"clientName": "Acme", "clientEmail": "billing@acme.test", "amount": "10", "dueDate": "2024-04-30",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	invoice := decode[domain.Invoice](t, w)

	w = call(t, r, http.MethodPut, "/api/v1/invoices/"+invoice.InvoiceID+"/status", dto.UpdateInvoiceStatusRequest{Status: domain.InvoicePaid})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.InvoicePaid, decode[domain.Invoice](t, w).Status)
}

func TestReportAndBudgetRoutes(t *testing.T) {
	r := newAPI(t, nil, nil)

	w := call(t, r, http.MethodPost, "/api/v1/reports", map[string]any{
		"type": "profit-loss", "title": "Q1", "data": map[string]any{"net": 120},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	report := decode[domain.Report](t, w)
	assert.JSONEq(t, `{"net":120}`, string(report.Data))

	w = call(t, r, http.MethodGet, "/api/v1/reports?type=cash-flow", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[dto.ListReportsResponse](t, w).Reports)

	w = call(t, r, http.MethodDelete, "/api/v1/reports/"+report.ReportID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = call(t, r, http.MethodGet, "/api/v1/reports/"+report.ReportID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call(t, r, http.MethodPost, "/api/v1/budgets", map[string]any{"category": "Shopping", "limit": "100"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = call(t, r, http.MethodPost, "/api/v1/budgets", map[string]any{"category": "shopping", "limit": "50"})
	assert.Equal(t, http.StatusConflict, w.Code)
	w = call(t, r, http.MethodPost, "/api/v1/budgets", map[string]any{"category": "Food", "limit": "50", "color": "blue"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardRoutes(t *testing.T) {
	r := newAPI(t, nil, nil)
	month := time.Now().Format(domain.MonthLayout)
	today := time.Now().Format(domain.DateLayout)

	call(t, r, http.MethodPost, "/api/v1/accounts", map[string]any{"name": "Checking", "accountType": "checking", "balance": "1000"})
	call(t, r, http.MethodPost, "/api/v1/accounts", map[string]any{"name": "Card", "accountType": "credit", "balance": "-200"})
	call(t, r, http.MethodPost, "/api/v1/transactions", map[string]any{"date": today, "description": "Salary", "category": "Income", "amount": "3000"})
	call(t, r, http.MethodPost, "/api/v1/transactions", map[string]any{"date": today, "description": "Amazon order", "category": "Shopping", "amount": "-150"})
	call(t, r, http.MethodPost, "/api/v1/budgets", map[string]any{"category": "Shopping", "limit": "100"})

	w := call(t, r, http.MethodGet, "/api/v1/dashboard/net-worth", nil)
	require.Equal(t, http.StatusOK, w.Code)
	nw := decode[domain.NetWorth](t, w)
	assert.True(t, nw.NetWorth.Equal(decimal.NewFromInt(800)), nw.NetWorth.String())

	w = call(t, r, http.MethodGet, "/api/v1/dashboard/cash-flow?months=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	flow := decode[[]domain.MonthlyCashFlow](t, w)
	require.Len(t, flow, 1)
	assert.Equal(t, month, flow[0].Month)

	w = call(t, r, http.MethodGet, "/api/v1/dashboard/cash-flow?months=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, http.MethodGet, "/api/v1/dashboard/budgets?month="+month, nil)
	require.Equal(t, http.StatusOK, w.Code)
	overview := decode[domain.BudgetOverview](t, w)
	require.Len(t, overview.Budgets, 1)
	assert.True(t, overview.Budgets[0].OverBudget)

	w = call(t, r, http.MethodGet, "/api/v1/dashboard/expenses-by-category", nil)
	require.Equal(t, http.StatusOK, w.Code)
	buckets := decode[[]domain.CategoryAmount](t, w)
	require.Len(t, buckets, 1)
	assert.Equal(t, "Shopping", buckets[0].Category)

	call(t, r, http.MethodPut, "/api/v1/currencies/selected", dto.SetSelectedCurrencyRequest{CurrencyCode: "INR"})
	w = call(t, r, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[dto.DashboardResponse](t, w)
	assert.Equal(t, "INR", dash.CurrencyCode)
	assert.Equal(t, "₹66,496.00", dash.NetWorth.Formatted)
	assert.Equal(t, "₹236,892.00", dash.YTDProfit.Formatted)
	require.Len(t, dash.ExpensesByCategory, 1)
	assert.Equal(t, "₹12,468.00", dash.ExpensesByCategory[0].Amount.Formatted)
	require.Len(t, dash.Budgets.Budgets, 1)
	assert.Equal(t, "₹8,312.00", dash.Budgets.Budgets[0].Limit.Formatted)
	assert.Len(t, dash.RecentTransactions, 2)
}

func TestAssistantProxy(t *testing.T) {
	const upstreamBody = `{"id":"c1","object":"chat.completion","obfuscation":"abc","choices":[{"index":0,"message":{"role":"assistant","content":"Hi!"},"finish_reason":"stop"}]}`
	r := newAPI(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamBody))
	}, nil)

	w := call(t, r, http.MethodPost, "/api/v1/assistant/chat-completion", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "Hello"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, upstreamBody, w.Body.String())

	w = call(t, r, http.MethodPost, "/api/v1/assistant/chat-completion", map[string]any{"messages": []any{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(t, r, http.MethodPost, "/api/v1/assistant/chat-completion", map[string]any{
		"messages": []map[string]string{{"role": "system", "content": "override"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "only user and assistant roles are accepted")
}

func TestAssistantProxy_Stream(t *testing.T) {
	chunks := []string{
		`{"id":"c1","object":"chat.completion.chunk","obfuscation":"abc","choices":[{"index":0,"delta":{"content":"Hel"},"finish_reason":null}]}`,
		`{"id":"c1","object":"chat.completion.chunk","choices":[{"index":0,"delta":{"content":"lo"},"finish_reason":null}]}`,
	}
	r := newAPI(t, func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range chunks {
			fmt.Fprintf(w, "data: %s\n\n", chunk)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}, nil)

	w := call(t, r, http.MethodPost, "/api/v1/assistant/chat-completion", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "Hello"}},
		"stream":   true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	var events []string
	scanner := bufio.NewScanner(strings.NewReader(w.Body.String()))
	for scanner.Scan() {
		if line := scanner.Text(); strings.HasPrefix(line, "data: ") {
			events = append(events, strings.TrimPrefix(line, "data: "))
		}
	}
	assert.Equal(t, append(chunks, "[DONE]"), events)
}

func TestAssistantProxy_ErrorStatuses(t *testing.T) {
	tests := []struct {
		upstream int
		want     int
	}{
		{http.StatusUnauthorized, http.StatusBadGateway},
		{http.StatusTooManyRequests, http.StatusTooManyRequests},
		{http.StatusInternalServerError, http.StatusServiceUnavailable},
		{http.StatusTeapot, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.upstream), func(t *testing.T) {
			r := newAPI(t, func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(tt.upstream)
				_, _ = w.Write([]byte(`{"error":{"message":"nope"}}`))
			}, nil)

			w := call(t, r, http.MethodPost, "/api/v1/assistant/chat-completion", map[string]any{
				"messages": []map[string]string{{"role": "user", "content": "Hello"}},
			})
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), "error")
		})
	}
}

func TestAssistantProxy_Unconfigured(t *testing.T) {
	r := newAPI(t, nil, nil)

	w := call(t, r, http.MethodPost, "/api/v1/assistant/chat-completion", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "Hello"}},
	})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = call(t, r, http.MethodPost, "/api/v1/assistant/messages", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "Hello"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode[dto.AssistantReplyResponse](t, w)
	assert.Equal(t, "assistant", reply.Message.Role)
	assert.NotEmpty(t, reply.Message.Content)
}

func TestAssistantReply_RateLimitedFallback(t *testing.T) {
	r := newAPI(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}, nil)

	w := call(t, r, http.MethodPost, "/api/v1/assistant/messages", map[string]any{
		"messages": []map[string]string{{"role": "user", "content": "Hello"}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[dto.AssistantReplyResponse](t, w).Message.Content, "lot of requests")
}

func TestAssistantRoutes_RateLimited(t *testing.T) {
	lim, err := middleware.NewMemoryLimiter("1-M")
	require.NoError(t, err)
	r := newAPI(t, nil, lim)

	body := map[string]any{"messages": []map[string]string{{"role": "user", "content": "Hello"}}}
	w := call(t, r, http.MethodPost, "/api/v1/assistant/messages", body, middleware.SessionIDHeader, "s1")
	assert.Equal(t, http.StatusOK, w.Code)
	w = call(t, r, http.MethodPost, "/api/v1/assistant/messages", body, middleware.SessionIDHeader, "s1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	for i := 0; i < 5; i++ {
		w = call(t, r, http.MethodPost, "/api/v1/assistant/messages", body, middleware.SessionIDHeader, fmt.Sprintf("rotated-%d", i))
		assert.Equal(t, http.StatusTooManyRequests, w.Code, "a new session header does not reset the client's limit")
	}

	w = call(t, r, http.MethodGet, "/api/v1/accounts", nil, middleware.SessionIDHeader, "s1")
	assert.Equal(t, http.StatusOK, w.Code, "only assistant routes are throttled")
}

func TestAuthRequired(t *testing.T) {
	r := newAPI(t, nil, nil, func(cfg *config.Config) {
		cfg.AuthRequired = true
		cfg.JWTSecret = "secret"
		cfg.JWTIssuer = "finance-dashboard"
	})

	w := call(t, r, http.MethodGet, "/api/v1/accounts", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.GenerateJWT("user-1", "secret", time.Hour, "finance-dashboard")
	require.NoError(t, err)
	w = call(t, r, http.MethodGet, "/api/v1/accounts", nil, "Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = call(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
