package domain

import (
	"encoding/json"
	"time"
)

// ReportType names the kind of generated report.
type ReportType string

const (
	BalanceSheet ReportType = "balance-sheet"
	ProfitLoss   ReportType = "profit-loss"
	CashFlow     ReportType = "cash-flow"
)

// IsValid reports whether t is a known report type.
func (t ReportType) IsValid() bool {
	switch t {
	case BalanceSheet, ProfitLoss, CashFlow:
		return true
	}
	return false
}

// Report is a generated-report record. It holds metadata only; figures are
// not snapshotted when a report is generated.
type Report struct {
	ReportID    string          `json:"reportID"`
	ReportType  ReportType      `json:"type"`
	Title       string          `json:"title"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Data        json.RawMessage `json:"data,omitempty"`
}
