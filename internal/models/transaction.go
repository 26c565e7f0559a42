package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

// Transaction statuses
const (
	StatusCompleted TransactionStatus = "completed"
	StatusPending   TransactionStatus = "pending"
	StatusFailed    TransactionStatus = "failed"
)

// TransactionType is the payment channel of a transaction.
type TransactionType string

// Transaction types
const (
	TypeCard       TransactionType = "card"
	TypeTransfer   TransactionType = "transfer"
	TypeWithdrawal TransactionType = "withdrawal"
)

// Statuses lists every valid status.
var Statuses = []TransactionStatus{StatusCompleted, StatusPending, StatusFailed}

// Types lists every valid transaction type.
var Types = []TransactionType{TypeCard, TypeTransfer, TypeWithdrawal}

// TransactionIDPrefix prefixes every transaction ID.
const TransactionIDPrefix = "txn_"

// Transaction is a single monitored payment. It is never modified after creation.
type Transaction struct {
	ID             string            `json:"id"`
	Amount         decimal.Decimal   `json:"amount"`
	Date           time.Time         `json:"date"`
	Merchant       string            `json:"merchant"`
	Location       string            `json:"location"`
	Status         TransactionStatus `json:"status"`
	Type           TransactionType   `json:"type"`
	CardLast4      string            `json:"cardLast4,omitempty"`
	RiskScore      int               `json:"riskScore"`
	Flagged        bool              `json:"flagged"`
	AnomalyDetails []string          `json:"anomalyDetails,omitempty"`
}

// NewTransactionID builds a transaction ID from the leading hex digits of u.
func NewTransactionID(u uuid.UUID) string {
	return TransactionIDPrefix + strings.ReplaceAll(u.String(), "-", "")[:8]
}

// Valid reports whether s is one of the known statuses.
func (s TransactionStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

// Matches reports whether query occurs in the merchant, ID or location, ignoring case.
func (t Transaction) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Merchant), q) ||
		strings.Contains(strings.ToLower(t.ID), q) ||
		strings.Contains(strings.ToLower(t.Location), q)
}
