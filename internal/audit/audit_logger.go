package audit

import (
	"encoding/json"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusSuccess  = "SUCCESS"
	StatusRejected = "REJECTED"
	StatusFailed   = "FAILED"
)

type AuditEvent struct {
	Timestamp     time.Time        `json:"timestamp"`
	EventType     string           `json:"event_type"`
	TransactionID int64            `json:"transaction_id,omitempty"`
	AccountNumber string           `json:"account_number,omitempty"`
	Username      string           `json:"username,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Status        string           `json:"status"`
	Details       any              `json:"details,omitempty"`
}

// AuditLogger writes one JSON line per event, prefixed with "AUDIT: ".
type AuditLogger struct {
	out *log.Logger
	now func() time.Time
}

func NewAuditLogger() *AuditLogger {
	return &AuditLogger{out: log.Default(), now: time.Now}
}

// NewAuditLoggerTo writes events to out instead of the standard logger.
func NewAuditLoggerTo(out *log.Logger) *AuditLogger {
	return &AuditLogger{out: out, now: time.Now}
}

// LogMovement records a committed deposit or withdrawal.
func (a *AuditLogger) LogMovement(txType, accountNumber string, transactionID int64, amount, balanceAfter decimal.Decimal) {
	a.log(AuditEvent{
		EventType:     txType,
		TransactionID: transactionID,
		AccountNumber: accountNumber,
		Amount:        &amount,
		Status:        StatusSuccess,
		Details:       map[string]string{"balance_after": balanceAfter.StringFixed(2)},
	})
}

// LogRejected records a movement refused by a business rule.
func (a *AuditLogger) LogRejected(txType, accountNumber string, amount decimal.Decimal, reason string) {
	a.log(AuditEvent{
		EventType:     txType,
		AccountNumber: accountNumber,
		Amount:        &amount,
		Status:        StatusRejected,
		Details:       map[string]string{"reason": reason},
	})
}

func (a *AuditLogger) LogAuth(eventType, username, status, details string) {
	event := AuditEvent{
		EventType: eventType,
		Username:  username,
		Status:    status,
	}
	if details != "" {
		event.Details = map[string]string{"details": details}
	}
	a.log(event)
}

func (a *AuditLogger) LogError(eventType, accountNumber string, err error) {
	a.log(AuditEvent{
		EventType:     eventType,
		AccountNumber: accountNumber,
		Status:        StatusFailed,
		Details:       map[string]string{"error": err.Error()},
	})
}

func (a *AuditLogger) log(event AuditEvent) {
	if a == nil {
		return
	}
	event.Timestamp = a.now().UTC()
	data, _ := json.Marshal(event)
	a.out.Printf("AUDIT: %s", string(data))
}
