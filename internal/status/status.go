// Package status infers the lifecycle state of an invoice from a response of
// the factoring API.
package status

import (
	"time"

	"github.com/samandr77/microservices/factoring/internal/entity"
	"github.com/samandr77/microservices/factoring/pkg/schema"
)

const (
	keyNotEligibleReason           = "notEligibleReason"
	keyEligibleCannotFinanceReason = "eligibleCannotFinanceReason"
	keyStatus                      = "status"
	keyCompletelyPaidDate          = "completelyPaidDate"
	keyDueDate                     = "dueDate"
	keyAmountLeftToPay             = "amountLeftToPayCents"
)

// Webhook event status values.
const (
	remoteAccepted = "Accepted"
	remoteRejected = "Rejected"
)

var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// Classify returns the status of resp at the instant now. Rules are tried in
// order and the first match wins:
//
//	notEligibleReason set                  REFUSED
//	eligibleCannotFinanceReason set        PROCESSING
//	status Accepted / Rejected             ACCEPTED / REFUSED
//	completelyPaidDate set                 PAID
//	dueDate not after now                  LATE
//	amountLeftToPayCents above zero        PENDING
//	otherwise                              PROCESSING
//
// A field counts as set when it is present and not null. A due date that
// cannot be parsed never makes an invoice late.
func Classify(resp entity.Fields, now time.Time) entity.InvoiceStatus {
	switch {
	case isSet(resp, keyNotEligibleReason):
		return entity.InvoiceStatusRefused
	case isSet(resp, keyEligibleCannotFinanceReason):
		return entity.InvoiceStatusProcessing
	}

	switch resp[keyStatus] {
	case remoteAccepted:
		return entity.InvoiceStatusAccepted
	case remoteRejected:
		return entity.InvoiceStatusRefused
	}

	if isSet(resp, keyCompletelyPaidDate) {
		return entity.InvoiceStatusPaid
	}

	if due, ok := dueDate(resp, now.Location()); ok && !due.After(now) {
		return entity.InvoiceStatusLate
	}

	if left, ok := schema.AsDecimal(resp[keyAmountLeftToPay]); ok && left.IsPositive() {
		return entity.InvoiceStatusPending
	}

	return entity.InvoiceStatusProcessing
}

func isSet(resp entity.Fields, key string) bool {
	v, ok := resp[key]
	return ok && v != nil
}

func dueDate(resp entity.Fields, loc *time.Location) (time.Time, bool) {
	s, ok := resp[keyDueDate].(string)
	if !ok || s == "" {
		return time.Time{}, false
	}

	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
