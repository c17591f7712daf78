package entity

import (
	"math"
	"time"
)

type SubscriptionStatus string

const (
	SubscriptionStatusPending   SubscriptionStatus = "pending"
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

type SubscriptionPlan struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"durationDays"`
	Features     []string `json:"features"`
	Active       bool     `json:"active"`
}

// UserSubscription is the single subscription a user may hold. Expiry is
// never persisted: activity is recomputed from the wall clock on every read.
type UserSubscription struct {
	UserID        string             `json:"userId"`
	PlanID        string             `json:"planId"`
	Status        SubscriptionStatus `json:"status"`
	StartDate     time.Time          `json:"startDate"`
	EndDate       time.Time          `json:"endDate"`
	AutoRenew     bool               `json:"autoRenew"`
	PaymentMethod string             `json:"paymentMethod"`
	TransactionID *string            `json:"transactionId,omitempty"`
}

type SubscriptionPayment struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	PlanID    string            `json:"planId"`
	Amount    float64           `json:"amount"`
	Method    string            `json:"method"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	SettledAt *time.Time        `json:"settledAt,omitempty"`
}

// SubscriptionDaysRemaining returns max(0, ceil((endDate-now)/day)).
func SubscriptionDaysRemaining(endDate, now time.Time) int {
	remaining := endDate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Hours() / 24))
}

// SubscriptionIsActive reports whether the subscription is usable right now.
// The stored status alone is never trusted.
func SubscriptionIsActive(sub *UserSubscription, now time.Time) bool {
	if sub == nil {
		return false
	}
	return sub.Status == SubscriptionStatusActive && SubscriptionDaysRemaining(sub.EndDate, now) > 0
}
