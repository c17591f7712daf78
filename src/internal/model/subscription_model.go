package model

import "time"

type SubscribeRequest struct {
	UserID        string `json:"-" validate:"required,max=100"`
	PlanID        string `json:"planId" validate:"required,max=100"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=wallet card"`
}

type GetSubscriptionRequest struct {
	UserID string `json:"userId" validate:"required,max=100"`
}

type CancelSubscriptionRequest struct {
	UserID string `json:"userId" validate:"required,max=100"`
}

type ToggleAutoRenewRequest struct {
	UserID string `json:"userId" validate:"required,max=100"`
}

type PlanResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Price        float64  `json:"price"`
	DurationDays int      `json:"durationDays"`
	Features     []string `json:"features"`
}

type SubscriptionResponse struct {
	PlanID        string     `json:"planId"`
	Status        string     `json:"status"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       time.Time  `json:"endDate"`
	AutoRenew     bool       `json:"autoRenew"`
	PaymentMethod string     `json:"paymentMethod"`
	TransactionID *string    `json:"transactionId,omitempty"`
	DaysRemaining int        `json:"daysRemaining"`
	IsActive      bool       `json:"isActive"`
}
