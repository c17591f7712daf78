package repository

import (
	"context"
	"sync"
	"time"

	"mission-service/src/internal/entity"
)

// SubscriptionRepository owns the plan catalog, the single subscription per
// user and the payments paired with them.
type SubscriptionRepository struct {
	mu            sync.Mutex
	plans         map[string]*entity.SubscriptionPlan
	planOrder     []string
	subscriptions map[string]*entity.UserSubscription
	payments      map[string]*entity.SubscriptionPayment
}

func NewSubscriptionRepository() *SubscriptionRepository {
	r := &SubscriptionRepository{
		plans:         make(map[string]*entity.SubscriptionPlan),
		subscriptions: make(map[string]*entity.UserSubscription),
		payments:      make(map[string]*entity.SubscriptionPayment),
	}
	for _, plan := range defaultPlans() {
		p := plan
		r.plans[p.ID] = &p
		r.planOrder = append(r.planOrder, p.ID)
	}
	return r
}

// defaultPlans is the static read-mostly catalog.
func defaultPlans() []entity.SubscriptionPlan {
	return []entity.SubscriptionPlan{
		{
			ID:           "basic-monthly",
			Name:         "Basic",
			Price:        4.99,
			DurationDays: 30,
			Features:     []string{"ai_assistant", "calendar_sync"},
			Active:       true,
		},
		{
			ID:           "premium-monthly",
			Name:         "Premium",
			Price:        9.99,
			DurationDays: 30,
			Features:     []string{"ai_assistant", "calendar_sync", "priority_missions", "zero_fees"},
			Active:       true,
		},
		{
			ID:           "premium-semester",
			Name:         "Premium Semester",
			Price:        39.99,
			DurationDays: 180,
			Features:     []string{"ai_assistant", "calendar_sync", "priority_missions", "zero_fees"},
			Active:       true,
		},
		{
			ID:           "legacy-annual",
			Name:         "Annual (legacy)",
			Price:        79.99,
			DurationDays: 365,
			Features:     []string{"ai_assistant"},
			Active:       false,
		},
	}
}

func (r *SubscriptionRepository) ListActivePlans(ctx context.Context) ([]entity.SubscriptionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var plans []entity.SubscriptionPlan
	for _, id := range r.planOrder {
		if plan := r.plans[id]; plan.Active {
			plans = append(plans, *plan)
		}
	}
	return plans, nil
}

func (r *SubscriptionRepository) FindPlan(ctx context.Context, planID string) (*entity.SubscriptionPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plan, ok := r.plans[planID]
	if !ok {
		return nil, ErrNotFound
	}
	planCopy := *plan
	return &planCopy, nil
}

func (r *SubscriptionRepository) FindByUser(ctx context.Context, userID string) (*entity.UserSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subscriptions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	subCopy := *sub
	return &subCopy, nil
}

// CreateSubscription stores the pending subscription and its paired payment,
// rejecting in the same critical section when the user already holds a
// subscription that is active at now.
func (r *SubscriptionRepository) CreateSubscription(ctx context.Context, sub *entity.UserSubscription, payment *entity.SubscriptionPayment, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.subscriptions[sub.UserID]; ok && entity.SubscriptionIsActive(existing, now) {
		return ErrAlreadySubscribed
	}

	subCopy := *sub
	payCopy := *payment
	r.subscriptions[subCopy.UserID] = &subCopy
	r.payments[payCopy.ID] = &payCopy
	return nil
}

// SettlePayment flips the pending payment to completed and its subscription
// to active. Settling an already-completed payment is a no-op so delayed
// task retries stay idempotent. The subscription must still reference the
// settling payment: a stale payment left behind by a replaced subscription
// cannot activate the newer one.
func (r *SubscriptionRepository) SettlePayment(ctx context.Context, paymentID string, now time.Time) (*entity.UserSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[paymentID]
	if !ok {
		return nil, ErrNotFound
	}
	sub, ok := r.subscriptions[payment.UserID]
	if !ok {
		return nil, ErrNotFound
	}
	if sub.TransactionID == nil || *sub.TransactionID != paymentID {
		return nil, ErrNotFound
	}

	if payment.Status == entity.TransactionStatusPending {
		payment.Status = entity.TransactionStatusCompleted
		settled := now
		payment.SettledAt = &settled
		if sub.Status == entity.SubscriptionStatusPending {
			sub.Status = entity.SubscriptionStatusActive
		}
	}

	subCopy := *sub
	return &subCopy, nil
}

// Update applies fn to the user's subscription under the store lock.
func (r *SubscriptionRepository) Update(ctx context.Context, userID string, fn func(*entity.UserSubscription) error) (*entity.UserSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.subscriptions[userID]
	if !ok {
		return nil, ErrNotFound
	}
	if err := fn(sub); err != nil {
		return nil, err
	}
	subCopy := *sub
	return &subCopy, nil
}

func (r *SubscriptionRepository) FindPayment(ctx context.Context, paymentID string) (*entity.SubscriptionPayment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	payment, ok := r.payments[paymentID]
	if !ok {
		return nil, ErrNotFound
	}
	payCopy := *payment
	return &payCopy, nil
}
