package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubscriptionDaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, SubscriptionDaysRemaining(now, now))
	assert.Equal(t, 0, SubscriptionDaysRemaining(now.Add(-time.Hour), now))
	// partial day rounds up
	assert.Equal(t, 1, SubscriptionDaysRemaining(now.Add(time.Hour), now))
	assert.Equal(t, 30, SubscriptionDaysRemaining(now.AddDate(0, 0, 30), now))
}

func TestSubscriptionIsActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil is never active", func(t *testing.T) {
		assert.False(t, SubscriptionIsActive(nil, now))
	})

	t.Run("active within window", func(t *testing.T) {
		sub := &UserSubscription{
			Status:  SubscriptionStatusActive,
			EndDate: now.AddDate(0, 0, 10),
		}
		assert.True(t, SubscriptionIsActive(sub, now))
	})

	t.Run("active status past end date", func(t *testing.T) {
		sub := &UserSubscription{
			Status:  SubscriptionStatusActive,
			EndDate: now.AddDate(0, 0, -1),
		}
		assert.False(t, SubscriptionIsActive(sub, now))
	})

	t.Run("pending and cancelled are not active", func(t *testing.T) {
		for _, status := range []SubscriptionStatus{SubscriptionStatusPending, SubscriptionStatusCancelled, SubscriptionStatusExpired} {
			sub := &UserSubscription{Status: status, EndDate: now.AddDate(0, 0, 10)}
			assert.False(t, SubscriptionIsActive(sub, now), string(status))
		}
	})
}
