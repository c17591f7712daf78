package converter

import (
	"time"

	"mission-service/src/internal/entity"
	"mission-service/src/internal/model"
)

func PlanToResponse(plan *entity.SubscriptionPlan) model.PlanResponse {
	return model.PlanResponse{
		ID:           plan.ID,
		Name:         plan.Name,
		Price:        plan.Price,
		DurationDays: plan.DurationDays,
		Features:     plan.Features,
	}
}

func PlansToResponse(plans []entity.SubscriptionPlan) []model.PlanResponse {
	responses := make([]model.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, PlanToResponse(&plans[i]))
	}
	return responses
}

// SubscriptionToResponse derives DaysRemaining and IsActive from the wall
// clock at conversion time.
func SubscriptionToResponse(sub *entity.UserSubscription, now time.Time) *model.SubscriptionResponse {
	return &model.SubscriptionResponse{
		PlanID:        sub.PlanID,
		Status:        string(sub.Status),
		StartDate:     sub.StartDate,
		EndDate:       sub.EndDate,
		AutoRenew:     sub.AutoRenew,
		PaymentMethod: sub.PaymentMethod,
		TransactionID: sub.TransactionID,
		DaysRemaining: entity.SubscriptionDaysRemaining(sub.EndDate, now),
		IsActive:      entity.SubscriptionIsActive(sub, now),
	}
}
