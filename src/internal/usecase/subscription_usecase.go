package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mission-service/src/internal/entity"
	"mission-service/src/internal/model"
	"mission-service/src/internal/model/converter"
	"mission-service/src/internal/repository"
	httpError "mission-service/src/pkg/http-error"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/spf13/viper"
)

// TypeSettleSubscription is the deferred task that settles a pending
// subscription payment. Subscribe enqueues it with a delay; callers that
// need "is it active yet" poll GetSubscription instead of assuming
// synchronous activation.
const TypeSettleSubscription = "subscription:settle-payment"

const defaultSettlementDelay = 3 * time.Second

type settlePaymentPayload struct {
	PaymentID string `json:"paymentId"`
}

type SubscriptionUseCase struct {
	Log                    log.Log
	Validate               *validator.Validate
	SubscriptionRepository *repository.SubscriptionRepository
	Config                 *viper.Viper
	AsynqClient            *asynq.Client
}

func NewSubscriptionUseCase(
	logger log.Log,
	validate *validator.Validate,
	subscriptionRepository *repository.SubscriptionRepository,
	cfg *viper.Viper,
	asynqClient *asynq.Client,
) *SubscriptionUseCase {
	return &SubscriptionUseCase{
		Log:                    logger,
		Validate:               validate,
		SubscriptionRepository: subscriptionRepository,
		Config:                 cfg,
		AsynqClient:            asynqClient,
	}
}

func (c *SubscriptionUseCase) ListPlans(ctx context.Context) utils.Result {
	var result utils.Result

	plans, err := c.SubscriptionRepository.ListActivePlans(ctx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = converter.PlansToResponse(plans)
	return result
}

func (c *SubscriptionUseCase) GetSubscription(ctx context.Context, request *model.GetSubscriptionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	sub, err := c.SubscriptionRepository.FindByUser(ctx, request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("no subscription found for user %s", request.UserID)
		result.Error = errObj
		return result
	}

	result.Data = converter.SubscriptionToResponse(sub, time.Now())
	return result
}

// Subscribe creates a pending subscription with a paired pending payment
// and schedules the asynchronous settlement. Activation is decoupled from
// this call.
func (c *SubscriptionUseCase) Subscribe(ctx context.Context, request *model.SubscribeRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("subscription-usecase", errObj.Message, "Subscribe", utils.ConvertString(request))
		return result
	}

	plan, err := c.SubscriptionRepository.FindPlan(ctx, request.PlanID)
	if err != nil || !plan.Active {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("unknown subscription plan: %s", request.PlanID)
		result.Error = errObj
		c.Log.Error("subscription-usecase", errObj.Message, "Subscribe", request.PlanID)
		return result
	}

	now := time.Now()
	payment := &entity.SubscriptionPayment{
		ID:        uuid.NewString(),
		UserID:    request.UserID,
		PlanID:    plan.ID,
		Amount:    plan.Price,
		Method:    request.PaymentMethod,
		Status:    entity.TransactionStatusPending,
		CreatedAt: now,
	}
	sub := &entity.UserSubscription{
		UserID:        request.UserID,
		PlanID:        plan.ID,
		Status:        entity.SubscriptionStatusPending,
		StartDate:     now,
		EndDate:       now.AddDate(0, 0, plan.DurationDays),
		AutoRenew:     true,
		PaymentMethod: request.PaymentMethod,
		TransactionID: &payment.ID,
	}

	if err := c.SubscriptionRepository.CreateSubscription(ctx, sub, payment, now); err != nil {
		errObj := httpError.NewAlreadySubscribed()
		errObj.Message = "you already have an active subscription"
		result.Error = errObj
		c.Log.Error("subscription-usecase", errObj.Message, "Subscribe", request.UserID)
		return result
	}

	c.enqueueSettlement(payment.ID)
	c.Log.Info("subscription-usecase", "subscription created, settlement scheduled", "Subscribe", payment.ID)
	result.Data = converter.SubscriptionToResponse(sub, now)
	return result
}

// SettlePayment flips the pending payment to completed and activates the
// subscription. Retries are idempotent.
func (c *SubscriptionUseCase) SettlePayment(ctx context.Context, paymentID string) utils.Result {
	var result utils.Result

	sub, err := c.SubscriptionRepository.SettlePayment(ctx, paymentID, time.Now())
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("payment %s not found", paymentID)
		result.Error = errObj
		c.Log.Error("subscription-usecase", errObj.Message, "SettlePayment", paymentID)
		return result
	}

	c.Log.Info("subscription-usecase", "payment settled", "SettlePayment", paymentID)
	result.Data = converter.SubscriptionToResponse(sub, time.Now())
	return result
}

// HandleSettlePayment is the asynq worker entrypoint for the deferred
// settlement task.
func (c *SubscriptionUseCase) HandleSettlePayment(ctx context.Context, task *asynq.Task) error {
	var payload settlePaymentPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		c.Log.Error("subscription-usecase", fmt.Sprintf("bad settle-payment payload: %v", err), "HandleSettlePayment", "")
		return fmt.Errorf("unmarshal settle-payment payload: %w", err)
	}
	result := c.SettlePayment(ctx, payload.PaymentID)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Cancel sets the subscription to cancelled and switches auto-renew off.
// Cancelling an already-cancelled subscription fails instead of silently
// succeeding twice.
func (c *SubscriptionUseCase) Cancel(ctx context.Context, request *model.CancelSubscriptionRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	sub, err := c.SubscriptionRepository.Update(ctx, request.UserID, func(s *entity.UserSubscription) error {
		if s.Status == entity.SubscriptionStatusCancelled {
			return repository.ErrAlreadySettled
		}
		s.Status = entity.SubscriptionStatusCancelled
		s.AutoRenew = false
		return nil
	})
	switch err {
	case nil:
	case repository.ErrNotFound:
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("no subscription found for user %s", request.UserID)
		result.Error = errObj
		c.Log.Error("subscription-usecase", errObj.Message, "Cancel", request.UserID)
		return result
	case repository.ErrAlreadySettled:
		errObj := httpError.NewInvalidState()
		errObj.Message = "subscription is already cancelled"
		result.Error = errObj
		c.Log.Error("subscription-usecase", errObj.Message, "Cancel", request.UserID)
		return result
	default:
		result.Error = httpError.NewInternalServerError()
		return result
	}

	c.Log.Info("subscription-usecase", "subscription cancelled", "Cancel", request.UserID)
	result.Data = converter.SubscriptionToResponse(sub, time.Now())
	return result
}

func (c *SubscriptionUseCase) ToggleAutoRenew(ctx context.Context, request *model.ToggleAutoRenewRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	sub, err := c.SubscriptionRepository.Update(ctx, request.UserID, func(s *entity.UserSubscription) error {
		s.AutoRenew = !s.AutoRenew
		return nil
	})
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("no subscription found for user %s", request.UserID)
		result.Error = errObj
		c.Log.Error("subscription-usecase", errObj.Message, "ToggleAutoRenew", request.UserID)
		return result
	}

	result.Data = converter.SubscriptionToResponse(sub, time.Now())
	return result
}

func (c *SubscriptionUseCase) enqueueSettlement(paymentID string) {
	if c.AsynqClient == nil {
		return
	}
	delay := defaultSettlementDelay
	if c.Config != nil && c.Config.IsSet("subscription.settlement_delay") {
		delay = c.Config.GetDuration("subscription.settlement_delay")
	}
	payload, err := json.Marshal(settlePaymentPayload{PaymentID: paymentID})
	if err != nil {
		c.Log.Error("subscription-usecase", err.Error(), "enqueueSettlement", paymentID)
		return
	}
	task := asynq.NewTask(TypeSettleSubscription, payload)
	if _, err := c.AsynqClient.Enqueue(task, asynq.ProcessIn(delay)); err != nil {
		c.Log.Error("subscription-usecase", fmt.Sprintf("failed to enqueue settlement: %v", err), "enqueueSettlement", paymentID)
	}
}
