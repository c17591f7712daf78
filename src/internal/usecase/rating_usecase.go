package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"mission-service/src/internal/entity"
	"mission-service/src/internal/model"
	"mission-service/src/internal/model/converter"
	"mission-service/src/internal/repository"
	httpError "mission-service/src/pkg/http-error"
	"mission-service/src/pkg/log"
	"mission-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// topRatedMinimum is the floor of received ratings a user needs before
// appearing in the leaderboard.
const topRatedMinimum = 3

const recentRatingsLimit = 5

type RatingUseCase struct {
	Log              log.Log
	Validate         *validator.Validate
	RatingRepository *repository.RatingRepository
}

func NewRatingUseCase(
	logger log.Log,
	validate *validator.Validate,
	ratingRepository *repository.RatingRepository,
) *RatingUseCase {
	return &RatingUseCase{
		Log:              logger,
		Validate:         validate,
		RatingRepository: ratingRepository,
	}
}

// CreateRating stores one peer evaluation. A second rating for the same
// (rater, ratee, mission, direction) tuple fails with DUPLICATE_RATING.
func (c *RatingUseCase) CreateRating(ctx context.Context, request *model.CreateRatingRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("rating-usecase", errObj.Message, "CreateRating", utils.ConvertString(request))
		return result
	}

	rating := &entity.Rating{
		FromUserID: request.FromUserID,
		ToUserID:   request.ToUserID,
		MissionID:  request.MissionID,
		Score:      request.Score,
		Comment:    request.Comment,
		Direction:  entity.RatingDirection(request.Direction),
	}

	created, err := c.RatingRepository.Create(ctx, rating)
	if err != nil {
		errObj := httpError.NewDuplicateRating()
		errObj.Message = "you have already rated this user for this mission"
		result.Error = errObj
		c.Log.Error("rating-usecase", errObj.Message, "CreateRating", request.MissionID)
		return result
	}

	c.Log.Info("rating-usecase", "rating created", "CreateRating", created.ID)
	result.Data = converter.RatingToResponse(created)
	return result
}

// Stats aggregates the ratings a user received. With no ratings it returns
// the canonical zero result rather than failing.
func (c *RatingUseCase) Stats(ctx context.Context, request *model.RatingStatsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	ratings, err := c.RatingRepository.ListReceived(ctx, request.UserID)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}

	histogram := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	var sum int
	for i := range ratings {
		histogram[ratings[i].Score]++
		sum += ratings[i].Score
	}

	var average float64
	if len(ratings) > 0 {
		average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	}

	recent := ratings
	if len(recent) > recentRatingsLimit {
		recent = recent[:recentRatingsLimit]
	}

	result.Data = &model.RatingStatsResponse{
		UserID:    request.UserID,
		Average:   average,
		Total:     len(ratings),
		Histogram: histogram,
		Recent:    converter.RatingsToResponse(recent),
	}
	return result
}

// CanRate mirrors the creation uniqueness check so the UI can decide
// whether to offer the rating control.
func (c *RatingUseCase) CanRate(ctx context.Context, request *model.CanRateRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	exists, err := c.RatingRepository.Exists(ctx, request.FromUserID, request.ToUserID, request.MissionID, entity.RatingDirection(request.Direction))
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}
	result.Data = &model.CanRateResponse{CanRate: !exists}
	return result
}

// TopRated ranks users by average received rating, restricted to users
// with at least three ratings.
func (c *RatingUseCase) TopRated(ctx context.Context, request *model.TopRatedRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewValidationError()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	ratings, err := c.RatingRepository.ListAll(ctx)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		return result
	}

	type aggregate struct {
		sum   int
		count int
	}
	byUser := make(map[string]*aggregate)
	for i := range ratings {
		agg, ok := byUser[ratings[i].ToUserID]
		if !ok {
			agg = &aggregate{}
			byUser[ratings[i].ToUserID] = agg
		}
		agg.sum += ratings[i].Score
		agg.count++
	}

	var entries []model.TopRatedEntry
	for userID, agg := range byUser {
		if agg.count < topRatedMinimum {
			continue
		}
		entries = append(entries, model.TopRatedEntry{
			UserID:  userID,
			Average: math.Round(float64(agg.sum)/float64(agg.count)*10) / 10,
			Total:   agg.count,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Average != entries[j].Average {
			return entries[i].Average > entries[j].Average
		}
		return entries[i].Total > entries[j].Total
	})

	if request.Limit > 0 && len(entries) > request.Limit {
		entries = entries[:request.Limit]
	}
	result.Data = entries
	return result
}
