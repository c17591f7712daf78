package converter

import (
	"mission-service/src/internal/entity"
	"mission-service/src/internal/model"
)

func RatingToResponse(rating *entity.Rating) model.RatingResponse {
	return model.RatingResponse{
		ID:         rating.ID,
		FromUserID: rating.FromUserID,
		ToUserID:   rating.ToUserID,
		MissionID:  rating.MissionID,
		Score:      rating.Score,
		Comment:    rating.Comment,
		Direction:  string(rating.Direction),
		CreatedAt:  rating.CreatedAt,
	}
}

func RatingsToResponse(ratings []entity.Rating) []model.RatingResponse {
	responses := make([]model.RatingResponse, 0, len(ratings))
	for i := range ratings {
		responses = append(responses, RatingToResponse(&ratings[i]))
	}
	return responses
}
