package model

import "time"

type CreateRatingRequest struct {
	FromUserID string `json:"-" validate:"required,max=100"`
	ToUserID   string `json:"toUserId" validate:"required,max=100"`
	MissionID  string `json:"missionId" validate:"required"`
	Score      int    `json:"score" validate:"required,gte=1,lte=5"`
	Comment    string `json:"comment" validate:"max=1000"`
	Direction  string `json:"direction" validate:"required,oneof=student_to_courier courier_to_student"`
}

type CanRateRequest struct {
	FromUserID string `json:"fromUserId" validate:"required"`
	ToUserID   string `json:"toUserId" validate:"required"`
	MissionID  string `json:"missionId" validate:"required"`
	Direction  string `json:"direction" validate:"required,oneof=student_to_courier courier_to_student"`
}

type RatingStatsRequest struct {
	UserID string `json:"userId" validate:"required,max=100"`
}

type TopRatedRequest struct {
	Limit int `json:"limit" validate:"gte=0,lte=100"`
}

type RatingResponse struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	MissionID  string    `json:"missionId"`
	Score      int       `json:"score"`
	Comment    string    `json:"comment,omitempty"`
	Direction  string    `json:"direction"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RatingStatsResponse struct {
	UserID    string           `json:"userId"`
	Average   float64          `json:"average"`
	Total     int              `json:"total"`
	Histogram map[int]int      `json:"histogram"` // score 1..5 -> count
	Recent    []RatingResponse `json:"recent"`
}

type CanRateResponse struct {
	CanRate bool `json:"canRate"`
}

type TopRatedEntry struct {
	UserID  string  `json:"userId"`
	Average float64 `json:"average"`
	Total   int     `json:"total"`
}
