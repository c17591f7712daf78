package entity

import "time"

type RatingDirection string

const (
	RatingDirectionStudentToCourier RatingDirection = "student_to_courier"
	RatingDirectionCourierToStudent RatingDirection = "courier_to_student"
)

// Rating is one peer evaluation. At most one rating exists per
// (FromUserID, ToUserID, MissionID, Direction) tuple.
type Rating struct {
	ID         string          `json:"id"`
	FromUserID string          `json:"fromUserId"`
	ToUserID   string          `json:"toUserId"`
	MissionID  string          `json:"missionId"`
	Score      int             `json:"score"` // 1-5
	Comment    string          `json:"comment,omitempty"`
	Direction  RatingDirection `json:"direction"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}
