package domain

import "time"

const (
	EventCheckCreated     = "check_created"
	EventCafeSaved        = "cafe_saved"
	EventCafeDeleted      = "cafe_deleted"
	EventDishSaved        = "dish_saved"
	EventDishDeleted      = "dish_deleted"
	EventReviewsSubmitted = "reviews_submitted"
)

// UIEvent records a user action that reached the backend successfully.
type UIEvent struct {
	Type         string    `json:"type"`
	CheckID      int       `json:"check_id,omitempty"`
	RestaurantID int       `json:"restaurant_id,omitempty"`
	DishID       int       `json:"dish_id,omitempty"`
	Count        int       `json:"count,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
