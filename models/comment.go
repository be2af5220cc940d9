package models

import "time"

// Comment is feedback left by a nutritionist on a client's meal.
// Comments are never edited; only the Read flag changes.
type Comment struct {
	ID             int64     `json:"id"`
	MealID         int64     `json:"meal_id"`
	NutritionistID int64     `json:"nutritionist_id"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Comment model.
func (c Comment) TableName() string {
	return "comments"
}

// CommentRequest is the body used to create a comment.
type CommentRequest struct {
	Content string `json:"content"`
}
