package models

import "time"

// MealPlan is a weekly plan prepared by a nutritionist for one client.
// At most one plan per client is active at any time.
type MealPlan struct {
	ID             int64            `json:"id"`
	UserID         int64            `json:"user_id"`
	NutritionistID int64            `json:"nutritionist_id"`
	WeekStart      Date             `json:"week_start"`
	WeekEnd        Date             `json:"week_end"`
	Published      bool             `json:"published"`
	Active         bool             `json:"active"`
	Notes          string           `json:"notes,omitempty"`
	Details        []MealPlanDetail `json:"details"`
	CreatedAt      time.Time        `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the MealPlan model.
func (p MealPlan) TableName() string {
	return "meal_plans"
}

// MealPlanDetail is one planned meal. Day is 1 (first day of the week) to 7.
type MealPlanDetail struct {
	ID          int64    `json:"id"`
	MealPlanID  int64    `json:"meal_plan_id"`
	Day         int      `json:"day"`
	MealType    MealType `json:"meal_type"`
	Description string   `json:"description"`
	ImageURL    *string  `json:"image_url,omitempty"`
}

// MealPlanFilter narrows a plan listing. UserID is mandatory.
type MealPlanFilter struct {
	UserID        int64
	PublishedOnly bool
	ActiveOnly    bool
}
