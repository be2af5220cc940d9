package models

import "time"

// MealType is the slot of the day a meal belongs to.
type MealType string

const (
	Breakfast      MealType = "BREAKFAST"
	MorningSnack   MealType = "MORNING_SNACK"
	Lunch          MealType = "LUNCH"
	AfternoonSnack MealType = "AFTERNOON_SNACK"
	Dinner         MealType = "DINNER"
)

// MealTypes lists every slot in day order.
var MealTypes = []MealType{Breakfast, MorningSnack, Lunch, AfternoonSnack, Dinner}

// IsValid reports whether t is one of [MealTypes].
func (t MealType) IsValid() bool {
	for _, known := range MealTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Meal is a single food entry logged by a client. Any number of meals may
// share the same day and type.
type Meal struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"user_id"`

	Date Date     `json:"date"`
	Time *string  `json:"time,omitempty"` // "HH:MM"
	Type MealType `json:"type"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Calories in kcal.
	Calories *float64 `json:"calories,omitempty"`

	// Duration in minutes.
	Duration *int `json:"duration,omitempty"`

	// WaterIntake in millilitres.
	WaterIntake *float64 `json:"water_intake,omitempty"`

	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Meal model.
func (m Meal) TableName() string {
	return "meals"
}

// MealUpdate is a partial update of a meal. Only non-nil fields are written.
type MealUpdate struct {
	ID int64 `json:"-"`

	Date        *Date     `json:"date,omitempty"`
	Time        *string   `json:"time,omitempty"`
	Type        *MealType `json:"type,omitempty"`
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Calories    *float64  `json:"calories,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	WaterIntake *float64  `json:"water_intake,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u MealUpdate) IsEmpty() bool {
	return u.Date == nil && u.Time == nil && u.Type == nil && u.Name == nil &&
		u.Description == nil && u.Calories == nil && u.Duration == nil &&
		u.WaterIntake == nil && u.Notes == nil
}

// MealFilter narrows a meal listing. UserID is mandatory.
type MealFilter struct {
	UserID int64
	From   *Date
	To     *Date
	Type   *MealType
}

// DayMeals groups the meals of one day by slot.
type DayMeals struct {
	Date  Date                `json:"date"`
	Slots map[MealType][]Meal `json:"slots"`
}

// NewDayMeals groups meals into slots. Every slot is present, possibly empty.
func NewDayMeals(date Date, meals []Meal) DayMeals {
	slots := make(map[MealType][]Meal, len(MealTypes))
	for _, t := range MealTypes {
		slots[t] = []Meal{}
	}
	for _, m := range meals {
		slots[m.Type] = append(slots[m.Type], m)
	}
	return DayMeals{Date: date, Slots: slots}
}

// DailyTotals aggregates the meals of one user on one day.
type DailyTotals struct {
	UserID      int64            `json:"user_id"`
	Date        Date             `json:"date"`
	Calories    float64          `json:"calories"`
	WaterIntake float64          `json:"water_intake"`
	MealCount   int              `json:"meal_count"`
	ByType      map[MealType]int `json:"by_type"`
}
