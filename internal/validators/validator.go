package validators

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/ralona/nutritracker/models"
)

const (
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldName           = "name"
	FieldRole           = "role"
	FieldNutritionistID = "nutritionist_id"
	FieldUserID         = "user_id"
	FieldDate           = "date"
	FieldTime           = "time"
	FieldType           = "type"
	FieldDescription    = "description"
	FieldCalories       = "calories"
	FieldDuration       = "duration"
	FieldWaterIntake    = "water_intake"
	FieldNotes          = "notes"
	FieldContent        = "content"
	FieldWeekStart      = "week_start"
	FieldWeekEnd        = "week_end"
	FieldDetails        = "details"
	FieldSteps          = "steps"
	FieldSource         = "source"
	FieldExerciseTypeID = "exercise_type_id"
	FieldPerMinute      = "calories_per_minute"
	FieldProvider       = "provider"
	FieldAccessToken    = "access_token"
	FieldFields         = "fields"
)

const (
	minPasswordLength = 6
	maxNameLength     = 255
	maxTextLength     = 2000
)

// DomainValidator implements [Validator] for every request model of the
// API. Each model accepts both value and pointer forms.
type DomainValidator struct{}

// NewValidator constructs a [DomainValidator].
func NewValidator() Validator {
	return &DomainValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// When fields is empty, every field of the model is checked.
func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.InvitationRequest:
		return v.validateInvitation(value, fields...)
	case *models.InvitationRequest:
		return v.validateInvitation(*value, fields...)

	case models.ActivationRequest:
		return v.validateActivation(value, fields...)
	case *models.ActivationRequest:
		return v.validateActivation(*value, fields...)

	case models.Meal:
		return v.validateMeal(value, fields...)
	case *models.Meal:
		return v.validateMeal(*value, fields...)

	case models.MealUpdate:
		return v.validateMealUpdate(value)
	case *models.MealUpdate:
		return v.validateMealUpdate(*value)

	case models.CommentRequest:
		return v.validateComment(value)
	case *models.CommentRequest:
		return v.validateComment(*value)

	case models.MealPlan:
		return v.validateMealPlan(value, fields...)
	case *models.MealPlan:
		return v.validateMealPlan(*value, fields...)

	case models.PhysicalActivity:
		return v.validateActivity(value, fields...)
	case *models.PhysicalActivity:
		return v.validateActivity(*value, fields...)

	case models.ExerciseType:
		return v.validateExerciseType(value)
	case *models.ExerciseType:
		return v.validateExerciseType(*value)

	case models.ExerciseEntry:
		return v.validateExercise(value, fields...)
	case *models.ExerciseEntry:
		return v.validateExercise(*value, fields...)

	case models.HealthIntegration:
		return v.validateIntegration(value)
	case *models.HealthIntegration:
		return v.validateIntegration(*value)

	default:
		return ErrUnsupportedType
	}
}

func checkEmail(errs *ValidationError, email string) {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		errs.add(FieldEmail, MsgRequired)
	case len(email) > maxNameLength:
		errs.add(FieldEmail, MsgTooLong)
	default:
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			errs.add(FieldEmail, MsgInvalidEmail)
		}
	}
}

func checkPassword(errs *ValidationError, password string) {
	if password == "" {
		errs.add(FieldPassword, MsgRequired)
		return
	}
	if len(password) < minPasswordLength {
		errs.add(FieldPassword, MsgPasswordTooShort)
	}
}

func checkRequiredText(errs *ValidationError, field, value string, max int) {
	value = strings.TrimSpace(value)
	if value == "" {
		errs.add(field, MsgRequired)
		return
	}
	if len(value) > max {
		errs.add(field, MsgTooLong)
	}
}

func checkOptionalText(errs *ValidationError, field, value string) {
	if len(value) > maxTextLength {
		errs.add(field, MsgTooLong)
	}
}

func checkDate(errs *ValidationError, field string, d models.Date) {
	if d.IsZero() {
		errs.add(field, MsgRequired)
	}
}

func checkClock(errs *ValidationError, clock *string) {
	if clock == nil {
		return
	}
	if _, err := time.Parse("15:04", *clock); err != nil {
		errs.add(FieldTime, MsgInvalidTime)
	}
}

func checkNonNegative[T int | float64](errs *ValidationError, field string, value *T) {
	if value != nil && *value < 0 {
		errs.add(field, MsgNegative)
	}
}

func checkPositiveID(errs *ValidationError, field string, id int64) {
	if id <= 0 {
		errs.add(field, MsgRequired)
	}
}
