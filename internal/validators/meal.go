package validators

import "github.com/ralona/nutritracker/models"

func (v *DomainValidator) validateMeal(meal models.Meal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{
			FieldUserID, FieldDate, FieldTime, FieldType, FieldName, FieldDescription,
			FieldCalories, FieldDuration, FieldWaterIntake, FieldNotes,
		}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUserID:
			checkPositiveID(errs, FieldUserID, meal.UserID)
		case FieldDate:
			checkDate(errs, FieldDate, meal.Date)
		case FieldTime:
			checkClock(errs, meal.Time)
		case FieldType:
			if !meal.Type.IsValid() {
				errs.add(FieldType, MsgInvalidMealType)
			}
		case FieldName:
			checkRequiredText(errs, FieldName, meal.Name, maxNameLength)
		case FieldDescription:
			checkOptionalText(errs, FieldDescription, meal.Description)
		case FieldCalories:
			checkNonNegative(errs, FieldCalories, meal.Calories)
		case FieldDuration:
			checkNonNegative(errs, FieldDuration, meal.Duration)
		case FieldWaterIntake:
			checkNonNegative(errs, FieldWaterIntake, meal.WaterIntake)
		case FieldNotes:
			checkOptionalText(errs, FieldNotes, meal.Notes)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

// validateMealUpdate checks only the fields present in update.
func (v *DomainValidator) validateMealUpdate(update models.MealUpdate) error {
	errs := &ValidationError{}

	if update.IsEmpty() {
		errs.add(FieldFields, MsgNoChanges)
		return errs
	}

	if update.Date != nil {
		checkDate(errs, FieldDate, *update.Date)
	}
	checkClock(errs, update.Time)
	if update.Type != nil && !update.Type.IsValid() {
		errs.add(FieldType, MsgInvalidMealType)
	}
	if update.Name != nil {
		checkRequiredText(errs, FieldName, *update.Name, maxNameLength)
	}
	if update.Description != nil {
		checkOptionalText(errs, FieldDescription, *update.Description)
	}
	checkNonNegative(errs, FieldCalories, update.Calories)
	checkNonNegative(errs, FieldDuration, update.Duration)
	checkNonNegative(errs, FieldWaterIntake, update.WaterIntake)
	if update.Notes != nil {
		checkOptionalText(errs, FieldNotes, *update.Notes)
	}

	return errs.err()
}

func (v *DomainValidator) validateComment(req models.CommentRequest) error {
	errs := &ValidationError{}
	checkRequiredText(errs, FieldContent, req.Content, maxTextLength)
	return errs.err()
}
