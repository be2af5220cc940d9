package validators

import (
	"fmt"

	"github.com/ralona/nutritracker/models"
)

func (v *DomainValidator) validateMealPlan(plan models.MealPlan, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldWeekStart, FieldWeekEnd, FieldNotes, FieldDetails}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUserID:
			checkPositiveID(errs, FieldUserID, plan.UserID)
		case FieldWeekStart:
			checkDate(errs, FieldWeekStart, plan.WeekStart)
		case FieldWeekEnd:
			checkDate(errs, FieldWeekEnd, plan.WeekEnd)
			if !plan.WeekEnd.IsZero() && plan.WeekEnd.Before(plan.WeekStart.Time) {
				errs.add(FieldWeekEnd, MsgInvalidRange)
			}
		case FieldNotes:
			checkOptionalText(errs, FieldNotes, plan.Notes)
		case FieldDetails:
			for i, d := range plan.Details {
				prefix := fmt.Sprintf("%s[%d].", FieldDetails, i)
				if d.Day < 1 || d.Day > 7 {
					errs.add(prefix+"day", MsgInvalidDay)
				}
				if !d.MealType.IsValid() {
					errs.add(prefix+"meal_type", MsgInvalidMealType)
				}
				checkRequiredText(errs, prefix+FieldDescription, d.Description, maxTextLength)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
