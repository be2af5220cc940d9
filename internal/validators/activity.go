package validators

import (
	"strings"

	"github.com/ralona/nutritracker/models"
)

func (v *DomainValidator) validateActivity(activity models.PhysicalActivity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldDate, FieldSteps, FieldSource}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUserID:
			checkPositiveID(errs, FieldUserID, activity.UserID)
		case FieldDate:
			checkDate(errs, FieldDate, activity.Date)
		case FieldSteps:
			if activity.Steps < 0 {
				errs.add(FieldSteps, MsgNegative)
			}
		case FieldSource:
			if activity.Source != models.SourceManual && activity.Source != models.SourceIntegration {
				errs.add(FieldSource, MsgInvalidSource)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *DomainValidator) validateExerciseType(exerciseType models.ExerciseType) error {
	errs := &ValidationError{}

	checkRequiredText(errs, FieldName, exerciseType.Name, maxNameLength)
	if exerciseType.CaloriesPerMinute < 0 {
		errs.add(FieldPerMinute, MsgNegative)
	}

	return errs.err()
}

func (v *DomainValidator) validateExercise(entry models.ExerciseEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldExerciseTypeID, FieldDate, FieldDuration, FieldCalories, FieldNotes}
	}

	errs := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUserID:
			checkPositiveID(errs, FieldUserID, entry.UserID)
		case FieldExerciseTypeID:
			checkPositiveID(errs, FieldExerciseTypeID, entry.ExerciseTypeID)
		case FieldDate:
			checkDate(errs, FieldDate, entry.Date)
		case FieldDuration:
			if entry.Duration <= 0 {
				errs.add(FieldDuration, MsgNotPositive)
			}
		case FieldCalories:
			checkNonNegative(errs, FieldCalories, entry.Calories)
		case FieldNotes:
			checkOptionalText(errs, FieldNotes, entry.Notes)
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}

func (v *DomainValidator) validateIntegration(integration models.HealthIntegration) error {
	errs := &ValidationError{}

	checkPositiveID(errs, FieldUserID, integration.UserID)
	checkRequiredText(errs, FieldProvider, integration.Provider, maxNameLength)
	if strings.TrimSpace(integration.AccessToken) == "" {
		errs.add(FieldAccessToken, MsgRequired)
	}

	return errs.err()
}
