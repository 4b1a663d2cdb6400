package schedule

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"tutorly/models"
)

var draftValidator = validator.New()

// ValidatePeriodDraft checks a period draft structurally and reports every
// violated rule, never just the first, so the authoring surface can show
// the full list in one round trip.
func ValidatePeriodDraft(d models.PeriodDraft) models.PeriodValidation {
	var violations []string

	if err := draftValidator.Struct(d); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				violations = append(violations, draftRuleMessage(fe))
			}
		} else {
			violations = append(violations, "period draft could not be validated")
		}
	}

	// Date ordering only makes sense once both bounds parse.
	if start, ok := parseDate(d.StartDate); ok {
		if end, ok := parseDate(d.EndDate); ok && end.Before(start) {
			violations = append(violations, "end date must not be before start date")
		}
	}

	return models.PeriodValidation{Valid: len(violations) == 0, Errors: violations}
}

func draftRuleMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name is required"
	case "Type":
		return "type is required"
	case "StartDate":
		if fe.Tag() == "required" {
			return "start date is required"
		}
		return "start date must be a YYYY-MM-DD calendar date"
	case "EndDate":
		if fe.Tag() == "required" {
			return "end date is required"
		}
		return "end date must be a YYYY-MM-DD calendar date"
	}
	return fe.Field() + " is invalid"
}
