package services

import "errors"

// Validation failures for recipe drafts, one per rule, checked in order.
var (
	ErrInvalidCookingTime  = errors.New("cooking_time must be an integer of at least 1")
	ErrNoTags              = errors.New("recipe must have at least one tag")
	ErrDuplicateTag        = errors.New("recipe tags must not repeat")
	ErrUnknownTag          = errors.New("tag does not exist")
	ErrNoIngredients       = errors.New("recipe must have at least one ingredient")
	ErrInvalidAmount       = errors.New("ingredient amount must be an integer of at least 1")
	ErrDuplicateIngredient = errors.New("recipe ingredients must not repeat")
	ErrUnknownIngredient   = errors.New("ingredient does not exist")
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrForbidden     = errors.New("forbidden")
	ErrSelfFollow    = errors.New("cannot subscribe to yourself")
)

// IsValidationError reports whether err is one of the recipe draft
// validation failures.
func IsValidationError(err error) bool {
	for _, v := range []error{
		ErrInvalidCookingTime,
		ErrNoTags,
		ErrDuplicateTag,
		ErrUnknownTag,
		ErrNoIngredients,
		ErrInvalidAmount,
		ErrDuplicateIngredient,
		ErrUnknownIngredient,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
