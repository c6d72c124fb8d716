package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNotPositive     = errors.New("the amount must be positive")
	ErrDescriptionRequired   = errors.New("the description must not be empty")
	ErrCategoryRequired      = errors.New("a category must be set")
	ErrNameRequired          = errors.New("the name must not be empty")
	ErrCategoryIsDefault     = errors.New("default categories cannot be deleted")
	ErrRecurrenceTypeMissing = errors.New("recurring transactions must have a recurrence type")
	ErrGeneratedIsRecurrent  = errors.New("generated transactions must not be recurring themselves")
	ErrGoalTargetNotPositive = errors.New("the goal target amount must be positive")
)
