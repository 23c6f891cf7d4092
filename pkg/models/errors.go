package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAccountNameNotUnique  = errors.New("the account name must be unique")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique")
	ErrReferenceNotFound     = errors.New("there is no resource for an ID you referenced")
	ErrResourceInUse         = errors.New("the resource is still referenced by other resources")

	ErrTransactionTypeInvalid    = errors.New("the transaction type must be one of 'income', 'fixed_expense' or 'variable_expense'")
	ErrTransactionStatusInvalid  = errors.New("the transaction status must be one of 'pending', 'executed' or 'cancelled'")
	ErrTransactionAmountNegative = errors.New("the transaction amount must not be negative, the type defines the direction")
	ErrMatchRuleEmpty            = errors.New("the match of a match rule must not be empty")
)
