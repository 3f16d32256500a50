package lender

import "errors"

var (
	ErrAlreadyRegistered   = errors.New("lender already registered")
	ErrNotRegistered       = errors.New("lender not registered")
	ErrEmptyRequirements   = errors.New("requirement list must not be empty")
	ErrNoRequirementsSet   = errors.New("lender has no proof requirements configured")
	ErrRequirementNotFound = errors.New("proof requirement not found")
)
