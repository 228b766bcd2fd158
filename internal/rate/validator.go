package rate

import (
	"errors"
)

var (
	ErrBaseRequired      = errors.New("base currency is required")
	ErrTargetRequired    = errors.New("target currency is required")
	ErrBaseUnsupported   = errors.New("base currency not offered")
	ErrTargetUnsupported = errors.New("target currency not offered")
)

// CodeSource reports whether a currency code is currently offered for selection.
type CodeSource interface {
	Has(code string) bool
}

// SelectionValidator accepts only codes present in the selector lists.
type SelectionValidator struct {
	codes CodeSource
}

func (v *SelectionValidator) ValidateBase(base string) error {
	if base == "" {
		return ErrBaseRequired
	}
	if !v.codes.Has(base) {
		return ErrBaseUnsupported
	}
	return nil
}

func (v *SelectionValidator) ValidateTarget(target string) error {
	if target == "" {
		return ErrTargetRequired
	}
	if !v.codes.Has(target) {
		return ErrTargetUnsupported
	}
	return nil
}

func (v *SelectionValidator) ValidateCodes(base, target string) error {
	if err := v.ValidateBase(base); err != nil {
		return err
	}
	return v.ValidateTarget(target)
}

func NewValidator(codes CodeSource) *SelectionValidator {
	return &SelectionValidator{codes: codes}
}
