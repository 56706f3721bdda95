package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation          = errors.New("validation error")       // 422
	ErrProductNotFound     = errors.New("product not found")      // 404
	ErrPartNotFound        = errors.New("part not found")         // 404
	ErrOptionNotFound      = errors.New("part option not found")  // 404
	ErrRestrictionNotFound = errors.New("restriction not found")  // 404
	ErrPriceRuleNotFound   = errors.New("price rule not found")   // 404
	ErrOrderNotFound       = errors.New("order not found")        // 404
	ErrSelectionInvalid    = errors.New("selection is invalid")   // 422
	ErrDuplicatePair       = errors.New("pair already exists")    // 422
	ErrUnknownStatus       = errors.New("unknown order status")   // 422
)

// ViolationsError carries the ordered violation messages of an invalid
// selection. It unwraps to ErrSelectionInvalid so callers can branch with
// errors.Is and pull the list out with errors.As.
type ViolationsError struct {
	Violations []string
}

func (e *ViolationsError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSelectionInvalid, strings.Join(e.Violations, "; "))
}

func (e *ViolationsError) Unwrap() error { return ErrSelectionInvalid }
