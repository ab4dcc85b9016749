package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrConflict       = errors.New("conflict")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Entity errors. Each wraps ErrNotFound / ErrDuplicateEntry so handlers can
// branch on the category while still reporting a specific message.
var (
	ErrAdminNotFound       = notFound("admin not found")
	ErrDealerNotFound      = notFound("dealer not found")
	ErrTechnicianNotFound  = notFound("technician not found")
	ErrBackOfficeNotFound  = notFound("back-office user not found")
	ErrCategoryNotFound    = notFound("category not found")
	ErrSubcategoryNotFound = notFound("subcategory not found")
	ErrProductNotFound     = notFound("product not found")
	ErrDiscountNotFound    = notFound("discount not found")
	ErrRMANotFound         = notFound("rma request not found")
	ErrCourseNotFound      = notFound("course not found")
	ErrPincodeNotFound     = notFound("pincode not found")

	ErrDealerExists      = duplicate("dealer with this email, phone or GSTIN already exists")
	ErrTechnicianExists  = duplicate("technician with this email already exists")
	ErrBackOfficeExists  = duplicate("back-office user with this email already exists")
	ErrCategoryExists    = duplicate("category already exists")
	ErrSubcategoryExists = duplicate("subcategory already exists")
	ErrProductExists     = duplicate("product with this title already exists")

	ErrSubcategoryMismatch = fmt.Errorf("%w: subcategory does not belong to category", ErrInvalidInput)
	ErrInvalidTransition   = fmt.Errorf("%w: status transition not allowed", ErrConflict)
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func notFound(msg string) error  { return &kindError{msg: msg, kind: ErrNotFound} }
func duplicate(msg string) error { return &kindError{msg: msg, kind: ErrDuplicateEntry} }
