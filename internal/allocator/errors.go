package allocator

import (
	"fmt"

	allocerrors "github.com/orizon-lang/lwmem/internal/errors"
)

// These constructors classify the misuse conditions from spec §4.1/§7
// using the teacher's internal/errors.StandardError so a caller can
// errors.As into the category and code instead of string-matching.

func errAlreadyActive() error {
	return allocerrors.AlreadyInitialized("arena region")
}

func errMutexAlreadyCreated() error {
	return allocerrors.AlreadyInitialized("arena mutex")
}

func errInvalidAlignment(a uintptr) error {
	return allocerrors.NewStandardError(allocerrors.CategoryValidation, "INVALID_ALIGNMENT",
		fmt.Sprintf("alignment %d is not a power of two", a),
		map[string]interface{}{"alignment": a})
}

func errRegionOverflow() error {
	return allocerrors.NewStandardError(allocerrors.CategoryOverflow, "REGION_OVERFLOW",
		"start+size overflows the address space or base exceeds the requested window", nil)
}

func errRegionTooSmall() error {
	return allocerrors.NewStandardError(allocerrors.CategoryBounds, "REGION_TOO_SMALL",
		"usable region after alignment trimming is smaller than two block headers", nil)
}

func errRegionTooLarge() error {
	return allocerrors.NewStandardError(allocerrors.CategoryOverflow, "REGION_TOO_LARGE",
		"the initial free block's size word would collide with the allocated-bit", nil)
}

func errMutexCreateFailed(cause error) error {
	return allocerrors.NewStandardError(allocerrors.CategorySystem, "MUTEX_CREATE_FAILED",
		"mutex creation failed during DefineRegion",
		map[string]interface{}{"cause": cause})
}
