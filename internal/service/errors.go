package service

import (
	"errors"

	"backend/pkg/apperror"

	"gorm.io/gorm"
)

// translateDuplicate maps a unique-index violation to a Conflict. Per-field
// pre-checks already name the offending field; this is the backstop for the
// race where two creates pass the pre-check simultaneously.
func translateDuplicate(err error, entity string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict("A %s with the same unique value already exists", entity)
	}
	return apperror.Internal("failed to save %s", entity)
}
