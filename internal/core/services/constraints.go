package services

import (
	"errors"

	"sacco-ledger/internal/core/domain"

	"gorm.io/gorm"
)

// translateConstraint maps store constraint errors onto domain errors so
// handlers never see driver-level failures. Anything else passes through.
func translateConstraint(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateEntry
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrMemberNotFound
	default:
		return err
	}
}
