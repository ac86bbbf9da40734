// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"paseo/internal/domain/entity"
	"paseo/internal/errors"
)

// ErrReceiptNotFound is returned when a walk has no payment record to build a
// receipt from.
var ErrReceiptNotFound = errors.New("receipt not found")

// ReceiptRepository defines the read-only interface producing the raw joined
// rows that the receipt assembler shapes for display. The join across walk,
// payment, participants and pets is the persistence layer's responsibility.
type ReceiptRepository interface {
	// FindReceiptRowByWalk retrieves the joined receipt row for one walk.
	// Returns ErrReceiptNotFound if the walk has no payment record.
	FindReceiptRowByWalk(ctx context.Context, walkID int64) (*entity.ReceiptRow, error)

	// FindReceiptRowsByUser retrieves the joined receipt rows for every paid
	// walk the user took part in, in the given role.
	FindReceiptRowsByUser(ctx context.Context, userID int64, userType entity.UserType) ([]*entity.ReceiptRow, error)
}
