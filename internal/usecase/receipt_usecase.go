package usecase

import (
	"context"

	"paseo/internal/domain/entity"
)

// ReceiptUsecase assembles the derived receipt projections. Assembly is a
// pure transformation over rows the repository joins; nothing is persisted.
type ReceiptUsecase interface {
	// GetReceiptByWalk returns the full receipt for one walk.
	GetReceiptByWalk(ctx context.Context, walkID int64) (*entity.Receipt, error)

	// ListReceiptsByUser returns summary receipts for every paid walk the
	// user took part in, in the given role.
	ListReceiptsByUser(ctx context.Context, userID int64, userType entity.UserType) ([]*entity.ReceiptSummary, error)
}
