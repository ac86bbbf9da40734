package impl

import (
	"context"

	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/domain/repository"
	"paseo/internal/errors"
	"paseo/internal/usecase"
)

type receiptService struct {
	receiptRepo repository.ReceiptRepository
}

// NewReceiptService creates a new receipt service instance
func NewReceiptService(receiptRepo repository.ReceiptRepository) usecase.ReceiptUsecase {
	return &receiptService{
		receiptRepo: receiptRepo,
	}
}

// GetReceiptByWalk returns the full receipt for one walk
func (s *receiptService) GetReceiptByWalk(ctx context.Context, walkID int64) (*entity.Receipt, error) {
	row, err := s.receiptRepo.FindReceiptRowByWalk(ctx, walkID)
	if err != nil {
		if errors.Is(err, repository.ErrReceiptNotFound) {
			return nil, domainerrors.ErrReceiptNotFound
		}

		return nil, errors.Wrap(err, "failed to find receipt row by walk")
	}

	return assembleReceipt(row), nil
}

// ListReceiptsByUser returns summary receipts for every paid walk the user
// took part in, in the given role
func (s *receiptService) ListReceiptsByUser(ctx context.Context, userID int64, userType entity.UserType) ([]*entity.ReceiptSummary, error) {
	if !userType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("userType must be 'owner' or 'walker'")
	}

	rows, err := s.receiptRepo.FindReceiptRowsByUser(ctx, userID, userType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find receipt rows by user")
	}

	summaries := make([]*entity.ReceiptSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, assembleSummary(row))
	}

	return summaries, nil
}

// assembleReceipt shapes a raw joined row into the nested receipt projection.
// Pure transformation, nothing is persisted.
func assembleReceipt(row *entity.ReceiptRow) *entity.Receipt {
	return &entity.Receipt{
		PaymentID:     row.PaymentID,
		WalkID:        row.WalkID,
		AmountPaid:    row.AmountPaid,
		PaymentDate:   row.PaymentDate,
		PaymentMethod: row.PaymentMethod,
		TransactionID: row.TransactionID,
		PaymentStatus: row.PaymentStatus,
		PaymentNotes:  row.PaymentNotes,
		Walk: entity.ReceiptWalk{
			ScheduledStart: row.ScheduledStart,
			ActualStart:    row.ActualStart,
			ScheduledEnd:   row.ScheduledEnd,
			ActualEnd:      row.ActualEnd,
			StartAddress:   row.StartAddress,
			Duration:       row.Duration,
			Distance:       row.Distance,
			TotalPrice:     row.TotalPrice,
			WalkPrice:      row.WalkPrice,
			Status:         row.WalkStatus.DisplayName(),
		},
		Walker: entity.ReceiptParticipant{
			ID:    row.WalkerID,
			Name:  row.WalkerName,
			Email: row.WalkerEmail,
			Phone: row.WalkerPhone,
			Image: row.WalkerImage,
		},
		Owner: entity.ReceiptParticipant{
			ID:    row.OwnerID,
			Name:  row.OwnerName,
			Email: row.OwnerEmail,
			Phone: row.OwnerPhone,
			Image: row.OwnerImage,
		},
		Pets: entity.ReceiptPets{
			IDs:   row.PetIDs,
			Names: row.PetNames,
		},
		WalkerSettings: entity.ReceiptWalkerSettings{
			HadDiscount:        row.WalkerHadDiscount,
			DiscountPercentage: row.WalkerDiscountPercentage,
		},
		CreatedAt: entity.ReceiptTimestamps{
			Walk:    row.WalkCreatedAt,
			Payment: row.PaymentCreatedAt,
		},
	}
}

// assembleSummary shapes a raw joined row into the flat list projection.
func assembleSummary(row *entity.ReceiptRow) *entity.ReceiptSummary {
	return &entity.ReceiptSummary{
		PaymentID:      row.PaymentID,
		WalkID:         row.WalkID,
		AmountPaid:     row.AmountPaid,
		PaymentDate:    row.PaymentDate,
		PaymentMethod:  row.PaymentMethod,
		PaymentStatus:  row.PaymentStatus,
		ScheduledStart: row.ScheduledStart,
		StartAddress:   row.StartAddress,
		WalkStatus:     row.WalkStatus.DisplayName(),
		WalkerName:     row.WalkerName,
		OwnerName:      row.OwnerName,
		PetNames:       row.PetNames,
	}
}
