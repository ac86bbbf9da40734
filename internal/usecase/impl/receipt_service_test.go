package impl

import (
	"context"
	"testing"
	"time"

	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/domain/repository"
	mockRepo "paseo/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReceiptRow() *entity.ReceiptRow {
	paymentDate := time.Date(2025, 1, 9, 15, 30, 0, 0, time.UTC)
	actualStart := time.Date(2025, 1, 10, 10, 5, 0, 0, time.UTC)
	actualEnd := time.Date(2025, 1, 10, 11, 2, 0, 0, time.UTC)
	duration := 57
	distance := 3.4
	paymentCreated := paymentDate

	return &entity.ReceiptRow{
		PaymentID:     9,
		WalkID:        42,
		AmountPaid:    450,
		PaymentDate:   &paymentDate,
		PaymentMethod: "card",
		TransactionID: "txn-123",
		PaymentStatus: "completed",

		ScheduledStart: time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC),
		ScheduledEnd:   time.Date(2025, 1, 10, 11, 0, 0, 0, time.UTC),
		ActualStart:    &actualStart,
		ActualEnd:      &actualEnd,
		StartAddress:   "123 Bark Street",
		Duration:       &duration,
		Distance:       &distance,
		TotalPrice:     500,
		WalkPrice:      500,
		WalkStatus:     entity.StatusFinished,

		WalkerID:    1,
		WalkerName:  "Alex Walker",
		WalkerEmail: "alex@example.com",
		WalkerPhone: "555-0001",

		OwnerID:    2,
		OwnerName:  "Sam Owner",
		OwnerEmail: "sam@example.com",
		OwnerPhone: "555-0002",

		PetIDs:   []int64{7},
		PetNames: []string{"Rex"},

		WalkerHadDiscount:        true,
		WalkerDiscountPercentage: 10,

		WalkCreatedAt:    time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC),
		PaymentCreatedAt: &paymentCreated,
	}
}

func TestReceiptService_GetReceiptByWalk(t *testing.T) {
	mockReceiptRepo := mockRepo.NewMockReceiptRepository(t)
	receiptService := NewReceiptService(mockReceiptRepo)

	ctx := context.Background()
	row := sampleReceiptRow()
	mockReceiptRepo.EXPECT().FindReceiptRowByWalk(ctx, int64(42)).Return(row, nil)

	receipt, err := receiptService.GetReceiptByWalk(ctx, 42)
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.Equal(t, int64(9), receipt.PaymentID)
	assert.Equal(t, int64(42), receipt.WalkID)
	assert.Equal(t, 450.0, receipt.AmountPaid)

	assert.Equal(t, row.ScheduledStart, receipt.Walk.ScheduledStart)
	assert.Equal(t, row.ActualStart, receipt.Walk.ActualStart)
	assert.Equal(t, "Finished", receipt.Walk.Status)

	assert.Equal(t, int64(1), receipt.Walker.ID)
	assert.Equal(t, "Alex Walker", receipt.Walker.Name)
	assert.Equal(t, int64(2), receipt.Owner.ID)
	assert.Equal(t, "Sam Owner", receipt.Owner.Name)

	assert.Equal(t, []int64{7}, receipt.Pets.IDs)
	assert.Equal(t, []string{"Rex"}, receipt.Pets.Names)

	assert.True(t, receipt.WalkerSettings.HadDiscount)
	assert.Equal(t, 10.0, receipt.WalkerSettings.DiscountPercentage)

	assert.Equal(t, row.WalkCreatedAt, receipt.CreatedAt.Walk)
	assert.Equal(t, row.PaymentCreatedAt, receipt.CreatedAt.Payment)
}

func TestReceiptService_GetReceiptByWalk_NotFound(t *testing.T) {
	mockReceiptRepo := mockRepo.NewMockReceiptRepository(t)
	receiptService := NewReceiptService(mockReceiptRepo)

	ctx := context.Background()
	mockReceiptRepo.EXPECT().FindReceiptRowByWalk(ctx, int64(99)).Return(nil, repository.ErrReceiptNotFound)

	receipt, err := receiptService.GetReceiptByWalk(ctx, 99)
	require.Error(t, err)
	assert.Nil(t, receipt)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "RECEIPT_NOT_FOUND", appErr.ErrorCode())
}

func TestReceiptService_ListReceiptsByUser(t *testing.T) {
	mockReceiptRepo := mockRepo.NewMockReceiptRepository(t)
	receiptService := NewReceiptService(mockReceiptRepo)

	ctx := context.Background()
	rows := []*entity.ReceiptRow{sampleReceiptRow()}
	mockReceiptRepo.EXPECT().
		FindReceiptRowsByUser(ctx, int64(2), entity.UserTypeOwner).
		Return(rows, nil)

	summaries, err := receiptService.ListReceiptsByUser(ctx, 2, entity.UserTypeOwner)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(42), summaries[0].WalkID)
	assert.Equal(t, "Finished", summaries[0].WalkStatus)
	assert.Equal(t, "Alex Walker", summaries[0].WalkerName)
	assert.Equal(t, []string{"Rex"}, summaries[0].PetNames)
}

func TestReceiptService_ListReceiptsByUser_Empty(t *testing.T) {
	mockReceiptRepo := mockRepo.NewMockReceiptRepository(t)
	receiptService := NewReceiptService(mockReceiptRepo)

	ctx := context.Background()
	mockReceiptRepo.EXPECT().
		FindReceiptRowsByUser(ctx, int64(3), entity.UserTypeWalker).
		Return([]*entity.ReceiptRow{}, nil)

	summaries, err := receiptService.ListReceiptsByUser(ctx, 3, entity.UserTypeWalker)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestReceiptService_ListReceiptsByUser_InvalidUserType(t *testing.T) {
	mockReceiptRepo := mockRepo.NewMockReceiptRepository(t)
	receiptService := NewReceiptService(mockReceiptRepo)

	summaries, err := receiptService.ListReceiptsByUser(context.Background(), 2, entity.UserType("admin"))
	require.Error(t, err)
	assert.Nil(t, summaries)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
