package postgres

import (
	"context"
	"time"

	"paseo/internal/domain/entity"
	"paseo/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// receiptRepository implements the repository.ReceiptRepository interface.
// Receipts are not stored; every read joins the payment, walk, participant
// and settings tables on the fly.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository is the constructor for receiptRepository.
func NewReceiptRepository(db *gorm.DB) repository.ReceiptRepository {
	return &receiptRepository{
		db: db,
	}
}

// receiptRowScan is the scan target of the receipt join query.
type receiptRowScan struct {
	PaymentID     int64
	WalkID        int64
	AmountPaid    float64
	PaymentDate   *time.Time
	PaymentMethod string
	TransactionID string
	PaymentStatus string
	PaymentNotes  string

	ScheduledStartTime time.Time
	ActualStartTime    *time.Time
	ScheduledEndTime   time.Time
	ActualEndTime      *time.Time
	StartAddress       string
	Duration           *int
	Distance           *float64
	TotalPrice         float64
	WalkStatus         string

	WalkerID    int64
	WalkerName  string
	WalkerEmail string
	WalkerPhone string
	WalkerImage string

	OwnerID    int64
	OwnerName  string
	OwnerEmail string
	OwnerPhone string
	OwnerImage string

	WalkerHadDiscount        bool
	WalkerDiscountPercentage float64

	WalkCreatedAt    time.Time
	PaymentCreatedAt *time.Time
}

const receiptSelect = `
	SELECT
		p.id AS payment_id,
		w.id AS walk_id,
		p.amount_paid,
		p.payment_date,
		p.payment_method,
		p.transaction_id,
		p.status AS payment_status,
		COALESCE(p.notes, '') AS payment_notes,
		w.scheduled_start_time,
		w.actual_start_time,
		w.scheduled_end_time,
		w.actual_end_time,
		w.start_address,
		w.duration,
		w.distance,
		w.total_price,
		w.status AS walk_status,
		walker.id AS walker_id,
		walker.name AS walker_name,
		walker.email AS walker_email,
		COALESCE(walker.phone, '') AS walker_phone,
		COALESCE(walker.profile_image, '') AS walker_image,
		owner.id AS owner_id,
		owner.name AS owner_name,
		owner.email AS owner_email,
		COALESCE(owner.phone, '') AS owner_phone,
		COALESCE(owner.profile_image, '') AS owner_image,
		COALESCE(ws.had_discount, false) AS walker_had_discount,
		COALESCE(ws.discount_percentage, 0) AS walker_discount_percentage,
		w.created_at AS walk_created_at,
		p.created_at AS payment_created_at
	FROM payments p
	JOIN walks w ON w.id = p.walk_id
	JOIN users walker ON walker.id = w.walker_id
	JOIN users owner ON owner.id = w.owner_id
	LEFT JOIN walker_settings ws ON ws.walker_id = w.walker_id
`

// FindReceiptRowByWalk retrieves the joined receipt row for one walk.
func (repo *receiptRepository) FindReceiptRowByWalk(ctx context.Context, walkID int64) (*entity.ReceiptRow, error) {
	var scans []*receiptRowScan

	if err := repo.db.WithContext(ctx).
		Raw(receiptSelect+` WHERE w.id = ? LIMIT 1`, walkID).
		Scan(&scans).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find receipt row by walk")
	}

	if len(scans) == 0 {
		return nil, repository.ErrReceiptNotFound
	}

	rows, err := repo.attachPets(ctx, scans)
	if err != nil {
		return nil, err
	}

	return rows[0], nil
}

// FindReceiptRowsByUser retrieves the joined receipt rows for every paid walk
// the user took part in, in the given role.
func (repo *receiptRepository) FindReceiptRowsByUser(ctx context.Context, userID int64, userType entity.UserType) ([]*entity.ReceiptRow, error) {
	column := "w.owner_id"
	if userType == entity.UserTypeWalker {
		column = "w.walker_id"
	}

	var scans []*receiptRowScan
	if err := repo.db.WithContext(ctx).
		Raw(receiptSelect+` WHERE `+column+` = ? ORDER BY p.payment_date DESC NULLS LAST, p.id DESC`, userID).
		Scan(&scans).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find receipt rows by user")
	}

	return repo.attachPets(ctx, scans)
}

// attachPets converts the join scans to domain rows and fills in the pet
// lists in one batched query.
func (repo *receiptRepository) attachPets(ctx context.Context, scans []*receiptRowScan) ([]*entity.ReceiptRow, error) {
	rows := make([]*entity.ReceiptRow, 0, len(scans))
	if len(scans) == 0 {
		return rows, nil
	}

	walkIDs := make([]int64, 0, len(scans))
	for _, scan := range scans {
		walkIDs = append(walkIDs, scan.WalkID)
	}

	var petRows []walkPetRow
	if err := repo.db.WithContext(ctx).
		Raw(`SELECT wp.walk_id, p.id AS pet_id, p.name AS pet_name
			FROM walk_pets wp
			JOIN pets p ON p.id = wp.pet_id
			WHERE wp.walk_id IN ?
			ORDER BY wp.walk_id, p.id`, walkIDs).
		Scan(&petRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load pets for receipts")
	}

	petsByWalk := make(map[int64][]walkPetRow, len(scans))
	for _, row := range petRows {
		petsByWalk[row.WalkID] = append(petsByWalk[row.WalkID], row)
	}

	for _, scan := range scans {
		row := toReceiptRowDomain(scan)
		for _, pet := range petsByWalk[scan.WalkID] {
			row.PetIDs = append(row.PetIDs, pet.PetID)
			row.PetNames = append(row.PetNames, pet.PetName)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// --- Mapper Functions ---

// toReceiptRowDomain converts a join scan to a domain ReceiptRow.
func toReceiptRowDomain(data *receiptRowScan) *entity.ReceiptRow {
	if data == nil {
		return nil
	}

	return &entity.ReceiptRow{
		PaymentID:     data.PaymentID,
		WalkID:        data.WalkID,
		AmountPaid:    data.AmountPaid,
		PaymentDate:   data.PaymentDate,
		PaymentMethod: data.PaymentMethod,
		TransactionID: data.TransactionID,
		PaymentStatus: data.PaymentStatus,
		PaymentNotes:  data.PaymentNotes,

		ScheduledStart: data.ScheduledStartTime,
		ActualStart:    data.ActualStartTime,
		ScheduledEnd:   data.ScheduledEndTime,
		ActualEnd:      data.ActualEndTime,
		StartAddress:   data.StartAddress,
		Duration:       data.Duration,
		Distance:       data.Distance,
		TotalPrice:     data.TotalPrice,
		WalkPrice:      data.TotalPrice,
		WalkStatus:     entity.WalkStatus(data.WalkStatus),

		WalkerID:    data.WalkerID,
		WalkerName:  data.WalkerName,
		WalkerEmail: data.WalkerEmail,
		WalkerPhone: data.WalkerPhone,
		WalkerImage: data.WalkerImage,

		OwnerID:    data.OwnerID,
		OwnerName:  data.OwnerName,
		OwnerEmail: data.OwnerEmail,
		OwnerPhone: data.OwnerPhone,
		OwnerImage: data.OwnerImage,

		WalkerHadDiscount:        data.WalkerHadDiscount,
		WalkerDiscountPercentage: data.WalkerDiscountPercentage,

		WalkCreatedAt:    data.WalkCreatedAt,
		PaymentCreatedAt: data.PaymentCreatedAt,
	}
}
