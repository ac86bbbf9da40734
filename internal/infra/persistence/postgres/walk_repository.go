package postgres

import (
	"context"

	"paseo/internal/domain/entity"
	domainerrors "paseo/internal/domain/errors"
	"paseo/internal/domain/repository"
	"paseo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// walkRepository implements the repository.WalkRepository interface.
type walkRepository struct {
	db *gorm.DB
}

// NewWalkRepository is the constructor for walkRepository.
func NewWalkRepository(db *gorm.DB) repository.WalkRepository {
	return &walkRepository{
		db: db,
	}
}

// CreateWalk persists a new walk together with its pet list.
func (repo *walkRepository) CreateWalk(ctx context.Context, walk *entity.Walk) error {
	walkM := fromWalkDomain(walk)
	if walkM.Version == 0 {
		walkM.Version = 1
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(walkM).Error; err != nil {
			return err
		}

		walkPets := make([]model.WalkPetModel, 0, len(walk.PetIDs))
		for _, petID := range walk.PetIDs {
			walkPets = append(walkPets, model.WalkPetModel{WalkID: walkM.ID, PetID: petID})
		}

		return tx.Create(&walkPets).Error
	})
	if err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrWalkCreationFailed.WrapMessage("invalid walker, owner or pet reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrWalkCreationFailed.WrapMessage("missing required walk information")
		}
		if isCheckConstraintViolation(err) || isUniqueConstraintViolation(err) {
			return domainerrors.ErrWalkCreationFailed.WrapMessage("walk violates a database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create walk")
	}

	// Update the entity with generated values
	walk.ID = walkM.ID
	walk.Version = walkM.Version
	walk.CreatedAt = walkM.CreatedAt
	walk.UpdatedAt = walkM.UpdatedAt

	return repo.hydrateNames(ctx, []*entity.Walk{walk})
}

// FindWalkByID retrieves a walk by its unique ID.
func (repo *walkRepository) FindWalkByID(ctx context.Context, id int64) (*entity.Walk, error) {
	var walkM model.WalkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&walkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWalkNotFound
		}

		return nil, errors.Wrap(err, "failed to find walk by ID")
	}

	walk := toWalkDomain(&walkM)
	if err := repo.hydrateNames(ctx, []*entity.Walk{walk}); err != nil {
		return nil, err
	}

	return walk, nil
}

// FindAllWalks retrieves every walk, newest scheduled first.
func (repo *walkRepository) FindAllWalks(ctx context.Context) ([]*entity.Walk, error) {
	return repo.findWalks(ctx, repo.db.WithContext(ctx))
}

// FindWalksByStatus retrieves all walks currently in the given status.
func (repo *walkRepository) FindWalksByStatus(ctx context.Context, status entity.WalkStatus) ([]*entity.Walk, error) {
	return repo.findWalks(ctx, repo.db.WithContext(ctx).
		Where("status = ?", status.String()))
}

// FindWalksByWalker retrieves all walks assigned to a walker.
func (repo *walkRepository) FindWalksByWalker(ctx context.Context, walkerID int64) ([]*entity.Walk, error) {
	return repo.findWalks(ctx, repo.db.WithContext(ctx).
		Where("walker_id = ?", walkerID))
}

// FindWalksByOwner retrieves all walks requested by an owner.
func (repo *walkRepository) FindWalksByOwner(ctx context.Context, ownerID int64) ([]*entity.Walk, error) {
	return repo.findWalks(ctx, repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID))
}

// FindWalksByWalkerAndStatus retrieves a walker's walks in the given status.
func (repo *walkRepository) FindWalksByWalkerAndStatus(ctx context.Context, walkerID int64, status entity.WalkStatus) ([]*entity.Walk, error) {
	return repo.findWalks(ctx, repo.db.WithContext(ctx).
		Where("walker_id = ? AND status = ?", walkerID, status.String()))
}

// UpdateWalkStatus persists a status transition with a compare-and-swap on
// the version column. A transition that lost the race updates zero rows.
func (repo *walkRepository) UpdateWalkStatus(ctx context.Context, walkID, expectedVersion int64, update repository.StatusUpdate) error {
	updates := map[string]any{
		"status":  update.Status.String(),
		"version": gorm.Expr("version + 1"),
	}
	if update.ActualStart != nil {
		updates["actual_start_time"] = *update.ActualStart
	}
	if update.ActualEnd != nil {
		updates["actual_end_time"] = *update.ActualEnd
	}

	result := repo.db.WithContext(ctx).
		Model(&model.WalkModel{}).
		Where("id = ? AND version = ?", walkID, expectedVersion).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update walk status")
	}

	if result.RowsAffected == 0 {
		// Distinguish a lost race from a missing walk.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.WalkModel{}).
			Where("id = ?", walkID).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check walk existence")
		}
		if count == 0 {
			return repository.ErrWalkNotFound
		}

		return repository.ErrWalkVersionConflict
	}

	return nil
}

// UpdateWalkDetails updates the non-status fields of a walk.
func (repo *walkRepository) UpdateWalkDetails(ctx context.Context, walkID int64, update repository.DetailsUpdate) error {
	updates := map[string]any{}
	if update.Duration != nil {
		updates["duration"] = *update.Duration
	}
	if update.Distance != nil {
		updates["distance"] = *update.Distance
	}
	if update.WalkerNotes != nil {
		updates["walker_notes"] = *update.WalkerNotes
	}
	if update.AdminNotes != nil {
		updates["admin_notes"] = *update.AdminNotes
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.WalkModel{}).
		Where("id = ?", walkID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update walk details")
	}

	if result.RowsAffected == 0 {
		return repository.ErrWalkNotFound
	}

	return nil
}

// DeleteWalk removes a walk and its pet list.
func (repo *walkRepository) DeleteWalk(ctx context.Context, walkID int64) error {
	var rowsAffected int64

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("walk_id = ?", walkID).Delete(&model.WalkPetModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", walkID).Delete(&model.WalkModel{})
		if result.Error != nil {
			return result.Error
		}
		rowsAffected = result.RowsAffected

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete walk")
	}

	if rowsAffected == 0 {
		return repository.ErrWalkNotFound
	}

	return nil
}

func (repo *walkRepository) findWalks(ctx context.Context, query *gorm.DB) ([]*entity.Walk, error) {
	var walkModels []*model.WalkModel

	if err := query.
		Order("scheduled_start_time DESC").
		Find(&walkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find walks")
	}

	walks := make([]*entity.Walk, 0, len(walkModels))
	for _, walkM := range walkModels {
		walks = append(walks, toWalkDomain(walkM))
	}

	if err := repo.hydrateNames(ctx, walks); err != nil {
		return nil, err
	}

	return walks, nil
}

type walkPetRow struct {
	WalkID  int64
	PetID   int64
	PetName string
}

type userNameRow struct {
	ID   int64
	Name string
}

// hydrateNames fills the denormalized participant and pet fields of the
// given walks from the users and pets tables in one batch per table.
func (repo *walkRepository) hydrateNames(ctx context.Context, walks []*entity.Walk) error {
	if len(walks) == 0 {
		return nil
	}

	walkIDs := make([]int64, 0, len(walks))
	userIDSet := make(map[int64]struct{}, len(walks)*2)
	for _, walk := range walks {
		walkIDs = append(walkIDs, walk.ID)
		userIDSet[walk.WalkerID] = struct{}{}
		userIDSet[walk.OwnerID] = struct{}{}
	}

	var petRows []walkPetRow
	if err := repo.db.WithContext(ctx).
		Raw(`SELECT wp.walk_id, p.id AS pet_id, p.name AS pet_name
			FROM walk_pets wp
			JOIN pets p ON p.id = wp.pet_id
			WHERE wp.walk_id IN ?
			ORDER BY wp.walk_id, p.id`, walkIDs).
		Scan(&petRows).Error; err != nil {
		return errors.Wrap(err, "failed to load pets for walks")
	}

	userIDs := make([]int64, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}

	var userRows []userNameRow
	if err := repo.db.WithContext(ctx).
		Raw(`SELECT id, name FROM users WHERE id IN ?`, userIDs).
		Scan(&userRows).Error; err != nil {
		return errors.Wrap(err, "failed to load users for walks")
	}

	petsByWalk := make(map[int64][]walkPetRow, len(walks))
	for _, row := range petRows {
		petsByWalk[row.WalkID] = append(petsByWalk[row.WalkID], row)
	}

	nameByUser := make(map[int64]string, len(userRows))
	for _, row := range userRows {
		nameByUser[row.ID] = row.Name
	}

	for _, walk := range walks {
		walk.WalkerName = nameByUser[walk.WalkerID]
		walk.OwnerName = nameByUser[walk.OwnerID]

		rows := petsByWalk[walk.ID]
		walk.PetIDs = make([]int64, 0, len(rows))
		walk.PetNames = make([]string, 0, len(rows))
		for _, row := range rows {
			walk.PetIDs = append(walk.PetIDs, row.PetID)
			walk.PetNames = append(walk.PetNames, row.PetName)
		}
	}

	return nil
}

// --- Mapper Functions ---

// toWalkDomain converts a GORM WalkModel to a domain Walk entity.
func toWalkDomain(data *model.WalkModel) *entity.Walk {
	if data == nil {
		return nil
	}

	return &entity.Walk{
		ID:             data.ID,
		WalkerID:       data.WalkerID,
		OwnerID:        data.OwnerID,
		ScheduledStart: data.ScheduledStartTime,
		ScheduledEnd:   data.ScheduledEndTime,
		ActualStart:    data.ActualStartTime,
		ActualEnd:      data.ActualEndTime,
		StartAddress:   data.StartAddress,
		TotalPrice:     data.TotalPrice,
		Status:         entity.WalkStatus(data.Status),
		Duration:       data.Duration,
		Distance:       data.Distance,
		WalkerNotes:    data.WalkerNotes,
		AdminNotes:     data.AdminNotes,
		Version:        data.Version,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromWalkDomain converts a domain Walk entity to a GORM WalkModel.
func fromWalkDomain(data *entity.Walk) *model.WalkModel {
	if data == nil {
		return nil
	}

	return &model.WalkModel{
		ID:                 data.ID,
		WalkerID:           data.WalkerID,
		OwnerID:            data.OwnerID,
		ScheduledStartTime: data.ScheduledStart,
		ScheduledEndTime:   data.ScheduledEnd,
		ActualStartTime:    data.ActualStart,
		ActualEndTime:      data.ActualEnd,
		StartAddress:       data.StartAddress,
		TotalPrice:         data.TotalPrice,
		Status:             data.Status.String(),
		Duration:           data.Duration,
		Distance:           data.Distance,
		WalkerNotes:        data.WalkerNotes,
		AdminNotes:         data.AdminNotes,
		Version:            data.Version,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
