package repository

import (
	"context"
	"errors"

	"doorlist/internal/models"

	"gorm.io/gorm"
)

// ListTypeRepository defines persistence operations for list types.
type ListTypeRepository interface {
	GetByID(ctx context.Context, id uint) (*models.ListType, error)
	Create(ctx context.Context, lt *models.ListType) error
	Update(ctx context.Context, lt *models.ListType) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.ListType, error)
	InUse(ctx context.Context, id uint) (bool, error)
}

type listTypeRepository struct {
	db *gorm.DB
}

// NewListTypeRepository returns a new ListTypeRepository implementation.
func NewListTypeRepository(db *gorm.DB) ListTypeRepository {
	return &listTypeRepository{db: db}
}

func (r *listTypeRepository) GetByID(ctx context.Context, id uint) (*models.ListType, error) {
	var lt models.ListType
	if err := readDB(r.db).WithContext(ctx).First(&lt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("List type", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &lt, nil
}

func (r *listTypeRepository) Create(ctx context.Context, lt *models.ListType) error {
	if err := r.db.WithContext(ctx).Create(lt).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("List type name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *listTypeRepository) Update(ctx context.Context, lt *models.ListType) error {
	if err := r.db.WithContext(ctx).Save(lt).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("List type name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *listTypeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.ListType{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *listTypeRepository) List(ctx context.Context) ([]models.ListType, error) {
	var types []models.ListType
	if err := readDB(r.db).WithContext(ctx).Order("name ASC").Find(&types).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return types, nil
}

// InUse reports whether any event list still references the type.
func (r *listTypeRepository) InUse(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.EventList{}).
		Where("list_type_id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
