package repositories

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"withme/internal/models/db_models"
)

type PlaceRepository interface {
	FindBySourceRefs(ctx context.Context, source string, sourceIDs []string) ([]db_models.Place, error)
	GetBySourceRef(ctx context.Context, source, sourceID string) (*db_models.Place, error)
	CreateBatch(ctx context.Context, places []*db_models.Place) error
	Create(ctx context.Context, place *db_models.Place) error
	List(ctx context.Context, page, pageSize int) ([]db_models.Place, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// IsUniqueViolation reports whether err is a postgres duplicate-key error,
// which the importer treats as "someone stored this place first".
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func (r *placeRepository) FindBySourceRefs(ctx context.Context, source string, sourceIDs []string) ([]db_models.Place, error) {
	if len(sourceIDs) == 0 {
		return nil, nil
	}
	var places []db_models.Place
	err := r.db.WithContext(ctx).
		Where("source = ? AND source_id IN ?", source, sourceIDs).
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) GetBySourceRef(ctx context.Context, source, sourceID string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).
		First(&place, "source = ? AND source_id = ?", source, sourceID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) CreateBatch(ctx context.Context, places []*db_models.Place) error {
	if len(places) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(places).Error
}

func (r *placeRepository) Create(ctx context.Context, place *db_models.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(pageSize).
		Order("created_at DESC").
		Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}
