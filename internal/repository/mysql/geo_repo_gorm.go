package mysql

import (
	"context"
	"errors"
	"log"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"

	"gorm.io/gorm"
)

type provinceRepo struct {
	db *gorm.DB
}

func NewProvinceRepository(db *gorm.DB) repository.ProvinceRepository {
	return &provinceRepo{db: db}
}

func (r *provinceRepo) FindAll(ctx context.Context) ([]domain.Province, error) {
	var out []domain.Province
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		log.Printf("province repo: find all: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *provinceRepo) FindByID(ctx context.Context, id uint64) (*domain.Province, error) {
	var p domain.Province
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("province repo: find by id: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *provinceRepo) FindByName(ctx context.Context, name string) (*domain.Province, error) {
	var p domain.Province
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("province repo: find by name: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *provinceRepo) Create(ctx context.Context, p *domain.Province) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		log.Printf("province repo: create: %v", err)
		return err
	}
	return nil
}

func (r *provinceRepo) Update(ctx context.Context, p *domain.Province) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		log.Printf("province repo: update: %v", err)
		return err
	}
	return nil
}

func (r *provinceRepo) Delete(ctx context.Context, p *domain.Province) error {
	if err := r.db.WithContext(ctx).Delete(p).Error; err != nil {
		log.Printf("province repo: delete: %v", err)
		return err
	}
	return nil
}

func (r *provinceRepo) CountLocalities(ctx context.Context, provinceID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Locality{}).
		Where("province_id = ?", provinceID).
		Count(&n).Error
	if err != nil {
		log.Printf("province repo: count localities: %v", err)
		return 0, err
	}
	return n, nil
}

type localityRepo struct {
	db *gorm.DB
}

func NewLocalityRepository(db *gorm.DB) repository.LocalityRepository {
	return &localityRepo{db: db}
}

func (r *localityRepo) FindAll(ctx context.Context) ([]domain.Locality, error) {
	var out []domain.Locality
	err := r.db.WithContext(ctx).Preload("Province").Order("name ASC").Find(&out).Error
	if err != nil {
		log.Printf("locality repo: find all: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *localityRepo) FindByID(ctx context.Context, id uint64) (*domain.Locality, error) {
	var l domain.Locality
	if err := r.db.WithContext(ctx).Preload("Province").First(&l, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("locality repo: find by id: %v", err)
		return nil, err
	}
	return &l, nil
}

func (r *localityRepo) Create(ctx context.Context, l *domain.Locality) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		log.Printf("locality repo: create: %v", err)
		return err
	}
	return nil
}

func (r *localityRepo) Update(ctx context.Context, l *domain.Locality) error {
	if err := r.db.WithContext(ctx).Save(l).Error; err != nil {
		log.Printf("locality repo: update: %v", err)
		return err
	}
	return nil
}

func (r *localityRepo) Delete(ctx context.Context, l *domain.Locality) error {
	if err := r.db.WithContext(ctx).Delete(l).Error; err != nil {
		log.Printf("locality repo: delete: %v", err)
		return err
	}
	return nil
}

func (r *localityRepo) CountPickupPoints(ctx context.Context, localityID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.PickupPoint{}).
		Where("locality_id = ?", localityID).
		Count(&n).Error
	if err != nil {
		log.Printf("locality repo: count pickup points: %v", err)
		return 0, err
	}
	return n, nil
}

type pickupPointRepo struct {
	db *gorm.DB
}

func NewPickupPointRepository(db *gorm.DB) repository.PickupPointRepository {
	return &pickupPointRepo{db: db}
}

func (r *pickupPointRepo) FindAll(ctx context.Context) ([]domain.PickupPoint, error) {
	var out []domain.PickupPoint
	err := r.db.WithContext(ctx).
		Preload("Locality").Preload("Locality.Province").
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		log.Printf("pickup point repo: find all: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *pickupPointRepo) FindActive(ctx context.Context) ([]domain.PickupPoint, error) {
	var out []domain.PickupPoint
	err := r.db.WithContext(ctx).
		Preload("Locality").Preload("Locality.Province").
		Where("active = ?", true).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		log.Printf("pickup point repo: find active: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *pickupPointRepo) FindByID(ctx context.Context, id uint64) (*domain.PickupPoint, error) {
	var p domain.PickupPoint
	err := r.db.WithContext(ctx).
		Preload("Locality").Preload("Locality.Province").
		First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("pickup point repo: find by id: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *pickupPointRepo) FindByLocality(ctx context.Context, localityID uint64) ([]domain.PickupPoint, error) {
	var out []domain.PickupPoint
	err := r.db.WithContext(ctx).
		Preload("Locality").
		Where("locality_id = ?", localityID).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		log.Printf("pickup point repo: find by locality: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *pickupPointRepo) Create(ctx context.Context, p *domain.PickupPoint) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		log.Printf("pickup point repo: create: %v", err)
		return err
	}
	return nil
}

func (r *pickupPointRepo) Update(ctx context.Context, p *domain.PickupPoint) error {
	if err := r.db.WithContext(ctx).Save(p).Error; err != nil {
		log.Printf("pickup point repo: update: %v", err)
		return err
	}
	return nil
}

func (r *pickupPointRepo) Delete(ctx context.Context, p *domain.PickupPoint) error {
	if err := r.db.WithContext(ctx).Delete(p).Error; err != nil {
		log.Printf("pickup point repo: delete: %v", err)
		return err
	}
	return nil
}
