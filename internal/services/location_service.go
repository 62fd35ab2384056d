package services

import (
	"context"

	"paddlemarket/internal/domain"
	"paddlemarket/internal/repository"
)

type CreatePickupPointInput struct {
	Name         string
	Address      string
	Phone        string
	Email        string
	Description  string
	OpeningHours string
	ImageURL     string
	Latitude     float64
	Longitude    float64
	LocalityID   uint64
}

type UpdatePickupPointInput struct {
	Name         *string
	Address      *string
	Phone        *string
	Email        *string
	Description  *string
	OpeningHours *string
	ImageURL     *string
	Latitude     *float64
	Longitude    *float64
	Active       *bool
	LocalityID   *uint64
}

// LocationService covers provinces, localities and pickup points; a locality
// belongs to a province, a pickup point to a locality.
type LocationService struct {
	provinces  repository.ProvinceRepository
	localities repository.LocalityRepository
	pickups    repository.PickupPointRepository
}

func NewLocationService(
	provinces repository.ProvinceRepository,
	localities repository.LocalityRepository,
	pickups repository.PickupPointRepository,
) *LocationService {
	return &LocationService{provinces: provinces, localities: localities, pickups: pickups}
}

func (s *LocationService) GetProvinces(ctx context.Context) ([]domain.Province, error) {
	return s.provinces.FindAll(ctx)
}

func (s *LocationService) GetProvince(ctx context.Context, id uint64) (*domain.Province, error) {
	p, err := s.provinces.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("province", id)
	}
	return p, nil
}

func (s *LocationService) CreateProvince(ctx context.Context, name, country string) (*domain.Province, error) {
	existing, err := s.provinces.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("the province '%s' already exists", name)
	}

	p := &domain.Province{Name: name, Country: country}
	if err := s.provinces.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *LocationService) UpdateProvince(ctx context.Context, id uint64, name, country *string) (*domain.Province, error) {
	p, err := s.GetProvince(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != p.Name {
		existing, err := s.provinces.FindByName(ctx, *name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.Conflictf("the province '%s' already exists", *name)
		}
		p.Name = *name
	}
	if country != nil {
		p.Country = *country
	}

	if err := s.provinces.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *LocationService) DeleteProvince(ctx context.Context, id uint64) error {
	p, err := s.GetProvince(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.provinces.CountLocalities(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Conflictf("the province '%s' has %d localit(ies)", p.Name, n)
	}

	return s.provinces.Delete(ctx, p)
}

func (s *LocationService) GetLocalities(ctx context.Context) ([]domain.Locality, error) {
	return s.localities.FindAll(ctx)
}

func (s *LocationService) GetLocality(ctx context.Context, id uint64) (*domain.Locality, error) {
	l, err := s.localities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.NotFound("locality", id)
	}
	return l, nil
}

func (s *LocationService) CreateLocality(ctx context.Context, name, zipcode string, provinceID uint64) (*domain.Locality, error) {
	if _, err := s.GetProvince(ctx, provinceID); err != nil {
		return nil, err
	}

	l := &domain.Locality{Name: name, Zipcode: zipcode, ProvinceID: provinceID}
	if err := s.localities.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LocationService) UpdateLocality(ctx context.Context, id uint64, name, zipcode *string, provinceID *uint64) (*domain.Locality, error) {
	l, err := s.GetLocality(ctx, id)
	if err != nil {
		return nil, err
	}

	if provinceID != nil {
		if _, err := s.GetProvince(ctx, *provinceID); err != nil {
			return nil, err
		}
		l.ProvinceID = *provinceID
		l.Province = nil
	}
	if name != nil {
		l.Name = *name
	}
	if zipcode != nil {
		l.Zipcode = *zipcode
	}

	if err := s.localities.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LocationService) DeleteLocality(ctx context.Context, id uint64) error {
	l, err := s.GetLocality(ctx, id)
	if err != nil {
		return err
	}

	n, err := s.localities.CountPickupPoints(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.Conflictf("the locality '%s' has %d pickup point(s)", l.Name, n)
	}

	return s.localities.Delete(ctx, l)
}

func (s *LocationService) GetPickupPoints(ctx context.Context) ([]domain.PickupPoint, error) {
	return s.pickups.FindAll(ctx)
}

func (s *LocationService) GetActivePickupPoints(ctx context.Context) ([]domain.PickupPoint, error) {
	return s.pickups.FindActive(ctx)
}

func (s *LocationService) GetPickupPoint(ctx context.Context, id uint64) (*domain.PickupPoint, error) {
	p, err := s.pickups.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("pickup point", id)
	}
	return p, nil
}

func (s *LocationService) GetPickupPointsByLocality(ctx context.Context, localityID uint64) ([]domain.PickupPoint, error) {
	if _, err := s.GetLocality(ctx, localityID); err != nil {
		return nil, err
	}
	return s.pickups.FindByLocality(ctx, localityID)
}

func (s *LocationService) CreatePickupPoint(ctx context.Context, in CreatePickupPointInput) (*domain.PickupPoint, error) {
	if _, err := s.GetLocality(ctx, in.LocalityID); err != nil {
		return nil, err
	}

	p := &domain.PickupPoint{
		Name:         in.Name,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		Description:  in.Description,
		OpeningHours: in.OpeningHours,
		ImageURL:     in.ImageURL,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Active:       true,
		LocalityID:   in.LocalityID,
	}
	if err := s.pickups.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *LocationService) UpdatePickupPoint(ctx context.Context, id uint64, in UpdatePickupPointInput) (*domain.PickupPoint, error) {
	p, err := s.GetPickupPoint(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.LocalityID != nil {
		if _, err := s.GetLocality(ctx, *in.LocalityID); err != nil {
			return nil, err
		}
		p.LocalityID = *in.LocalityID
		p.Locality = nil
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.OpeningHours != nil {
		p.OpeningHours = *in.OpeningHours
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if in.Latitude != nil {
		p.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		p.Longitude = *in.Longitude
	}
	if in.Active != nil {
		p.Active = *in.Active
	}

	if err := s.pickups.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *LocationService) DeletePickupPoint(ctx context.Context, id uint64) error {
	p, err := s.GetPickupPoint(ctx, id)
	if err != nil {
		return err
	}
	return s.pickups.Delete(ctx, p)
}
