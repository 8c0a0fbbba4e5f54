package company

import (
	"context"
	"errors"

	companyerrors "github.com/IonixCH/hris-api/internal/company/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OfficeLocation adalah pusat geofence absensi.
type OfficeLocation struct {
	CompanyID   int64
	CompanyName string
	Latitude    float64
	Longitude   float64
}

type Service interface {
	// GetOfficeLocation selalu resolvable: company tanpa koordinat jatuh ke
	// koordinat default, bukan error.
	GetOfficeLocation(ctx context.Context, companyID int64) (OfficeLocation, error)
	UpdateOfficeLocation(ctx context.Context, companyID int64, lat, lon float64) (OfficeLocation, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, logger: zap.L().Named("company.service")}
}

func (s *service) GetOfficeLocation(ctx context.Context, companyID int64) (OfficeLocation, error) {
	c, err := s.lookup(ctx, companyID)
	if err != nil {
		return OfficeLocation{}, err
	}

	loc := OfficeLocation{
		CompanyID:   c.ID,
		CompanyName: c.Name,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
	}
	if loc.Latitude == 0 {
		loc.Latitude = DefaultLatitude
	}
	if loc.Longitude == 0 {
		loc.Longitude = DefaultLongitude
	}
	return loc, nil
}

func (s *service) UpdateOfficeLocation(ctx context.Context, companyID int64, lat, lon float64) (OfficeLocation, error) {
	if lat < -90 || lat > 90 {
		return OfficeLocation{}, companyerrors.ErrInvalidLatitude
	}
	if lon < -180 || lon > 180 {
		return OfficeLocation{}, companyerrors.ErrInvalidLongitude
	}

	c, err := s.lookup(ctx, companyID)
	if err != nil {
		return OfficeLocation{}, err
	}

	if err := s.repo.UpdateLocation(ctx, c.ID, lat, lon); err != nil {
		return OfficeLocation{}, err
	}

	s.logger.Info("office location updated",
		zap.Int64("company_id", c.ID),
		zap.Float64("latitude", lat),
		zap.Float64("longitude", lon),
	)

	return OfficeLocation{
		CompanyID:   c.ID,
		CompanyName: c.Name,
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}

func (s *service) lookup(ctx context.Context, companyID int64) (*Company, error) {
	var (
		c   *Company
		err error
	)
	if companyID > 0 {
		c, err = s.repo.FindByID(ctx, companyID)
	} else {
		c, err = s.repo.FindDefault(ctx)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}
	return c, nil
}
