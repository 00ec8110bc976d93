package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"estatehub/internal/daterange"
	"estatehub/internal/domain"
	"estatehub/internal/port"
)

// CreatePropertyInput is the DTO for creating a property.
type CreatePropertyInput struct {
	Title        string           `json:"title" binding:"required"`
	PropertyType string           `json:"property_type" binding:"required,property_type"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	ClosedDate   *string          `json:"closed_date"`
}

// UpdatePropertyInput is the DTO for a partial property update.
type UpdatePropertyInput struct {
	Title        *string          `json:"title"`
	PropertyType *string          `json:"property_type" binding:"omitempty,property_type"`
	Price        *decimal.Decimal `json:"price"`
	ClosedDate   *string          `json:"closed_date"`
}

// ClosePropertyInput is the DTO for marking a property as closed.
type ClosePropertyInput struct {
	ClosedDate string `json:"closed_date" binding:"required"`
}

// PropertyService defines the property contract.
type PropertyService interface {
	Create(ctx context.Context, addedBy uuid.UUID, input CreatePropertyInput) (*domain.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, offset, limit int) ([]domain.Property, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*domain.Property, error)
	Close(ctx context.Context, id uuid.UUID, input ClosePropertyInput) (*domain.Property, error)
}

var errNegativePrice = fmt.Errorf("%w: price must not be negative", domain.ErrValidation)

type propertyService struct {
	repo port.PropertyRepository
}

// NewPropertyService creates a new PropertyService implementation.
func NewPropertyService(repo port.PropertyRepository) PropertyService {
	return &propertyService{repo: repo}
}

func (s *propertyService) Create(ctx context.Context, addedBy uuid.UUID, input CreatePropertyInput) (*domain.Property, error) {
	pt, err := domain.ParsePropertyType(input.PropertyType)
	if err != nil {
		return nil, err
	}
	if input.Price == nil {
		return nil, fmt.Errorf("%w: price is required", domain.ErrValidation)
	}
	if input.Price.IsNegative() {
		return nil, errNegativePrice
	}

	p := &domain.Property{
		Title:        input.Title,
		PropertyType: pt,
		Price:        *input.Price,
		AddedBy:      &addedBy,
	}
	if input.ClosedDate != nil {
		day, err := daterange.NormalizeDay(*input.ClosedDate)
		if err != nil {
			return nil, err
		}
		p.ClosedDate = &day.StartUTC
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *propertyService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *propertyService) List(ctx context.Context, offset, limit int) ([]domain.Property, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *propertyService) Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (*domain.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.PropertyType != nil {
		pt, err := domain.ParsePropertyType(*input.PropertyType)
		if err != nil {
			return nil, err
		}
		p.PropertyType = pt
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, errNegativePrice
		}
		p.Price = *input.Price
	}
	if input.ClosedDate != nil {
		if *input.ClosedDate == "" {
			p.ClosedDate = nil
		} else {
			day, err := daterange.NormalizeDay(*input.ClosedDate)
			if err != nil {
				return nil, err
			}
			p.ClosedDate = &day.StartUTC
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *propertyService) Close(ctx context.Context, id uuid.UUID, input ClosePropertyInput) (*domain.Property, error) {
	return s.Update(ctx, id, UpdatePropertyInput{ClosedDate: &input.ClosedDate})
}
