package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estatehub/internal/domain"
	"estatehub/internal/service"
	"estatehub/mocks"
)

func strPtr(s string) *string { return &s }

func decPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestPropertyService_Create_Success(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	svc := service.NewPropertyService(repo)
	addedBy := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Property")).Return(nil)

	p, err := svc.Create(context.Background(), addedBy, service.CreatePropertyInput{
		Title:        "Sea View Villa",
		PropertyType: "Sale",
		Price:        decPtr("250000"),
		ClosedDate:   strPtr("2024-02-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.PropertyTypeSale, p.PropertyType)
	assert.Equal(t, &addedBy, p.AddedBy)
	require.NotNil(t, p.ClosedDate)
	assert.Equal(t, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), *p.ClosedDate)
	repo.AssertExpectations(t)
}

func TestPropertyService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input service.CreatePropertyInput
		want  error
	}{
		{"unknown type", service.CreatePropertyInput{Title: "x", PropertyType: "lease", Price: decPtr("1")}, domain.ErrInvalidPropertyType},
		{"missing price", service.CreatePropertyInput{Title: "x", PropertyType: "rent"}, domain.ErrValidation},
		{"negative price", service.CreatePropertyInput{Title: "x", PropertyType: "rent", Price: decPtr("-1")}, domain.ErrValidation},
		{"bad closed date", service.CreatePropertyInput{Title: "x", PropertyType: "rent", Price: decPtr("1"), ClosedDate: strPtr("soon")}, domain.ErrInvalidDateFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockPropertyRepo)
			svc := service.NewPropertyService(repo)

			p, err := svc.Create(context.Background(), uuid.New(), tt.input)

			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPropertyService_Update_ClearsClosedDate(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	svc := service.NewPropertyService(repo)

	closed := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	existing := &domain.Property{ID: uuid.New(), Title: "Flat", PropertyType: domain.PropertyTypeRent, ClosedDate: &closed}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Update(context.Background(), existing.ID, service.UpdatePropertyInput{
		Title:      strPtr("Garden Flat"),
		ClosedDate: strPtr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, "Garden Flat", p.Title)
	assert.Nil(t, p.ClosedDate)
}

func TestPropertyService_Close_SetsClosedDate(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	svc := service.NewPropertyService(repo)

	existing := &domain.Property{ID: uuid.New(), Title: "Flat", PropertyType: domain.PropertyTypeRent}
	repo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	p, err := svc.Close(context.Background(), existing.ID, service.ClosePropertyInput{ClosedDate: "2024-06-30"})

	require.NoError(t, err)
	require.NotNil(t, p.ClosedDate)
	assert.Equal(t, "2024-06-30", p.ClosedDate.Format("2006-01-02"))
}

func TestPropertyService_GetByID_NotFound(t *testing.T) {
	repo := new(mocks.MockPropertyRepo)
	svc := service.NewPropertyService(repo)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrNotFound)

	p, err := svc.GetByID(context.Background(), id)

	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
