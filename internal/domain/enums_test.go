package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"estatehub/internal/domain"
)

func TestParsePropertyType(t *testing.T) {
	pt, err := domain.ParsePropertyType(" Sale ")
	assert.NoError(t, err)
	assert.Equal(t, domain.PropertyTypeSale, pt)

	pt, err = domain.ParsePropertyType("RENT")
	assert.NoError(t, err)
	assert.Equal(t, domain.PropertyTypeRent, pt)

	_, err = domain.ParsePropertyType("lease")
	assert.ErrorIs(t, err, domain.ErrInvalidPropertyType)
}

func TestClassifyPropertyType(t *testing.T) {
	assert.Equal(t, domain.PropertyTypeSale, domain.ClassifyPropertyType("SALE"))
	assert.Equal(t, domain.PropertyTypeRent, domain.ClassifyPropertyType("rent"))
	assert.Equal(t, domain.PropertyTypeRent, domain.ClassifyPropertyType("lease"))
}

func TestUserRole_IsOperator(t *testing.T) {
	assert.True(t, domain.RoleOperations.IsOperator())
	assert.True(t, domain.RoleOperationsManager.IsOperator())
	assert.False(t, domain.RoleAdmin.IsOperator())
	assert.False(t, domain.RoleAgent.IsOperator())
}

func TestEffectiveLeadsResponded(t *testing.T) {
	r := domain.DailyOperationsReport{LeadsRespondedTo: 10, LeadsRespondedOutOfDutyTime: 15}
	assert.Equal(t, 0, r.EffectiveLeadsResponded())

	r = domain.DailyOperationsReport{LeadsRespondedTo: 10, LeadsRespondedOutOfDutyTime: 3}
	assert.Equal(t, 7, r.EffectiveLeadsResponded())
}
