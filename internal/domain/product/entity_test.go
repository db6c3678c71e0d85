package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductDefaults(t *testing.T) {
	p, err := NewProduct("Sugar", "چینی", "", 120, 100, 10, "cat-1", "", "", "")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, UnitPiece, p.Unit)
	assert.True(t, p.IsActive)
	assert.Equal(t, 10, p.Stock)
}

func TestNewProductValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*Product, error)
		want  error
	}{
		{
			name: "empty name",
			build: func() (*Product, error) {
				return NewProduct("", "چینی", "", 10, 0, 1, "cat-1", "", "", "")
			},
			want: ErrEmptyName,
		},
		{
			name: "empty urdu name",
			build: func() (*Product, error) {
				return NewProduct("Sugar", "", "", 10, 0, 1, "cat-1", "", "", "")
			},
			want: ErrEmptyNameUrdu,
		},
		{
			name: "missing category",
			build: func() (*Product, error) {
				return NewProduct("Sugar", "چینی", "", 10, 0, 1, "", "", "", "")
			},
			want: ErrEmptyCategory,
		},
		{
			name: "negative price",
			build: func() (*Product, error) {
				return NewProduct("Sugar", "چینی", "", -1, 0, 1, "cat-1", "", "", "")
			},
			want: ErrInvalidPrice,
		},
		{
			name: "negative stock",
			build: func() (*Product, error) {
				return NewProduct("Sugar", "چینی", "", 10, 0, -1, "cat-1", "", "", "")
			},
			want: ErrInvalidStock,
		},
		{
			name: "unknown unit",
			build: func() (*Product, error) {
				return NewProduct("Sugar", "چینی", "", 10, 0, 1, "cat-1", "", "", "dozen")
			},
			want: ErrInvalidUnit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnitIsValid(t *testing.T) {
	for _, u := range []Unit{UnitPiece, UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitPack, UnitBox} {
		assert.True(t, u.IsValid(), "unit %q", u)
	}
	assert.False(t, Unit("dozen").IsValid())
	assert.False(t, Unit("").IsValid())
}

func TestSetStock(t *testing.T) {
	p, err := NewProduct("Sugar", "چینی", "", 120, 100, 10, "cat-1", "", "", "")
	require.NoError(t, err)

	require.NoError(t, p.SetStock(0))
	assert.Equal(t, 0, p.Stock)

	assert.ErrorIs(t, p.SetStock(-1), ErrInvalidStock)
	assert.Equal(t, 0, p.Stock)
}

func TestDeactivate(t *testing.T) {
	p, err := NewProduct("Sugar", "چینی", "", 120, 100, 10, "cat-1", "", "", "")
	require.NoError(t, err)

	p.Deactivate()
	assert.False(t, p.IsActive)
}
