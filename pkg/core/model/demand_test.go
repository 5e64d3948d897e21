package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/nurse-roster/pkg/core/errs"
)

func TestNewDemand_Indexing(t *testing.T) {
	min := uniformDemand(3, 2, 0)
	opt := uniformDemand(3, 2, 0)
	min[4][late][nurse] = 2
	opt[4][late][nurse] = 3
	opt[6][night][headNurse] = 1

	demand, err := NewDemand(min, opt, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, demand.Min(4, late, nurse))
	assert.Equal(t, 3, demand.Opt(4, late, nurse))
	assert.Equal(t, 0, demand.Min(6, night, headNurse))
	assert.Equal(t, 1, demand.Opt(6, night, headNurse))

	days, shifts, skills := demand.Shape()
	assert.Equal(t, 7, days)
	assert.Equal(t, 3, shifts)
	assert.Equal(t, 2, skills)
	assert.False(t, demand.IsZero())
	assert.Equal(t, min, demand.MinTensor())
	assert.Equal(t, opt, demand.OptTensor())
}

func TestNewDemand_CopiesInput(t *testing.T) {
	min := uniformDemand(1, 1, 1)
	demand, err := NewDemand(min, uniformDemand(1, 1, 2), 1, 1)
	require.NoError(t, err)

	min[0][0][0] = 9
	assert.Equal(t, 1, demand.Min(0, 0, 0))

	tensor := demand.MinTensor()
	tensor[0][0][0] = 9
	assert.Equal(t, 1, demand.Min(0, 0, 0))
}

func TestNewDemand_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		min, opt [][][]int
	}{
		{name: "six days", min: uniformDemand(3, 2, 0)[:6], opt: uniformDemand(3, 2, 0)},
		{name: "missing shift", min: uniformDemand(3, 2, 0), opt: uniformDemand(2, 2, 0)},
		{name: "extra skill", min: uniformDemand(3, 3, 0), opt: uniformDemand(3, 2, 0)},
		{name: "negative count", min: uniformDemand(3, 2, -1), opt: uniformDemand(3, 2, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDemand(tt.min, tt.opt, 3, 2)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrInvalidConfiguration))
		})
	}
}

func TestDemand_OptimumBelowMinimumTolerated(t *testing.T) {
	min := uniformDemand(3, 2, 1)
	opt := uniformDemand(3, 2, 1)
	opt[2][early][nurse] = 0

	demand, err := NewDemand(min, opt, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, []DemandCell{{Day: 2, Shift: early, Skill: nurse}}, demand.Inconsistencies())
}

func TestDemand_ZeroAndEmpty(t *testing.T) {
	var demand Demand
	assert.True(t, demand.IsZero())
	assert.Nil(t, demand.MinTensor())
	assert.NotPanics(t, func() {
		assert.Equal(t, 0, demand.Min(0, night, nurse))
		assert.Equal(t, 0, demand.Opt(6, night, headNurse))
	})

	empty := NewEmptyDemand(3, 2)
	assert.False(t, empty.IsZero())
	assert.Equal(t, 0, empty.Opt(6, night, nurse))
	assert.Empty(t, empty.Inconsistencies())
}
