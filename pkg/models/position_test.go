package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionRole(t *testing.T) {
	cases := []struct {
		position  Position
		category  RoleCategory
		seniority int
		senior    bool
	}{
		{PositionNurse1, CategoryNurse, 1, false},
		{PositionNurse2, CategoryNurse, 2, false},
		{PositionNurse3, CategoryNurse, 3, true},
		{PositionNurse4, CategoryNurse, 4, true},
		{PositionMidwife1, CategoryMidwife, 1, false},
		{PositionMidwife2, CategoryMidwife, 2, false},
		{PositionNA1, CategoryNursingAttendant, 1, false},
		{PositionNA2, CategoryNursingAttendant, 2, false},
	}

	for _, tc := range cases {
		role, err := tc.position.Role()
		require.NoError(t, err, "position %q", tc.position)
		assert.Equal(t, tc.category, role.Category)
		assert.Equal(t, tc.seniority, role.Seniority)
		assert.Equal(t, tc.senior, role.SeniorNurse())
		assert.True(t, tc.position.Valid())
	}
}

func TestPositionRoleRejectsUnknownCodes(t *testing.T) {
	invalid := []Position{
		"",
		"Nurse",
		"Nurse 0",
		"Nurse 5",
		"Midwife 3",
		"NA 3",
		"Janitor 1",
		"Nurse x",
		"nurse 1",
	}

	for _, p := range invalid {
		_, err := p.Role()
		assert.Error(t, err, "position %q", p)
		assert.False(t, p.Valid(), "position %q", p)
	}
}

func TestPositionsCoversAllCodes(t *testing.T) {
	all := Positions()
	require.Len(t, all, 8)
	for _, p := range all {
		assert.True(t, p.Valid())
	}
}
