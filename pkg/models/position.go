package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is one of the 8 staff position codes, e.g. "Nurse 3" or "NA 1"
type Position string

const (
	PositionNurse1   Position = "Nurse 1"
	PositionNurse2   Position = "Nurse 2"
	PositionNurse3   Position = "Nurse 3"
	PositionNurse4   Position = "Nurse 4"
	PositionMidwife1 Position = "Midwife 1"
	PositionMidwife2 Position = "Midwife 2"
	PositionNA1      Position = "NA 1"
	PositionNA2      Position = "NA 2"
)

// RoleCategory groups positions into the three staffing categories
type RoleCategory string

const (
	CategoryNurse            RoleCategory = "nurse"
	CategoryMidwife          RoleCategory = "midwife"
	CategoryNursingAttendant RoleCategory = "nursing_attendant"
)

// Role is the parsed form of a position code. Positions are parsed once at
// the data-model boundary; nothing downstream string-matches position text.
type Role struct {
	Category  RoleCategory
	Seniority int
}

// SeniorNurse reports whether the role is a senior nurse (Nurse 3 or 4)
func (r Role) SeniorNurse() bool {
	return r.Category == CategoryNurse && r.Seniority >= 3
}

var roleCategories = map[string]RoleCategory{
	"Nurse":   CategoryNurse,
	"Midwife": CategoryMidwife,
	"NA":      CategoryNursingAttendant,
}

// Positions lists every valid position code
func Positions() []Position {
	return []Position{
		PositionNurse1, PositionNurse2, PositionNurse3, PositionNurse4,
		PositionMidwife1, PositionMidwife2,
		PositionNA1, PositionNA2,
	}
}

// Valid reports whether the position is one of the 8 known codes
func (p Position) Valid() bool {
	_, err := p.Role()
	return err == nil
}

// Role parses the position code into its category and numeric seniority
func (p Position) Role() (Role, error) {
	prefix, suffix, found := strings.Cut(string(p), " ")
	if !found {
		return Role{}, fmt.Errorf("malformed position %q", p)
	}
	category, ok := roleCategories[prefix]
	if !ok {
		return Role{}, fmt.Errorf("unknown position category %q", prefix)
	}
	seniority, err := strconv.Atoi(suffix)
	if err != nil {
		return Role{}, fmt.Errorf("malformed position %q", p)
	}
	max := 2
	if category == CategoryNurse {
		max = 4
	}
	if seniority < 1 || seniority > max {
		return Role{}, fmt.Errorf("position %q out of range", p)
	}
	return Role{Category: category, Seniority: seniority}, nil
}
