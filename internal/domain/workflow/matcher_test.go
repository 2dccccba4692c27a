package workflow

import (
	"testing"
	"time"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
)

// roleCodes is a fixed role directory for matcher tests
type roleCodes map[string]entity.Role

func (m roleCodes) Translate(code string) (entity.Role, bool) {
	role, ok := m[code]
	return role, ok
}

var testDirectory = roleCodes{
	"MGR":   entity.RoleManager,
	"STAFF": entity.RoleStaff,
	"HR":    entity.RoleHR,
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

func TestFindMatching_DateAndCategory(t *testing.T) {
	catalog := []*Definition{
		{ID: "old", Category: CategoryAttendance, EffectiveFrom: day("2024-01-01"), EffectiveTo: dayPtr("2024-12-31")},
		{ID: "current", Category: CategoryAttendance, EffectiveFrom: day("2025-01-01")},
		{ID: "salary", Category: CategorySalary, EffectiveFrom: day("2024-01-01")},
	}
	staff := &entity.User{Roles: []entity.Role{entity.RoleStaff}}

	tests := []struct {
		name     string
		category ContentCategory
		at       time.Time
		wantID   string
	}{
		{"inside closed window", CategoryAttendance, day("2024-06-15"), "old"},
		{"window from is inclusive", CategoryAttendance, day("2024-01-01"), "old"},
		{"window to is inclusive", CategoryAttendance, day("2024-12-31"), "old"},
		{"open-ended window", CategoryAttendance, day("2026-03-01"), "current"},
		{"other category", CategorySalary, day("2025-06-01"), "salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMatching(catalog, tt.category, staff, testDirectory, tt.at)
			if got == nil || got.ID != tt.wantID {
				t.Errorf("FindMatching() = %v, want ID %q", got, tt.wantID)
			}
		})
	}

	if got := FindMatching(catalog, CategoryEvaluation, staff, testDirectory, day("2025-06-01")); got != nil {
		t.Errorf("FindMatching(no evaluation entry) = %v, want nil", got)
	}
	if got := FindMatching(catalog, CategoryAttendance, staff, testDirectory, day("2023-06-01")); got != nil {
		t.Errorf("FindMatching(before any window) = %v, want nil", got)
	}
}

func TestFindMatching_Restrictions(t *testing.T) {
	catalog := []*Definition{
		{
			ID:            "executives",
			Category:      CategorySalary,
			EffectiveFrom: day("2024-01-01"),
			SalaryRanks:   []string{"E1", "E2"},
		},
		{
			ID:                 "managers",
			Category:           CategorySalary,
			EffectiveFrom:      day("2024-01-01"),
			InitiatorRoleCodes: []string{"MGR"},
		},
		{
			ID:            "general",
			Category:      CategorySalary,
			EffectiveFrom: day("2024-01-01"),
		},
	}
	at := day("2025-06-01")

	tests := []struct {
		name        string
		beneficiary *entity.User
		wantID      string
	}{
		{
			name:        "rank restriction matches",
			beneficiary: &entity.User{SalaryRank: "E1", Roles: []entity.Role{entity.RoleStaff}},
			wantID:      "executives",
		},
		{
			name:        "initiator restriction matches after rank skip",
			beneficiary: &entity.User{SalaryRank: "S3", Roles: []entity.Role{entity.RoleManager}},
			wantID:      "managers",
		},
		{
			name:        "general entry catches the rest",
			beneficiary: &entity.User{SalaryRank: "S3", Roles: []entity.Role{entity.RoleStaff}},
			wantID:      "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindMatching(catalog, CategorySalary, tt.beneficiary, testDirectory, at)
			if got == nil || got.ID != tt.wantID {
				t.Errorf("FindMatching() = %v, want ID %q", got, tt.wantID)
			}
		})
	}
}

// When every survivor declares a restriction that rejects the beneficiary,
// the first date/category survivor applies as the most general policy.
func TestFindMatching_PermissiveFallback(t *testing.T) {
	catalog := []*Definition{
		{
			ID:            "rank-restricted",
			Category:      CategoryEvaluation,
			EffectiveFrom: day("2024-01-01"),
			SalaryRanks:   []string{"E1"},
		},
		{
			ID:                 "role-restricted",
			Category:           CategoryEvaluation,
			EffectiveFrom:      day("2024-01-01"),
			InitiatorRoleCodes: []string{"HR"},
		},
	}
	staff := &entity.User{SalaryRank: "S1", Roles: []entity.Role{entity.RoleStaff}}

	got := FindMatching(catalog, CategoryEvaluation, staff, testDirectory, day("2025-02-01"))
	if got == nil || got.ID != "rank-restricted" {
		t.Errorf("FindMatching() = %v, want fallback to first survivor %q", got, "rank-restricted")
	}
}

func TestFindMatching_UnknownInitiatorCodeIsSkipped(t *testing.T) {
	catalog := []*Definition{
		{
			ID:                 "stale-code",
			Category:           CategoryAttendance,
			EffectiveFrom:      day("2024-01-01"),
			InitiatorRoleCodes: []string{"RETIRED_CODE"},
		},
		{
			ID:            "general",
			Category:      CategoryAttendance,
			EffectiveFrom: day("2024-01-01"),
		},
	}
	staff := &entity.User{Roles: []entity.Role{entity.RoleStaff}}

	got := FindMatching(catalog, CategoryAttendance, staff, testDirectory, day("2025-02-01"))
	if got == nil || got.ID != "general" {
		t.Errorf("FindMatching() = %v, want %q", got, "general")
	}
}
