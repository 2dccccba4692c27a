package workflow

import (
	"time"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
)

// RoleTranslator resolves role-directory codes to role identifiers. The role
// directory itself lives outside the engine; this is the one slice of it the
// matcher needs.
type RoleTranslator interface {
	Translate(code string) (entity.Role, bool)
}

// FindMatching selects the single applicable definition from the catalog for
// a category, beneficiary and reference date.
//
// Catalog order is significant: among entries whose category matches and
// whose effective window contains the reference date, the first one whose
// rank and initiator-role restrictions accept the beneficiary wins. When
// every date/category survivor declares a restriction that rejects the
// beneficiary, the first survivor is returned anyway: an unmatched
// specialization degrades to the most general applicable policy instead of
// blocking the record. Returns nil only when no entry covers the category
// and date at all.
func FindMatching(catalog []*Definition, category ContentCategory, beneficiary *entity.User, roles RoleTranslator, at time.Time) *Definition {
	var fallback *Definition
	for _, def := range catalog {
		if def.Category != category || !def.ActiveAt(at) {
			continue
		}
		if fallback == nil {
			fallback = def
		}
		if !rankAccepts(def, beneficiary) {
			continue
		}
		if !initiatorAccepts(def, beneficiary, roles) {
			continue
		}
		return def
	}
	return fallback
}

func rankAccepts(def *Definition, beneficiary *entity.User) bool {
	if len(def.SalaryRanks) == 0 {
		return true
	}
	for _, rank := range def.SalaryRanks {
		if rank == beneficiary.SalaryRank {
			return true
		}
	}
	return false
}

func initiatorAccepts(def *Definition, beneficiary *entity.User, roles RoleTranslator) bool {
	if len(def.InitiatorRoleCodes) == 0 {
		return true
	}
	translated := make([]entity.Role, 0, len(def.InitiatorRoleCodes))
	for _, code := range def.InitiatorRoleCodes {
		// Codes missing from the role directory are skipped, not fatal; a
		// fully stale restriction falls through to the permissive fallback.
		if role, ok := roles.Translate(code); ok {
			translated = append(translated, role)
		}
	}
	return beneficiary.HasAnyRole(translated)
}
