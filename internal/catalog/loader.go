// Package catalog loads the workflow-definition catalog, role directory and
// department list from a YAML configuration file. The loaded Catalog is an
// immutable in-memory snapshot implementing the engine's read-only
// collaborator ports; editing workflow policy means editing the file and
// reloading, never mutating a loaded catalog.
package catalog

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/entity"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/workflow"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// ErrInvalidCatalog is returned when the catalog file fails validation
var ErrInvalidCatalog = errors.New("invalid workflow catalog")

const dateLayout = "2006-01-02"

// Catalog is the loaded configuration snapshot
type Catalog struct {
	roleCodes   map[string]entity.Role
	departments []*entity.Department
	deptByID    map[uuid.UUID]*entity.Department
	definitions []*workflow.Definition
	formulas    map[string]string
}

type rawCatalog struct {
	RoleDirectory map[string]string `mapstructure:"role_directory"`
	Departments   []rawDepartment   `mapstructure:"departments"`
	Workflows     []rawWorkflow     `mapstructure:"workflows"`
	Formulas      map[string]string `mapstructure:"formulas"`
}

type rawDepartment struct {
	ID              string `mapstructure:"id"`
	Name            string `mapstructure:"name"`
	ManagerID       string `mapstructure:"manager_id"`
	BlockDirectorID string `mapstructure:"block_director_id"`
	HRInChargeID    string `mapstructure:"hr_in_charge_id"`
	Budget          string `mapstructure:"budget"`
}

type rawWorkflow struct {
	ID                 string   `mapstructure:"id"`
	Category           string   `mapstructure:"category"`
	EffectiveFrom      string   `mapstructure:"effective_from"`
	EffectiveTo        string   `mapstructure:"effective_to"`
	ApproverRoles      []string `mapstructure:"approver_roles"`
	AuditorRoles       []string `mapstructure:"auditor_roles"`
	SalaryRanks        []string `mapstructure:"salary_ranks"`
	InitiatorRoleCodes []string `mapstructure:"initiator_role_codes"`
}

// Load reads and validates the catalog file
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var raw rawCatalog
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.DecodeHookFuncType(decodeTimeAsString),
	))
	if err := v.Unmarshal(&raw, hook); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return build(&raw)
}

// decodeTimeAsString folds date scalars the YAML parser resolved to time.Time
// back into the catalog's plain date form, so effective dates load the same
// whether or not the operator quoted them.
func decodeTimeAsString(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from != reflect.TypeOf(time.Time{}) || to.Kind() != reflect.String {
		return data, nil
	}
	return data.(time.Time).Format(dateLayout), nil
}

func build(raw *rawCatalog) (*Catalog, error) {
	c := &Catalog{
		roleCodes: make(map[string]entity.Role, len(raw.RoleDirectory)),
		deptByID:  make(map[uuid.UUID]*entity.Department, len(raw.Departments)),
		formulas:  raw.Formulas,
	}
	if c.formulas == nil {
		c.formulas = map[string]string{}
	}

	// Viper lowercases configuration map keys, so directory codes are
	// canonicalized to upper case here and on every lookup.
	for code, name := range raw.RoleDirectory {
		role := entity.Role(name)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: role directory code %q maps to unknown role %q", ErrInvalidCatalog, code, name)
		}
		c.roleCodes[strings.ToUpper(code)] = role
	}

	for i, d := range raw.Departments {
		dept, err := buildDepartment(d)
		if err != nil {
			return nil, fmt.Errorf("%w: department %d: %v", ErrInvalidCatalog, i, err)
		}
		if _, dup := c.deptByID[dept.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate department id %s", ErrInvalidCatalog, dept.ID)
		}
		c.departments = append(c.departments, dept)
		c.deptByID[dept.ID] = dept
	}

	for i, w := range raw.Workflows {
		def, err := buildDefinition(w)
		if err != nil {
			return nil, fmt.Errorf("%w: workflow %d (%s): %v", ErrInvalidCatalog, i, w.ID, err)
		}
		c.definitions = append(c.definitions, def)
	}

	return c, nil
}

func buildDepartment(raw rawDepartment) (*entity.Department, error) {
	id, err := uuid.Parse(raw.ID)
	if err != nil {
		return nil, fmt.Errorf("id: %v", err)
	}
	dept := &entity.Department{ID: id, Name: raw.Name}

	if dept.ManagerID, err = parseOptionalUUID(raw.ManagerID); err != nil {
		return nil, fmt.Errorf("manager_id: %v", err)
	}
	if dept.BlockDirectorID, err = parseOptionalUUID(raw.BlockDirectorID); err != nil {
		return nil, fmt.Errorf("block_director_id: %v", err)
	}
	if dept.HRInChargeID, err = parseOptionalUUID(raw.HRInChargeID); err != nil {
		return nil, fmt.Errorf("hr_in_charge_id: %v", err)
	}

	if raw.Budget != "" {
		if dept.Budget, err = decimal.NewFromString(raw.Budget); err != nil {
			return nil, fmt.Errorf("budget: %v", err)
		}
	}
	return dept, nil
}

func buildDefinition(raw rawWorkflow) (*workflow.Definition, error) {
	if raw.ID == "" {
		return nil, errors.New("missing id")
	}
	category := workflow.ContentCategory(raw.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("unknown category %q", raw.Category)
	}

	from, err := time.Parse(dateLayout, raw.EffectiveFrom)
	if err != nil {
		return nil, fmt.Errorf("effective_from: %v", err)
	}

	def := &workflow.Definition{
		ID:                 raw.ID,
		Category:           category,
		EffectiveFrom:      from,
		SalaryRanks:        raw.SalaryRanks,
		InitiatorRoleCodes: raw.InitiatorRoleCodes,
	}

	if raw.EffectiveTo != "" {
		to, err := time.Parse(dateLayout, raw.EffectiveTo)
		if err != nil {
			return nil, fmt.Errorf("effective_to: %v", err)
		}
		if to.Before(from) {
			return nil, fmt.Errorf("effective_to %s precedes effective_from %s", raw.EffectiveTo, raw.EffectiveFrom)
		}
		def.EffectiveTo = &to
	}

	if def.ApproverRoles, err = parseRoles(raw.ApproverRoles); err != nil {
		return nil, fmt.Errorf("approver_roles: %v", err)
	}
	if def.AuditorRoles, err = parseRoles(raw.AuditorRoles); err != nil {
		return nil, fmt.Errorf("auditor_roles: %v", err)
	}
	return def, nil
}

func parseRoles(names []string) ([]entity.Role, error) {
	roles := make([]entity.Role, 0, len(names))
	for _, name := range names {
		role := entity.Role(name)
		if !role.IsValid() {
			return nil, fmt.Errorf("unknown role %q", name)
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func parseOptionalUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(s)
}

// RoleCodes returns the configured role-directory codes, sorted
func (c *Catalog) RoleCodes() []string {
	codes := make([]string, 0, len(c.roleCodes))
	for code := range c.roleCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Formulas returns the configured salary formulas keyed by name
func (c *Catalog) Formulas() map[string]string {
	return c.formulas
}
