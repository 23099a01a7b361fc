// Package catalog holds the fixed selection domains of the timesheet
// form: project codes with their scopes, and service categories with
// their types. The catalogs are not editable at runtime.
package catalog

// ScopeNone is the universal no-scope sentinel, selectable on every
// project.
const ScopeNone = "-"

// Project is a billable project code with its valid scopes.
type Project struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
}

// ServiceCategory groups the service types selectable under it.
type ServiceCategory struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

var Projects = []Project{
	{Code: "SIR-001", Name: "Harbor Substation Upgrade", Scopes: []string{"Commissioning", "Testing", "Documentation"}},
	{Code: "SIR-002", Name: "Northfield Wind Park", Scopes: []string{"Site Survey", "Installation", "Commissioning"}},
	{Code: "SIR-003", Name: "Grid Control Retrofit", Scopes: []string{"Engineering", "FAT", "SAT"}},
	{Code: "SIR-004", Name: "Customer Care Contract", Scopes: []string{"Preventive Maintenance", "Corrective Maintenance"}},
	{Code: "INT-001", Name: "Internal", Scopes: []string{"Training", "Administration"}},
}

var ServiceCategories = []ServiceCategory{
	{Name: "Field Service", Types: []string{"On-site Support", "Commissioning", "Troubleshooting"}},
	{Name: "Remote Support", Types: []string{"Remote Diagnostics", "Software Update", "Hotline"}},
	{Name: "Engineering", Types: []string{"Design", "Design Review", "Documentation"}},
	{Name: "Internal", Types: []string{"Training", "Meeting", "Administration"}},
}

// ProjectByCode looks up a project by its code.
func ProjectByCode(code string) (Project, bool) {
	for _, p := range Projects {
		if p.Code == code {
			return p, true
		}
	}
	return Project{}, false
}

// ValidProject reports whether code names a cataloged project.
func ValidProject(code string) bool {
	_, ok := ProjectByCode(code)
	return ok
}

// ValidScope reports whether scope is selectable for the given project.
// ScopeNone is always selectable.
func ValidScope(projectCode, scope string) bool {
	if scope == ScopeNone {
		return true
	}
	p, ok := ProjectByCode(projectCode)
	if !ok {
		return false
	}
	for _, s := range p.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// CategoryByName looks up a service category by name.
func CategoryByName(name string) (ServiceCategory, bool) {
	for _, c := range ServiceCategories {
		if c.Name == name {
			return c, true
		}
	}
	return ServiceCategory{}, false
}

// ValidServiceCategory reports whether name is a cataloged category.
func ValidServiceCategory(name string) bool {
	_, ok := CategoryByName(name)
	return ok
}

// ValidServiceType reports whether typ is selectable under the given
// category.
func ValidServiceType(category, typ string) bool {
	c, ok := CategoryByName(category)
	if !ok {
		return false
	}
	for _, t := range c.Types {
		if t == typ {
			return true
		}
	}
	return false
}
