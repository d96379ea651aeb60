package domain

import "strings"

// Module identifies a dashboard section. The value matches the suffix of the
// card's element id, e.g. "module-clientes".
type Module string

const (
	ModuleDespacho        Module = "despacho"
	ModuleCalibracion     Module = "calibracion"
	ModuleGestionUsuarios Module = "gestion_usuarios"
	ModuleClientes        Module = "clientes"
	ModulePerfil          Module = "perfil"
)

// ModuleElementPrefix tags UI elements that are dashboard modules.
const ModuleElementPrefix = "module-"

// ElementID returns the UI element id for m.
func (m Module) ElementID() string { return ModuleElementPrefix + string(m) }

// ModuleSet is an immutable set of modules. The zero value is empty.
type ModuleSet struct {
	ordered []Module
}

// NewModuleSet builds a set from mods, dropping duplicates.
func NewModuleSet(mods ...Module) ModuleSet {
	ordered := make([]Module, 0, len(mods))
	for _, m := range mods {
		if !contains(ordered, m) {
			ordered = append(ordered, m)
		}
	}
	return ModuleSet{ordered: ordered}
}

func contains(mods []Module, m Module) bool {
	for _, x := range mods {
		if x == m {
			return true
		}
	}
	return false
}

// Has reports membership.
func (s ModuleSet) Has(m Module) bool { return contains(s.ordered, m) }

// Len is the number of modules in the set.
func (s ModuleSet) Len() int { return len(s.ordered) }

// Modules returns a copy of the members in table order.
func (s ModuleSet) Modules() []Module {
	out := make([]Module, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Strings returns the members as plain strings, for JSON payloads.
func (s ModuleSet) Strings() []string {
	out := make([]string, len(s.ordered))
	for i, m := range s.ordered {
		out[i] = string(m)
	}
	return out
}

// Equal reports whether both sets hold the same members.
func (s ModuleSet) Equal(o ModuleSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, m := range s.ordered {
		if !o.Has(m) {
			return false
		}
	}
	return true
}

var (
	visibility = map[Role]ModuleSet{
		RoleOperator:       NewModuleSet(ModuleDespacho, ModulePerfil),
		RoleTechnician:     NewModuleSet(ModuleDespacho, ModuleCalibracion, ModulePerfil),
		RoleAdministration: NewModuleSet(ModuleDespacho, ModuleGestionUsuarios, ModuleCalibracion, ModuleClientes, ModulePerfil),
		RoleCoordination:   NewModuleSet(ModuleDespacho, ModuleGestionUsuarios, ModuleCalibracion, ModulePerfil),
	}

	defaultVisibility = NewModuleSet(ModulePerfil)
)

// VisibleModules returns the modules a role may see. Unknown roles get the
// profile module only, so the result is never empty.
func VisibleModules(role Role) ModuleSet {
	if set, ok := visibility[role]; ok {
		return set
	}
	return defaultVisibility
}

// ResolveRole parses a raw role string and returns its visible modules.
func ResolveRole(raw string) ModuleSet {
	return VisibleModules(ParseRole(raw))
}

// ModuleCard is one dashboard tile.
type ModuleCard struct {
	ElementID string
	Title     string
	Href      string
	Icon      string
	Visible   bool
}

// Module returns the module a card stands for, if its id carries the module
// prefix.
func (c ModuleCard) Module() (Module, bool) {
	suffix, ok := strings.CutPrefix(c.ElementID, ModuleElementPrefix)
	if !ok || suffix == "" {
		return "", false
	}
	return Module(suffix), true
}

// ApplyVisibility returns a copy of cards with Visible set from the set for
// every module-tagged card. Untagged cards keep their flag.
func ApplyVisibility(cards []ModuleCard, visible ModuleSet) []ModuleCard {
	out := make([]ModuleCard, len(cards))
	for i, c := range cards {
		if m, ok := c.Module(); ok {
			c.Visible = visible.Has(m)
		}
		out[i] = c
	}
	return out
}

// DashboardCards is the dashboard's module grid, one card per module.
func DashboardCards() []ModuleCard {
	return []ModuleCard{
		{ElementID: ModuleDespacho.ElementID(), Title: "Despacho", Href: "/despacho", Icon: "truck"},
		{ElementID: ModuleCalibracion.ElementID(), Title: "Calibración", Href: "/calibracion", Icon: "gauge"},
		{ElementID: ModuleGestionUsuarios.ElementID(), Title: "Gestión de usuarios", Href: "/gestion-usuarios", Icon: "users"},
		{ElementID: ModuleClientes.ElementID(), Title: "Clientes", Href: "/clientes", Icon: "building"},
		{ElementID: ModulePerfil.ElementID(), Title: "Mi perfil", Href: "/perfil", Icon: "user"},
	}
}
