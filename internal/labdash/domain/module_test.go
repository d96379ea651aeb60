package domain_test

import (
	"testing"

	"github.com/aussiebroadwan/labdash/internal/labdash/domain"
	"github.com/stretchr/testify/require"
)

func TestVisibleModulesTable(t *testing.T) {
	tests := []struct {
		role domain.Role
		want []domain.Module
	}{
		{domain.RoleOperator, []domain.Module{domain.ModuleDespacho, domain.ModulePerfil}},
		{domain.RoleTechnician, []domain.Module{domain.ModuleDespacho, domain.ModuleCalibracion, domain.ModulePerfil}},
		{domain.RoleAdministration, []domain.Module{
			domain.ModuleDespacho, domain.ModuleGestionUsuarios, domain.ModuleCalibracion, domain.ModuleClientes, domain.ModulePerfil,
		}},
		{domain.RoleCoordination, []domain.Module{
			domain.ModuleDespacho, domain.ModuleGestionUsuarios, domain.ModuleCalibracion, domain.ModulePerfil,
		}},
		{domain.RoleUnknown, []domain.Module{domain.ModulePerfil}},
		{domain.Role("unknown_role"), []domain.Module{domain.ModulePerfil}},
	}

	for _, tc := range tests {
		t.Run(string(tc.role), func(t *testing.T) {
			t.Parallel()
			got := domain.VisibleModules(tc.role)
			require.Equal(t, tc.want, got.Modules())
			require.Equal(t, len(tc.want), got.Len())
		})
	}
}

func TestVisibleModulesNeverEmptyAndAlwaysProfile(t *testing.T) {
	inputs := []string{"", " ", "operator", "OPERATOR", "tecnico", "admin", "root", "coordination ", "\x00"}
	for _, in := range inputs {
		set := domain.ResolveRole(in)
		require.Positive(t, set.Len(), "input %q", in)
		require.True(t, set.Has(domain.ModulePerfil), "input %q", in)
	}
}

func TestVisibleModulesIsDeterministic(t *testing.T) {
	for _, r := range append(domain.Roles, domain.RoleUnknown) {
		require.True(t, domain.VisibleModules(r).Equal(domain.VisibleModules(r)))
	}
}

func TestModuleSetCannotMutateTable(t *testing.T) {
	set := domain.VisibleModules(domain.RoleOperator)
	mods := set.Modules()
	mods[0] = domain.ModuleClientes

	again := domain.VisibleModules(domain.RoleOperator)
	require.False(t, again.Has(domain.ModuleClientes))
	require.True(t, again.Has(domain.ModuleDespacho))
}

func TestOnlyAdministrationSeesClientes(t *testing.T) {
	for _, r := range domain.Roles {
		require.Equal(t, r == domain.RoleAdministration, domain.VisibleModules(r).Has(domain.ModuleClientes), r)
	}
}

func TestResolveRoleAcceptsLegacyNames(t *testing.T) {
	require.True(t, domain.ResolveRole("tecnico").Equal(domain.VisibleModules(domain.RoleTechnician)))
	require.True(t, domain.ResolveRole("Administracion").Equal(domain.VisibleModules(domain.RoleAdministration)))
}

func TestApplyVisibility(t *testing.T) {
	cards := []domain.ModuleCard{
		{ElementID: "module-despacho", Visible: false},
		{ElementID: "module-clientes", Visible: true},
		{ElementID: "module-perfil"},
		{ElementID: "banner", Visible: true},
		{ElementID: "module-", Visible: true},
	}

	got := domain.ApplyVisibility(cards, domain.ResolveRole("technician"))

	require.Len(t, got, len(cards))
	require.True(t, got[0].Visible)
	require.False(t, got[1].Visible, "technician must not see clientes")
	require.True(t, got[2].Visible)
	require.True(t, got[3].Visible, "untagged card is left untouched")
	require.True(t, got[4].Visible, "empty suffix is not a module")

	// Input is not modified.
	require.True(t, cards[1].Visible)
}

func TestApplyVisibilityMissingCards(t *testing.T) {
	// A page that lacks some module cards is fine.
	got := domain.ApplyVisibility([]domain.ModuleCard{{ElementID: "module-perfil"}}, domain.ResolveRole("administration"))
	require.Len(t, got, 1)
	require.True(t, got[0].Visible)

	require.Empty(t, domain.ApplyVisibility(nil, domain.ResolveRole("operator")))
}

func TestDashboardCardsCoverEveryModule(t *testing.T) {
	seen := map[domain.Module]bool{}
	for _, c := range domain.DashboardCards() {
		m, ok := c.Module()
		require.True(t, ok, c.ElementID)
		seen[m] = true
	}
	for _, m := range domain.VisibleModules(domain.RoleAdministration).Modules() {
		require.True(t, seen[m], m)
	}
}
