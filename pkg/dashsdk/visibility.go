package dashsdk

import "github.com/aussiebroadwan/labdash/internal/labdash/domain"

// Card is a dashboard tile a consumer lays out itself.
type Card = domain.ModuleCard

// DefaultCards returns the dashboard's standard module cards.
func DefaultCards() []Card { return domain.DashboardCards() }

// ApplyVisibility marks each module card visible when the session's modules
// include it. Cards whose id lacks the "module-" prefix are left alone.
func (s SessionResponse) ApplyVisibility(cards []Card) []Card {
	mods := make([]domain.Module, len(s.Modules))
	for i, m := range s.Modules {
		mods[i] = domain.Module(m)
	}
	return domain.ApplyVisibility(cards, domain.NewModuleSet(mods...))
}
