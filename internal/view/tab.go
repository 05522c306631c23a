package view

// Tab selects which reference panel the page shows.
type Tab string

const (
	TabInicio        Tab = "inicio"
	TabCalculadora   Tab = "calculadora"
	TabBeneficios    Tab = "beneficios"
	TabProcedimiento Tab = "procedimiento"
	TabRecursos      Tab = "recursos"
)

// TabLink is one entry of the navigation bar.
type TabLink struct {
	Tab    Tab
	Label  string
	Icon   string
	Href   string
	Active bool
}

var tabOrder = []struct {
	tab   Tab
	label string
	icon  string
}{
	{TabInicio, "Inicio", "🏠"},
	{TabCalculadora, "Calculadora", "⚖️"},
	{TabBeneficios, "Beneficios", "🔓"},
	{TabProcedimiento, "Procedimiento", "📋"},
	{TabRecursos, "Recursos", "🔗"},
}

// ParseTab maps a query value to a Tab. Unknown values select TabInicio.
func ParseTab(s string) Tab {
	for _, t := range tabOrder {
		if string(t.tab) == s {
			return t.tab
		}
	}
	return TabInicio
}

// Href is the canonical URL of the tab.
func (t Tab) Href() string {
	if t == TabCalculadora {
		return "/calculadora"
	}
	return "/?tab=" + string(t)
}

// Links returns the navigation bar with active marking the current tab.
func Links(active Tab) []TabLink {
	links := make([]TabLink, 0, len(tabOrder))
	for _, t := range tabOrder {
		links = append(links, TabLink{
			Tab:    t.tab,
			Label:  t.label,
			Icon:   t.icon,
			Href:   t.tab.Href(),
			Active: t.tab == active,
		})
	}
	return links
}
