package authz

// NavItem é um item da árvore de navegação declarada pelo shell da aplicação.
// Permission vazia significa item sem requisito próprio.
type NavItem struct {
	Label       string     `json:"label"`
	Destination string     `json:"destination,omitempty"`
	Permission  Permission `json:"-"`
	Children    []NavItem  `json:"children,omitempty"`
}

// NavSection agrupa itens de navegação sob um título
type NavSection struct {
	Label string    `json:"label"`
	Items []NavItem `json:"items"`
}

// FilterNavigation projeta a árvore de navegação no subconjunto visível ao
// sujeito. Transformação pura: a árvore de entrada nunca é modificada e a
// ordem de declaração é preservada.
//
// Um item é visível sse (não tem requisito próprio ou Can é verdadeiro) E
// (não tem filhos ou ao menos um filho permanece após a filtragem). Seções
// sem itens visíveis são descartadas por inteiro.
func FilterNavigation(sections []NavSection, s *Subject) []NavSection {
	filtered := make([]NavSection, 0, len(sections))
	for _, section := range sections {
		items := filterItems(section.Items, s)
		if len(items) == 0 {
			continue
		}
		filtered = append(filtered, NavSection{
			Label: section.Label,
			Items: items,
		})
	}
	return filtered
}

func filterItems(items []NavItem, s *Subject) []NavItem {
	visible := make([]NavItem, 0, len(items))
	for _, item := range items {
		if item.Permission != "" && !Can(s, item.Permission) {
			continue
		}

		if len(item.Children) == 0 {
			visible = append(visible, item)
			continue
		}

		children := filterItems(item.Children, s)
		if len(children) == 0 {
			continue
		}

		item.Children = children
		visible = append(visible, item)
	}
	return visible
}
