package model

// FacetOption is one selectable option in a filter facet. An option is either
// a leaf or a group carrying child leaves. Filtering always operates on leaf
// ids; selecting a group id is equivalent to selecting all of its children.
type FacetOption struct {
	ID       string        `json:"id"`
	Label    string        `json:"label"`
	Children []FacetOption `json:"children,omitempty"`
}

// IsGroup reports whether the option carries children.
func (o FacetOption) IsGroup() bool { return len(o.Children) > 0 }

// LeafIDs returns the ids filtering operates on: the child ids for a group,
// the option's own id for a leaf.
func (o FacetOption) LeafIDs() []string {
	if !o.IsGroup() {
		return []string{o.ID}
	}
	ids := make([]string, 0, len(o.Children))
	for _, c := range o.Children {
		ids = append(ids, c.LeafIDs()...)
	}
	return ids
}

// FlattenFacet returns every leaf id in a facet catalog.
func FlattenFacet(catalog []FacetOption) []string {
	var ids []string
	for _, o := range catalog {
		ids = append(ids, o.LeafIDs()...)
	}
	return ids
}

// ExpandSelection resolves a selection against a facet catalog into a leaf-id
// set. Group ids expand to their children, leaf ids pass through, and ids not
// in the catalog are kept as-is so they simply never match a terminal.
func ExpandSelection(catalog []FacetOption, selected []string) map[string]bool {
	if len(selected) == 0 {
		return nil
	}
	groups := make(map[string][]string)
	for _, o := range catalog {
		if o.IsGroup() {
			groups[o.ID] = o.LeafIDs()
		}
	}
	set := make(map[string]bool, len(selected))
	for _, id := range selected {
		if children, ok := groups[id]; ok {
			for _, c := range children {
				set[c] = true
			}
			continue
		}
		set[id] = true
	}
	return set
}
