package refnav

// GroupTitle names a top-level heading the sidebar treats specially.
type GroupTitle string

const (
	GroupDatabase GroupTitle = "Database"
	GroupAuth     GroupTitle = "Auth"
)

// SubgroupID names a link group whose children keep it open.
type SubgroupID string

const (
	SubgroupFilters   SubgroupID = "using-filters"
	SubgroupModifiers SubgroupID = "using-modifiers"
	SubgroupAdminAPI  SubgroupID = "admin-api"
)

// FindGroup returns the first top-level entry titled title.
func FindGroup(sections []Entry, title GroupTitle) (Entry, bool) {
	for _, s := range sections {
		if s.Title == string(title) {
			return s, true
		}
	}
	return Entry{}, false
}

// FindSubgroup returns the entry with the given id among items.
func FindSubgroup(items []Entry, id SubgroupID) (Entry, bool) {
	for _, it := range items {
		if it.ID == string(id) {
			return it, true
		}
	}
	return Entry{}, false
}

type idSet map[string]struct{}

func (s idSet) has(id string) bool {
	_, ok := s[id]
	return ok
}

// ActiveGroups holds, for each special subgroup, the ids of its children that
// pass the allow-list. An active id found in exactly one set opens that group.
type ActiveGroups struct {
	Filters   []string
	Modifiers []string
	AdminAPI  []string

	filters, modifiers, adminAPI idSet
}

// ComputeActiveGroups scans the Database and Auth headings of sections.
//
// The admin-api set is only filled when the Database heading has items.
func ComputeActiveGroups(sections []Entry, allowed AllowList) ActiveGroups {
	database, _ := FindGroup(sections, GroupDatabase)
	auth, _ := FindGroup(sections, GroupAuth)

	var g ActiveGroups
	g.Filters = subgroupIDs(database.Items, SubgroupFilters, allowed)
	g.Modifiers = subgroupIDs(database.Items, SubgroupModifiers, allowed)
	if len(database.Items) > 0 {
		g.AdminAPI = subgroupIDs(auth.Items, SubgroupAdminAPI, allowed)
	}
	g.filters = toSet(g.Filters)
	g.modifiers = toSet(g.Modifiers)
	g.adminAPI = toSet(g.AdminAPI)
	return g
}

func subgroupIDs(items []Entry, id SubgroupID, allowed AllowList) []string {
	sub, ok := FindSubgroup(items, id)
	if !ok {
		return nil
	}
	var ids []string
	for _, child := range sub.Items {
		if allowed.Contains(child.ID) {
			ids = append(ids, child.ID)
		}
	}
	return ids
}

func toSet(ids []string) idSet {
	s := make(idSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// IsOpen reports whether the group for entryID is expanded when activeID is
// the entry being viewed.
func (g ActiveGroups) IsOpen(entryID, activeID string) bool {
	if entryID == "" || activeID == "" {
		return false
	}
	if entryID == activeID {
		return true
	}

	inFilters := g.filters.has(activeID)
	inModifiers := g.modifiers.has(activeID)
	inAdmin := g.adminAPI.has(activeID)

	switch SubgroupID(entryID) {
	case SubgroupFilters:
		return inFilters && !inModifiers && !inAdmin
	case SubgroupModifiers:
		return inModifiers && !inFilters && !inAdmin
	case SubgroupAdminAPI:
		return inAdmin && !inFilters && !inModifiers
	}
	return false
}
