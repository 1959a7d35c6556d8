package refnav

// AllowList restricts which entry ids are shown for a library version.
// The zero value is unrestricted.
type AllowList struct {
	restricted bool
	ids        map[string]struct{}
}

// Unrestricted allows every id.
func Unrestricted() AllowList { return AllowList{} }

// RestrictedTo allows exactly the given ids. An empty call allows nothing.
func RestrictedTo(ids ...string) AllowList {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return AllowList{restricted: true, ids: set}
}

// Contains reports whether id passes the list.
func (a AllowList) Contains(id string) bool {
	if !a.restricted {
		return true
	}
	_, ok := a.ids[id]
	return ok
}

// Visible reports whether e should be rendered. Headings and markdown pages
// always are; other entries must be in the allow-list.
func Visible(e Entry, allowed AllowList) bool {
	if e.ID == "" || e.Type == TypeMarkdown {
		return true
	}
	return allowed.Contains(e.ID)
}

// filterVisible returns the visible subset of entries, preserving order.
func filterVisible(entries []Entry, allowed AllowList) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if Visible(e, allowed) {
			out = append(out, e)
		}
	}
	return out
}
