package refnav

// FindBySlug returns the linked entry whose slug (or id when it has no slug)
// equals slug, searching depth first.
func FindBySlug(sections []Entry, slug string) (Entry, bool) {
	for _, e := range sections {
		if e.ID != "" && entrySlug(e) == slug {
			return e, true
		}
		if found, ok := FindBySlug(e.Items, slug); ok {
			return found, true
		}
	}
	return Entry{}, false
}

// Linked returns every entry the sidebar renders as a link under allowed, in
// sidebar order.
func Linked(sections []Entry, allowed AllowList) []Entry {
	var out []Entry
	for _, fn := range sections {
		if !Visible(fn, allowed) {
			continue
		}
		if fn.IsGroup() {
			for _, item := range filterVisible(fn.Items, allowed) {
				if item.ID != "" {
					out = append(out, item)
				}
				out = append(out, linkedChildren(item, allowed)...)
			}
			continue
		}
		out = append(out, fn)
		out = append(out, linkedChildren(fn, allowed)...)
	}
	return out
}

// FindLinked returns the entry for slug among those Linked renders under
// allowed. Unlike FindBySlug it skips children of hidden links.
func FindLinked(sections []Entry, allowed AllowList, slug string) (Entry, bool) {
	for _, e := range Linked(sections, allowed) {
		if entrySlug(e) == slug {
			return e, true
		}
	}
	return Entry{}, false
}

func linkedChildren(e Entry, allowed AllowList) []Entry {
	var out []Entry
	for _, child := range filterVisible(e.Items, allowed) {
		if child.ID != "" {
			out = append(out, child)
		}
	}
	return out
}

// URLSlug returns the slug used in link targets, falling back to the id.
func (e Entry) URLSlug() string { return entrySlug(e) }

func entrySlug(e Entry) string {
	if e.Slug != "" {
		return e.Slug
	}
	return e.ID
}
