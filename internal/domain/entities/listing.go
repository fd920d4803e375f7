package entities

// Listing is a titled list of ride descriptions ready for display. When Items
// is empty, EmptyNote is shown instead.
type Listing struct {
	Title     string   `json:"title"`
	Items     []string `json:"items"`
	EmptyNote string   `json:"empty_note,omitempty"`
}

// IsEmpty reports whether the listing has no rides.
func (l Listing) IsEmpty() bool {
	return len(l.Items) == 0
}

// Lines renders the listing as indented text lines.
func (l Listing) Lines() []string {
	lines := make([]string, 0, len(l.Items)+1)
	lines = append(lines, l.Title)
	if l.IsEmpty() {
		return append(lines, "  "+l.EmptyNote)
	}
	for _, item := range l.Items {
		lines = append(lines, "  - "+item)
	}
	return lines
}

func describeAll(title, emptyNote string, rides []Ride) Listing {
	items := make([]string, 0, len(rides))
	for _, ride := range rides {
		items = append(items, ride.Description())
	}
	return Listing{Title: title, Items: items, EmptyNote: emptyNote}
}
