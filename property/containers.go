package property

// DefaultPreference is the rank assumed when a property carries no PREF
// parameter. Lower values are more preferred, so unranked properties sort
// last.
const DefaultPreference = 100

func prefOrDefault(p *uint8) uint8 {
	if p == nil {
		return DefaultPreference
	}
	return *p
}

// Alternative is a property that can participate in an alternative group.
// Properties carrying the same ALTID are alternative representations of one
// piece of information, such as a name in two languages.
type Alternative interface {
	Property
	AlternativeID() string
}

// Preferable is a property with a preference rank. Ranks run from 1, the
// most preferred, to 100; properties without a PREF parameter rank at
// DefaultPreference.
type Preferable interface {
	Preference() uint8
}

// AlternativeProperty constrains container members to properties carrying
// both an alternative group and a preference rank.
type AlternativeProperty interface {
	Alternative
	Preferable
}

// AltIDContainer holds the members of one alternative group. The first
// member added fixes the group's ALTID.
//
// The zero value is an empty container ready for use.
type AltIDContainer[T AlternativeProperty] struct {
	values []T
}

// Add appends v to the group. Adding a member whose ALTID differs from the
// group's fails with an AltIDMismatchError.
func (c *AltIDContainer[T]) Add(v T) error {
	if len(c.values) > 0 {
		if expected := c.values[0].AlternativeID(); expected != v.AlternativeID() {
			return &AltIDMismatchError{Expected: expected, Actual: v.AlternativeID()}
		}
	}
	c.values = append(c.values, v)
	return nil
}

// Values returns the members in the order they were added. The slice is
// shared with the container.
func (c *AltIDContainer[T]) Values() []T {
	return c.values
}

// Len returns the number of members.
func (c *AltIDContainer[T]) Len() int {
	return len(c.values)
}

// GetPreferred returns the member with the lowest preference rank. The
// choice among members of equal rank is unspecified. The second return is
// false when the container is empty.
func (c *AltIDContainer[T]) GetPreferred() (T, bool) {
	if len(c.values) == 0 {
		var zero T
		return zero, false
	}
	best := c.values[0]
	for _, v := range c.values[1:] {
		if v.Preference() < best.Preference() {
			best = v
		}
	}
	return best, true
}

// MultiAltIDContainer holds every occurrence of one property, partitioned
// into alternative groups by ALTID. Occurrences without an ALTID share the
// empty group. Groups keep the order they were first seen and members the
// order they were added, so a decoded card serializes in wire order.
//
// The zero value is an empty container ready for use.
type MultiAltIDContainer[T AlternativeProperty] struct {
	order  []string
	groups map[string]*AltIDContainer[T]
}

// Add files v under its alternative group, creating the group as needed.
func (m *MultiAltIDContainer[T]) Add(v T) {
	altID := v.AlternativeID()
	group, ok := m.groups[altID]
	if !ok {
		if m.groups == nil {
			m.groups = make(map[string]*AltIDContainer[T])
		}
		group = &AltIDContainer[T]{}
		m.groups[altID] = group
		m.order = append(m.order, altID)
	}
	group.values = append(group.values, v)
}

// Get returns the alternative group filed under altID.
func (m *MultiAltIDContainer[T]) Get(altID string) (*AltIDContainer[T], bool) {
	group, ok := m.groups[altID]
	return group, ok
}

// All returns every member across all groups.
func (m *MultiAltIDContainer[T]) All() []T {
	var out []T
	for _, altID := range m.order {
		out = append(out, m.groups[altID].values...)
	}
	return out
}

// Len returns the number of members across all groups.
func (m *MultiAltIDContainer[T]) Len() int {
	n := 0
	for _, g := range m.groups {
		n += len(g.values)
	}
	return n
}

// GetPreferred returns the most preferred member, comparing each group's
// preferred representative by rank. The choice among representatives of
// equal rank is unspecified. The second return is false when the container
// is empty.
func (m *MultiAltIDContainer[T]) GetPreferred() (T, bool) {
	var best T
	found := false
	for _, altID := range m.order {
		v, ok := m.groups[altID].GetPreferred()
		if !ok {
			continue
		}
		if !found || v.Preference() < best.Preference() {
			best = v
			found = true
		}
	}
	return best, found
}
