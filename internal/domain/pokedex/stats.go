package pokedex

// Stat is a single named base score.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StatList preserves the order stats appear in the source payload. The
// upstream data is assumed unique per stat name, but if a name repeats the
// later value wins and the entry moves to the last-write position.
type StatList []Stat

// Get returns the value recorded for name.
func (s StatList) Get(name string) (int, bool) {
	for _, stat := range s {
		if stat.Name == name {
			return stat.Value, true
		}
	}
	return 0, false
}

// Set appends a stat, replacing any earlier entry with the same name.
func (s *StatList) Set(name string, value int) {
	list := *s
	for i, stat := range list {
		if stat.Name == name {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	*s = append(list, Stat{Name: name, Value: value})
}

// Names returns the stat names in list order.
func (s StatList) Names() []string {
	names := make([]string, 0, len(s))
	for _, stat := range s {
		names = append(names, stat.Name)
	}
	return names
}
