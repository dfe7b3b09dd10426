package dex

// Static is an in-memory Provider.
type Static struct {
	Title   string
	Entries []Entry
}

// NewStatic builds a Static catalog from names, assigning ids from 1.
func NewStatic(title string, names ...string) *Static {
	s := &Static{Title: title, Entries: make([]Entry, len(names))}
	for i, name := range names {
		s.Entries[i] = Entry{ID: i + 1, Name: name}
	}
	return s
}

func (s *Static) Name() string { return s.Title }
func (s *Static) Len() int     { return len(s.Entries) }

func (s *Static) Entry(index int) (Entry, error) {
	if index < 0 || index >= len(s.Entries) {
		return Entry{}, ErrIndexOutOfRange
	}
	return s.Entries[index], nil
}

func (s *Static) Names(from, to int) ([]string, error) {
	if from < 0 || to > len(s.Entries) || from > to {
		return nil, ErrIndexOutOfRange
	}
	names := make([]string, 0, to-from)
	for _, e := range s.Entries[from:to] {
		names = append(names, e.Name)
	}
	return names, nil
}
