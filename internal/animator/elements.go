package animator

// Target is anything a counter can be rendered into.
type Target interface {
	SetText(text string)
}

// Elements looks targets up by identifier.
type Elements interface {
	Element(id string) (Target, bool)
}

// Text is an in-memory Target.
type Text struct {
	text string
}

func (t *Text) SetText(text string) {
	t.text = text
}

func (t *Text) String() string {
	return t.text
}

// Store is an Elements implementation backed by a map. Like the frame
// queue, it is owned by the goroutine that runs frames and paints; it is
// not safe for concurrent use.
type Store struct {
	elems map[string]*Text
}

func NewStore(ids ...string) *Store {
	s := &Store{elems: make(map[string]*Text, len(ids))}
	for _, id := range ids {
		s.elems[id] = &Text{}
	}
	return s
}

// Add registers an element, returning the existing one if present.
func (s *Store) Add(id string, initial string) *Text {
	if t, ok := s.elems[id]; ok {
		return t
	}
	t := &Text{text: initial}
	s.elems[id] = t
	return t
}

func (s *Store) Element(id string) (Target, bool) {
	t, ok := s.elems[id]
	if !ok {
		return nil, false
	}
	return t, true
}

// Text returns the current text of id, or "" when it does not exist.
func (s *Store) Text(id string) string {
	t, ok := s.elems[id]
	if !ok {
		return ""
	}
	return t.String()
}
