package lesson

import "sync"

// Store holds generated lessons in process memory keyed by id. Lessons are
// never mutated after Put; nothing survives a restart.
type Store struct {
	mu      sync.RWMutex
	lessons map[string]*Lesson
}

func NewStore() *Store {
	return &Store{lessons: make(map[string]*Lesson)}
}

func (s *Store) Put(l *Lesson) {
	if l == nil || l.ID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lessons[l.ID] = l
}

func (s *Store) Get(id string) (*Lesson, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.lessons[id]
	return l, ok
}

// Section returns the lesson's section at index, nil when the lesson does not
// exist or the index is out of range.
func (s *Store) Section(lessonID string, index int) *Section {
	l, ok := s.Get(lessonID)
	if !ok || index < 0 || index >= len(l.Sections) {
		return nil
	}
	return &l.Sections[index]
}
