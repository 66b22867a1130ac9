package classifier

import "sync"

// Locked guards a Model for use from several goroutines. Train takes the
// write lock, everything else shares the read lock.
type Locked struct {
	mu    sync.RWMutex
	model *Model
}

// NewLocked wraps model. The caller must not use model directly afterwards.
func NewLocked(model *Model) *Locked {
	return &Locked{model: model}
}

func (l *Locked) Train(text string, label string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.model.Train(text, label)
}

func (l *Locked) Guess(text string) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.model.Guess(text)
}

func (l *Locked) TrainingCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.model.TrainingCount()
}

func (l *Locked) Labels() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.model.Labels()
}

func (l *Locked) Vocabulary(label string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.model.Vocabulary(label)
}

func (l *Locked) Terms(label string) TermTable {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.model.Terms(label)
}
