package snapshot

import "github.com/google/uuid"

func (l *Loader) Tracked(clientID uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.clients[clientID]
	return ok
}
