package device

import (
	"sync"

	"handyhub/services/guard"
)

// MaxHistory bounds how many locations Back can return through.
const MaxHistory = 50

// Navigator is the server-side view of where a device currently is.
type Navigator struct {
	mu      sync.Mutex
	history []string
}

func NewNavigator() *Navigator {
	return &Navigator{history: []string{guard.PathHome}}
}

func (n *Navigator) Navigate(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.history[len(n.history)-1] == path {
		return
	}
	n.history = append(n.history, path)
	if over := len(n.history) - MaxHistory; over > 0 {
		n.history = append(n.history[:0], n.history[over:]...)
	}
}

// Depth is the number of entries in the history.
func (n *Navigator) Depth() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.history)
}

// Replace swaps the current location without growing history, used for redirects.
func (n *Navigator) Replace(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.history[len(n.history)-1] = path
}

// Back pops one entry; the root entry is never removed.
func (n *Navigator) Back() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.history) > 1 {
		n.history = n.history[:len(n.history)-1]
	}
}

func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history[len(n.history)-1]
}
