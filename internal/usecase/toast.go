package usecase

import (
	"sync"

	"github.com/Pings-Lab/pings-lab.github.io/internal/domain"
)

// Toaster queues notifications until the next page render drains them.
type Toaster struct {
	mu    sync.Mutex
	queue []domain.Toast
}

func NewToaster() *Toaster {
	return &Toaster{}
}

func (t *Toaster) Push(toast domain.Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.queue = append(t.queue, toast)
}

// Drain returns the queued toasts and empties the queue.
func (t *Toaster) Drain() []domain.Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.queue
	t.queue = nil
	return out
}

func (t *Toaster) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.queue)
}
