package shutdown

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

const gracePeriod = 15 * time.Second

// Manager runs registered cleanup tasks, in registration order, once the
// process is asked to stop.
type Manager struct {
	cancel context.CancelFunc
	tasks  []func(context.Context) error
	mu     sync.Mutex
}

func NewManager(ctx context.Context) (context.Context, *Manager) {
	ctx, cancel := context.WithCancel(ctx)
	return ctx, &Manager{cancel: cancel}
}

func (m *Manager) Register(task func(context.Context) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, task)
}

// Shutdown cancels the root context and runs every task. Task errors are
// logged and do not stop the remaining tasks.
func (m *Manager) Shutdown(ctx context.Context) {
	m.cancel()

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, task := range m.tasks {
		if err := task(ctx); err != nil {
			log.Printf("[SHUTDOWN] Error during shutdown: %v", err)
		}
	}
	log.Println("[SHUTDOWN] Graceful shutdown complete")
}

// Wait blocks until SIGINT or SIGTERM, then shuts down.
func (m *Manager) Wait() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("[SHUTDOWN] Received signal: %v", sig)

	ctx, cancel := context.WithTimeout(context.Background(), gracePeriod)
	defer cancel()
	m.Shutdown(ctx)
}
