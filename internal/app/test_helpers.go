package app

import (
	"bytes"
	"sync"
	"testing"

	"github.com/divvun/kbdgen/internal/gen"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an app instance for dispatcher tests, logging at
// trace level into a capturable buffer.
func SetupAppTest(t *testing.T, config Config, modules ...gen.Module) (*App, *SafeBuffer) {
	t.Helper()

	registry := gen.NewRegistry()
	for _, mod := range modules {
		mod.Register(registry)
	}

	config.LogLevel = LevelTrace
	frozen, err := NewConfig(config)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	logBuffer := &SafeBuffer{}
	return NewApp(logBuffer, frozen, registry), logBuffer
}
