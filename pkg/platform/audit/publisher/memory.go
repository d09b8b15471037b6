package publisher

import (
	"context"
	"sync"
	"time"

	"markethub/pkg/platform/audit"
)

// MemoryPublisher records sensitive-access events in memory. Used in tests
// and as the sink of last resort when no broker is configured.
type MemoryPublisher struct {
	mu      sync.Mutex
	records []audit.SensitiveAccessRecord

	// FailWith, when set, is returned from Log to exercise fail-open paths.
	FailWith error
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Log(_ context.Context, record audit.SensitiveAccessRecord) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.FailWith != nil {
		return p.FailWith
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	p.records = append(p.records, record)
	return nil
}

// Records returns a copy of everything logged so far.
func (p *MemoryPublisher) Records() []audit.SensitiveAccessRecord {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]audit.SensitiveAccessRecord{}, p.records...)
}
