package records

import (
	"context"
	"sync"
	"time"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

// MemoryStore is the fallback record store: an in-memory collaborator
// constructed per session or per test, never shared process-wide. It
// speaks the same batch-result contract as the real store and can
// simulate its latency and failures.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string][]ports.RawRecord
	latency time.Duration

	// failHook lets tests inject transport faults per operation.
	failHook func(op, kind string) error
}

var _ ports.RecordStore = (*MemoryStore)(nil)

type MemoryOption func(*MemoryStore)

func WithSeed(kind string, recs []ports.RawRecord) MemoryOption {
	return func(s *MemoryStore) {
		seeded := make([]ports.RawRecord, 0, len(recs))
		for _, rec := range recs {
			seeded = append(seeded, cloneRecord(rec))
		}
		s.records[kind] = seeded
	}
}

func WithLatency(d time.Duration) MemoryOption {
	return func(s *MemoryStore) { s.latency = d }
}

func WithFailHook(hook func(op, kind string) error) MemoryOption {
	return func(s *MemoryStore) { s.failHook = hook }
}

func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{records: make(map[string][]ports.RawRecord)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return s.begin(ctx, "ping", "")
}

func (s *MemoryStore) FetchAll(ctx context.Context, kind string) ([]ports.RawRecord, error) {
	if err := s.begin(ctx, "fetchAll", kind); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.RawRecord, 0, len(s.records[kind]))
	for _, rec := range s.records[kind] {
		out = append(out, cloneRecord(rec))
	}
	return out, nil
}

func (s *MemoryStore) FetchOne(ctx context.Context, kind string, id int) (ports.RawRecord, error) {
	if err := s.begin(ctx, "fetchOne", kind); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(kind, id); i >= 0 {
		return cloneRecord(s.records[kind][i]), nil
	}
	return nil, domain.ErrRecordNotFound
}

func (s *MemoryStore) CreateOne(ctx context.Context, kind string, fields ports.RawRecord) (ports.BatchResult, error) {
	if err := s.begin(ctx, "createOne", kind); err != nil {
		return ports.BatchResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := cloneRecord(fields)
	rec[fieldID] = s.nextID(kind)
	s.records[kind] = append(s.records[kind], rec)

	return ports.BatchResult{
		Success: true,
		Results: []ports.RecordResult{{Success: true, Data: cloneRecord(rec)}},
	}, nil
}

func (s *MemoryStore) UpdateOne(ctx context.Context, kind string, fields ports.RawRecord) (ports.BatchResult, error) {
	if err := s.begin(ctx, "updateOne", kind); err != nil {
		return ports.BatchResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := recordInt(fields[fieldID])
	if !ok {
		return ports.BatchResult{Results: []ports.RecordResult{{
			Message: "record id is required",
			Errors:  []ports.FieldError{{FieldLabel: fieldID, Message: "missing"}},
		}}}, nil
	}

	i := s.indexOf(kind, id)
	if i < 0 {
		return ports.BatchResult{Results: []ports.RecordResult{{
			Message: "record not found",
		}}}, nil
	}

	rec := cloneRecord(fields)
	rec[fieldID] = id
	s.records[kind][i] = rec

	return ports.BatchResult{
		Success: true,
		Results: []ports.RecordResult{{Success: true, Data: cloneRecord(rec)}},
	}, nil
}

// DeleteOne deletes each id independently: a batch may succeed for some
// ids and fail for others, and the result reports both.
func (s *MemoryStore) DeleteOne(ctx context.Context, kind string, ids []int) (ports.BatchResult, error) {
	if err := s.begin(ctx, "deleteOne", kind); err != nil {
		return ports.BatchResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := ports.BatchResult{Success: true}
	for _, id := range ids {
		i := s.indexOf(kind, id)
		if i < 0 {
			res.Success = false
			res.Results = append(res.Results, ports.RecordResult{Message: "record not found"})
			continue
		}
		s.records[kind] = append(s.records[kind][:i], s.records[kind][i+1:]...)
		res.Results = append(res.Results, ports.RecordResult{Success: true})
	}
	return res, nil
}

func (s *MemoryStore) begin(ctx context.Context, op, kind string) error {
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.failHook != nil {
		return s.failHook(op, kind)
	}
	return ctx.Err()
}

// indexOf must be called with the mutex held.
func (s *MemoryStore) indexOf(kind string, id int) int {
	for i, rec := range s.records[kind] {
		if got, ok := recordInt(rec[fieldID]); ok && got == id {
			return i
		}
	}
	return -1
}

// nextID assigns max existing id plus one, like the original mock store.
func (s *MemoryStore) nextID(kind string) int {
	max := 0
	for _, rec := range s.records[kind] {
		if id, ok := recordInt(rec[fieldID]); ok && id > max {
			max = id
		}
	}
	return max + 1
}

func cloneRecord(rec ports.RawRecord) ports.RawRecord {
	out := make(ports.RawRecord, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
