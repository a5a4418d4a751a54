package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
)

// stubCodeUseCase lets each test script the lifecycle calls the watcher
// makes without a full mock controller.
type stubCodeUseCase struct {
	mu          sync.Mutex
	active      entities.OperatorCode
	generated   entities.OperatorCode
	genCalls    int
	activeCalls int
}

func (s *stubCodeUseCase) GetActiveCode(context.Context, string) (entities.OperatorCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeCalls++
	return s.active, nil
}

func (s *stubCodeUseCase) GetOrCreateActiveCode(ctx context.Context, operatorID string) (entities.OperatorCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active.ID != 0 {
		return s.active, nil
	}
	return s.generated, nil
}

func (s *stubCodeUseCase) GenerateCode(context.Context, string, int, int) (entities.OperatorCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.genCalls++
	return s.generated, nil
}

func (s *stubCodeUseCase) InvalidateCode(context.Context, string, int64) error { return nil }
func (s *stubCodeUseCase) ValidateCode(context.Context, string) (bool, error)  { return false, nil }
func (s *stubCodeUseCase) ResolveValidCode(context.Context, string) (entities.OperatorCode, error) {
	return entities.OperatorCode{}, nil
}
func (s *stubCodeUseCase) ListCodes(context.Context, string) ([]entities.OperatorCode, error) {
	return nil, nil
}

func (s *stubCodeUseCase) generateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.genCalls
}

type fakeCodeBus struct {
	ch chan interfaces.CodeEvent
}

func newFakeCodeBus() *fakeCodeBus {
	return &fakeCodeBus{ch: make(chan interfaces.CodeEvent, 8)}
}

func (b *fakeCodeBus) Publish(_ context.Context, ev interfaces.CodeEvent) error {
	b.ch <- ev
	return nil
}

func (b *fakeCodeBus) Subscribe(context.Context, string) (interfaces.ICodeSubscription, error) {
	return &fakeCodeSubscription{ch: b.ch}, nil
}

type fakeCodeSubscription struct {
	ch   chan interfaces.CodeEvent
	once sync.Once
}

func (s *fakeCodeSubscription) Events() <-chan interfaces.CodeEvent { return s.ch }

func (s *fakeCodeSubscription) Close() error {
	s.once.Do(func() { close(s.ch) })
	return nil
}

func unusedCode(id int64) entities.OperatorCode {
	now := time.Now().UTC()
	return entities.OperatorCode{
		ID:         id,
		OperatorID: "op-1",
		Code:       "1234",
		CreatedAt:  now,
		ExpiresAt:  now.Add(30 * time.Minute),
	}
}

func consumptionOf(code entities.OperatorCode) interfaces.CodeEvent {
	usedAt := time.Now().UTC()
	consumed := code
	consumed.UsedAt = &usedAt
	return interfaces.CodeEvent{OperatorID: code.OperatorID, Old: code, New: consumed}
}

func awaitSnapshot(t *testing.T, updates <-chan CodeSnapshot) CodeSnapshot {
	t.Helper()
	select {
	case s, ok := <-updates:
		if !ok {
			t.Fatalf("updates channel closed while waiting for a snapshot")
		}
		return s
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a snapshot")
		return CodeSnapshot{}
	}
}

func startWatcher(t *testing.T, codes *stubCodeUseCase, bus interfaces.ICodeEventBus) *CodeWatcher {
	t.Helper()
	w := NewCodeWatcher("op-1", codes, bus)
	w.settleDelay = time.Millisecond
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return w
}

func TestCodeWatcher_StartLoadsCurrentCode(t *testing.T) {
	codes := &stubCodeUseCase{active: unusedCode(1)}
	w := startWatcher(t, codes, newFakeCodeBus())
	defer w.Close()

	snapshot := w.Snapshot()
	if snapshot.Code.ID != 1 {
		t.Fatalf("expected code 1, got %d", snapshot.Code.ID)
	}
	if snapshot.Status != entities.CodeStatusNew && snapshot.Status != entities.CodeStatusActive {
		t.Fatalf("fresh code should be new or active, got %s", snapshot.Status)
	}
}

func TestCodeWatcher_MirrorsFreshInsert(t *testing.T) {
	codes := &stubCodeUseCase{active: unusedCode(1)}
	bus := newFakeCodeBus()
	w := startWatcher(t, codes, bus)
	defer w.Close()

	_ = bus.Publish(context.Background(), interfaces.CodeEvent{OperatorID: "op-1", New: unusedCode(2)})

	snapshot := awaitSnapshot(t, w.Updates())
	if snapshot.Code.ID != 2 {
		t.Fatalf("expected mirrored code 2, got %d", snapshot.Code.ID)
	}
}

func TestCodeWatcher_IgnoresStaleEvents(t *testing.T) {
	codes := &stubCodeUseCase{active: unusedCode(5)}
	bus := newFakeCodeBus()
	w := startWatcher(t, codes, bus)
	defer w.Close()

	_ = bus.Publish(context.Background(), interfaces.CodeEvent{OperatorID: "op-1", New: unusedCode(3)})
	_ = bus.Publish(context.Background(), interfaces.CodeEvent{OperatorID: "op-1", New: unusedCode(6)})

	snapshot := awaitSnapshot(t, w.Updates())
	if snapshot.Code.ID != 6 {
		t.Fatalf("stale event leaked through: got code %d", snapshot.Code.ID)
	}
	if w.Snapshot().Code.ID != 6 {
		t.Fatalf("state moved backwards: %d", w.Snapshot().Code.ID)
	}
}

func TestCodeWatcher_RegeneratesAfterConsumption(t *testing.T) {
	current := unusedCode(1)
	codes := &stubCodeUseCase{active: current}
	bus := newFakeCodeBus()
	w := startWatcher(t, codes, bus)
	defer w.Close()

	// After consumption nothing is active; the watcher must generate.
	codes.mu.Lock()
	codes.active = entities.OperatorCode{}
	codes.generated = unusedCode(2)
	codes.mu.Unlock()

	_ = bus.Publish(context.Background(), consumptionOf(current))

	snapshot := awaitSnapshot(t, w.Updates())
	if snapshot.Code.ID != 2 {
		t.Fatalf("expected regenerated code 2, got %d", snapshot.Code.ID)
	}
	if codes.generateCalls() != 1 {
		t.Fatalf("expected exactly one generation, got %d", codes.generateCalls())
	}
}

func TestCodeWatcher_AdoptsReplacementInsteadOfGenerating(t *testing.T) {
	current := unusedCode(1)
	codes := &stubCodeUseCase{active: current}
	bus := newFakeCodeBus()
	w := startWatcher(t, codes, bus)
	defer w.Close()

	// Another session already generated code 2 before the settle delay
	// elapsed: the watcher must adopt it, not create code 3.
	codes.mu.Lock()
	codes.active = unusedCode(2)
	codes.mu.Unlock()

	_ = bus.Publish(context.Background(), consumptionOf(current))

	snapshot := awaitSnapshot(t, w.Updates())
	if snapshot.Code.ID != 2 {
		t.Fatalf("expected adopted code 2, got %d", snapshot.Code.ID)
	}
	if codes.generateCalls() != 0 {
		t.Fatalf("adoption must not generate, got %d calls", codes.generateCalls())
	}
}

func TestCodeWatcher_CloseEndsUpdates(t *testing.T) {
	codes := &stubCodeUseCase{active: unusedCode(1)}
	w := startWatcher(t, codes, newFakeCodeBus())

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	select {
	case _, ok := <-w.Updates():
		if ok {
			// Buffered snapshot from startup; drain until close.
			for range w.Updates() {
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("updates channel must close after Close")
	}
}

func TestCodeWatcher_CloseIsIdempotent(t *testing.T) {
	codes := &stubCodeUseCase{active: unusedCode(1)}
	w := startWatcher(t, codes, newFakeCodeBus())

	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close must be a no-op, got %v", err)
	}
}
