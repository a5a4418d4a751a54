package usecase

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
)

// How long a watcher waits after a consumption notification before
// regenerating, so the store has settled and a replacement generated by
// another tab can be observed and adopted.
const defaultRegenerationSettleDelay = 500 * time.Millisecond

// CodeSnapshot is the state pushed to one dashboard session: the current
// code plus the live-derived display fields.
type CodeSnapshot struct {
	Code             entities.OperatorCode `json:"code"`
	Status           entities.CodeStatus   `json:"status"`
	MinutesRemaining int                   `json:"minutes_remaining"`
	IsExpiringSoon   bool                  `json:"is_expiring_soon"`
	Error            string                `json:"error,omitempty"`
}

// CodeWatcher bridges operator_codes change events into the state
// driving one operator dashboard session, and auto-heals the
// one-active-code invariant: when the current code is consumed it
// generates a replacement, guarded so concurrent notifications (other
// tabs, duplicate deliveries) cannot race to create two.
//
// Lifecycle: NewCodeWatcher -> Start -> consume Updates() -> Close.
// After Close returns, no further updates are delivered.

type CodeWatcher struct {
	operatorID  string
	codes       IOperatorCodeUseCase
	bus         interfaces.ICodeEventBus
	settleDelay time.Duration

	mu      sync.Mutex
	current entities.OperatorCode

	regenerating atomic.Bool
	updates      chan CodeSnapshot
	sub          interfaces.ICodeSubscription
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	closeOnce    sync.Once
	closeErr     error
}

func NewCodeWatcher(operatorID string, codes IOperatorCodeUseCase, bus interfaces.ICodeEventBus) *CodeWatcher {
	return &CodeWatcher{
		operatorID:  operatorID,
		codes:       codes,
		bus:         bus,
		settleDelay: defaultRegenerationSettleDelay,
		updates:     make(chan CodeSnapshot, 16),
	}
}

// Start loads (or creates) the operator's active code and subscribes to
// its change events. It returns once the initial snapshot is queued.
func (w *CodeWatcher) Start(ctx context.Context) error {
	code, err := w.codes.GetOrCreateActiveCode(ctx, w.operatorID)
	if err != nil {
		return err
	}
	w.setCurrent(code)

	sub, err := w.bus.Subscribe(ctx, w.operatorID)
	if err != nil {
		return err
	}
	w.sub = sub

	watchCtx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	w.wg.Add(1)
	go w.loop(watchCtx)
	return nil
}

// Updates streams snapshots as the watched state changes. Closed by Close.
func (w *CodeWatcher) Updates() <-chan CodeSnapshot {
	return w.updates
}

// Snapshot derives the current display state at this instant.
func (w *CodeWatcher) Snapshot() CodeSnapshot {
	w.mu.Lock()
	code := w.current
	w.mu.Unlock()
	return snapshotOf(code)
}

// Close tears the watcher down: the subscription is cancelled and the
// updates channel is closed once the event loop has fully stopped.
// Safe to call more than once.
func (w *CodeWatcher) Close() error {
	w.closeOnce.Do(func() {
		if w.sub != nil {
			w.closeErr = w.sub.Close()
		}
		if w.cancel != nil {
			w.cancel()
		}
		w.wg.Wait()
		close(w.updates)
	})
	return w.closeErr
}

func (w *CodeWatcher) loop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.sub.Events():
			if !ok {
				return
			}
			w.handleEvent(ctx, ev)
		}
	}
}

func (w *CodeWatcher) handleEvent(ctx context.Context, ev interfaces.CodeEvent) {
	if ev.Consumed() {
		// Off the event loop so further notifications keep flowing while
		// the settle delay runs; the CAS guard keeps it single-flight.
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.regenerateAfterUse(ctx)
		}()
		return
	}

	// Any other mutation (fresh insert, timestamp refresh) is mirrored
	// into local state, but never backwards to an older row.
	w.mu.Lock()
	stale := ev.New.ID < w.current.ID
	if !stale {
		w.current = ev.New
	}
	w.mu.Unlock()
	if !stale {
		w.emit(snapshotOf(ev.New))
	}
}

// regenerateAfterUse replaces a consumed code. Only one regeneration may
// be in flight; before generating it re-checks for an active code some
// other session already created and adopts it, discarding its own
// regeneration intent.
func (w *CodeWatcher) regenerateAfterUse(ctx context.Context) {
	if !w.regenerating.CompareAndSwap(false, true) {
		return
	}
	defer w.regenerating.Store(false)

	select {
	case <-time.After(w.settleDelay):
	case <-ctx.Done():
		return
	}

	existing, err := w.codes.GetActiveCode(ctx, w.operatorID)
	if err == nil && existing.ID != 0 {
		w.setCurrent(existing)
		w.emit(snapshotOf(existing))
		return
	}

	code, err := w.codes.GenerateCode(ctx, w.operatorID, DefaultCodeLength, DefaultCodeExpirationMinutes)
	if err != nil {
		log.Printf("[code][watcher] regeneration failed operator_id=%s err=%v", w.operatorID, err)
		w.reload(ctx)
		return
	}
	w.setCurrent(code)
	w.emit(snapshotOf(code))
}

// reload is the fallback when regeneration fails: re-read the full
// active-code state instead of leaving the dashboard inconsistent.
func (w *CodeWatcher) reload(ctx context.Context) {
	code, err := w.codes.GetOrCreateActiveCode(ctx, w.operatorID)
	if err != nil {
		log.Printf("[code][watcher] reload failed operator_id=%s err=%v", w.operatorID, err)
		w.emit(CodeSnapshot{Error: "could not regenerate the operator code"})
		return
	}
	w.setCurrent(code)
	w.emit(snapshotOf(code))
}

func (w *CodeWatcher) setCurrent(code entities.OperatorCode) {
	w.mu.Lock()
	w.current = code
	w.mu.Unlock()
}

// emit never blocks the event loop; a full buffer drops the update and
// the next snapshot carries the fresher state anyway.
func (w *CodeWatcher) emit(s CodeSnapshot) {
	select {
	case w.updates <- s:
	default:
	}
}

func snapshotOf(code entities.OperatorCode) CodeSnapshot {
	now := time.Now().UTC()
	return CodeSnapshot{
		Code:             code,
		Status:           code.Status(now),
		MinutesRemaining: code.MinutesRemaining(now),
		IsExpiringSoon:   code.IsExpiringSoon(now),
	}
}
