package actor

import (
	"context"
	"sync"
	"time"
)

// TimerSpec describes a timer a behaviour wants scheduled against its own
// actor. When the timer fires, a Timer system message carrying ID is
// enqueued in the owning actor's mailbox, dispatched like any other message
// (including being buffered and replayed across a Pause/Resume cycle,
// matching the mailbox's normal FIFO semantics).
type TimerSpec struct {
	// ID identifies this timer. Passing the same ID to Start again
	// replaces any existing timer with that ID.
	ID string

	// Interval is the delay before the first (and, if Recurring, every
	// subsequent) firing.
	Interval time.Duration

	// Recurring, if true, reschedules the timer after every firing using
	// the same Interval. If false, the timer fires once and is removed.
	Recurring bool
}

// Timer is the system message enqueued when a TimerSpec fires.
type Timer struct {
	BaseMessage

	// ID is the identifier of the TimerSpec that fired.
	ID string
}

// MessageType implements Message.
func (Timer) MessageType() string { return "system.Timer" }

// Exec is a self-scheduling system message: a behaviour enqueues a closure
// to run later in its own actor's task context, at which point it is
// dispatched through the normal mailbox like any other message.
type Exec struct {
	BaseMessage

	// Fn is the deferred closure. The actor runtime does not call it; the
	// behaviour that receives this message (wrapped in its own variant)
	// calls Fn with its dispatch context. Fn receives only that context;
	// any state or self-handle it uses is captured by the closure.
	Fn func(ctx context.Context)
}

// MessageType implements Message.
func (Exec) MessageType() string { return "system.Exec" }

// timerWheel tracks the live timers for a single actor and is responsible
// for enqueueing their Timer firings back into that actor's mailbox. Each
// ActorTimers owns one timerWheel.
type timerWheel struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	enqueue func(id string)
}

func newTimerWheel(enqueue func(id string)) *timerWheel {
	return &timerWheel{
		timers:  make(map[string]*time.Timer),
		enqueue: enqueue,
	}
}

// Start installs or replaces the timer identified by spec.ID.
func (w *timerWheel) Start(spec TimerSpec) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if existing, ok := w.timers[spec.ID]; ok {
		existing.Stop()
	}

	w.timers[spec.ID] = time.AfterFunc(spec.Interval, func() {
		w.fire(spec)
	})
}

func (w *timerWheel) fire(spec TimerSpec) {
	w.enqueue(spec.ID)

	if !spec.Recurring {
		w.mu.Lock()
		delete(w.timers, spec.ID)
		w.mu.Unlock()

		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	// Only reschedule if the timer hasn't been cancelled out from under
	// us between firing and reacquiring the lock.
	if _, ok := w.timers[spec.ID]; ok {
		w.timers[spec.ID] = time.AfterFunc(spec.Interval, func() {
			w.fire(spec)
		})
	}
}

// Cancel stops the timer identified by id, if any. It is a no-op if no such
// timer exists.
func (w *timerWheel) Cancel(id string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if existing, ok := w.timers[id]; ok {
		existing.Stop()
		delete(w.timers, id)
	}
}

// StopAll cancels every live timer. ActorTimers.StopAll calls it; the
// actor's own shutdown does not.
func (w *timerWheel) StopAll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for id, t := range w.timers {
		t.Stop()
		delete(w.timers, id)
	}
}

// ActorTimers is the behaviour-facing handle for scheduling timers and
// self-exec closures against one actor. A behaviour that embeds its sealed
// message type's Timer/Exec variants obtains one of these from its own
// ActorRef (via NewActorTimers) and keeps it alongside its state.
type ActorTimers[M Message, R any] struct {
	wheel *timerWheel
	self  TellOnlyRef[M]
	wrap  func(Timer) M
	wrapE func(Exec) M
}

// NewActorTimers constructs an ActorTimers bound to self. wrap and wrapE
// adapt the built-in Timer/Exec system messages into the actor's own sealed
// message type M, typically by embedding them in a variant struct.
func NewActorTimers[M Message, R any](
	self TellOnlyRef[M], wrap func(Timer) M, wrapE func(Exec) M,
) *ActorTimers[M, R] {
	timers := &ActorTimers[M, R]{self: self, wrap: wrap, wrapE: wrapE}
	timers.wheel = newTimerWheel(func(id string) {
		self.Tell(context.Background(), wrap(Timer{ID: id}))
	})

	return timers
}

// Start installs or replaces a timer.
func (t *ActorTimers[M, R]) Start(spec TimerSpec) { t.wheel.Start(spec) }

// Cancel stops a timer by ID.
func (t *ActorTimers[M, R]) Cancel(id string) { t.wheel.Cancel(id) }

// StopAll cancels every live timer, e.g. during OnStop.
func (t *ActorTimers[M, R]) StopAll() { t.wheel.StopAll() }

// Exec schedules fn to run later in this actor's own dispatch context.
func (t *ActorTimers[M, R]) Exec(ctx context.Context, fn func(ctx context.Context)) {
	t.self.Tell(ctx, t.wrapE(Exec{Fn: fn}))
}
