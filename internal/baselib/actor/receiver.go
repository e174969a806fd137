package actor

import (
	"context"
	"sync"
)

// StaticReceiverList is a compile-time-built, heterogeneous fan-out list of
// receivers that all accept T. It is the third, more flexible rung of the
// receiver hierarchy above a plain TellOnlyRef[T] (level 2, which every
// ActorRef already satisfies for its own message type): a sender holds a
// fixed list of T-accepting handles, named once at construction time, and
// broadcasts to all of them with a single call.
type StaticReceiverList[T Message] struct {
	receivers []TellOnlyRef[T]
}

// NewStaticReceiverList builds a StaticReceiverList from a fixed set of
// receivers, typically named as concrete handle variables at the call site.
func NewStaticReceiverList[T Message](receivers ...TellOnlyRef[T]) *StaticReceiverList[T] {
	return &StaticReceiverList[T]{receivers: receivers}
}

// Tell broadcasts msg to every receiver in the list. If ignoreErrors is
// false, Tell stops before the next receiver once ctx is done; since
// TellOnlyRef.Tell has no return value, a failed send to an individual
// receiver is not observed and does not stop the loop -- a best-effort
// short-circuit, not a guarantee, matching the fire-and-forget nature of
// Tell. If ignoreErrors is true, every receiver is always attempted.
func (l *StaticReceiverList[T]) Tell(ctx context.Context, msg T, ignoreErrors bool) {
	for _, r := range l.receivers {
		r.Tell(ctx, msg)

		if !ignoreErrors && ctx.Err() != nil {
			return
		}
	}
}

// Len reports how many receivers are in the list.
func (l *StaticReceiverList[T]) Len() int { return len(l.receivers) }

// DynamicReceiver is the type-erased, runtime-pluggable counterpart to a
// plain TellOnlyRef[T]: it exists so that a receiver capability can itself
// be stored in a message payload or swapped at runtime, at the cost of one
// extra indirection per send.
type DynamicReceiver[T Message] struct {
	target TellOnlyRef[T]
}

// NewDynamicReceiver wraps target as a DynamicReceiver.
func NewDynamicReceiver[T Message](target TellOnlyRef[T]) DynamicReceiver[T] {
	return DynamicReceiver[T]{target: target}
}

// Tell forwards msg to the wrapped target.
func (d DynamicReceiver[T]) Tell(ctx context.Context, msg T) {
	d.target.Tell(ctx, msg)
}

// DynamicReceiverList is a runtime-mutable fan-out list: receivers may be
// added or removed while the list is in use, unlike StaticReceiverList whose
// membership is fixed at construction. Safe for concurrent use.
type DynamicReceiverList[T Message] struct {
	mu        sync.RWMutex
	receivers map[string]DynamicReceiver[T]
}

// NewDynamicReceiverList returns an empty DynamicReceiverList.
func NewDynamicReceiverList[T Message]() *DynamicReceiverList[T] {
	return &DynamicReceiverList[T]{
		receivers: make(map[string]DynamicReceiver[T]),
	}
}

// Add registers target under id, replacing any existing receiver with the
// same id.
func (l *DynamicReceiverList[T]) Add(id string, target TellOnlyRef[T]) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.receivers[id] = NewDynamicReceiver(target)
}

// Remove unregisters the receiver for id, if any.
func (l *DynamicReceiverList[T]) Remove(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.receivers, id)
}

// Tell broadcasts msg to every currently-registered receiver. As with
// StaticReceiverList, ignoreErrors controls whether a context cancellation
// mid-broadcast short-circuits the remaining sends.
func (l *DynamicReceiverList[T]) Tell(ctx context.Context, msg T, ignoreErrors bool) {
	l.mu.RLock()
	targets := make([]DynamicReceiver[T], 0, len(l.receivers))
	for _, r := range l.receivers {
		targets = append(targets, r)
	}
	l.mu.RUnlock()

	for _, r := range targets {
		r.Tell(ctx, msg)

		if !ignoreErrors && ctx.Err() != nil {
			return
		}
	}
}

// Len reports how many receivers are currently registered.
func (l *DynamicReceiverList[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.receivers)
}
