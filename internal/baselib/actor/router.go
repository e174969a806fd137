package actor

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// ErrNoActorsAvailable indicates a router attempted to select a target
// actor but found none registered for its service key.
var ErrNoActorsAvailable = errors.New("no actors available for service")

// RoutingStrategy picks one actor reference from a set of candidates
// registered under a ServiceKey. Implementations must be safe for
// concurrent use, since a single router may be shared across many callers.
type RoutingStrategy[M Message, R any] interface {
	// Select chooses one of the given actors to route the next message
	// to. It returns ErrNoActorsAvailable (or any other error) if no
	// selection can be made.
	Select(actors []ActorRef[M, R]) (ActorRef[M, R], error)
}

// roundRobinStrategy is the default RoutingStrategy: it cycles through the
// candidate set in order, wrapping back to the start.
type roundRobinStrategy[M Message, R any] struct {
	next atomic.Uint64
}

// NewRoundRobinStrategy returns a RoutingStrategy that distributes messages
// evenly, in order, across the candidate actors.
func NewRoundRobinStrategy[M Message, R any]() RoutingStrategy[M, R] {
	return &roundRobinStrategy[M, R]{}
}

// Select implements RoutingStrategy.
func (s *roundRobinStrategy[M, R]) Select(
	actors []ActorRef[M, R],
) (ActorRef[M, R], error) {
	if len(actors) == 0 {
		return nil, ErrNoActorsAvailable
	}

	idx := s.next.Add(1) % uint64(len(actors))

	return actors[idx], nil
}

// router is a virtual ActorRef that resolves its target actors from the
// Receptionist on every call, via ServiceKey.Ref. This gives callers
// location transparency: as actors under a service key come and go, the
// router always routes to the current set, without callers needing to
// re-resolve it themselves.
type router[M Message, R any] struct {
	receptionist *Receptionist
	key          ServiceKey[M, R]
	strategy     RoutingStrategy[M, R]
	dlo          ActorRef[Message, any]
}

// NewRouter constructs a virtual ActorRef that load-balances across all
// actors currently registered under key, using strategy to pick a target
// per call. If no actor is available, Ask fails with ErrNoActorsAvailable
// and Tell routes the message to the dead letter office instead.
func NewRouter[M Message, R any](
	receptionist *Receptionist, key ServiceKey[M, R],
	strategy RoutingStrategy[M, R], dlo ActorRef[Message, any],
) ActorRef[M, R] {
	return &router[M, R]{
		receptionist: receptionist,
		key:          key,
		strategy:     strategy,
		dlo:          dlo,
	}
}

// ID implements BaseActorRef.
func (r *router[M, R]) ID() string {
	return "router(" + r.key.name + ")"
}

func (r *router[M, R]) resolve() (ActorRef[M, R], error) {
	candidates := FindInReceptionist(r.receptionist, r.key)
	return r.strategy.Select(candidates)
}

// Tell implements TellOnlyRef. If no target can be resolved, the message is
// routed to the dead letter office instead of being silently dropped.
func (r *router[M, R]) Tell(ctx context.Context, msg M) {
	target, err := r.resolve()
	if err != nil {
		if r.dlo != nil {
			r.dlo.Tell(ctx, msg)
		}

		return
	}

	target.Tell(ctx, msg)
}

// Ask implements ActorRef.
func (r *router[M, R]) Ask(ctx context.Context, msg M) Future[R] {
	target, err := r.resolve()
	if err != nil {
		promise := NewPromise[R]()
		promise.Complete(fn.Err[R](err))

		return promise.Future()
	}

	return target.Ask(ctx, msg)
}

var _ ActorRef[Message, any] = (*router[Message, any])(nil)
