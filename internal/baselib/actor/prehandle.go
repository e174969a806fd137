package actor

import "sync"

// PreHandle resolves the chicken-and-egg problem of two actors that each
// need a handle to the other before either can be spawned: it hands back an
// ActorRef immediately, before the actor's behaviour even exists, by
// allocating the mailbox and the (not-yet-started) Actor up front. The
// behaviour -- which may close over the very ActorRef this PreHandle
// returned -- is supplied later via Spawn, at which point the actor starts
// processing whatever was already enqueued through the handle.
type PreHandle[M Message, R any] struct {
	actor *Actor[M, R]
	once  sync.Once
}

// NewPreHandle allocates a mailbox and an unstarted actor under id, and
// returns both the PreHandle (to later supply a behaviour and start it) and
// its ActorRef (safe to hand out and Tell/Ask against immediately; messages
// simply queue in the mailbox until Spawn is called).
func NewPreHandle[M Message, R any](
	cfg ActorConfig[M, R],
) (*PreHandle[M, R], ActorRef[M, R]) {
	a := NewActor(cfg)

	return &PreHandle[M, R]{actor: a}, a.Ref()
}

// Spawn attaches behavior to the pre-allocated actor and starts its dispatch
// loop. It is a no-op after the first call.
func (p *PreHandle[M, R]) Spawn(behavior ActorBehavior[M, R]) ActorRef[M, R] {
	p.once.Do(func() {
		p.actor.behavior = behavior
		p.actor.Start()
	})

	return p.actor.Ref()
}
