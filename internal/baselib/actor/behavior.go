package actor

import (
	"context"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// functionBehavior adapts a plain function into an ActorBehavior, avoiding
// the ceremony of declaring a named type for simple, stateless-dispatch
// actors (e.g. the system's own dead-letter actor, or tests).
type functionBehavior[M Message, R any] struct {
	fn func(ctx context.Context, msg M) fn.Result[R]
}

// NewFunctionBehavior wraps a plain function as an ActorBehavior.
func NewFunctionBehavior[M Message, R any](
	fn func(ctx context.Context, msg M) fn.Result[R],
) ActorBehavior[M, R] {
	return &functionBehavior[M, R]{fn: fn}
}

// Receive implements ActorBehavior.
func (f *functionBehavior[M, R]) Receive(ctx context.Context, msg M) fn.Result[R] {
	return f.fn(ctx, msg)
}

// PostAction is the discriminated result a behaviour may hand back to the
// actor's dispatch loop to steer what happens after a message is processed.
// Ordinary ActorBehavior implementations only ever produce PostContinue
// implicitly; behaviours that need to request termination or stop outright
// implement ActorBehaviorEx instead.
type PostAction int

const (
	// PostContinue tells the dispatch loop to keep processing the
	// mailbox. This is the default for any ActorBehavior that doesn't
	// implement ActorBehaviorEx.
	PostContinue PostAction = iota

	// PostStop tells the dispatch loop to break out immediately, closing
	// the mailbox and draining any remaining messages to the DLO.
	PostStop

	// PostRequestTermination tells the dispatch loop to raise a
	// RequestTermination supervisor request (causing the owning
	// ActorSystem to broadcast Terminate to every registered actor,
	// including this one) and then keep processing until its own
	// Terminate arrives.
	PostRequestTermination
)

// ActorBehaviorEx is an optional extension of ActorBehavior for behaviours
// that want explicit control over the dispatch loop's post-action: continue
// as normal, stop just this actor, or request a system-wide termination.
// Plain ActorBehavior implementations are always treated as PostContinue.
type ActorBehaviorEx[M Message, R any] interface {
	ActorBehavior[M, R]

	// ReceiveEx processes a message and additionally reports the
	// post-action the dispatch loop should take.
	ReceiveEx(ctx context.Context, msg M) (fn.Result[R], PostAction)
}
