package actor

import "time"

// The five system-variant messages below form a closed set every actor
// understands regardless of its own sealed message type M: they travel on a
// side channel the dispatch loop always services first, never behind a
// Paused actor's buffered user messages. Actor and ActorSystem expose typed
// Signal*/StartAll/RequestTermination helpers that construct and dispatch
// these directly; they are also ordinary Message values so they can be
// logged, drained to the DLO, or matched in a type switch like any other
// message.

// Start transitions an actor out of its initial Spawned state into Running.
// In practice an actor self-promotes to Running the moment its process loop
// begins, so a received Start is a no-op unless something has explicitly
// held the actor back; StartAll exists mainly for supervisors that want a
// uniform, explicit signal across every actor they manage.
type Start struct {
	BaseMessage
}

// MessageType implements Message.
func (Start) MessageType() string { return "system.Start" }

// Pause suspends user-message dispatch. Messages Told or Asked while Paused
// are buffered in FIFO order and replayed in full as soon as Resume arrives.
// System messages are never buffered -- they're serviced immediately even
// while Paused.
type Pause struct {
	BaseMessage
}

// MessageType implements Message.
func (Pause) MessageType() string { return "system.Pause" }

// Resume lifts a Pause, replaying any buffered user messages before the
// dispatch loop accepts new ones.
type Resume struct {
	BaseMessage
}

// MessageType implements Message.
func (Resume) MessageType() string { return "system.Resume" }

// Ping bumps an actor's last-seen timestamp. ActorSystem's heartbeat
// monitor dispatches these on a timer and logs an advisory warning for any
// actor that hasn't processed one recently -- it never auto-terminates an
// actor on a missed heartbeat, since a slow actor may simply be busy with a
// long-running message.
type Ping struct {
	BaseMessage

	// SentAt is when the heartbeat monitor (or caller) dispatched this
	// Ping, used to compute staleness.
	SentAt time.Time
}

// MessageType implements Message.
func (Ping) MessageType() string { return "system.Ping" }

// Terminate's default behavior is equivalent to calling Stop directly: the
// actor's context is cancelled, its mailbox is closed and drained to the
// DLO, and its Stoppable hook (if any) runs. A behaviour that implements
// ActorBehaviorEx and returns PostRequestTermination causes the owning
// ActorSystem to broadcast Terminate to every registered actor, including
// the one that requested it, rather than stopping just that one actor.
type Terminate struct {
	BaseMessage
}

// MessageType implements Message.
func (Terminate) MessageType() string { return "system.Terminate" }

var (
	_ Message = Start{}
	_ Message = Pause{}
	_ Message = Resume{}
	_ Message = Ping{}
	_ Message = Terminate{}
)
