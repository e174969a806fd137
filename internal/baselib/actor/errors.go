package actor

import "errors"

// This file collects named error kinds beyond ErrActorTerminated and
// ErrServiceKeyTypeMismatch already declared in interface.go. None of these
// carry payload data; callers distinguish them with errors.Is. Of these, only
// ErrActionFailed is returned by code in this package; ErrTimeout appears
// only in heartbeat log output, and the others are not produced anywhere.
var (
	// ErrReceiverClosed names a send target whose mailbox has been closed
	// (the actor terminated or is terminating). Mailbox sends report this
	// case as a false result, not as this error.
	ErrReceiverClosed = errors.New("receiver closed")

	// ErrReceiverFull names a mailbox found at capacity. TrySend and
	// SendTimeout report this case as a false result, not as this error.
	ErrReceiverFull = errors.New("receiver full")

	// ErrTimeout names an expired bounded wait. The heartbeat monitor logs
	// it for actors that miss their deadline; SendTimeout reports a timeout
	// as a false result, and an Ask whose ctx expires returns ctx's error.
	ErrTimeout = errors.New("operation timed out")

	// ErrResponderClosed names a Query whose response promise was abandoned
	// before Respond or RespondErr was called. Ask does not return it: an
	// abandoned query leaves Ask waiting until its ctx is done.
	ErrResponderClosed = errors.New("query responder closed")

	// ErrSpawnFailed names a rejected registration. RegisterWithSystem and
	// ServiceKey.Spawn do not return it: on a type conflict they hand back
	// an already-stopped ref, whose Ask fails with ErrActorTerminated.
	ErrSpawnFailed = errors.New("actor spawn failed")

	// ErrActionFailed wraps any error surfaced by an action body (see
	// DataAction/DataRefAction/BiAction in action.go) so callers have a
	// single sentinel to match against regardless of what the underlying
	// action implementation returned.
	ErrActionFailed = errors.New("action failed")
)
