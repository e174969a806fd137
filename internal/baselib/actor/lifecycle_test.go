package actor

import (
	"context"
	"testing"
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
)

// recordingBehavior appends every message it processes to order, letting
// tests assert both which messages were delivered and in what sequence.
type recordingBehavior struct {
	order chan string
}

func newRecordingBehavior() *recordingBehavior {
	return &recordingBehavior{order: make(chan string, 16)}
}

func (b *recordingBehavior) Receive(_ context.Context, msg *testMsg) fn.Result[string] {
	b.order <- msg.data
	return fn.Ok(msg.data)
}

// TestActorPauseBuffersThenResumeReplaysInOrder verifies that messages Told
// while an actor is Paused are held back, and then delivered in FIFO order
// once Resume arrives.
func TestActorPauseBuffersThenResumeReplaysInOrder(t *testing.T) {
	t.Parallel()

	behavior := newRecordingBehavior()
	a := NewActor(ActorConfig[*testMsg, string]{
		ID:       "pause-resume",
		Behavior: behavior,
	})
	a.Start()
	defer a.Stop()

	ref := a.Ref()
	ctx := context.Background()

	a.SignalPause()

	// Give the pause signal time to land before sending messages, so we
	// know they'll be buffered rather than racing past it.
	require.Eventually(t, func() bool {
		return lifecycleState(a.state.Load()) == statePaused
	}, time.Second, time.Millisecond)

	ref.Tell(ctx, newTestMsg("one"))
	ref.Tell(ctx, newTestMsg("two"))
	ref.Tell(ctx, newTestMsg("three"))

	select {
	case got := <-behavior.order:
		t.Fatalf("expected no messages processed while paused, got %q", got)
	case <-time.After(50 * time.Millisecond):
	}

	a.SignalResume()

	for _, want := range []string{"one", "two", "three"} {
		select {
		case got := <-behavior.order:
			require.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q to replay", want)
		}
	}
}

// TestActorTerminateSignalStopsProcessing verifies that a Terminate system
// signal behaves like Stop: the actor's context is cancelled and subsequent
// Asks fail with ErrActorTerminated.
func TestActorTerminateSignalStopsProcessing(t *testing.T) {
	t.Parallel()

	a := NewActor(ActorConfig[*testMsg, string]{
		ID:       "terminate-signal",
		Behavior: newRecordingBehavior(),
	})
	a.Start()

	a.SignalTerminate()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	result := a.Ref().Ask(ctx, newTestMsg("late")).Await(ctx)
	_, err := result.Unpack()
	require.ErrorIs(t, err, ErrActorTerminated)
}

// TestActorPingUpdatesLastPing verifies that a Ping signal bumps the
// actor's last-seen timestamp, and that an actor which has never received
// one reports the zero time.
func TestActorPingUpdatesLastPing(t *testing.T) {
	t.Parallel()

	a := NewActor(ActorConfig[*testMsg, string]{
		ID:       "ping",
		Behavior: newRecordingBehavior(),
	})
	a.Start()
	defer a.Stop()

	require.True(t, a.lastPing().IsZero())

	before := time.Now()
	a.SignalPing()

	require.Eventually(t, func() bool {
		return !a.lastPing().IsZero()
	}, time.Second, time.Millisecond)

	require.False(t, a.lastPing().Before(before))
}

// postActionBehavior lets a test dictate exactly which PostAction each
// processed message reports, so PostStop and PostRequestTermination can be
// exercised deterministically.
type postActionBehavior struct {
	next func(msg *testMsg) PostAction
}

func (b *postActionBehavior) Receive(_ context.Context, msg *testMsg) fn.Result[string] {
	return fn.Ok(msg.data)
}

func (b *postActionBehavior) ReceiveEx(
	_ context.Context, msg *testMsg,
) (fn.Result[string], PostAction) {
	return fn.Ok(msg.data), b.next(msg)
}

var _ ActorBehaviorEx[*testMsg, string] = (*postActionBehavior)(nil)

// TestActorBehaviorExPostStopTerminatesActor verifies that a behaviour
// reporting PostStop causes the dispatch loop to terminate the actor, just
// as a direct Stop() or Terminate signal would.
func TestActorBehaviorExPostStopTerminatesActor(t *testing.T) {
	t.Parallel()

	behavior := &postActionBehavior{
		next: func(*testMsg) PostAction { return PostStop },
	}
	a := NewActor(ActorConfig[*testMsg, string]{
		ID:       "post-stop",
		Behavior: behavior,
	})
	a.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	result := a.Ref().Ask(ctx, newTestMsg("stop-me")).Await(ctx)
	got, err := result.Unpack()
	require.NoError(t, err)
	require.Equal(t, "stop-me", got)

	require.Eventually(t, func() bool {
		return lifecycleState(a.state.Load()) == stateTerminated
	}, time.Second, time.Millisecond)
}

// TestActorBehaviorExPostRequestTerminationBroadcasts verifies that a
// behaviour reporting PostRequestTermination triggers ActorSystem's
// RequestTermination, which broadcasts Terminate to every registered actor
// including the one that requested it.
func TestActorBehaviorExPostRequestTerminationBroadcasts(t *testing.T) {
	t.Parallel()

	system := NewActorSystem()
	defer func() { _ = system.Shutdown(context.Background()) }()

	requester := &postActionBehavior{
		next: func(*testMsg) PostAction { return PostRequestTermination },
	}
	bystander := newRecordingBehavior()

	requesterKey := NewServiceKey[*testMsg, string]("post-request-termination")
	bystanderKey := NewServiceKey[*testMsg, string]("post-request-termination-bystander")

	requesterRef := RegisterWithSystem(system, "requester", requesterKey, requester)
	bystanderRef := RegisterWithSystem(system, "bystander", bystanderKey, bystander)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	result := requesterRef.Ask(ctx, newTestMsg("wind-down")).Await(ctx)
	_, err := result.Unpack()
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		askCtx, askCancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer askCancel()

		_, askErr := bystanderRef.Ask(askCtx, newTestMsg("still-there")).Await(askCtx).Unpack()
		return askErr != nil
	}, time.Second, 10*time.Millisecond,
		"bystander actor should have been terminated by the broadcast")
}

// TestActorSystemStartAllDoesNotDisruptRunningActors verifies that StartAll
// is a harmless no-op for actors that are already running (the common case,
// since actors self-promote to Running as soon as their process loop
// begins).
func TestActorSystemStartAllDoesNotDisruptRunningActors(t *testing.T) {
	t.Parallel()

	system := NewActorSystem()
	defer func() { _ = system.Shutdown(context.Background()) }()

	key := NewServiceKey[*testMsg, string]("start-all")
	ref := RegisterWithSystem(system, "actor-1", key, newRecordingBehavior())

	system.StartAll()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	result := ref.Ask(ctx, newTestMsg("hello")).Await(ctx)
	got, err := result.Unpack()
	require.NoError(t, err)
	require.Equal(t, "hello", got)
}

// TestActorSystemHeartbeatUpdatesLastPing verifies that StartHeartbeat
// dispatches Ping signals to registered actors on its own, without the
// caller having to call SignalPing directly.
func TestActorSystemHeartbeatUpdatesLastPing(t *testing.T) {
	t.Parallel()

	system := NewActorSystem()
	defer func() { _ = system.Shutdown(context.Background()) }()

	key := NewServiceKey[*testMsg, string]("heartbeat")
	ref := RegisterWithSystem(system, "actor-1", key, newRecordingBehavior())

	concrete, ok := ref.(*actorRefImpl[*testMsg, string])
	require.True(t, ok)
	require.True(t, concrete.actor.lastPing().IsZero())

	stop := system.StartHeartbeat(HeartbeatConfig{
		Interval:   10 * time.Millisecond,
		StaleAfter: time.Second,
	})
	defer stop()

	require.Eventually(t, func() bool {
		return !concrete.actor.lastPing().IsZero()
	}, time.Second, 10*time.Millisecond)
}
