package actor

import (
	"context"
	"fmt"
)

// DataAction is the fifth, most decoupled rung of the receiver hierarchy: the
// sender knows nothing about message types at all, only a value of T. The
// action, built at system-construction time, owns the decision of which
// receivers get which messages constructed from that T.
type DataAction[T any] struct {
	execute func(ctx context.Context, data T) error
}

// NewDataAction wraps execute as a DataAction. Any error execute returns is
// surfaced to the caller wrapped in ErrActionFailed.
func NewDataAction[T any](execute func(ctx context.Context, data T) error) *DataAction[T] {
	return &DataAction[T]{execute: execute}
}

// Execute runs the action body against data.
func (a *DataAction[T]) Execute(ctx context.Context, data T) error {
	if err := a.execute(ctx, data); err != nil {
		return fmt.Errorf("%w: %w", ErrActionFailed, err)
	}

	return nil
}

// DataRefAction is DataAction specialised for callers holding a pointer to
// T, letting the action body mutate the caller's value in place rather than
// requiring a copy per call.
type DataRefAction[T any] struct {
	execute func(ctx context.Context, data *T) error
}

// NewDataRefAction wraps execute as a DataRefAction.
func NewDataRefAction[T any](execute func(ctx context.Context, data *T) error) *DataRefAction[T] {
	return &DataRefAction[T]{execute: execute}
}

// Execute runs the action body against data.
func (a *DataRefAction[T]) Execute(ctx context.Context, data *T) error {
	if err := a.execute(ctx, data); err != nil {
		return fmt.Errorf("%w: %w", ErrActionFailed, err)
	}

	return nil
}

// BiAction is a bidirectional DataAction: it threads a caller-supplied label
// of type B alongside the payload T, letting the action body correlate its
// effect back to the caller without the caller needing to know what the
// action does with T.
type BiAction[T any, B any] struct {
	execute func(ctx context.Context, data T, label B) error
}

// NewBiAction wraps execute as a BiAction.
func NewBiAction[T any, B any](
	execute func(ctx context.Context, data T, label B) error,
) *BiAction[T, B] {
	return &BiAction[T, B]{execute: execute}
}

// Execute runs the action body against data and label.
func (a *BiAction[T, B]) Execute(ctx context.Context, data T, label B) error {
	if err := a.execute(ctx, data, label); err != nil {
		return fmt.Errorf("%w: %w", ErrActionFailed, err)
	}

	return nil
}

// DynamicDataAction is the type-erased form of DataAction: a function value
// with no named receiver type, suitable for storing in a list or carrying in
// a message, at the cost of the same one-indirection overhead as
// DynamicReceiver.
type DynamicDataAction[T any] func(ctx context.Context, data T) error

// DynamicActionList is a runtime-mutable list of DynamicDataAction values,
// all invoked in registration order by ExecuteAll.
type DynamicActionList[T any] struct {
	actions []DynamicDataAction[T]
}

// NewDynamicActionList returns an empty DynamicActionList.
func NewDynamicActionList[T any]() *DynamicActionList[T] {
	return &DynamicActionList[T]{}
}

// Add appends action to the list.
func (l *DynamicActionList[T]) Add(action DynamicDataAction[T]) {
	l.actions = append(l.actions, action)
}

// ExecuteAll runs every action in the list against data, in registration
// order. If ignoreErrors is false, the first action to fail short-circuits
// the remaining ones and its wrapped error is returned. If true, every
// action runs regardless of prior failures, and the first error encountered
// (if any) is returned after all actions have run.
func (l *DynamicActionList[T]) ExecuteAll(
	ctx context.Context, data T, ignoreErrors bool,
) error {
	var firstErr error

	for _, action := range l.actions {
		if err := action(ctx, data); err != nil {
			wrapped := fmt.Errorf("%w: %w", ErrActionFailed, err)

			if !ignoreErrors {
				return wrapped
			}

			if firstErr == nil {
				firstErr = wrapped
			}
		}
	}

	return firstErr
}
