package actor

import (
	"context"
	"fmt"
	"reflect"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Query is a self-describing request/response message. It carries a request
// payload of type Q and an embedded, single-use Promise for a response of
// type A. A responder actor matches on the concrete *Query[Q, A] variant in
// its dispatch (the sealed Message interface lets a single mailbox carry many
// distinct Query shapes alongside ordinary messages) and calls Respond or
// RespondErr to fulfil it. A requester calls the package-level Ask helper,
// which Tells the query to its target and then awaits the embedded promise --
// this blocks only the calling goroutine, not the responder's mailbox.
type Query[Q any, A any] struct {
	BaseMessage

	// Request is the payload the responder inspects to compute its
	// answer.
	Request Q

	promise Promise[A]
}

// NewQuery constructs a Query carrying req, with a fresh, uncompleted
// response promise.
func NewQuery[Q any, A any](req Q) *Query[Q, A] {
	return &Query[Q, A]{
		Request: req,
		promise: NewPromise[A](),
	}
}

// MessageType returns a deterministic, type-mangled identifier for this
// query shape, derived from the concrete Q and A type parameters. Two
// queries with the same Q and A always report the same MessageType,
// regardless of the runtime value carried in Request.
func (q *Query[Q, A]) MessageType() string {
	var zeroQ Q
	var zeroA A

	return fmt.Sprintf(
		"Query[%s,%s]",
		reflect.TypeOf(&zeroQ).Elem(),
		reflect.TypeOf(&zeroA).Elem(),
	)
}

// Respond fulfils the query with a successful answer. It returns false if
// the query was already responded to (or its requester stopped waiting).
func (q *Query[Q, A]) Respond(answer A) bool {
	return q.promise.Complete(fn.Ok(answer))
}

// RespondErr fulfils the query with a failure. It returns false if the query
// was already responded to.
func (q *Query[Q, A]) RespondErr(err error) bool {
	return q.promise.Complete(fn.Err[A](err))
}

// Ask sends req as a Query to target and blocks the calling goroutine until
// the responder calls Respond/RespondErr or ctx is done. A query that is
// dropped without a response (for example drained to the DLO) is not
// reported; Ask then returns ctx's error.
func Ask[Q any, A any](
	ctx context.Context, target TellOnlyRef[Message], req Q,
) (A, error) {
	query := NewQuery[Q, A](req)

	target.Tell(ctx, query)

	result := query.promise.Await(ctx)

	return result.Unpack()
}

// QueryBuilder lets a caller that repeatedly issues queries of the same
// shape skip re-specifying Q and A at every call site. It does not reuse the
// underlying response promise across calls -- each Ask allocates a fresh
// one, since a promise is single-use by design -- but it does fix the shape,
// which is what most repeated-query call sites actually want.
type QueryBuilder[Q any, A any] struct {
	target TellOnlyRef[Message]
}

// NewQueryBuilder returns a QueryBuilder that issues Query[Q, A] messages to
// target.
func NewQueryBuilder[Q any, A any](target TellOnlyRef[Message]) *QueryBuilder[Q, A] {
	return &QueryBuilder[Q, A]{target: target}
}

// Ask issues a query built from req and awaits its response.
func (b *QueryBuilder[Q, A]) Ask(ctx context.Context, req Q) (A, error) {
	return Ask[Q, A](ctx, b.target, req)
}

var _ Message = (*Query[int, int])(nil)
