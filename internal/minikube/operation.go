package minikube

import "context"

// Operation is a handle on an in-flight Start or Stop.
type Operation struct {
	done   chan struct{}
	result Result
}

func newOperation() *Operation {
	return &Operation{done: make(chan struct{})}
}

func completedOperation(r Result) *Operation {
	op := newOperation()
	op.resolve(r)
	return op
}

// resolve must be called exactly once.
func (o *Operation) resolve(r Result) {
	o.result = r
	close(o.done)
}

// Done is closed once the operation has a Result.
func (o *Operation) Done() <-chan struct{} {
	return o.done
}

// Wait blocks until the operation resolves or ctx ends. The returned error is
// only ever ctx.Err(); operation failures are reported in Result.
func (o *Operation) Wait(ctx context.Context) (Result, error) {
	select {
	case <-o.done:
		return o.result, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

// Result returns the result without blocking; ok is false while in flight.
func (o *Operation) Result() (r Result, ok bool) {
	select {
	case <-o.done:
		return o.result, true
	default:
		return Result{}, false
	}
}
