// Package minikube drives a local minikube cluster through the minikube CLI.
//
// Adapter locates the binary, runs it with fixed argument lists, interprets
// exit codes and output, and reports outcomes to a Notifier and a single
// reusable Indicator. It owns no cluster state: every Start and Stop re-queries
// Status first and treats the live tool as the source of truth.
//
// Start and Stop return an *Operation. Pre-checks run in the caller's
// goroutine; the underlying minikube invocation runs in its own goroutine and
// resolves the Operation when it finishes.
package minikube
