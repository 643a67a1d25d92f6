// Package providers adapts the domain stores into the tool catalog
// consumed by the chrome UI: each provider exposes one service
// definition and routes tool calls to the underlying store.
//
// Failure semantics follow the stores: read tools always succeed with
// data or defaults; mutating tools surface validation failures
// (duplicate email, invalid credentials) as failure results the chrome
// can render, and only genuine I/O faults propagate as errors.
package providers
