// Package probe issues availability checks against platform endpoints
// and classifies the responses into verdicts.
//
// A Strategy encapsulates one platform's probing approach. All of them
// share a Session, which owns the transport, the courtesy pacer, and
// the transient-status retry policy. Every network request a strategy
// makes is recorded as an Attempt, and a verdict is only ever produced
// from recorded evidence.
package probe
