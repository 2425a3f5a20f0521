// Package resolve coordinates candidate generation and platform probes
// into availability answers.
//
// Resolver dispatches one candidate to the strategy registered for a
// platform and folds every network-level failure into the returned
// verdict. Finder layers the generate-then-check search loop on top.
package resolve
