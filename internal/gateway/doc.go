// Package gateway turns a client-supplied model identifier and prompt into a
// best-effort textual response. It is structured into small files by concern:
//
//   - resolver.go: default-model substitution, availability probing, and
//     on-demand pulls of missing models.
//   - pullgroup.go: collapses concurrent pulls of the same model into one
//     backend call.
//   - gateway.go: the Respond entry point; the single place where internal
//     failures are converted into the "Error: ..." fallback text.
//   - metrics.go: Prometheus counters and histograms.
//
// Everything below Respond is fail-fast (returns typed errors from the
// ollama package); Respond itself is the fail-soft boundary and never
// reports failure to its caller.
package gateway
