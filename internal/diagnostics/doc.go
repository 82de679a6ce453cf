// Package diagnostics implements StrategyDiagnostics: the append-only
// per-element record set and counter maps the renderer and the AREAL
// extraction orchestrator report through. It implements
// arealextract.Sink so the orchestrator never needs to import this
// package directly.
package diagnostics
