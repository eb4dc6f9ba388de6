// Package telemetry is the analyser's observability surface: a small
// level-gated logger in the style of straga's apoc/log package, and an
// OpenTelemetry Provider — modeled on thaiyyal's telemetry.Provider — that
// opens one span per propagation run and reports step/pass counters and a
// prune-size histogram. Every run's span is tagged with a fresh google/uuid
// correlation id; log lines and metrics do not carry it.
package telemetry
