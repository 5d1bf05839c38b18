// Package deprecation records deprecated-rule usage for end-of-run
// reporting.
//
// A [Registry] is constructed once at the composition root and handed to
// rule plugins and the rule engine. Triggering a deprecation normally
// records the message and emits a non-fatal warning; with future mode
// enabled (the FIXKIT_FUTURE_MODE environment variable) every trigger
// becomes a hard failure instead, turning silent deprecations into
// build-breaking signals.
package deprecation
