// Package diagnostic provides structured findings from rule-set validation.
//
// Key capabilities:
//   - Duplicate rule name errors
//   - Deprecated-rule warnings (missing or unknown successors)
//   - Severity-tagged, human-readable rendering
package diagnostic
