package deprecation

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// EnvFutureMode is the environment variable that promotes deprecation
// warnings to hard failures. It is consulted fresh on every Trigger call,
// never cached.
const EnvFutureMode = "FIXKIT_FUTURE_MODE"

// ErrEscalated is the default failure kind returned by [Registry.Trigger]
// when escalation mode is active.
var ErrEscalated = errors.New("deprecation escalated")

//go:generate go tool stringer -type=Mode -trimprefix=Mode -output=mode_string.go

// Mode is the behaviour a Trigger call takes.
type Mode int

const (
	// ModeWarn records the message and emits a non-fatal warning.
	ModeWarn Mode = iota
	// ModeEscalate fails the call and leaves the registry untouched.
	ModeEscalate
)

// Registry is a process-lifetime record of triggered deprecation messages.
// Construct one at the composition root and pass it by reference; it is
// never cleared. Safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	triggered map[string]struct{}

	escalated func() bool
	log       *zap.Logger
}

// Option configures a [Registry].
type Option func(*Registry)

// WithLogger sets the logger used for non-fatal deprecation warnings. The
// default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// WithEscalationQuery replaces the escalation-mode query. The query runs on
// every Trigger call, so tests can flip it between calls. The default is
// [EnvEscalationQuery].
func WithEscalationQuery(q func() bool) Option {
	return func(r *Registry) {
		r.escalated = q
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		triggered: make(map[string]struct{}),
		escalated: EnvEscalationQuery,
		log:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// EnvEscalationQuery reports whether [EnvFutureMode] selects escalation
// mode. Unset means warn. A set value escalates unless it is empty, or
// parses as a false boolean ("0", "false", ...).
func EnvEscalationQuery() bool {
	v, ok := os.LookupEnv(EnvFutureMode)
	if !ok {
		return false
	}

	v = strings.TrimSpace(v)
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}

	return v != ""
}

// Mode reports the behaviour the next Trigger call would take.
func (r *Registry) Mode() Mode {
	if r.escalated() {
		return ModeEscalate
	}

	return ModeWarn
}

// Trigger records message as a deprecation warning and returns nil. When
// escalation mode is active it instead returns an error wrapping
// [ErrEscalated] and the registry is left untouched.
//
// Recording is idempotent: triggering the same message again re-emits the
// warning but the registry keeps a single entry.
func (r *Registry) Trigger(message string) error {
	return r.TriggerAs(message, ErrEscalated)
}

// TriggerAs is [Registry.Trigger] with a caller-chosen failure kind for the
// escalated path.
func (r *Registry) TriggerAs(message string, kind error) error {
	if r.Mode() == ModeEscalate {
		return fmt.Errorf("%w: %s (escalation mode is active, deprecations are promoted to failures)", kind, message)
	}

	r.mu.Lock()
	r.triggered[message] = struct{}{}
	r.mu.Unlock()

	r.log.Warn(message, zap.String("severity", "deprecation"))

	return nil
}

// Triggered returns a snapshot of all distinct messages triggered so far,
// sorted lexicographically.
func (r *Registry) Triggered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]string, 0, len(r.triggered))
	for k := range r.triggered {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
