package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"fixkit/deprecation"
)

func parseSet(t *testing.T, doc string) *Set {
	t.Helper()

	set, err := Parse([]byte(doc))
	require.NoError(t, err)

	return set
}

func TestDeprecationNotice(t *testing.T) {
	set := parseSet(t, `
rules:
  - name: legacy_spacing
    deprecation: superseded
    successors: [smart_spacing, ordered_imports]
  - name: old_rule
    deprecation: going away
`)

	notice, err := set.Rules[0].DeprecationNotice()
	require.NoError(t, err)
	assert.Equal(t,
		"rule `legacy_spacing` is deprecated: superseded, use `smart_spacing` and `ordered_imports` instead",
		notice)

	notice, err = set.Rules[1].DeprecationNotice()
	require.NoError(t, err)
	assert.Equal(t, "rule `old_rule` is deprecated: going away", notice)
}

func TestDeprecationNotice_NotDeprecated(t *testing.T) {
	set := parseSet(t, "rules:\n  - name: fine_rule\n")

	_, err := set.Rules[0].DeprecationNotice()
	assert.Error(t, err)
}

func TestTriggerDeprecations_WarnMode(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	reg := deprecation.NewRegistry(
		deprecation.WithEscalationQuery(func() bool { return false }),
		deprecation.WithLogger(zap.New(core)),
	)

	set := parseSet(t, `
rules:
  - name: old_rule
    deprecation: renamed
    successors: new_rule
  - name: new_rule
`)

	require.NoError(t, set.TriggerDeprecations(reg))
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t,
		[]string{"rule `old_rule` is deprecated: renamed, use `new_rule` instead"},
		reg.Triggered())
}

func TestTriggerDeprecations_EscalationFailsRun(t *testing.T) {
	reg := deprecation.NewRegistry(
		deprecation.WithEscalationQuery(func() bool { return true }),
	)

	set := parseSet(t, `
rules:
  - name: old_rule
    deprecation: renamed
`)

	err := set.TriggerDeprecations(reg)
	assert.ErrorIs(t, err, deprecation.ErrEscalated)
	assert.Empty(t, reg.Triggered())
}

func TestNameForType(t *testing.T) {
	assert.Equal(t, "blank_line_after_header", NameForType("BlankLineAfterHeader"))
	assert.Equal(t, "no_trailing_xml", NameForType("NoTrailingXML"))
}
