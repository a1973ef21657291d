package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/sprout/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// enumValue is a string flag restricted to a fixed set of values.
type enumValue struct {
	allowed []string
	value   *string
}

var _ pflag.Value = (*enumValue)(nil)

func newEnumValue(allowed []string, p *string) *enumValue {
	return &enumValue{allowed: allowed, value: p}
}

func (e *enumValue) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

func (e *enumValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range e.allowed {
		if s == a {
			*e.value = s
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", strings.Join(e.allowed, "|"))
}

func (e *enumValue) Type() string { return strings.Join(e.allowed, "|") }

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var (
	flexibilityValues = []string{string(domain.FlexStrict), string(domain.FlexModerate), string(domain.FlexFlexible)}
	climateValues     = sortedKeys(domain.ValidClimateZones)
)

// enumFlag registers an enum flag with shell completion for its values.
func enumFlag(cmd *cobra.Command, p *string, name string, allowed []string, usage string) {
	cmd.Flags().Var(newEnumValue(allowed, p), name, usage)
	_ = cmd.RegisterFlagCompletionFunc(name, cobra.FixedCompletions(allowed, cobra.ShellCompDirectiveNoFileComp))
}

// floatFlag returns a pointer to v when the flag was set, nil otherwise.
func floatFlag(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}
