package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/valuekit"
)

type tristateReport struct {
	Input    string            `json:"input" yaml:"input" toml:"input"`
	Value    valuekit.Tristate `json:"value" yaml:"value" toml:"value"`
	Bool     bool              `json:"bool" yaml:"bool" toml:"bool"`
	Optional *bool             `json:"optional" yaml:"optional" toml:"optional,omitempty"`
	IsTrue   bool              `json:"is_true" yaml:"is_true" toml:"is_true"`
	IsFalse  bool              `json:"is_false" yaml:"is_false" toml:"is_false"`
	IsOther  bool              `json:"is_other" yaml:"is_other" toml:"is_other"`
}

type tristateOutput struct {
	Results []tristateReport `json:"results" yaml:"results" toml:"results"`
}

func (o tristateOutput) Text() string {
	var b strings.Builder
	for _, r := range o.Results {
		opt := "nil"
		if r.Optional != nil {
			opt = fmt.Sprintf("%v", *r.Optional)
		}
		fmt.Fprintf(&b, "%-8s value=%-5s bool=%-5v optional=%s\n", r.Input, r.Value, r.Bool, opt)
	}
	return b.String()
}

func newTristateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tristate <value>...",
		Short: "Parse tri-state values and show their conversions",
		Long: `Parse each argument as a tri-state value and print its conversions.

Accepted values: true/false in any form strconv.ParseBool accepts, and
else, unknown, null or "" for the third state.

Examples:
  valuekit tristate true else 0
  valuekit tristate -o json unknown`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := tristateOutput{Results: make([]tristateReport, 0, len(args))}
			for _, arg := range args {
				v, err := valuekit.ParseTristate(arg)
				if err != nil {
					return err
				}
				out.Results = append(out.Results, tristateReport{
					Input:    arg,
					Value:    v,
					Bool:     v.Bool(),
					Optional: v.Optional(),
					IsTrue:   v.IsTrue(),
					IsFalse:  v.IsFalse(),
					IsOther:  v.IsOther(),
				})
			}
			return render(a.stdout, a.cfg.Output.Format, out)
		},
	}
}
