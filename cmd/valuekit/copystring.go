package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/valuekit"
)

type copyStringReport struct {
	Capacity int      `json:"capacity" yaml:"capacity" toml:"capacity"`
	Len      int      `json:"len" yaml:"len" toml:"len"`
	Padding  int      `json:"padding" yaml:"padding" toml:"padding"`
	Trimmed  string   `json:"trimmed" yaml:"trimmed" toml:"trimmed"`
	Slots    []string `json:"slots" yaml:"slots" toml:"slots"`
}

func (r copyStringReport) Text() string {
	return fmt.Sprintf("capacity=%d len=%d padding=%d\ntext=%q\nslots=%s\n",
		r.Capacity, r.Len, r.Padding, r.Trimmed, strings.Join(r.Slots, " "))
}

// reportCopyString dispatches a runtime capacity to its array type. Every
// value in config.Capacities must have a case.
func reportCopyString(capacity int, text string) (copyStringReport, error) {
	switch capacity {
	case 8:
		return reportFor[[8]rune](text)
	case 16:
		return reportFor[[16]rune](text)
	case 32:
		return reportFor[[32]rune](text)
	case 64:
		return reportFor[[64]rune](text)
	case 128:
		return reportFor[[128]rune](text)
	case 256:
		return reportFor[[256]rune](text)
	default:
		return copyStringReport{}, fmt.Errorf("unsupported capacity %d", capacity)
	}
}

func reportFor[A valuekit.RuneArray](text string) (copyStringReport, error) {
	s, err := valuekit.NewCopyString[A](text)
	if err != nil {
		return copyStringReport{}, err
	}
	r := copyStringReport{
		Capacity: s.Cap(),
		Len:      s.Len(),
		Padding:  s.Cap() - s.Len(),
		Trimmed:  s.Trimmed(),
		Slots:    make([]string, s.Cap()),
	}
	for i := range r.Slots {
		r.Slots[i] = fmt.Sprintf("%U", s.At(i))
	}
	return r, nil
}

func newCopyStringCmd(a *app) *cobra.Command {
	var capacity int
	cmd := &cobra.Command{
		Use:   "copystring <text>",
		Short: "Store text in a fixed-capacity CopyString",
		Long: `Store text in a CopyString and print its slots.

Text longer than the capacity is rejected, never truncated.

Examples:
  valuekit copystring "Hello World"
  valuekit copystring --cap 8 -o yaml Hi`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("cap") {
				capacity = a.cfg.CopyString.Capacity
			}
			r, err := reportCopyString(capacity, args[0])
			if err != nil {
				a.log.Warn("copystring rejected", zap.Int("capacity", capacity), zap.Error(err))
				return err
			}
			return render(a.stdout, a.cfg.Output.Format, r)
		},
	}
	cmd.Flags().IntVar(&capacity, "cap", 0, "capacity in runes (default from config)")
	return cmd
}
