package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/valuekit"
	"github.com/comalice/valuekit/internal/production"
)

// counter is the state the demo handles mutate. Handles reach it as a
// package-level variable, never through a capture.
var counter int

func increment() { counter++ }
func double() { counter *= 2 }
func reset() { counter = 0 }
func noop() {}

var handles = map[string]func(){
	"increment": increment,
	"double":    double,
	"reset":     reset,
	"noop":      noop,
}

type callReport struct {
	Kind    string   `json:"kind" yaml:"kind" toml:"kind"`
	Calls   []string `json:"calls" yaml:"calls" toml:"calls"`
	Counter int      `json:"counter" yaml:"counter" toml:"counter"`
}

func (r callReport) Text() string {
	return fmt.Sprintf("%s: %s -> counter=%d\n", r.Kind, strings.Join(r.Calls, ","), r.Counter)
}

func handleNames() []string {
	names := make([]string, 0, len(handles))
	for name := range handles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// wrap builds the handle type named by kind through its strict constructor.
func wrap(kind string, fn func()) (production.Callable, error) {
	switch kind {
	case "fn":
		return valuekit.NewCopyFnStrict(fn)
	case "mut":
		return valuekit.NewCopyFnMutStrict(fn)
	case "once":
		return valuekit.NewCopyFnOnceStrict(fn)
	default:
		return nil, fmt.Errorf("unknown handle kind %q: must be fn, mut or once", kind)
	}
}

func newCallCmd(a *app) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "call <handle>...",
		Short: "Invoke demo function handles in order",
		Long: fmt.Sprintf(`Wrap each named demo function in a CopyFn handle and invoke it.

Handles: %s. They share one package-level counter starting at 0.
A "once" handle is invoked a single time per argument; repeating a name
creates a fresh handle.

Examples:
  valuekit call increment increment double
  valuekit call --kind once --log-level debug increment`, strings.Join(handleNames(), ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counter = 0
			inv := production.NewLoggingInvoker(production.DefaultInvoker{}, a.log)
			for _, name := range args {
				fn, ok := handles[name]
				if !ok {
					return fmt.Errorf("unknown handle %q: must be one of %s", name, strings.Join(handleNames(), ", "))
				}
				h, err := wrap(kind, fn)
				if err != nil {
					return err
				}
				inv.Invoke(h)
			}
			return render(a.stdout, a.cfg.Output.Format, callReport{Kind: kind, Calls: args, Counter: counter})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "fn", "handle kind: fn, mut or once")
	return cmd
}
