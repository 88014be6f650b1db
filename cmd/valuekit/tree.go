package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comalice/valuekit"
	"github.com/comalice/valuekit/builder"
	"github.com/comalice/valuekit/internal/production"
)

type treeOutput struct {
	Roots []valuekit.NodeID              `json:"roots" yaml:"roots" toml:"roots"`
	Tree  valuekit.ArenaSnapshot[string] `json:"tree" yaml:"tree" toml:"tree"`
	dot   string
}

func (o treeOutput) Text() string { return o.dot }

func newTreeCmd(a *app) *cobra.Command {
	var saveDir string
	cmd := &cobra.Command{
		Use:   "tree <file>",
		Short: "Build an arena tree from a YAML spec",
		Long: `Build an arena tree from a YAML spec and export it.

A spec is a node with a value and optional children, or a list of them:

  value: root
  children:
    - value: a
    - value: b

Text output is Graphviz DOT; structured formats print the arena snapshot.
With --save the snapshot is also persisted to DIR/<file base name>.<format>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			specs, err := builder.ParseYAML[string](data)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}
			arena, roots := builder.Build(specs...)
			a.log.Debug("tree built", zap.Int("nodes", arena.Len()), zap.Int("roots", len(roots)))

			if saveDir != "" {
				if err := a.saveTree(cmd, saveDir, args[0], arena); err != nil {
					return err
				}
			}

			vis := &production.TreeVisualizer[string]{}
			return render(a.stdout, a.cfg.Output.Format, treeOutput{
				Roots: roots,
				Tree:  arena.Snapshot(),
				dot:   vis.ExportDOT(arena, roots),
			})
		},
	}
	cmd.Flags().StringVar(&saveDir, "save", "", "persist the snapshot into this directory")
	return cmd
}

func (a *app) saveTree(cmd *cobra.Command, dir, source string, arena *valuekit.Arena[string]) error {
	format := a.cfg.Output.Format
	if format == "text" {
		format = "json"
	}
	codec, ok := production.CodecFor(format)
	if !ok {
		return fmt.Errorf("unsupported snapshot format %q", format)
	}
	p, err := production.NewFilePersister[string](dir, codec)
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	if err := p.Save(cmd.Context(), name, arena); err != nil {
		return err
	}
	a.log.Info("tree saved", zap.String("path", p.Path(name)))
	return nil
}
