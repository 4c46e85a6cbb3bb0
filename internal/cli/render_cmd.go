package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arborfield/phyloreduce/pkg/errors"
	"github.com/arborfield/phyloreduce/pkg/hasse"
	"github.com/arborfield/phyloreduce/pkg/matrix"
	"github.com/arborfield/phyloreduce/pkg/render/nodelink"
)

// renderCommand dumps the red-black graph a matrix file produces, or the
// maximal reducible graph / Hasse diagram of its first driver iteration,
// as Graphviz DOT or rendered SVG.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		afterGm bool
		svg     bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "render <matrix-file>",
		Short: "Render a matrix file's red-black graph or Hasse diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			g, err := matrix.ReadFile(ctx, args[0])
			if err != nil {
				printError("failed to read %s: %s", args[0], errors.UserMessage(err))
				os.Exit(2)
				return nil
			}

			var dot string
			if afterGm {
				gm := g.MaximalReducibleGraph(true)
				diagram := hasse.Build(g, gm)
				dot = nodelink.DiagramDOT(diagram, nodelink.Options{})
			} else {
				dot = nodelink.GraphDOT(g, nodelink.Options{})
			}

			var data []byte
			if svg {
				data, err = nodelink.RenderSVG(dot)
				if err != nil {
					return err
				}
			} else {
				data = []byte(dot)
			}

			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			return os.WriteFile(output, data, 0o644)
		},
	}

	cmd.Flags().BoolVar(&afterGm, "after-gm", false, "render the maximal reducible graph's Hasse diagram instead of the initial graph")
	cmd.Flags().BoolVar(&svg, "svg", false, "render SVG instead of raw DOT")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}
