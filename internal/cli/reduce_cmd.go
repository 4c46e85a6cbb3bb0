package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arborfield/phyloreduce/pkg/errors"
	"github.com/arborfield/phyloreduce/pkg/matrix"
	"github.com/arborfield/phyloreduce/pkg/observability"
	"github.com/arborfield/phyloreduce/pkg/reduce"
)

// reduceCommand runs the reduction engine over a matrix file.
func (c *CLI) reduceCommand() *cobra.Command {
	var (
		exhaustive  bool
		interactive bool
		nthSource   int
		tui         bool
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "reduce <matrix-file>",
		Short: "Reduce a species-character matrix to a persistent phylogeny",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cfg.logLevel() == LogDebug {
				c.SetLogLevel(LogDebug)
			}

			if !cmd.Flags().Changed("exhaustive") {
				exhaustive = cfg.Exhaustive
			}
			if !cmd.Flags().Changed("interactive") {
				interactive = cfg.Interactive
			}
			if !cmd.Flags().Changed("nth-source") {
				nthSource = cfg.NthSource
			}
			if !cmd.Flags().Changed("tui") {
				tui = cfg.TUI
			}

			runID := uuid.New().String()
			logger := c.Logger.With("run", runID)
			ctx := withLogger(cmd.Context(), logger)

			g, err := matrix.ReadFile(ctx, args[0])
			if err != nil {
				printError("failed to read %s: %s", args[0], errors.UserMessage(err))
				os.Exit(2)
				return nil
			}

			policy := reduce.Policy{
				Hooks: &cliReductionHooks{logger: logger},
			}
			switch {
			case interactive && tui:
				policy.Mode = reduce.Interactive
				policy.Prompt = TUIPrompter{}
			case interactive:
				policy.Mode = reduce.Interactive
				policy.Prompt = stdinPrompter{}
			case exhaustive:
				policy.Mode = reduce.Exhaustive
			case cmd.Flags().Changed("nth-source") || cfg.NthSource != 0:
				policy.Mode = reduce.Nth
				policy.NthIndex = nthSource
			default:
				policy.Mode = reduce.FirstFound
			}

			applied, err := reduce.Reduce(ctx, g, policy)
			if err != nil {
				if errors.Is(err, errors.ErrCodeNoReduction) {
					printError("no safe source: %s", errors.UserMessage(err))
					os.Exit(1)
					return nil
				}
				return err
			}

			parts := make([]string, len(applied))
			for i, sc := range applied {
				parts[i] = sc.String()
			}
			fmt.Println(strings.Join(parts, " "))

			if reduce.IsPartial(applied) {
				printWarning("Partial: realization loses a character before gaining it")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&exhaustive, "exhaustive", false, "try every safe source, keep the first that reduces fully")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for a safe source when more than one is available")
	cmd.Flags().IntVar(&nthSource, "nth-source", 0, "always pick the Nth safe source (0-based)")
	cmd.Flags().BoolVar(&tui, "tui", false, "use the bubbletea list picker instead of stdin prompts (requires --interactive)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (default ~/.config/phyloreduce/config.toml)")

	return cmd
}

// stdinPrompter implements [reduce.SourcePrompter] by reading a 0-based
// index from stdin, re-prompting on invalid input.
type stdinPrompter struct{}

func (stdinPrompter) PromptSource(ctx context.Context, options []reduce.SourceOption) (int, error) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("Multiple safe sources are available:")
		for i, opt := range options {
			fmt.Printf("  [%d] species=%v characters=%v\n", i, opt.Species, opt.Characters)
		}
		fmt.Print("Choose a source (0-based index): ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("reading source choice: %w", err)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || idx < 0 || idx >= len(options) {
			fmt.Println("invalid choice, try again")
			continue
		}
		return idx, nil
	}
}

// cliReductionHooks reports reduction progress through the command's
// logger instead of stdout, keeping the printed output limited to the
// final signed-character sequence.
type cliReductionHooks struct {
	logger interface {
		Debugf(format string, args ...any)
	}
}

func (h *cliReductionHooks) OnFreeCharacter(ctx context.Context, character string) {
	h.logger.Debugf("free character realized as loss: %s", character)
}

func (h *cliReductionHooks) OnUniversalCharacter(ctx context.Context, character string) {
	h.logger.Debugf("universal character realized as gain: %s", character)
}

func (h *cliReductionHooks) OnComponentSplit(ctx context.Context, components int) {
	h.logger.Debugf("graph split into %d components", components)
}

func (h *cliReductionHooks) OnSafeSourcesFound(ctx context.Context, count int) {
	h.logger.Debugf("found %d safe source(s)", count)
}

func (h *cliReductionHooks) OnSourceSelected(ctx context.Context, species []string) {
	h.logger.Debugf("selected source: %v", species)
}

func (h *cliReductionHooks) OnRealize(ctx context.Context, applied []string) {
	h.logger.Debugf("realized: %v", applied)
}

func (h *cliReductionHooks) OnNoReduction(ctx context.Context) {
	h.logger.Debugf("no safe source found")
}

var _ observability.ReductionHooks = (*cliReductionHooks)(nil)
