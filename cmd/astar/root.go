package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"gridpath/internal/logging"

	_ "gridpath/internal/layouts/clusters"
	_ "gridpath/internal/layouts/open"
	_ "gridpath/internal/layouts/scatter"
)

type rootOptions struct {
	log    logging.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: logging.DefaultConfig(), logger: logging.Discard()}
	root := &cobra.Command{
		Use:   "astar",
		Short: "Step-wise A* search on 4-connected grids",
		Long: `astar runs A* over grids with blocked cells, one expansion per step.

Examples:
  astar solve --layout clusters --seed 7     # solve a generated board
  astar solve maze.yaml --animate --tps 20  # watch a scenario unfold
  astar sweep --layout scatter --density 0.2,0.3,0.4
  astar serve --addr :8080                  # HTTP stepping API
  astar gui                                 # window (needs -tags ebiten)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(opts.log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	opts.log.Bind(root.PersistentFlags())

	root.AddCommand(
		newSolveCmd(opts),
		newSweepCmd(opts),
		newServeCmd(opts),
		newLayoutsCmd(),
		newGUICmd(opts),
	)
	return root
}
