package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gridpath/internal/app"
)

func newGUICmd(root *rootOptions) *cobra.Command {
	cfg := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive board",
		Long: `Open a window with the board and a side panel.

Keys: 1 start mode, 2 goal mode, 3 obstacle mode, click to apply,
Enter start/resume, Space pause, N single step, R reset search,
C clear board, L new layout, O toggle overlay, Q/Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Run(cfg, root.logger)
			if errors.Is(err, app.ErrGUIUnavailable) {
				return &exitError{code: 2, err: fmt.Errorf("%w; rebuild with `go build -tags ebiten ./cmd/astar`", err)}
			}
			return err
		},
	}
	cfg.Bind(cmd.Flags())
	return cmd
}
