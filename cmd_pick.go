package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addPickToRoot(cmd *cobra.Command) {
	var (
		opts     pickOpts
		pageSize uint
		view     string
		cfgPath  string
	)

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "file with one item per line")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", `file to write the selected item to ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.NumberOutput, "output-number", "n", "", "file to write the 1-based number of the selected item to")
	cmd.Flags().BoolVarP(&opts.Reverse, "reverse", "r", false, "reverse the item order")
	cmd.Flags().UintVarP(&pageSize, "page-size", "p", defaultPageSize, "items per page")
	cmd.Flags().StringVarP(&view, "view", "v", defaultView, `"all" shows the key help and page counter, anything else hides them`)
	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "YAML file with default options")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("page-size") {
			switch {
			case pageSize == 0:
				return fmt.Errorf("page size must be at least 1")
			case pageSize > maxPageSize:
				return fmt.Errorf("page size must be at most %d, got %d", maxPageSize, pageSize)
			}
		}
		opts.PageSize = int(pageSize)
		opts.View = parseViewMode(view)

		var cfg config
		if cfgPath != "" {
			var err error
			cfg, err = loadConfig(cfgPath)
			if err != nil {
				return err
			}
		}
		resolved := cfg.apply(opts, cmd.Flags().Changed)

		t := openTerminal(cmd.Context(), resolved.Output == stdoutSink)
		return runPick(resolved, pickEnv{
			stdout: cmd.OutOrStdout(),
			stderr: cmd.ErrOrStderr(),
			ui:     t.out,
			run:    t.run,
		})
	}
}
