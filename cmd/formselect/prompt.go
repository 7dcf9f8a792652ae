package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formselect/pkg/model"
	"github.com/goliatone/go-formselect/pkg/renderers/tui"
)

func newPromptCmd() *cobra.Command {
	flags := &controlFlags{}
	var (
		pretty   bool
		pageSize int
	)

	cmd := &cobra.Command{
		Use:     "prompt",
		Short:   "Ask for a choice interactively and print the selected value.",
		Example: "formselect prompt --id size --label Size --items sizes.yaml --pretty",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.valueSet = cmd.Flags().Changed("value")
			ctx := cmd.Context()

			cfg, err := flags.config(ctx)
			if err != nil {
				return err
			}
			opts, err := flags.renderOptions()
			if err != nil {
				return err
			}
			cfg.OnChange = func(selected model.Value, event model.ChangeEvent) {
				log.Debug("selection changed", "id", event.ControlID, "value", selected.String(), "entry", event.Node.Index)
			}

			format := tui.OutputFormatJSON
			if pretty {
				format = tui.OutputFormatPrettyText
			}
			renderer := tui.New(tui.WithOutputFormat(format), tui.WithPageSize(pageSize))

			out, err := renderer.Render(ctx, cfg, opts)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&pretty, "pretty", false, "print the bare value instead of JSON")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "entries visible at once")
	return cmd
}
