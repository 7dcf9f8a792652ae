package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formselect/pkg/render"
	"github.com/goliatone/go-formselect/pkg/renderers/text"
	"github.com/goliatone/go-formselect/pkg/renderers/vanilla"
)

func newRenderCmd() *cobra.Command {
	flags := &controlFlags{}
	var (
		format        string
		output        string
		defaultStyles bool
		width         int
	)

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render a select control as HTML or terminal text.",
		Example: "formselect render --id size --label Size --placeholder Choose --items sizes.yaml",
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

			registry, err := newRegistry(defaultStyles, width)
			if err != nil {
				return err
			}
			renderer, err := registry.Get(format)
			if err != nil {
				return fmt.Errorf("%w (available: %v)", err, registry.List())
			}

			out, err := renderer.Render(ctx, cfg, opts)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			log.Info("control written", "path", output, "renderer", renderer.Name(), "content_type", renderer.ContentType())
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "vanilla", "renderer to use (vanilla, text)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&defaultStyles, "default-styles", false, "inline the bundled stylesheet (vanilla)")
	cmd.Flags().IntVar(&width, "width", 0, "frame width (text)")
	return cmd
}

func newRegistry(defaultStyles bool, width int) (*render.Registry, error) {
	var htmlOptions []vanilla.Option
	if defaultStyles {
		htmlOptions = append(htmlOptions, vanilla.WithDefaultStyles())
	}
	html, err := vanilla.New(htmlOptions...)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	registry.MustRegister(html)
	registry.MustRegister(text.New(text.WithWidth(width)))
	return registry, nil
}
