package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncobase/svcresp/net/resp"
	"github.com/spf13/cobra"
)

// NewRenderCommand creates the render command
func NewRenderCommand(a *app) *cobra.Command {
	var (
		file    string
		format  string
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a response directive (JSON or YAML) to its final shape",
		Example: `  svcresp render -f created.yaml
  svcresp render -f - --compact < error.json
  svcresp render -f created.yaml --format xml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDirective(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			b, err := a.factory.Build(d)
			if err != nil {
				return err
			}

			out := a.cfg.Response.Format
			if format != "" {
				if out, err = resp.ParseFormat(format); err != nil {
					return err
				}
			}

			opts := a.factory.EncodeOptions()
			if compact {
				opts = append(opts, resp.Compact())
			}

			body, err := resp.Marshal(b.ToStructured(), out, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(body))
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "directive file, - reads JSON from stdin")
	cmd.Flags().StringVar(&format, "format", "", "output format: json, xml or text (default from config)")
	cmd.Flags().BoolVar(&compact, "compact", false, "disable indentation")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readDirective(stdin io.Reader, file string) (resp.Directive, error) {
	if file == "-" {
		return resp.DecodeJSONDirective(stdin)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read directive: %w", err)
	}

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return resp.DecodeYAMLDirective(data)
	}
	return resp.DecodeJSONDirective(strings.NewReader(string(data)))
}
