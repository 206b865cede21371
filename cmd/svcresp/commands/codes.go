package commands

import (
	"fmt"
	"io"

	"github.com/ncobase/svcresp/ecode"
	"github.com/spf13/cobra"
)

// NewCodesCommand creates the codes command
func NewCodesCommand(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "List the active success and error codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			b := a.factory.New()

			switch kind {
			case "success":
				return printTable(out, b.AllowedSuccessCodes())
			case "error":
				return printTable(out, b.AllowedErrorCodes())
			case "", "all":
				if err := printTable(out, b.AllowedSuccessCodes()); err != nil {
					return err
				}
				return printTable(out, b.AllowedErrorCodes())
			}
			return fmt.Errorf("unknown kind %q, want success, error or all", kind)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "all", "success, error or all")
	return cmd
}

func printTable(w io.Writer, t ecode.Table) error {
	for _, code := range t.Keys() {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", code, t[code]); err != nil {
			return err
		}
	}
	return nil
}
