package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"favorites-conformance/internal/conformance/usecase"

	"github.com/spf13/cobra"
)

func newScenariosCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the built-in scenario catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := usecase.BuiltinCatalog()

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(scenarios)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tEXPECT\tSUMMARY")
			for _, sc := range scenarios {
				fmt.Fprintf(w, "%s\t%d\t%s\n", sc.Name, sc.Expect.Status, sc.Summary)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the catalog as JSON")

	return cmd
}
