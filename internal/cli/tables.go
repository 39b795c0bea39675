package cli

import (
	"github.com/spf13/cobra"

	"github.com/digicarbon/digicarbon/internal/config"
	"github.com/digicarbon/digicarbon/internal/footprint"
	"github.com/digicarbon/digicarbon/internal/tui"
)

// tablesOutput is the JSON shape of the lookup tables.
type tablesOutput struct {
	Devices map[string]footprint.DeviceSpec `json:"devices"`
	Tables  []footprint.Table               `json:"tables"`
}

// NewTablesCmd creates the tables command.
func NewTablesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Show the emission lookup tables",
		Example: `  # Print every table
  digicarbon tables

  # As JSON
  digicarbon tables --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := resolveOutputFormat(output)
			if err != nil {
				return err
			}
			if format == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), tablesOutput{
					Devices: footprint.DeviceCatalog,
					Tables:  footprint.Tables(),
				})
			}
			cmd.Println(tui.RenderTables())
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format: table or json (default from configuration)")
	return cmd
}
