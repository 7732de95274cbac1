package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/civicwatch/dossier/internal/catalog"
)

// catalogsCmd represents the catalogs command
var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "Print the rule catalogs as YAML",
	Long: `Catalogs dumps the five classification rule tables (corruption,
constitutional, human-rights, UNCRPD, vulnerable-population) so any finding
in a report can be audited against the exact rule that produced it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dump := map[string]interface{}{
			"corruption":            catalog.CorruptionRules,
			"constitution":          catalog.ConstitutionRules,
			"human_rights":          catalog.HumanRightsRules,
			"uncrpd":                catalog.UNCRPDRules,
			"vulnerable_population": catalog.VulnerableRules,
		}

		yamlData, err := yaml.Marshal(dump)
		if err != nil {
			return fmt.Errorf("marshal catalogs: %w", err)
		}
		fmt.Print(string(yamlData))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogsCmd)
}
