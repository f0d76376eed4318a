package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the translations directory",
	Long: `Loads every translation file and runs the full structural validation:
homogeneous namespace/leaf levels, registry-valid language codes, and
balanced template braces. Exits non-zero on the first failing file.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	coll := engine.Collection()
	fmt.Printf("OK: %d file(s) loaded\n", coll.Len())
	for _, id := range coll.Identifiers() {
		fmt.Printf("  %s\n", id)
	}
	return nil
}
