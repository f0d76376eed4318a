package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/translatable/pkg/lang"
)

var languagesCmd = &cobra.Command{
	Use:   "languages [fragment]",
	Short: "List valid language codes",
	Long: `Lists the ISO 639-1 registry. With a fragment argument, only entries
whose code or English name contains the fragment are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

func runLanguages(cmd *cobra.Command, args []string) error {
	fragment := ""
	if len(args) == 1 {
		fragment = args[0]
	}

	matches := lang.Suggest(fragment)
	if len(matches) == 0 {
		return fmt.Errorf("no language matches %q", fragment)
	}

	for _, s := range matches {
		fmt.Printf("%s  %s\n", s.Code, s.Name)
	}
	return nil
}
