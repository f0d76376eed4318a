package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/translatable"
)

var flagBindings []string

var resolveCmd = &cobra.Command{
	Use:   "resolve <language> <path>",
	Short: "Resolve a translation path for a language",
	Long: `Resolves a dot-separated translation path for the given language and
prints the result. Placeholder bindings may be supplied with repeated
--set name=value flags; without them the raw template is printed.`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringArrayVar(&flagBindings, "set", nil, "placeholder binding, name=value (repeatable)")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	engine, err := loadEngine()
	if err != nil {
		return err
	}

	template, err := engine.Resolve(args[0], args[1])
	if err != nil {
		return err
	}

	bindings := make(translatable.M, len(flagBindings))
	for _, raw := range flagBindings {
		name, value, ok := strings.Cut(raw, "=")
		if !ok || name == "" {
			return fmt.Errorf("invalid --set value %q, want name=value", raw)
		}
		bindings[name] = value
	}

	fmt.Println(engine.Substitute(template, bindings))
	return nil
}
