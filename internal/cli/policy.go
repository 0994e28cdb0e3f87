package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newPolicyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Inspect matching policies",
		Long:  `Commands for inspecting the per-section matching policies in effect.`,
	}

	cmd.AddCommand(newPolicyListCmd())
	cmd.AddCommand(newPolicyShowCmd())

	return cmd
}

func newPolicyListCmd() *cobra.Command {
	var policyFile string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured sections and their matching fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(policyFile)
			if err != nil {
				return err
			}

			fmt.Printf("Threshold: %.2f\n\n", registry.Threshold())
			fmt.Printf("%-16s %s\n", "SECTION", "MATCHING FIELDS")
			for _, section := range registry.Sections() {
				fmt.Printf("%-16s %s\n", section, strings.Join(registry.MatchingFields(section), ", "))
			}
			fmt.Printf("%-16s %s\n", "(default)", "name")

			fmt.Println()
			fmt.Printf("Ignored fields:   %s\n", strings.Join(registry.IgnoredFields(), ", "))
			fmt.Printf("Important fields: %s\n", strings.Join(registry.ImportantFields(), ", "))
			return nil
		},
	}

	cmd.Flags().StringVar(&policyFile, "policy-file", "", "YAML file overriding the built-in matching policies")

	return cmd
}

func newPolicyShowCmd() *cobra.Command {
	var policyFile string

	cmd := &cobra.Command{
		Use:   "show <section>",
		Short: "Show the effective matching policy for a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(policyFile)
			if err != nil {
				return err
			}

			section := args[0]
			fmt.Printf("Section:         %s\n", section)
			fmt.Printf("Matching fields: %s\n", strings.Join(registry.MatchingFields(section), ", "))
			if !registry.HasSection(section) {
				fmt.Println("Note:            no explicit policy; matching on the default name field")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policyFile, "policy-file", "", "YAML file overriding the built-in matching policies")

	return cmd
}
