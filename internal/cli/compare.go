package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wlantools/wlcdiff/pkg/compare"
	"github.com/wlantools/wlcdiff/pkg/matcher"
	"github.com/wlantools/wlcdiff/pkg/policy"
	"github.com/wlantools/wlcdiff/pkg/snapshot"
)

func newCompareCmd() *cobra.Command {
	var (
		outputFormat string
		policyFile   string
		threshold    float64
		skipSections []string
		onlyChanges  bool
		parallel     bool
	)

	cmd := &cobra.Command{
		Use:   "compare <source> <dest>",
		Short: "Compare two configuration snapshot files",
		Long: `Compare two configuration snapshot files (JSON or YAML).

Each file maps section names (venues, wlans, apGroups, ...) to arrays of
configuration objects, as returned by the controller API.

Examples:
  wlcdiff compare tenant-a.json tenant-b.json
  wlcdiff compare src.json dst.json -o json --skip-section aps
  wlcdiff compare src.json dst.json --threshold 0.7 --only-changes`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := snapshot.Load(args[0])
			if err != nil {
				return fmt.Errorf("failed to load source snapshot: %w", err)
			}
			dest, err := snapshot.Load(args[1])
			if err != nil {
				return fmt.Errorf("failed to load destination snapshot: %w", err)
			}

			registry, err := loadRegistry(policyFile)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("threshold") {
				threshold = viper.GetFloat64(ConfigKeyDefaultThreshold)
			}

			comparator := compare.NewWithOptions(registry, compare.Options{
				Threshold:    threshold,
				SkipSections: skipSections,
				Parallel:     parallel,
			})
			report := comparator.Compare(source, dest)

			if onlyChanges {
				report = pruneUnchanged(report)
			}

			switch outputFormat {
			case "json":
				return marshalJSON(report)
			case "yaml":
				return marshalYAML(report)
			default:
				return printReportTable(report)
			}
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().StringVar(&policyFile, "policy-file", "", "YAML file overriding the built-in matching policies")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Similarity threshold for matching (0,1]; default from policy")
	cmd.Flags().StringArrayVar(&skipSections, "skip-section", nil, "Section to skip entirely (repeatable)")
	cmd.Flags().BoolVar(&onlyChanges, "only-changes", false, "Hide matched items without field changes")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "Compare sections concurrently")

	return cmd
}

func loadRegistry(policyFile string) (*policy.Registry, error) {
	if policyFile == "" {
		return policy.Default(), nil
	}
	registry, err := policy.LoadFile(policyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy file: %w", err)
	}
	return registry, nil
}

// pruneUnchanged drops matched records with no field changes. One-sided
// records always survive; they are changes by definition.
func pruneUnchanged(report *compare.Report) *compare.Report {
	pruned := *report
	pruned.Sections = nil

	for _, section := range report.Sections {
		kept := section
		kept.Records = nil
		for _, rec := range section.Records {
			if rec.MatchType == matcher.MatchTypeMatched && len(rec.FieldChanges) == 0 {
				continue
			}
			kept.Records = append(kept.Records, rec)
		}
		pruned.Sections = append(pruned.Sections, kept)
	}

	return &pruned
}
