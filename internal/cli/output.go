package cli

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/wlantools/wlcdiff/pkg/compare"
	"github.com/wlantools/wlcdiff/pkg/matcher"
	"github.com/wlantools/wlcdiff/pkg/snapshot"
)

// printReportTable renders a comparison report as plain text.
func printReportTable(report *compare.Report) error {
	fmt.Printf("Comparison: %s\n", report.ID)
	fmt.Printf("Threshold:  %.2f\n", report.Threshold)
	fmt.Printf("Summary:    %d matched, %d source-only, %d dest-only\n",
		report.Matched, report.SourceOnly, report.DestOnly)

	for _, section := range report.Sections {
		fmt.Println()
		fmt.Printf("Section: %s (%d matched, %d source-only, %d dest-only)\n",
			section.Section, section.Matched, section.SourceOnly, section.DestOnly)

		for _, rec := range section.Records {
			printRecord(rec)
		}
	}

	if report.IsClean() {
		fmt.Println()
		fmt.Println("No differences found.")
	}
	return nil
}

func printRecord(rec matcher.Record) {
	switch rec.MatchType {
	case matcher.MatchTypeMatched:
		fmt.Printf("  = %-30s score %.2f\n", itemLabel(rec.Source), rec.Score)
		for _, change := range rec.FieldChanges {
			marker := " "
			if change.Important {
				marker = "!"
			}
			fmt.Printf("    %s %s: %s -> %s\n",
				marker, change.Path, formatValue(change.Source), formatValue(change.Dest))
		}
	case matcher.MatchTypeSourceOnly:
		fmt.Printf("  - %-30s source only\n", itemLabel(rec.Source))
	case matcher.MatchTypeDestOnly:
		fmt.Printf("  + %-30s dest only\n", itemLabel(rec.Dest))
	}
}

// itemLabel picks a human-readable identifier for an item.
func itemLabel(item snapshot.Item) string {
	for _, key := range []string{"name", "ssid", "id"} {
		if v, ok := item[key].(string); ok && v != "" {
			return v
		}
	}
	return "(unnamed)"
}

func formatValue(v interface{}) string {
	if v == nil {
		return "<absent>"
	}
	return fmt.Sprintf("%v", v)
}

// marshalJSON outputs a value as indented JSON.
func marshalJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// marshalYAML outputs a value as YAML.
func marshalYAML(v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
