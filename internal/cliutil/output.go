package cliutil

import (
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// AddOutputFlags registers the --format and --template flags read by
// HandleOutput.
func AddOutputFlags(cmd *cobra.Command, defaultFormat string) {
	cmd.Flags().String("template", "", "Template for output format. Accepts Go template format (e.g. --template='{{.dir}}')")
	cmd.Flags().String("format", defaultFormat, "Output format. Accepts 'json' or 'yaml'")
}

// HandleOutput writes v to the command's output according to the template
// or format flag. v is converted through its JSON form first, so templates
// address fields by their JSON names.
func HandleOutput(cmd *cobra.Command, v any) error {
	templateFlag, _ := cmd.Flags().GetString("template")
	formatFlag, _ := cmd.Flags().GetString("format")

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	var result any
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("failed to decode output: %w", err)
	}

	if templateFlag != "" {
		tmpl, err := template.New("output").Parse(templateFlag)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}

		if err := tmpl.Execute(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to execute template: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}

	var output []byte

	switch formatFlag {
	case "yaml":
		output, err = yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal to YAML: %w", err)
		}
	case "json", "":
		output, err = json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q", formatFlag)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return nil
}
