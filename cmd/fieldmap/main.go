package main

import (
	"fmt"
	"os"
	"sort"

	"TRECGEN/internal/contract"
	"TRECGEN/internal/services"

	"github.com/spf13/cobra"
)

// fieldmap is a maintenance tool for the TREC 1-4 field map. The PDF field
// names embedded in the template change whenever TREC republishes the form,
// so the static map has to be re-verified against each new template revision.

var templatePath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "fieldmap",
		Short: "Inspect and verify the TREC 1-4 PDF field map",
	}
	rootCmd.PersistentFlags().StringVarP(&templatePath, "template", "t", "templates/trec-1-4.pdf", "path to the TREC 1-4 PDF template")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(verifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all form fields present in the template PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			templateService, err := services.NewTemplateService(templatePath)
			if err != nil {
				return err
			}

			fields, err := templateService.Fields()
			if err != nil {
				return err
			}

			sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })
			for _, f := range fields {
				fmt.Printf("%-12s %s\n", f.Type, f.Name)
			}
			fmt.Printf("\n%d fields\n", len(fields))
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the static field map against the template's actual fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			templateService, err := services.NewTemplateService(templatePath)
			if err != nil {
				return err
			}

			fields, err := templateService.Fields()
			if err != nil {
				return err
			}

			available := make(map[string]bool, len(fields))
			for _, f := range fields {
				available[f.Name] = true
			}

			var missing []string
			mapped := make(map[string]bool, len(contract.FieldMap))
			for _, entry := range contract.FieldMap {
				mapped[entry.PDFField] = true
				if !available[entry.PDFField] {
					missing = append(missing, fmt.Sprintf("%s -> %q", entry.Path, entry.PDFField))
				}
			}

			var unmapped []string
			for _, f := range fields {
				if !mapped[f.Name] {
					unmapped = append(unmapped, f.Name)
				}
			}

			sort.Strings(missing)
			sort.Strings(unmapped)

			if len(missing) > 0 {
				fmt.Printf("%d mapped fields missing from the template:\n", len(missing))
				for _, m := range missing {
					fmt.Printf("  %s\n", m)
				}
			}
			if len(unmapped) > 0 {
				fmt.Printf("%d template fields not covered by the map:\n", len(unmapped))
				for _, u := range unmapped {
					fmt.Printf("  %s\n", u)
				}
			}

			if len(missing) == 0 {
				fmt.Printf("field map OK: all %d mapped paths resolve (%d template fields unmapped)\n",
					len(contract.FieldMap), len(unmapped))
				return nil
			}
			return fmt.Errorf("field map verification failed: %d missing fields", len(missing))
		},
	}
}
