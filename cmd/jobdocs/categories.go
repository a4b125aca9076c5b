package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobdocs/internal/registry"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the role-category catalog",
	RunE:  runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	reg, err := registry.NewRegistry(registry.DefaultCategories())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRIORITY\tMIN SHARE\tKEYWORDS")
	for _, cat := range reg.Categories() {
		gate := "-"
		if cat.MinShare > 0 {
			gate = fmt.Sprintf("%.0f%%", cat.MinShare*100)
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\n",
			cat.ID, cat.DisplayName, cat.Priority, gate, len(cat.Keywords))
	}
	return w.Flush()
}
