package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "jobdocs",
	Short: "Job-application document engine",
	Long: "jobdocs classifies a job posting into a role category and rewrites " +
		"the category's CV and cover-letter templates to emphasize the posting's " +
		"actual requirements.",
}
