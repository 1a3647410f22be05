package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pmladder",
	Short: "Terminal learning platform for product managers",
	Long: "PM Ladder — a terminal app for climbing the product-management career " +
		"ladder: tiered courses, a timed placement assessment, certificates, and an " +
		"AI mentor.\n\nSet PMLADDER_LLM_PROVIDER and the matching API key (or just " +
		"GEMINI_API_KEY / OPENAI_API_KEY / ANTHROPIC_API_KEY / OPENROUTER_API_KEY) " +
		"to enable the AI mentor and mock interviews.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
