package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/pmladder/internal/app"
	"github.com/abhisek/pmladder/internal/catalog"
	"github.com/abhisek/pmladder/internal/certification"
	"github.com/abhisek/pmladder/internal/llm"
	"github.com/abhisek/pmladder/internal/mentor"
	"github.com/abhisek/pmladder/internal/session"
)

// runApp builds the engine services and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	sess := session.NewDemoManager(catalog.Default())
	usage := llm.NewMemoryUsageLog()

	opts := app.Options{
		Session:  sess,
		Certs:    certification.NewEngine(sess),
		UsageLog: usage,
	}

	provider, err := llm.NewProviderFromEnv(ctx, usage)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI mentor and mock interviews will be unavailable.")
		opts.Mentor = mentor.NewService(nil, mentor.DefaultConfig())
	} else {
		opts.Mentor = mentor.NewService(provider, mentor.DefaultConfig())
	}

	return app.Run(opts)
}
