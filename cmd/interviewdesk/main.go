package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "interviewdesk/internal/llm/claude"
	_ "interviewdesk/internal/llm/deepseek"
	_ "interviewdesk/internal/llm/openai"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "interviewdesk",
		Short:         "Compare interview transcripts against their outline and export the result table",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newAnalyzeCmd(),
		newConvertCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "interviewdesk %s\n", version)
		},
	}
}
