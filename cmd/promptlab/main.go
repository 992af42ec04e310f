package main

import (
	"os"

	"github.com/spf13/cobra"

	chatcmder "github.com/papercomputeco/promptlab/cmd/promptlab/chat"
	mockcmder "github.com/papercomputeco/promptlab/cmd/promptlab/mock"
	"github.com/papercomputeco/promptlab/session"
)

// Version is set at build time via ldflags.
var Version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promptlab",
		Short: "Prompting demos against the Gemini generateContent API",
		Long: `promptlab runs small console chats against Gemini, one subcommand per
prompting technique: plain messages, one-shot and multi-shot examples,
examples edited during the session, naive function calling and token
estimates.`,
		SilenceUsage: true,
		Version:      Version,
	}
	cmd.SetVersionTemplate("promptlab version {{.Version}}\n")

	for _, v := range session.Variants() {
		cmd.AddCommand(chatcmder.NewChatCmd(v))
	}
	cmd.AddCommand(mockcmder.NewMockServerCmd())

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
