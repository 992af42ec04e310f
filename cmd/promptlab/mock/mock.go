package mockcmder

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/papercomputeco/promptlab/mockserver"
	"github.com/papercomputeco/promptlab/pkg/logger"
)

const mockLongDesc string = `Serve a local stand-in for the generateContent endpoint.

Replies echo the last message unless --reply is set. --fail-status makes
every call fail, which is handy for trying the error paths.

Examples:
  promptlab mock-server --listen :8089
  GEMINI_BASE_URL=http://localhost:8089 GENAI_API_KEY=dev promptlab dynamic
  promptlab mock-server --fail-status 429`

const mockShortDesc string = "Run a local mock of the generateContent endpoint"

type mockCommander struct {
	listen     string
	apiKey     string
	reply      string
	failStatus int
	debug      bool
}

func NewMockServerCmd() *cobra.Command {
	cmder := &mockCommander{}

	cmd := &cobra.Command{
		Use:   "mock-server",
		Short: mockShortDesc,
		Long:  mockLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.listen, "listen", "l", ":8089", "Address to listen on")
	cmd.Flags().StringVar(&cmder.apiKey, "api-key", "", "Only accept this API key (default: any non-empty key)")
	cmd.Flags().StringVar(&cmder.reply, "reply", "", "Fixed reply text (default: echo the last message)")
	cmd.Flags().IntVar(&cmder.failStatus, "fail-status", 0, "Fail every generate call with this HTTP status")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *mockCommander) run() error {
	if err := validateFailStatus(c.failStatus); err != nil {
		return err
	}

	log := logger.NewServerLogger(c.debug)
	defer log.Sync()

	log.Debug("mock server configured",
		zap.String("listen", c.listen),
		zap.Bool("fixed_reply", c.reply != ""),
	)

	srv := mockserver.New(mockserver.Config{
		ListenAddr: c.listen,
		APIKey:     c.apiKey,
		Reply:      c.reply,
		FailStatus: c.failStatus,
	}, log)

	return srv.Run()
}

// validateFailStatus accepts 0 (never fail) or an HTTP error status.
func validateFailStatus(code int) error {
	if code == 0 || (code >= 400 && code <= 599) {
		return nil
	}
	return fmt.Errorf("invalid --fail-status %d: must be 0 or between 400 and 599", code)
}
