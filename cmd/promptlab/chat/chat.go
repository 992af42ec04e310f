package chatcmder

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/papercomputeco/promptlab/pkg/config"
	"github.com/papercomputeco/promptlab/pkg/gemini"
	"github.com/papercomputeco/promptlab/pkg/logger"
	"github.com/papercomputeco/promptlab/session"
)

const chatLongDesc string = `%s.

Reads one line at a time. "exit" or "quit" ends the session; every other
line is sent to the model together with this demo's example turns.

Configuration comes from the environment, a .env file in the working
directory, or a TOML file passed with --config:
  GENAI_API_KEY       API key (required)
  GEMINI_MODEL        model name (default gemini-2.0-flash)
  GEMINI_API_VERSION  API version (default v1beta)
  GEMINI_BASE_URL     endpoint root (default https://generativelanguage.googleapis.com)
  PROMPTLAB_TIMEOUT   request timeout (default 2m)`

const (
	backendREST = "rest"
	backendSDK  = "sdk"
)

type chatCommander struct {
	variant    session.Variant
	configPath string
	envFile    string
	backend    string
	markdown   bool
	debug      bool
}

// NewChatCmd builds the subcommand for one prompting demo.
func NewChatCmd(v session.Variant) *cobra.Command {
	cmder := &chatCommander{variant: v}

	cmd := &cobra.Command{
		Use:   v.Name,
		Short: v.Short,
		Long:  fmt.Sprintf(chatLongDesc, v.Short),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd.Context(), cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to a TOML config file")
	cmd.Flags().StringVar(&cmder.envFile, "env-file", config.DefaultEnvFile, "Path to a KEY=VALUE env file")
	cmd.Flags().StringVar(&cmder.backend, "backend", backendREST, "Client backend: rest or sdk")
	cmd.Flags().BoolVar(&cmder.markdown, "markdown", false, "Render replies as markdown (default: on for terminals)")
	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging on stderr")

	return cmd
}

func (c *chatCommander) run(ctx context.Context, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log := logger.NewLogger(c.debug)
	defer log.Sync()

	cfg, err := config.Load(config.Options{
		EnvFile:    c.envFile,
		ConfigFile: c.configPath,
	})
	if err != nil {
		return err
	}

	log.Debug("configuration loaded",
		zap.String("variant", c.variant.Name),
		zap.String("model", cfg.Model),
		zap.String("api_version", cfg.APIVersion),
		zap.String("backend", c.backend),
	)

	completer, err := c.newCompleter(ctx, cfg, log)
	if err != nil {
		return err
	}

	markdown := c.markdown
	if !cmd.Flags().Changed("markdown") {
		markdown = isTerminal(cmd.OutOrStdout())
	}

	s, err := session.New(session.Config{
		Variant:  c.variant,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		Markdown: markdown,
	}, completer, log)
	if err != nil {
		return err
	}

	return s.Run(ctx)
}

func (c *chatCommander) newCompleter(ctx context.Context, cfg *config.Config, log *zap.Logger) (session.Completer, error) {
	switch c.backend {
	case backendREST:
		return gemini.New(cfg, log), nil
	case backendSDK:
		return gemini.NewSDK(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown backend %q: want %s or %s", c.backend, backendREST, backendSDK)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
