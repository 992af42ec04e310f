package chatcmder

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/papercomputeco/promptlab/mockserver"
	"github.com/papercomputeco/promptlab/pkg/config"
	"github.com/papercomputeco/promptlab/session"
)

// setEnv sets key for the running test and restores the previous value after it.
func setEnv(key, value string) {
	prev, had := os.LookupEnv(key)
	DeferCleanup(func() {
		if had {
			os.Setenv(key, prev)
		} else {
			os.Unsetenv(key)
		}
	})
	if value == "" {
		os.Unsetenv(key)
	} else {
		os.Setenv(key, value)
	}
}

var _ = Describe("Chat Command", func() {
	var (
		ctx     context.Context
		out     *bytes.Buffer
		envFile string
	)

	BeforeEach(func() {
		ctx = context.Background()
		out = &bytes.Buffer{}
		envFile = filepath.Join(GinkgoT().TempDir(), ".env")

		setEnv(config.EnvAPIKey, "")
		setEnv(config.EnvModel, "test-model")
		setEnv(config.EnvAPIVersion, "v1beta")
		setEnv(config.EnvBaseURL, "")
		setEnv(config.EnvTimeout, "5s")
	})

	startServer := func(cfg mockserver.Config) string {
		srv := mockserver.New(cfg, zap.NewNop())

		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())

		go func() {
			_ = srv.RunWithListener(listener)
		}()
		DeferCleanup(func() { _ = srv.Shutdown() })

		return "http://" + listener.Addr().String()
	}

	execute := func(v session.Variant, input string, args ...string) error {
		cmd := NewChatCmd(v)
		cmd.SetIn(strings.NewReader(input))
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--env-file", envFile}, args...))
		return cmd.ExecuteContext(ctx)
	}

	It("fails before prompting when no API key is configured", func() {
		err := execute(session.Dynamic, "hello\n")

		var verr config.ValidationError
		Expect(err).To(BeAssignableToTypeOf(verr))
		Expect(err.Error()).To(ContainSubstring("GENAI_API_KEY"))
		Expect(out.String()).NotTo(ContainSubstring("User: "))
		Expect(out.String()).NotTo(ContainSubstring("Welcome"))
	})

	It("reads the API key from the env file", func() {
		baseURL := startServer(mockserver.Config{APIKey: "from-file", Reply: "hi there"})
		setEnv(config.EnvBaseURL, baseURL)
		Expect(os.WriteFile(envFile, []byte("GENAI_API_KEY=from-file\n"), 0o600)).To(Succeed())

		Expect(execute(session.Basic, "hello\nexit\n")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Gemini: hi there\n"))
	})

	It("prints the reply from the service", func() {
		baseURL := startServer(mockserver.Config{Reply: "hi there"})
		setEnv(config.EnvAPIKey, "secret")
		setEnv(config.EnvBaseURL, baseURL)

		Expect(execute(session.Dynamic, "hello\nexit\n")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Gemini: hi there\n"))
		Expect(out.String()).To(ContainSubstring("Goodbye! You can always come back"))
	})

	It("keeps prompting after a 429", func() {
		baseURL := startServer(mockserver.Config{FailStatus: 429})
		setEnv(config.EnvAPIKey, "secret")
		setEnv(config.EnvBaseURL, baseURL)

		Expect(execute(session.Dynamic, "hello\nadd\nq\na\nlist\nexit\n")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("Error: 429 - Too Many Requests"))
		Expect(out.String()).To(ContainSubstring("RESOURCE_EXHAUSTED"))
		Expect(out.String()).To(ContainSubstring("  1. User: q\n     Model: a\n"))
	})

	It("rejects unknown backends", func() {
		setEnv(config.EnvAPIKey, "secret")

		err := execute(session.Basic, "", "--backend", "grpc")
		Expect(err).To(MatchError(ContainSubstring(`unknown backend "grpc"`)))
	})

	It("does not treat a buffer as a terminal", func() {
		Expect(isTerminal(&bytes.Buffer{})).To(BeFalse())
	})
})
