package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/racuca/AIHistoryLine/internal/config"
	"github.com/racuca/AIHistoryLine/internal/genai"
	"github.com/racuca/AIHistoryLine/internal/web"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web UI server",
	Long: `Start the AIHistoryLine web server.

Examples:
  aihistoryline serve
  aihistoryline serve --addr :9090`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "web server address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	client := newGenAIClient(cfg)
	server := web.NewServer(client)

	fmt.Printf("Starting web server at http://localhost%s\n", addr)
	return server.Run(addr)
}

// newGenAIClient builds the Gemini client from config plus the credential
// from the process environment. A missing key is not checked here; the
// first generation request reports it.
func newGenAIClient(cfg *config.Config) *genai.Client {
	return genai.NewClient(os.Getenv("GEMINI_API_KEY"), genai.Options{
		Model:   cfg.GenAI.Model,
		Timeout: time.Duration(cfg.GenAI.TimeoutSeconds) * time.Second,
	})
}
