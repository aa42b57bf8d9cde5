package commands

import (
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/pname/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation API over HTTP",
		Long: `Start a JSON HTTP API for physical name generation.

Endpoints:
  POST /api/generate             Generate a physical name
  GET  /api/dictionary           Dictionary size and load state
  POST /api/dictionary?format=   Replace the dictionary with the request body
  POST /api/dictionary/reload    Re-read the configured dictionary file
  GET  /api/dictionary/events    Server-sent events on dictionary changes
  GET  /healthz                  Liveness probe

With --watch the configured dictionary file is reloaded when it changes.`,
		Example: `  # Serve on the default address (:8080)
  pname serve --dictionary dict.csv

  # Serve on a custom address and reload the dictionary on change
  pname serve --addr 127.0.0.1:9000 --dictionary dict.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default \":8080\")")
	cmd.Flags().Bool("watch", false, "Reload the dictionary file when it changes")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(server.Config{
		Generator:        cc.Generator,
		Addr:             cc.Cfg.Server.Addr,
		Watch:            cc.Cfg.Server.Watch,
		DictionaryPath:   cc.Cfg.Dictionary,
		DictionaryFormat: cc.Cfg.Format,
		ShutdownTimeout:  cc.Cfg.Server.ShutdownTimeout,
		Logger:           cc.Logger,
	})

	if !cc.Cfg.Quiet {
		cc.Renderer.Success("Serving on " + cc.Cfg.Server.Addr)
		if cc.Cfg.Server.Watch && cc.Cfg.Dictionary != "" {
			cc.Renderer.Muted("Watching " + cc.Cfg.Dictionary)
		}
	}
	return srv.Serve(ctx)
}
