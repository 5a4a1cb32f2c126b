package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pitehu/simbench/internal/projectconfig"
	"github.com/pitehu/simbench/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var port int
	var source string
	var noBrowser bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the local results explorer web server",
		Long: `Start the local results explorer web server.

The server loads result records from the configured source (a JSON file,
a directory of JSON shards, or an HTTP(S) URL), aggregates them by
question, and serves the explorer UI on localhost. When the source
cannot be loaded, a generated sample dataset is served instead so the
explorer remains usable.

Settings default from .simbench.yaml when present; flags override it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting working directory: %w", err)
			}
			cfg, err := projectconfig.Load(wd)
			if err != nil {
				return err
			}

			if port == 0 {
				port = cfg.Server.Port
			}
			if source == "" {
				source = cfg.Data.Source
			}
			if !noBrowser && cfg.Server.NoBrowser != nil {
				noBrowser = *cfg.Server.NoBrowser
			}

			srv, err := webserver.New(webserver.Config{
				Port:           port,
				Source:         source,
				SampleSize:     cfg.Sample.Size,
				SampleSeed:     cfg.Sample.Seed,
				PageSize:       cfg.Explorer.PageSize,
				Sort:           cfg.Explorer.Sort,
				AllowedOrigins: cfg.Server.CORSOrigins,
				NoBrowser:      noBrowser,
				Logger:         slog.Default(),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from .simbench.yaml)")
	cmd.Flags().StringVarP(&source, "data", "d", "", "Results source: JSON file, directory, or URL")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open the browser automatically")

	return cmd
}
