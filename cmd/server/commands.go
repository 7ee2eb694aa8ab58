package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/manayush/ajax-new/internal/api"
	"github.com/manayush/ajax-new/internal/client"
	"github.com/manayush/ajax-new/internal/config"
	"github.com/manayush/ajax-new/internal/render"
)

const shutdownTimeout = 15 * time.Second

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "countrydetail",
		Short:         "Country detail pages backed by the REST Countries API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default: search ./config.yaml, ./config, $HOME/.countrydetail)")

	root.AddCommand(newServeCmd(&configPath), newRenderCmd(&configPath))
	return root
}

func newServeCmd(configPath *string) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve country detail pages over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			logger := cfg.NewLogger()
			slog.SetDefault(logger)
			return serve(cmd.Context(), cfg, logger)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8000, "port to listen on (overrides server.port)")

	return cmd
}

func newRenderCmd(configPath *string) *cobra.Command {
	var (
		country string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one country page to stdout",
		Example: `  # Full HTML document for Germany
  countrydetail render --country DE

  # Only the three regions
  countrydetail render --country DE --format yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "html" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (want html or yaml)", format)
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			logger := cfg.NewLoggerTo(cmd.ErrOrStderr())

			page := render.NewPage()
			renderErr := newRenderer(cfg, logger).Render(cmd.Context(), country, page)

			if err := writePage(cmd, page, format); err != nil {
				return err
			}
			if renderErr != nil && !render.IsRecoverable(renderErr) {
				return renderErr
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "2 or 3 letter country code")
	cmd.Flags().StringVar(&format, "format", "html", "output format: html or yaml")

	return cmd
}

func writePage(cmd *cobra.Command, page *render.Page, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		if err := enc.Encode(page); err != nil {
			return fmt.Errorf("failed to encode page: %w", err)
		}
		return enc.Close()
	}
	return page.WriteHTML(cmd.OutOrStdout())
}

func newRestCountriesClient(cfg *config.Config) *client.RestCountriesClient {
	restCountriesClient := client.NewRestCountriesClient(cfg.Client.Timeout)
	restCountriesClient.BaseURL = cfg.Client.BaseURL
	return restCountriesClient
}

func newRenderer(cfg *config.Config, logger *slog.Logger) *render.Renderer {
	var opts []render.Option
	if !cfg.Render.EscapeHTML {
		opts = append(opts, render.WithoutEscaping())
	}
	return render.New(newRestCountriesClient(cfg), logger, opts...)
}

// serve runs the HTTP server until ctx is canceled or the listener fails.
func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	gin.SetMode(cfg.Server.GinMode)

	restCountriesClient := newRestCountriesClient(cfg)
	countryHandler := api.NewCountryHandler(newRenderer(cfg, logger), restCountriesClient, logger)
	router := api.NewRouter(countryHandler, logger)

	server := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting", "addr", server.Addr)
		// ListenAndServe always returns a non-nil error; ErrServerClosed is the clean one.
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})

	return g.Wait()
}
