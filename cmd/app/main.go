package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"babyjournal/cmd"
	httpin "babyjournal/internal/adapters/in/http"
	"babyjournal/internal/adapters/out/postgres"
	"babyjournal/internal/core/application/reorder"
	"babyjournal/internal/core/domain/model/gallery"
	"babyjournal/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("babyjournal: %v", err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "babyjournal",
		Short:         "Baby journal gallery service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return c.Help()
		},
	}

	root.PersistentFlags().StringP("log", "l", "info", "Set log level. Available: debug, info, warn, error")
	root.PersistentPreRun = func(c *cobra.Command, _ []string) {
		levelStr, _ := c.Flags().GetString("log")
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLevel(levelStr),
		})))
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newReorderCmd())
	return root
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// bootstrap loads the config and opens the database.
func bootstrap() (cmd.Config, *cmd.CompositionRoot, error) {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return cmd.Config{}, nil, err
	}

	db, err := cmd.OpenDatabase(configs)
	if err != nil {
		return cmd.Config{}, nil, fmt.Errorf("connect to database: %w", err)
	}

	return configs, cmd.NewCompositionRoot(configs, db, slog.Default()), nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			configs, app, err := bootstrap()
			if err != nil {
				return err
			}

			jobManager := app.CreateJobManager()
			if err = jobManager.StartAll(); err != nil {
				return err
			}
			defer jobManager.StopAll()

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = startWebServer(ctx, app, configs.HTTPPort)
			app.WaitGalleries()
			return err
		},
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load API document: %w", err)
	}

	validator, err := httpin.RequestValidator(doc)
	if err != nil {
		return fmt.Errorf("build request validator: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if err = httpin.RegisterSwagger(e, doc); err != nil {
		return err
	}
	servers.RegisterHandlers(e, app.CreateServer())

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the gallery tables",
		RunE: func(_ *cobra.Command, _ []string) error {
			configs, err := cmd.LoadConfig()
			if err != nil {
				return err
			}

			db, err := cmd.OpenDatabase(configs)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			if err = postgres.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			slog.Info("Migration finished")
			return nil
		},
	}
}

func newReorderCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "reorder",
		Short: "Move one item of a gallery list and store the new order",
		Example: "  babyjournal reorder --kind photo --from 1 --to 3\n" +
			"  babyjournal reorder --kind photo --tag travel --from 0 --to 1",
		RunE: func(c *cobra.Command, _ []string) error {
			kindStr, _ := c.Flags().GetString("kind")
			tag, _ := c.Flags().GetString("tag")
			from, _ := c.Flags().GetInt("from")
			to, _ := c.Flags().GetInt("to")

			kind, err := gallery.ParseKind(kindStr)
			if err != nil {
				return err
			}

			_, app, err := bootstrap()
			if err != nil {
				return err
			}

			coordinator := app.CreateGallery(kind)
			if err = coordinator.FetchAll(c.Context()); err != nil {
				return err
			}

			if err = coordinator.ApplyDrag(c.Context(), reorder.Drag{Tag: tag, Source: from, Destination: &to}); err != nil {
				return err
			}
			coordinator.Wait()

			view := coordinator.View(tag)
			if view.Failed {
				return view.Err
			}
			for i, item := range view.Items {
				fmt.Fprintf(c.OutOrStdout(), "%d\t%s\t%s\n", i, item.ID(), item.Title())
			}
			return nil
		},
	}

	c.Flags().String("kind", "photo", "Gallery kind: photo, milestone or record")
	c.Flags().String("tag", "", "Reorder only the items carrying this tag")
	c.Flags().Int("from", 0, "Index of the item to move")
	c.Flags().Int("to", 0, "Index to move it to")
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	return c
}
