package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/aiwatch-dev/aiwatch/pkg/cli/config"
	controller "github.com/aiwatch-dev/aiwatch/pkg/controller/http"
	"github.com/aiwatch-dev/aiwatch/pkg/service/export"
	"github.com/aiwatch-dev/aiwatch/pkg/service/spam"
	"github.com/aiwatch-dev/aiwatch/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		firestoreCfg config.Firestore
		llmCfg       config.LLM
		taxonomyCfg  config.Taxonomy
	)

	flags := joinFlags(
		serverCfg.Flags(),
		firestoreCfg.Flags(),
		llmCfg.Flags(),
		taxonomyCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting aiwatch server",
				slog.Any("server", serverCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("llm", llmCfg),
			)

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			taxonomy, err := taxonomyCfg.Configure(ctx)
			if err != nil {
				return err
			}

			reportOpts := []usecase.ReportsOption{}
			if taxonomy != nil {
				reportOpts = append(reportOpts, usecase.WithTaxonomy(taxonomy))
			}
			if llmClient := llmCfg.ConfigureOptional(ctx, logger); llmClient != nil {
				reportOpts = append(reportOpts, usecase.WithSpamFilter(spam.New(llmClient)))
			}

			subscriptionsUC := usecase.NewSubscriptions(repo)
			uc := &controller.UseCases{
				Statistics:    usecase.NewStatistics(repo),
				Articles:      usecase.NewArticles(repo),
				Reports:       usecase.NewReports(repo, reportOpts...),
				Subscriptions: subscriptionsUC,
				APIKeys:       usecase.NewAPIKeys(repo),
			}

			scheduler, err := export.NewScheduler(ctx, subscriptionsUC, serverCfg.ExportSchedule)
			if err != nil {
				return goerr.Wrap(err, "failed to create export scheduler",
					goerr.V("schedule", serverCfg.ExportSchedule))
			}
			scheduler.Start()
			defer scheduler.Stop()

			server := controller.NewServer(ctx, serverCfg.Addr, uc, serverCfg.Origins())

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
