// Command seed imports the demo catalog, or wipes products and clicks with -d.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"affiliate/config"
	"affiliate/internal/domain/lifecycle"
	logs "affiliate/internal/infra/log"
	"affiliate/internal/infra/persistence"
	"affiliate/internal/infra/referral"
	"affiliate/internal/usecase"
	"affiliate/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	destroy := flag.Bool("d", false, "delete all products and clicks instead of importing")
	flag.Parse()

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			persistence.Provide,
			referral.ProvideGenerator,
			impl.NewSeedService,
		),
		fx.Invoke(func(seeder usecase.SeedUsecase, logger *slog.Logger, lc fx.Lifecycle, shutdowner fx.Shutdowner) {
			lc.Append(fx.Hook{
				OnStart: func(context.Context) error {
					go func() {
						exitCode := 0
						if err := run(seeder, *destroy); err != nil {
							logger.Error("Seeding failed", slog.Any("error", err))
							exitCode = 1
						}
						_ = shutdowner.Shutdown(fx.ExitCode(exitCode))
					}()

					return nil
				},
			})
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		slog.Error("Failed to start seeder", slog.Any("error", err))
		os.Exit(1)
	}

	sig := <-app.Wait()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	_ = app.Stop(stopCtx)

	os.Exit(sig.ExitCode)
}

func run(seeder usecase.SeedUsecase, destroy bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if destroy {
		return seeder.Destroy(ctx)
	}

	profile, products, err := loadCatalog(catalogYAML)
	if err != nil {
		return err
	}

	return seeder.Import(ctx, profile, products)
}
