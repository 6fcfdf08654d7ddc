package main

import (
	"context"
	"log/slog"
	"os"

	"affiliate/config"
	"affiliate/internal/delivery"
	"affiliate/internal/delivery/api"
	"affiliate/internal/delivery/api/router/handler"
	logs "affiliate/internal/infra/log"
	"affiliate/internal/infra/metrics"
	"affiliate/internal/infra/persistence"
	"affiliate/internal/infra/qrcode"
	"affiliate/internal/infra/referral"
	"affiliate/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		metrics.Provide,
		persistence.Provide,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			qrcode.ProvideQRCodeService,
			referral.ProvideGenerator,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProductService,
			impl.NewReferralService,
			impl.NewStatsService,
			impl.NewProfileService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProductHandler,
			handler.NewReferralHandler,
			handler.NewStatsHandler,
			handler.NewProfileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches the deliveries once every OnStart hook (store ping, migrations) has succeeded.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						os.Exit(1)
					}
				}()
			}

			return nil
		},
	})
}
