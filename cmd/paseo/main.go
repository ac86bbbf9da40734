package main

import (
	"context"
	"log/slog"
	"os"

	"paseo/config"
	"paseo/internal/delivery"
	"paseo/internal/delivery/http"
	httpmw "paseo/internal/delivery/http/middleware"
	"paseo/internal/delivery/http/router/handler"
	deliverymw "paseo/internal/delivery/middleware"
	"paseo/internal/infra/auth"
	"paseo/internal/infra/geocoding"
	logs "paseo/internal/infra/log"
	"paseo/internal/infra/persistence/postgres"
	"paseo/internal/infra/pubsub"
	"paseo/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewWalkRepository,
			postgres.NewWalkMapRepository,
			postgres.NewReceiptRepository,
			postgres.NewWalkerSettingsProvider,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			geocoding.NewResolver,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewWalkService,
			impl.NewTrackingService,
			impl.NewReceiptService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmw.NewAuthMiddleware,
			httpmw.NewErrorMiddleware,
			deliverymw.NewRequestIDMiddleware,
			deliverymw.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWalkHandler,
			handler.NewTrackingHandler,
			handler.NewReceiptHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
