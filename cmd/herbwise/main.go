package main

import (
	"context"
	"log/slog"
	"os"

	"herbwise/config"
	"herbwise/internal/delivery"
	"herbwise/internal/delivery/http"
	"herbwise/internal/delivery/http/middleware"
	"herbwise/internal/delivery/http/router/handler"
	"herbwise/internal/infra/auth"
	"herbwise/internal/infra/completion"
	"herbwise/internal/infra/kvstore"
	logs "herbwise/internal/infra/log"
	"herbwise/internal/infra/persistence/kv"
	"herbwise/internal/infra/persistence/memory"
	"herbwise/internal/infra/schedule"
	"herbwise/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		kvstore.NewFileStore,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewPlantRepository,
			memory.NewOfferRepository,
			kv.NewCartRepository,
			kv.NewOrderRepository,
			kv.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			completion.NewGeminiClient,
			schedule.NewTimerScheduler,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOfferService,
			impl.NewOrderService,
			impl.NewAuthService,
			impl.NewAssistantService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOfferHandler,
			handler.NewOrderHandler,
			handler.NewAssistantHandler,
			handler.NewSettingsHandler,
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
