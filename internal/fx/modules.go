package fx

import (
	"wrestling-hub/internal/config"
	"wrestling-hub/internal/database"
	"wrestling-hub/internal/logger"
	"wrestling-hub/internal/repository"
	"wrestling-hub/internal/seed"
	"wrestling-hub/internal/server"
	"wrestling-hub/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideShowService(
	shows *repository.ShowRepository,
	wrestlers *repository.WrestlerRepository,
	titles *repository.ChampionshipRepository,
	resolver *service.TitleResolver,
	cfg *config.Config,
	log zerolog.Logger,
) *service.ShowService {
	return service.NewShowService(shows, wrestlers, titles, resolver, cfg.ExportDir, log)
}

func ProvideResolver(
	wrestlers *repository.WrestlerRepository,
	titles *repository.ChampionshipRepository,
	log zerolog.Logger,
) *service.TitleResolver {
	return service.NewTitleResolver(wrestlers, titles, log)
}

func ProvideEditorService(
	wrestlers *repository.WrestlerRepository,
	titles *repository.ChampionshipRepository,
	resolver *service.TitleResolver,
	log zerolog.Logger,
) *service.EditorService {
	return service.NewEditorService(wrestlers, titles, resolver, log)
}

func ProvideTransferService(
	wrestlers *repository.WrestlerRepository,
	titles *repository.ChampionshipRepository,
	resolver *service.TitleResolver,
	log zerolog.Logger,
) *service.TransferService {
	return service.NewTransferService(wrestlers, titles, resolver, log)
}

func ProvideReconciler(
	brands *repository.BrandRepository,
	wrestlers *repository.WrestlerRepository,
	titles *repository.ChampionshipRepository,
	shows *repository.ShowRepository,
	log zerolog.Logger,
) *seed.Reconciler {
	return seed.NewReconciler(brands, wrestlers, titles, shows, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	fx.Provide(database.New),
	// repos
	fx.Provide(repository.NewBrandRepository),
	fx.Provide(repository.NewWrestlerRepository),
	fx.Provide(repository.NewChampionshipRepository),
	fx.Provide(repository.NewShowRepository),
	fx.Provide(repository.NewNPCRepository),
	// svc
	fx.Provide(ProvideResolver),
	fx.Provide(ProvideShowService),
	fx.Provide(ProvideEditorService),
	fx.Provide(ProvideTransferService),
	fx.Provide(ProvideReconciler),
	// server
	fx.Provide(server.NewBookingServer),
)
