package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/riskibarqy/hoops-league/internal/config"
	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	cachedrepo "github.com/riskibarqy/hoops-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/csv"
	"github.com/riskibarqy/hoops-league/internal/interfaces/httpapi"
	platformcache "github.com/riskibarqy/hoops-league/internal/platform/cache"
	idgen "github.com/riskibarqy/hoops-league/internal/platform/id"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger, zapLogger *logging.Logger) (*http.Server, error) {
	store, err := csv.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open csv store at %s: %w", cfg.DataDir, err)
	}

	var (
		playerRepo   player.Repository        = csv.NewPlayerRepository(store)
		managerRepo  manager.Repository       = csv.NewManagerRepository(store)
		scheduleRepo schedule.Repository      = csv.NewScheduleRepository(store)
		configRepo   scoring.ConfigRepository = csv.NewScoringConfigRepository(store)
	)
	if cfg.CacheEnabled {
		cacheStore := platformcache.NewStore(cfg.CacheTTL)
		playerRepo = cachedrepo.NewCachedPlayerRepository(playerRepo, cacheStore)
		managerRepo = cachedrepo.NewCachedManagerRepository(managerRepo, cacheStore)
		scheduleRepo = cachedrepo.NewCachedScheduleRepository(scheduleRepo, cacheStore)
		configRepo = cachedrepo.NewCachedScoringConfigRepository(configRepo, cacheStore)
	}

	rosterRepo := csv.NewRosterRepository(store)
	lineupRepo := csv.NewLineupRepository(store)
	statsRepo := csv.NewGameStatsRepository(store)
	scoreRepo := csv.NewScoreRepository(store)
	standingsRepo := csv.NewStandingsRepository(store)
	draftRepo := csv.NewDraftRepository(store)
	tournamentRepo := csv.NewTournamentRepository(store)
	translogRepo := csv.NewTranslogRepository(store)

	lineupSvc := usecase.NewLineupService(
		lineupRepo,
		rosterRepo,
		managerRepo,
		scheduleRepo,
		translogRepo,
		idgen.NewRandomGenerator(),
		cfg.Timezone,
		cfg.ActiveSlots,
		cfg.SaveRetryAttempts,
		cfg.SaveRetryBackoffMin,
		cfg.SaveRetryBackoffMax,
		logger,
	)
	scoringSvc := usecase.NewScoringService(
		configRepo,
		scoreRepo,
		statsRepo,
		managerRepo,
		lineupSvc,
		cfg.RecalcWorkers,
		zapLogger,
	)
	standingsSvc := usecase.NewStandingsService(managerRepo, scoreRepo, standingsRepo, logger)
	draftSvc := usecase.NewDraftService(
		managerRepo,
		playerRepo,
		draftRepo,
		rosterRepo,
		cfg.ManagerCount,
		cfg.RosterSize,
		logger,
	)
	tournamentSvc := usecase.NewTournamentService(
		configRepo,
		statsRepo,
		playerRepo,
		standingsRepo,
		tournamentRepo,
		cfg.BracketSize,
		logger,
	)
	uploadSvc := usecase.NewUploadService(configRepo, statsRepo, playerRepo, scoringSvc, zapLogger)
	playerStatsSvc := usecase.NewPlayerStatsService(playerRepo, scoreRepo, logger)
	recapSvc := usecase.NewRecapService(scoreRepo, lineupRepo, playerRepo, managerRepo, logger)
	backupSvc := usecase.NewBackupService(cfg.DataDir, cfg.BackupDir, logger)

	handler := httpapi.NewHandler(
		lineupSvc,
		scoringSvc,
		standingsSvc,
		draftSvc,
		tournamentSvc,
		uploadSvc,
		playerStatsSvc,
		recapSvc,
		backupSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
