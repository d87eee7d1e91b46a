package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	logging "github.com/ipfs/go-log/v2"

	dbsqlite "github.com/Arhan13/codegen/internal/adapters/db/sqlite"
	expcsv "github.com/Arhan13/codegen/internal/adapters/exporter/csv"
	expjson "github.com/Arhan13/codegen/internal/adapters/exporter/i18njson"
	exportreg "github.com/Arhan13/codegen/internal/adapters/exporter/registry"
	extreg "github.com/Arhan13/codegen/internal/adapters/extract/registry"
	"github.com/Arhan13/codegen/internal/adapters/extract/tcall"
	llmfactory "github.com/Arhan13/codegen/internal/adapters/llm/factory"
	promptRenderer "github.com/Arhan13/codegen/internal/adapters/prompt"
	apiapp "github.com/Arhan13/codegen/internal/api/app"
	"github.com/Arhan13/codegen/internal/config"
	exporterusecase "github.com/Arhan13/codegen/internal/usecase/exporter"
	generatorusecase "github.com/Arhan13/codegen/internal/usecase/generator"
	localizerusecase "github.com/Arhan13/codegen/internal/usecase/localizer"
)

var log = logging.Logger("main")

var configPath string

func init() {
	defaultConfigPath := filepath.FromSlash("./codegen.toml")
	flag.StringVar(&configPath, "config", defaultConfigPath, "Full `path` and file name to the config file")
}

func main() {
	flag.Parse()
	logging.SetAllLoggers(logging.LevelInfo)
	if lvl := os.Getenv("CODEGEN_LOG_LEVEL"); lvl != "" {
		_ = logging.SetLogLevel("*", lvl)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Database and repositories
	db, err := dbsqlite.Init(cfg.DB.File)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()
	localizationRepo := dbsqlite.NewLocalizationRepo(db)
	componentRepo := dbsqlite.NewComponentRepo(db)
	conversationRepo := dbsqlite.NewConversationRepo(db)
	templateRepo := dbsqlite.NewTemplateRepo(db)
	settingsRepo := dbsqlite.NewSettingsRepo(db)

	// Extractor registry. Register extractors directly to keep wiring explicit.
	extractors := extreg.New()
	extractors.Register(tcall.New())
	extractor, _ := extractors.Get("tcall")

	// LLM provider
	provider, ok := llmfactory.FromConfig(cfg.Provider)
	if !ok {
		log.Fatalf("unsupported provider: %s", cfg.Provider.Type)
	}

	// Prompt renderer and pipeline
	pr := promptRenderer.New(templateRepo)
	locSvc := localizerusecase.New(localizerusecase.Deps{
		Extractor:        extractor,
		Localizations:    localizationRepo,
		Prompt:           pr,
		Provider:         provider,
		Model:            cfg.Provider.Model,
		TranslateTimeout: time.Duration(cfg.Pipeline.TranslateTimeoutSeconds) * time.Second,
	})
	genSvc := generatorusecase.New(generatorusecase.Deps{
		Components:      componentRepo,
		Conversations:   conversationRepo,
		Prompt:          pr,
		Provider:        provider,
		Localizer:       locSvc,
		Settings:        settingsRepo,
		GenerateTimeout: time.Duration(cfg.Pipeline.GenerateTimeoutSeconds) * time.Second,
	})

	// Exporters and service
	expReg := exportreg.New()
	expReg.Register(expjson.New())
	expReg.Register(expcsv.New())
	expSvc := exporterusecase.New(localizationRepo, expReg)

	srv := apiapp.NewServer(genSvc, expSvc, componentRepo, localizationRepo, conversationRepo, provider)
	if err := srv.Serve(cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
