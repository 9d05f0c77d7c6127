package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personal-agent/config"
	_ "personal-agent/docs" // Swagger docs
	"personal-agent/internal/agent"
	"personal-agent/internal/agent/orchestrator"
	"personal-agent/internal/agent/tools"
	assistantHTTP "personal-agent/internal/assistant/delivery/http"
	tgDelivery "personal-agent/internal/assistant/delivery/telegram"
	assistantUC "personal-agent/internal/assistant/usecase"
	"personal-agent/internal/capability"
	"personal-agent/internal/extractor"
	"personal-agent/internal/httpserver"
	"personal-agent/internal/notes"
	localNotes "personal-agent/internal/notes/local"
	memosNotes "personal-agent/internal/notes/memos"
	"personal-agent/internal/oracle"
	"personal-agent/internal/routing"
	"personal-agent/internal/routing/mangle"
	"personal-agent/pkg/datemath"
	"personal-agent/pkg/gcalendar"
	"personal-agent/pkg/llmprovider"
	"personal-agent/pkg/log"
	"personal-agent/pkg/openmeteo"
	"personal-agent/pkg/telegram"
)

// @title       Personal Agent API
// @description Intent-routing assistant with a turn-bounded agent loop over notes, files, weather, email drafts and reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting personal agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parsing
	dates, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.GoogleCalendar.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 4. Tools
	localRepo, err := localNotes.NewRepository(cfg.Notes.LocalDir)
	if err != nil {
		logger.Errorf(ctx, "Failed to open local notes dir %s: %v", cfg.Notes.LocalDir, err)
		return
	}
	filesRepo, err := localNotes.NewRepository(cfg.Files.RootDir)
	if err != nil {
		logger.Errorf(ctx, "Failed to open files dir %s: %v", cfg.Files.RootDir, err)
		return
	}

	weatherClient, err := openmeteo.New(openmeteo.Config{
		ForecastURL:  cfg.OpenMeteo.ForecastURL,
		GeocodingURL: cfg.OpenMeteo.GeocodingURL,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to init Open-Meteo client: %v", err)
		return
	}

	registry := agent.NewToolRegistry()

	var notesTiers []agent.Tool
	if cfg.Memos.AccessToken != "" {
		memosRepo := memosNotes.NewRepository(memosNotes.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken), logger)
		notesTiers = append(notesTiers, tools.NewSearchNotesTool(memosRepo))
		logger.Info(ctx, "Memos notes backend initialized")
	}
	notesTiers = append(notesTiers, tools.NewSearchNotesTool(localRepo), tools.NewStubSearchNotesTool())
	registry.Register(agent.NewTiered(logger, notesTiers...))

	registry.Register(agent.NewTiered(logger,
		tools.NewSearchFilesTool(filesRepo),
		tools.NewStubSearchFilesTool(),
	))
	registry.Register(agent.NewTiered(logger,
		tools.NewGetWeatherTool(weatherClient, dates),
		tools.NewStubWeatherTool(),
	))
	registry.Register(tools.NewDraftEmailTool())
	registry.Register(agent.NewTiered(logger, todoTiers(ctx, cfg, logger, localRepo, dates)...))

	// 5. LLM manager (optional; the deterministic tiers cover its absence)
	var manager *llmprovider.Manager
	if len(cfg.LLM.Providers) > 0 {
		providers, pErr := llmprovider.InitializeProviders(&cfg.LLM)
		if pErr != nil {
			logger.Warnf(ctx, "LLM providers unavailable: %v", pErr)
		} else {
			manager = llmprovider.NewManager(providers, &llmprovider.Config{
				FallbackEnabled: cfg.LLM.FallbackEnabled,
				RetryAttempts:   cfg.LLM.RetryAttempts,
				RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
				MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
			}, logger)
			logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))
		}
	}

	// 6. Extraction + decision engine
	heuristic := extractor.NewHeuristic()
	var extract extractor.Extractor = heuristic
	if manager != nil {
		extract = extractor.NewLLM(manager, logger)
	}

	caps := capability.Default()
	engine := routing.NewChain(logger, routing.NewNative(caps), mangle.New(caps), routing.NewStub())

	// 7. Oracle + orchestrator
	var decider oracle.Oracle = oracle.NewStub(heuristic, engine, logger)
	if manager != nil {
		decider = oracle.NewChain(logger, oracle.NewLLM(manager, registry, logger), decider)
	}

	orch := orchestrator.New(decider, registry, logger, orchestrator.Config{
		MaxTurns:        cfg.Agent.MaxTurns,
		SessionTTL:      parseDuration(cfg.Agent.SessionTTL, 10*time.Minute),
		MaxSessions:     cfg.Agent.SessionLimit,
		OraclePerMinute: cfg.Agent.OracleCallsPerMin,
	})

	// 8. Assistant domain
	uc := assistantUC.New(logger, extract, engine, registry, orch)
	httpHandler := assistantHTTP.New(logger, uc)

	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, uc, bot)
		registerTelegramWebhook(ctx, cfg, logger, bot)
	}

	// 9. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		AssistantHandler: httpHandler,
		TelegramHandler:  telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// todoTiers assembles the create_todo fallback chain: notes repository,
// then Google Calendar when credentials are present, then the stub.
func todoTiers(ctx context.Context, cfg *config.Config, logger log.Logger, repo notes.Repository, dates *datemath.Parser) []agent.Tool {
	tiers := []agent.Tool{tools.NewCreateTodoTool(repo, dates)}

	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendar, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			tiers = append(tiers, tools.NewCalendarTodoTool(calendar, dates, cfg.GoogleCalendar.Timezone))
		}
	}

	return append(tiers, tools.NewStubTodoTool())
}

// registerTelegramWebhook points Telegram at this service, auto-detecting
// an ngrok tunnel when no public URL is configured.
func registerTelegramWebhook(ctx context.Context, cfg *config.Config, logger log.Logger, bot *telegram.Bot) {
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, "http://ngrok:4040")
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", ngrokURL)
		}
	}
	if webhookURL == "" {
		return
	}

	if err := bot.SetWebhook(webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
	} else {
		logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
	}
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
