package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"personal-agent/config"
	"personal-agent/internal/agent"
	"personal-agent/internal/agent/orchestrator"
	"personal-agent/internal/agent/tools"
	"personal-agent/internal/assistant"
	assistantUC "personal-agent/internal/assistant/usecase"
	"personal-agent/internal/capability"
	"personal-agent/internal/extractor"
	"personal-agent/internal/model"
	localNotes "personal-agent/internal/notes/local"
	"personal-agent/internal/oracle"
	"personal-agent/internal/routing"
	"personal-agent/internal/routing/mangle"
	"personal-agent/pkg/datemath"
	"personal-agent/pkg/log"
	"personal-agent/pkg/openmeteo"
)

// One-shot CLI for poking the assistant without the HTTP server. Runs
// fully offline: heuristic extraction, deterministic routing, stub tiers
// behind the local tools.
func main() {
	mode := flag.String("mode", "chat", "route | chat | run")
	text := flag.String("text", "", "user utterance")
	maxTurns := flag.Int("max-turns", 0, "agent turn limit (0 = default)")
	user := flag.String("user", "cli", "user scope")
	location := flag.String("location", "", "override the extracted location")
	recipient := flag.String("recipient", "", "override the extracted recipient")
	date := flag.String("date", "", "override the extracted date")
	source := flag.String("source", "", "source preference: notes | files | either")
	flag.Parse()

	if *text == "" && flag.NArg() > 0 {
		*text = strings.Join(flag.Args(), " ")
	}
	if *text == "" {
		fmt.Fprintln(os.Stderr, "usage: assistant [-mode route|chat|run] -text \"...\"")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "warn",
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: false,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uc, err := buildUseCase(cfg, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to wire assistant: ", err)
		os.Exit(1)
	}

	sc := model.Scope{UserID: *user}
	overrides := cliOverrides(*location, *recipient, *date, *source)
	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")

	switch *mode {
	case "route":
		res, rErr := uc.Route(ctx, sc, assistant.RouteInput{Text: *text, Overrides: overrides})
		if rErr != nil {
			fmt.Fprintln(os.Stderr, "route failed: ", rErr)
			os.Exit(1)
		}
		fmt.Println(res.Decision.Canonical())
		_ = out.Encode(res)

	case "chat":
		res, cErr := uc.Chat(ctx, sc, assistant.ChatInput{Text: *text, Overrides: overrides, MaxTurns: *maxTurns})
		if cErr != nil {
			fmt.Fprintln(os.Stderr, "chat failed: ", cErr)
			os.Exit(1)
		}
		fmt.Println(res.Answer)

	case "run":
		stream := json.NewEncoder(os.Stdout)
		for ev := range uc.Run(ctx, sc, assistant.RunInput{Text: *text, MaxTurns: *maxTurns}) {
			_ = stream.Encode(ev)
		}

	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", *mode)
		os.Exit(2)
	}
}

// cliOverrides maps the override flags onto the extractor overlay.
// Empty flags leave the extracted value untouched.
func cliOverrides(location, recipient, date, source string) extractor.Overrides {
	return extractor.Overrides{
		Location:  location,
		Recipient: recipient,
		Date:      date,
		Source:    source,
	}
}

// buildUseCase wires the deterministic stack against the local backends.
func buildUseCase(cfg *config.Config, logger log.Logger) (assistant.UseCase, error) {
	dates, err := datemath.NewParser(cfg.GoogleCalendar.Timezone)
	if err != nil {
		dates, _ = datemath.NewParser("UTC")
	}

	localRepo, err := localNotes.NewRepository(cfg.Notes.LocalDir)
	if err != nil {
		return nil, err
	}
	filesRepo, err := localNotes.NewRepository(cfg.Files.RootDir)
	if err != nil {
		return nil, err
	}
	weatherClient, err := openmeteo.New(openmeteo.Config{
		ForecastURL:  cfg.OpenMeteo.ForecastURL,
		GeocodingURL: cfg.OpenMeteo.GeocodingURL,
	})
	if err != nil {
		return nil, err
	}

	registry := agent.NewToolRegistry()
	registry.Register(agent.NewTiered(logger, tools.NewSearchNotesTool(localRepo), tools.NewStubSearchNotesTool()))
	registry.Register(agent.NewTiered(logger, tools.NewSearchFilesTool(filesRepo), tools.NewStubSearchFilesTool()))
	registry.Register(agent.NewTiered(logger, tools.NewGetWeatherTool(weatherClient, dates), tools.NewStubWeatherTool()))
	registry.Register(tools.NewDraftEmailTool())
	registry.Register(agent.NewTiered(logger, tools.NewCreateTodoTool(localRepo, dates), tools.NewStubTodoTool()))

	heuristic := extractor.NewHeuristic()
	caps := capability.Default()
	engine := routing.NewChain(logger, routing.NewNative(caps), mangle.New(caps), routing.NewStub())

	orch := orchestrator.New(oracle.NewStub(heuristic, engine, logger), registry, logger, orchestrator.Config{
		MaxTurns:    cfg.Agent.MaxTurns,
		MaxSessions: cfg.Agent.SessionLimit,
	})

	return assistantUC.New(logger, heuristic, engine, registry, orch), nil
}
