package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/zombor/flightclaim/internal/aivision"
	"github.com/zombor/flightclaim/internal/airports"
	"github.com/zombor/flightclaim/internal/claim"
	"github.com/zombor/flightclaim/internal/extraction"
	"github.com/zombor/flightclaim/internal/ocrtext"
	"github.com/zombor/flightclaim/internal/quota"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("flightclaim")
	var (
		port            = fs.IntLong("port", 8080, "HTTP server port")
		dbPath          = fs.StringLong("db", "flightclaim.db", "Claim database file path")
		quotaDBPath     = fs.StringLong("quota-db", "flightclaim-quota.db", "AI quota database file path")
		storagePath     = fs.StringLong("storage", "./documents", "Storage directory path")
		maxBytes        = fs.IntLong("max-bytes", 15<<20, "Maximum upload size in bytes")
		aiProvider      = fs.StringLong("ai-provider", "gemini", "AI provider: 'gemini', 'ollama', or 'none'")
		geminiKey       = fs.StringLong("gemini-key", "", "Google Gemini API key (or set GEMINI_API_KEY env var)")
		geminiModel     = fs.StringLong("gemini-model", "gemini-2.5-pro", "Google Gemini model name")
		ollamaURL       = fs.StringLong("ollama-url", "http://localhost:11434", "Ollama API base URL")
		ollamaModel     = fs.StringLong("ollama-model", "llava", "Ollama model name (e.g., llava, qwen2-vl)")
		aiThreshold     = fs.Float64Long("ai-threshold", 0.9, "Skip AI and OCR above this overall confidence")
		aiTimeoutSecs   = fs.IntLong("ai-timeout", 45, "AI call timeout in seconds")
		quotaLimit      = fs.IntLong("quota-limit", 500, "Monthly AI call limit (0 disables the gate)")
		reviewThreshold = fs.Float64Long("review-threshold", 0.6, "Flag claims below this overall confidence for review")
		tesseractBin    = fs.StringLong("tesseract", "tesseract", "Path to the tesseract binary (empty disables OCR)")
		ocrLanguage     = fs.StringLong("ocr-language", "eng", "Tesseract language")
		ocrWindow       = fs.IntLong("ocr-proximity-window", 40, "Character distance for OCR keyword/value association")
		ocrMinFields    = fs.IntLong("ocr-min-fields", 3, "Minimum parsed fields for an OCR result to count")
		ocrMinDuration  = fs.DurationLong("ocr-min-flight-duration", 45*time.Minute, "Reject OCR arrival times closer than this to departure")
		airportBlock    = fs.StringLong("airport-blocklist", "", "Comma-separated extra terms never treated as airport codes")
		alertWebhook    = fs.StringLong("alert-webhook", "", "Webhook URL for admin alerts (optional)")
		authUser        = fs.StringLong("auth-user", "", "Basic auth username (optional)")
		authPass        = fs.StringLong("auth-pass", "", "Basic auth password (optional)")
		showVersion     = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("FLIGHTCLAIM"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	slog.Info("Initializing database...")
	db, err := claim.NewBoltDB(*dbPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var extractor aivision.Extractor
	switch *aiProvider {
	case "gemini":
		apiKey := *geminiKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			slog.Error("Gemini API key is required. Set --gemini-key flag or GEMINI_API_KEY environment variable")
			os.Exit(1)
		}
		slog.Info("Initializing Gemini extractor...", "model", *geminiModel)
		extractor, err = aivision.NewGemini(apiKey, *geminiModel)
		if err != nil {
			slog.Error("Failed to initialize Gemini", "error", err)
			os.Exit(1)
		}
	case "ollama":
		slog.Info("Initializing Ollama extractor...", "url", *ollamaURL, "model", *ollamaModel)
		extractor, err = aivision.NewOllama(*ollamaURL, *ollamaModel)
		if err != nil {
			slog.Error("Failed to initialize Ollama", "error", err)
			os.Exit(1)
		}
	case "none":
		slog.Info("AI extraction disabled")
	default:
		slog.Error("Invalid AI provider", "provider", *aiProvider, "valid", "gemini, ollama or none")
		os.Exit(1)
	}
	if extractor != nil {
		defer extractor.Close()
	}

	var counter quota.Counter
	if extractor != nil {
		counter, err = quota.NewBoltCounter(*quotaDBPath, *quotaLimit)
		if err != nil {
			slog.Error("Failed to initialize quota counter", "error", err)
			os.Exit(1)
		}
		defer counter.Close()
	}

	var notifier claim.Notifier = claim.NopNotifier{}
	if *alertWebhook != "" {
		notifier, err = claim.NewWebhookNotifier(*alertWebhook)
		if err != nil {
			slog.Error("Failed to initialize alert webhook", "error", err)
			os.Exit(1)
		}
	}

	var blocklist []string
	if *airportBlock != "" {
		for _, term := range strings.Split(*airportBlock, ",") {
			if term = strings.TrimSpace(term); term != "" {
				blocklist = append(blocklist, term)
			}
		}
	}
	index := airports.NewIndexWithBlocklist(blocklist)

	var runner *ocrtext.Runner
	if *tesseractBin != "" {
		cfg := ocrtext.DefaultConfig()
		cfg.ProximityWindow = *ocrWindow
		cfg.MinFields = *ocrMinFields
		cfg.MinFlightDuration = *ocrMinDuration
		parser := ocrtext.NewParser(cfg, index)
		runner = ocrtext.NewRunner(ocrtext.NewEngine(*tesseractBin, *ocrLanguage), parser, nil)
	} else {
		slog.Info("OCR disabled")
	}

	pipeline := extraction.NewPipeline(extraction.Config{
		Extractor:   extractor,
		Quota:       counter,
		Alerter:     notifier,
		Runner:      runner,
		Airports:    index,
		AIThreshold: *aiThreshold,
		AITimeout:   time.Duration(*aiTimeoutSecs) * time.Second,
		MaxBytes:    int64(*maxBytes),
	})

	slog.Info("Initializing storage...")
	store, err := claim.NewLocalStorage(*storagePath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	claimService := claim.NewService(db, pipeline, store, *reviewThreshold)

	basicAuth := claim.BasicAuth{
		Username: *authUser,
		Password: *authPass,
	}
	server := claim.NewServer(claimService, basicAuth)

	addr := fmt.Sprintf(":%d", *port)
	go func() {
		if err := server.Start(addr); err != nil {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Server started", "address", fmt.Sprintf("http://localhost%s", addr), "version", version)
	if *authUser != "" || *authPass != "" {
		slog.Info("Basic auth enabled", "user", *authUser)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down...")
}
