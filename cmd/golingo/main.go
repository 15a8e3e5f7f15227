// Command golingo translates travel phrases and manages offline language packs.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/LinguaLabs/golingo"
	"github.com/LinguaLabs/golingo/cache"
	"github.com/LinguaLabs/golingo/internal/config"
	"github.com/LinguaLabs/golingo/internal/logging"
	"github.com/LinguaLabs/golingo/offline"
	"github.com/LinguaLabs/golingo/provider"
	"github.com/LinguaLabs/golingo/store"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = golingo.Version
	commit    = golingo.GitCommit
	buildDate = golingo.BuildDate
)

const usage = `Usage: golingo [flags] <command> [args]

Commands:
  translate <text>           Translate text between languages
  packs list                 List installed language packs
  packs download <code>      Download a language pack
  packs delete <code>        Delete a language pack
  offline on|off|status      Toggle or show offline mode
  cache clear                Drop all cached translations
  version                    Show version

Run 'golingo <command> -h' for command flags.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("golingo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Config file path (default: ./golingo.yaml)")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion || (fs.NArg() > 0 && fs.Arg(0) == "version") {
		printVersion(stdout)
		return nil
	}

	if fs.NArg() == 0 {
		fmt.Fprint(stderr, usage)
		return errors.New("a command is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg)
	if err != nil {
		return err
	}

	app, err := newApp(cfg, log)
	if err != nil {
		return err
	}
	defer app.close()

	command, rest := fs.Arg(0), fs.Args()[1:]
	switch command {
	case "translate":
		return app.cmdTranslate(ctx, rest, stdout, stderr)
	case "packs":
		return app.cmdPacks(ctx, rest, stdout, stderr)
	case "offline":
		return app.cmdOffline(ctx, rest, stdout)
	case "cache":
		return app.cmdCache(ctx, rest, stdout)
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// app wires the store, cache, pack manager, and router from configuration.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	kv      store.KeyValueStore
	cache   *cache.Cache
	manager *offline.Manager
}

func newApp(cfg *config.Config, log *logrus.Logger) (*app, error) {
	kv, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	managerOpts := []offline.ManagerOption{
		offline.WithLogger(log),
		offline.WithFetcher(offline.SimulatedFetcher{Delay: cfg.Offline.DownloadDelay}),
	}
	if cfg.Store.Backend == "file" {
		managerOpts = append(managerOpts, offline.WithStorageMeter(offline.StatfsMeter{Path: cfg.Store.Path}))
	}

	return &app{
		cfg:     cfg,
		log:     log,
		kv:      kv,
		cache:   cache.New(kv, cache.WithDefaultTTL(cfg.Cache.TTL), cache.WithLogger(log)),
		manager: offline.NewManager(kv, managerOpts...),
	}, nil
}

func openStore(cfg *config.Config) (store.KeyValueStore, error) {
	switch cfg.Store.Backend {
	case "redis":
		return store.NewRedisStore(store.RedisConfig{URL: cfg.Store.RedisURL})
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return store.NewFileStore(cfg.Store.Path)
	}
}

func (a *app) close() {
	if closer, ok := a.kv.(io.Closer); ok {
		closer.Close()
	}
}

func (a *app) cmdTranslate(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	from := fs.String("from", "en", "Source language code")
	to := fs.String("to", "", "Target language code")
	mock := fs.Bool("mock", false, "Use the mock provider instead of OpenAI")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *to == "" {
		return errors.New("--to is required")
	}

	// Read text from args or stdin
	var text string
	if fs.NArg() > 0 {
		text = strings.Join(fs.Args(), " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}
	if text == "" {
		return errors.New("nothing to translate")
	}

	p, err := a.buildProvider(*mock)
	if err != nil {
		return err
	}

	router := golingo.NewRouter(p,
		golingo.WithOffline(a.manager),
		golingo.WithCache(a.cache),
		golingo.WithConnectivity(golingo.ProbeChecker{Addr: a.cfg.Online.ProbeAddr}),
		golingo.WithLogger(a.log),
	)

	result, err := router.Translate(ctx, text, *from, *to)
	if err != nil {
		return err
	}

	if *jsonOutput {
		return json.NewEncoder(stdout).Encode(map[string]interface{}{
			"text":          result.Text,
			"kind":          kindLabel(result.Kind),
			"source":        result.Source,
			"reason":        result.Reason,
			"informational": result.IsInformational(),
		})
	}

	switch result.Kind {
	case golingo.KindUnavailable:
		fmt.Fprintf(stdout, "! %s\n", result.Reason)
	case golingo.KindPlaceholder:
		fmt.Fprintf(stdout, "~ %s (no offline match)\n", result.Text)
	default:
		fmt.Fprintln(stdout, result.Text)
	}
	return nil
}

func (a *app) buildProvider(mock bool) (golingo.Provider, error) {
	if mock {
		return provider.NewMockProvider(), nil
	}

	key := a.cfg.Online.APIKey
	if key == "" {
		key = os.Getenv("OPENAI_API_KEY")
	}
	if key == "" {
		return nil, errors.New("API key required: set Online.APIKey or OPENAI_API_KEY (or use --mock)")
	}

	var p golingo.Provider = provider.NewOpenAIProvider(provider.OpenAIConfig{
		APIKey: key,
		Model:  a.cfg.Online.Model,
	})
	p = golingo.NewRateLimitedProvider(p, golingo.RateLimitConfig{
		RequestsPerMinute: a.cfg.Online.RequestsPerMinute,
	})
	retryCfg := golingo.DefaultRetryConfig()
	retryCfg.MaxRetries = a.cfg.Online.MaxRetries
	return golingo.NewRetryableProvider(p, retryCfg), nil
}

func (a *app) cmdPacks(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New("packs requires a subcommand: list, download, delete")
	}

	switch args[0] {
	case "list":
		packs := a.manager.InstalledPacks(ctx)
		if len(packs) == 0 {
			fmt.Fprintln(stdout, "no language packs installed")
			return nil
		}
		w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tQUALITY\tSIZE\tINSTALLED")
		for _, pack := range packs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d MB\t%s\n",
				pack.Code, pack.Name, pack.Quality, pack.SizeMB,
				pack.InstalledAt.Format("2006-01-02 15:04"))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "total: %d MB\n", a.manager.TotalStorageUsed(ctx))
		return nil

	case "download":
		fs := flag.NewFlagSet("packs download", flag.ContinueOnError)
		fs.SetOutput(stderr)
		name := fs.String("name", "", "Display name (default: derived from code)")
		quality := fs.String("quality", "standard", "Quality tier: basic, standard, premium")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() == 0 {
			return errors.New("packs download requires a language code")
		}

		pack, err := a.manager.DownloadPack(ctx, fs.Arg(0), *name, golingo.QualityTier(*quality))
		if err != nil {
			var insufficient *golingo.InsufficientStorageError
			if errors.As(err, &insufficient) {
				return fmt.Errorf("not enough space: the %s pack needs %d MB, only %d MB free",
					*quality, insufficient.RequiredMB, insufficient.AvailableMB)
			}
			return err
		}
		fmt.Fprintf(stdout, "installed %s (%s, %d MB)\n", pack.Name, pack.Quality, pack.SizeMB)
		return nil

	case "delete":
		if len(args) < 2 {
			return errors.New("packs delete requires a language code")
		}
		if err := a.manager.DeletePack(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "deleted pack %s\n", args[1])
		return nil

	default:
		return fmt.Errorf("unknown packs subcommand %q", args[0])
	}
}

func (a *app) cmdOffline(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		args = []string{"status"}
	}

	switch args[0] {
	case "on":
		if err := a.manager.SetOfflineMode(ctx, true); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "offline mode enabled")
	case "off":
		if err := a.manager.SetOfflineMode(ctx, false); err != nil {
			return err
		}
		fmt.Fprintln(stdout, "offline mode disabled")
	case "status":
		if a.manager.OfflineMode(ctx) {
			fmt.Fprintln(stdout, "offline mode: on")
		} else {
			fmt.Fprintln(stdout, "offline mode: off")
		}
	default:
		return fmt.Errorf("unknown offline subcommand %q", args[0])
	}
	return nil
}

func (a *app) cmdCache(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 || args[0] != "clear" {
		return errors.New("cache requires the 'clear' subcommand")
	}

	if err := a.cache.InvalidateAll(ctx); err != nil {
		return err
	}
	fmt.Fprintln(stdout, "translation cache cleared")
	return nil
}

func kindLabel(kind golingo.TranslationKind) string {
	switch kind {
	case golingo.KindPlaceholder:
		return "placeholder"
	case golingo.KindUnavailable:
		return "unavailable"
	default:
		return "translated"
	}
}

func printVersion(stdout io.Writer) {
	fmt.Fprintf(stdout, "%s %s\n", golingo.Name, version)
	if commit != "unknown" && commit != "" {
		fmt.Fprintf(stdout, "  commit:  %s\n", commit)
	}
	if buildDate != "unknown" && buildDate != "" {
		fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
	}
}
