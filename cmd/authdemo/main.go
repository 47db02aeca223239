package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/learnstack/demo-console/internal/console"
	"github.com/learnstack/demo-console/internal/core/ports"
	"github.com/learnstack/demo-console/internal/core/service"
	"github.com/learnstack/demo-console/internal/infrastructure/config"
	"github.com/learnstack/demo-console/internal/infrastructure/rest"
	filestore "github.com/learnstack/demo-console/internal/infrastructure/store/file"
	redisstore "github.com/learnstack/demo-console/internal/infrastructure/store/redis"
	"github.com/learnstack/demo-console/internal/metrics"
	"github.com/learnstack/demo-console/pkg/logger"
)

const appName = "authdemo"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	store, err := buildStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise session storage")
	}

	if cfg.MetricsAddr != "" {
		e := metrics.Serve(cfg.MetricsAddr, log)
		defer e.Shutdown(context.Background())
	}

	sessions := service.NewSessionHolder(store, log)
	if err := sessions.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("could not restore persisted session")
	}

	view := console.NewAuthView(os.Stdout, cfg.BannerTTL)
	flow := service.NewAuthFlow(rest.NewAuthClient(cfg.AuthBaseURL, log), sessions, view, log)

	flow.Start(ctx)
	printHelp()
	runLoop(ctx, flow)
}

func buildStore(ctx context.Context, cfg *config.Config) (ports.SessionStore, error) {
	switch cfg.Store.Backend {
	case "redis":
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Store.Redis.Addr,
			DB:   cfg.Store.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return redisstore.New(client, cfg.Store.Redis.Prefix), nil
	default:
		path := cfg.Store.Path
		if path == "" {
			var err error
			if path, err = filestore.DefaultPath(appName); err != nil {
				return nil, err
			}
		}
		return filestore.New(path), nil
	}
}

func runLoop(ctx context.Context, flow *service.AuthFlow) {
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() || ctx.Err() != nil {
			return
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "login":
			if len(fields) != 3 {
				fmt.Println("usage: login <username> <password>")
				continue
			}
			flow.Login(ctx, fields[1], fields[2])
		case "register":
			if len(fields) != 3 {
				fmt.Println("usage: register <username> <password>")
				continue
			}
			flow.Register(ctx, fields[1], fields[2])
		case "me":
			flow.RefreshUserInfo(ctx)
		case "logout":
			flow.Logout(ctx)
		case "token":
			flow.ShowToken()
		case "public":
			flow.ProbePublic(ctx)
		case "profile":
			flow.ProbeProfile(ctx)
		case "admin":
			flow.ProbeAdmin(ctx)
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q (try help)\n", fields[0])
		}
	}
}

func printHelp() {
	fmt.Println(`commands:
  login <username> <password>     authenticate and store the session
  register <username> <password>  create a new account
  me                              refresh user info from the server
  token                           show the stored token and its claims
  public | profile | admin        probe the demo access-control endpoints
  logout                          drop the session
  quit`)
}
