package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/learnstack/demo-console/internal/console"
	"github.com/learnstack/demo-console/internal/core/service"
	"github.com/learnstack/demo-console/internal/infrastructure/config"
	"github.com/learnstack/demo-console/internal/infrastructure/rest"
	"github.com/learnstack/demo-console/internal/metrics"
	"github.com/learnstack/demo-console/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	if cfg.MetricsAddr != "" {
		e := metrics.Serve(cfg.MetricsAddr, log)
		defer e.Shutdown(context.Background())
	}

	view := console.NewCatalogView(os.Stdout, cfg.BannerTTL)
	confirm := console.NewPromptConfirmer(os.Stdin, os.Stdout)
	flow := service.NewCatalogFlow(rest.NewCatalogClient(cfg.CatalogBaseURL, log), view, confirm, log)

	flow.Start(ctx)
	printHelp()
	runLoop(ctx, flow)
}

func runLoop(ctx context.Context, flow *service.CatalogFlow) {
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() || ctx.Err() != nil {
			return
		}
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list":
			flow.Load(ctx)
		case "search":
			flow.Search(ctx, strings.TrimSpace(strings.TrimPrefix(line, "search")))
		case "category":
			flow.FilterByCategory(ctx, strings.TrimSpace(strings.TrimPrefix(line, "category")))
		case "stats":
			flow.RefreshStats(ctx)
		case "new":
			flow.NewProduct()
		case "edit":
			id, ok := parseID(fields)
			if !ok {
				fmt.Println("usage: edit <id>")
				continue
			}
			flow.BeginEdit(ctx, id)
		case "set":
			if len(fields) < 3 {
				fmt.Println("usage: set <field> <value>")
				continue
			}
			value := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(strings.TrimPrefix(line, "set")), fields[1]))
			if err := flow.SetField(fields[1], value); err != nil {
				fmt.Println(err)
			}
		case "save":
			flow.Save(ctx)
		case "cancel":
			flow.CancelEdit()
		case "delete":
			id, ok := parseID(fields)
			if !ok {
				fmt.Println("usage: delete <id>")
				continue
			}
			flow.Delete(ctx, id)
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q (try help)\n", fields[0])
		}
	}
}

func parseID(fields []string) (int64, bool) {
	if len(fields) != 2 {
		return 0, false
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func printHelp() {
	fmt.Println(`commands:
  list                      reload the full product listing
  search <name>             search products by name
  category <name>           filter products by category
  stats                     refresh the stats bar
  new / edit <id>           start editing a product
  set <field> <value>       change a field of the product being edited
  save / cancel             finish or abandon the edit
  delete <id>               delete a product (asks for confirmation)
  quit`)
}
