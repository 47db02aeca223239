package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
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

	view := console.NewCurrencyView(os.Stdout)
	flow := service.NewCurrencyFlow(rest.NewCurrencyClient(cfg.CurrencyBaseURL, log), view, log)

	flow.Start(ctx)
	printHelp()
	runLoop(ctx, flow)
}

func runLoop(ctx context.Context, flow *service.CurrencyFlow) {
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
		case "convert", "c":
			if len(fields) != 4 {
				fmt.Println("usage: convert <amount> <from> <to>")
				continue
			}
			amount, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				fmt.Printf("invalid amount %q\n", fields[1])
				continue
			}
			flow.Convert(ctx, amount, fields[2], fields[3])
		case "swap":
			flow.Swap(ctx)
		case "rates":
			base := "USD"
			if len(fields) > 1 {
				base = fields[1]
			}
			printRates(ctx, flow, base)
		case "pairs":
			for i, pair := range service.QuickPairs {
				fmt.Printf("  %d: %s -> %s\n", i+1, pair.From, pair.To)
			}
		case "quick":
			if len(fields) != 2 {
				fmt.Println("usage: quick <n> (see pairs)")
				continue
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 || n > len(service.QuickPairs) {
				fmt.Println("usage: quick <n> (see pairs)")
				continue
			}
			flow.Quick(ctx, service.QuickPairs[n-1])
		case "currencies":
			fmt.Println(strings.Join(flow.Currencies(), ", "))
		case "help":
			printHelp()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q (try help)\n", fields[0])
		}
	}
}

func printRates(ctx context.Context, flow *service.CurrencyFlow, base string) {
	rates, err := flow.ShowRates(ctx, base)
	if err != nil {
		return
	}
	codes := make([]string, 0, len(rates))
	for code := range rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Printf("  1 %s = %s %s\n", strings.ToUpper(base), console.FormatAmount(rates[code]), code)
	}
}

func printHelp() {
	fmt.Println(`commands:
  convert <amount> <from> <to>  convert an amount (e.g. convert 100 USD EUR)
  swap                          swap the last pair and convert again
  rates [base]                  list exchange rates for a base currency
  pairs / quick <n>             quick-convert a popular pair
  currencies                    list known currency codes
  quit`)
}
