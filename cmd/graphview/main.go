package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"
)

func main() {
	var (
		funcList string
		headless bool
		ticks    uint64
		xMin     float64
		xMax     float64
		yMin     float64
		yMax     float64
	)
	flag.StringVar(&funcList, "fn", "sin(x);x^2/4", "Semicolon-separated expressions to plot.")
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Float64Var(&xMin, "xmin", -10, "Initial viewport left edge.")
	flag.Float64Var(&xMax, "xmax", 10, "Initial viewport right edge.")
	flag.Float64Var(&yMin, "ymin", -10, "Initial viewport bottom edge.")
	flag.Float64Var(&yMax, "ymax", 10, "Initial viewport top edge.")
	flag.Parse()

	var sources []string
	for _, s := range strings.Split(funcList, ";") {
		if s = strings.TrimSpace(s); s != "" {
			sources = append(sources, s)
		}
	}

	g, err := newGame(sources, xMin, xMax, yMin, yMax)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := runHeadless(ctx, g, ticks); err != nil && err != context.Canceled {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := g.run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runHeadless drives the update loop without a window, mainly for smoke
// testing plot generation from scripts.
func runHeadless(ctx context.Context, g *game, ticks uint64) error {
	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()
	var n uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			g.step()
			n++
			if ticks > 0 && n >= ticks {
				return nil
			}
		}
	}
}
