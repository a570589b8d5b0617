package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smartcity/weatherlookup/internal/config"
	"github.com/smartcity/weatherlookup/internal/delivery/cli"
	"github.com/smartcity/weatherlookup/internal/domain"
	"github.com/smartcity/weatherlookup/internal/logger"
	"github.com/smartcity/weatherlookup/internal/service"
)

func main() {
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}

	weatherSvc, err := service.NewWeatherServiceFromConfig(cfg.Weather, nil)
	if err != nil {
		log.Fatalw("Failed to build weather service", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	orch := service.NewSearchOrchestrator(weatherSvc, cli.NewPresenter(os.Stdout), cfg.Weather.DefaultCity, nil)
	report(orch.Start(ctx))

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("\nCity> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		report(orch.OnSearch(ctx, scanner.Text()))
		fmt.Print("\nCity> ")
	}
	if err := scanner.Err(); err != nil {
		log.Errorw("Failed to read input", "error", err)
	}
}

// report logs failures the presenter has already shown to the user.
func report(err error) {
	if err == nil || errors.Is(err, domain.ErrSuperseded) {
		return
	}
	logger.GetLogger().Debugw("Search did not render a result", "kind", domain.KindOf(err), "error", err)
}
