package main

import (
	"context"
	"time"

	"Fluxo/config"
	"Fluxo/internal/domain/invoice"
	"Fluxo/internal/domain/recurring"
	appfx "Fluxo/internal/fx"
	"Fluxo/internal/logger"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.WorkerModule,
		fx.Invoke(runWorker),
	).Run()
}

func runWorker(
	lc fx.Lifecycle,
	cfg *config.Config,
	recurringSvc *recurring.Service,
	invoiceSvc *invoice.Service,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			logger.Info().
				Dur("interval", cfg.Worker.Interval).
				Msg("Worker iniciando")
			go loop(ctx, cfg.Worker.Interval, recurringSvc, invoiceSvc)
			return nil
		},
		OnStop: func(context.Context) error {
			logger.Info().Msg("Worker parando...")
			cancel()
			return nil
		},
	})
}

func loop(
	ctx context.Context,
	interval time.Duration,
	recurringSvc *recurring.Service,
	invoiceSvc *invoice.Service,
) {
	// roda uma vez na subida para recuperar o atraso acumulado enquanto o
	// processo esteve fora do ar
	tick(ctx, recurringSvc, invoiceSvc)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			tick(ctx, recurringSvc, invoiceSvc)
		}
	}
}

func tick(ctx context.Context, recurringSvc *recurring.Service, invoiceSvc *invoice.Service) {
	now := time.Now()

	outcomes, err := recurringSvc.ProcessDueRules(ctx, now)
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao carregar regras recorrentes vencidas")
	} else {
		generated := 0
		failed := 0
		for _, outcome := range outcomes {
			generated += outcome.Generated
			if outcome.Err != nil {
				failed++
				logger.Warn().
					Str("rule_id", outcome.RuleId.String()).
					Err(outcome.Err).
					Msg("Regra recorrente processada parcialmente")
			}
		}
		logger.Info().
			Int("rules", len(outcomes)).
			Int("generated", generated).
			Int("failed", failed).
			Msg("Ciclo de recorrências concluído")
	}

	overdue, err := invoiceSvc.SweepOverdue(ctx, now)
	if err != nil {
		logger.Error().Err(err).Msg("Falha ao marcar faturas vencidas")
	} else if overdue > 0 {
		logger.Info().Int64("invoices", overdue).Msg("Faturas marcadas como vencidas")
	}
}
