// Command validate loads the application configuration and the workflow
// catalog, and checks everything operators can get wrong: unknown roles and
// categories are rejected by the loader itself; this tool additionally
// screens configured salary formulas and flags stale role-directory codes
// before a catalog goes live.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/application/service"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/catalog"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/config"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/domain/formula"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/pkg/utils"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Error("Catalog failed validation", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		os.Exit(1)
	}

	problems := 0
	problems += checkInitiatorCodes(logger, cat)
	problems += checkFormulas(logger, cat)

	if problems > 0 {
		logger.Error("Catalog has problems", zap.Int("count", problems))
		os.Exit(1)
	}
	logger.Info("Catalog is valid", zap.String("path", cfg.Catalog.Path))
}

// checkInitiatorCodes flags workflow initiator restrictions that reference
// codes missing from the role directory. The matcher skips unknown codes at
// runtime, so a fully stale restriction silently stops matching anyone.
func checkInitiatorCodes(logger *zap.Logger, cat *catalog.Catalog) int {
	defs, _ := cat.Definitions(context.Background())
	problems := 0
	for _, def := range defs {
		for _, code := range def.InitiatorRoleCodes {
			if _, ok := cat.Translate(code); !ok {
				logger.Warn("Workflow references unknown role-directory code",
					zap.String("workflow_id", def.ID),
					zap.String("code", code))
				problems++
			}
		}
	}
	return problems
}

func checkFormulas(logger *zap.Logger, cat *catalog.Catalog) int {
	available := service.FormulaVariables()
	problems := 0
	for name, expression := range cat.Formulas() {
		result := formula.Validate(expression, available)
		if result.Valid {
			logger.Info("Formula is valid", zap.String("formula", name))
			continue
		}
		problems++
		if result.Err != nil {
			logger.Warn("Formula failed validation",
				zap.String("formula", name),
				zap.Error(result.Err))
		}
		if len(result.MissingVariables) > 0 {
			logger.Warn("Formula references unavailable variables",
				zap.String("formula", name),
				zap.Strings("missing", result.MissingVariables))
		}
	}
	return problems
}
