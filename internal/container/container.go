// Package container wires the engine's services from loaded configuration.
// The host application builds one Container at startup and hands its
// services to whatever transport or UI layer it runs.
package container

import (
	"fmt"

	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/application/service"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/catalog"
	"github.com/HuyPQ79/tinhluongrealtime-sub001/internal/config"
	"go.uber.org/zap"
)

// Container holds the wired application services
type Container struct {
	Catalog  *catalog.Catalog
	Approval service.ApprovalService
	Payroll  service.PayrollService
}

// New loads the workflow catalog and constructs the services
func New(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	serviceLogger := &zapLoggerAdapter{logger: logger}
	return &Container{
		Catalog:  cat,
		Approval: service.NewApprovalService(cat, cat, cat, serviceLogger),
		Payroll:  service.NewPayrollService(cfg.Payroll.StandardWorkDays, serviceLogger),
	}, nil
}

// zapLoggerAdapter adapts zap.Logger to the service.Logger interface.
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info(msg, convertToZapFields(keysAndValues...)...)
}

func (a *zapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, convertToZapFields(keysAndValues...)...)
}

func convertToZapFields(keysAndValues ...interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}
