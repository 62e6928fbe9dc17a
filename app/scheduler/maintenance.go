// Package scheduler runs periodic background maintenance for the console.
package scheduler

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	businessflow "github.com/prospectra/lead-console/business_flow"
	"github.com/prospectra/lead-console/config"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
)

// MaintenanceScheduler periodically purges stale draft runs and keeps the
// master data cache warm so the first console request after an invalidation
// does not pay the full load.
type MaintenanceScheduler struct {
	runRepo        repository.AudienceRunRepository
	masterDataFlow businessflow.MasterDataFlow
	logger         *log.Logger
	interval       time.Duration
	draftRetention time.Duration
}

func NewMaintenanceScheduler(
	runRepo repository.AudienceRunRepository,
	masterDataFlow businessflow.MasterDataFlow,
	logCfg config.LoggingConfig,
	interval time.Duration,
	draftRetention time.Duration,
) *MaintenanceScheduler {
	if interval <= 0 {
		interval = time.Hour
	}
	if draftRetention <= 0 {
		draftRetention = 7 * 24 * time.Hour
	}

	s := &MaintenanceScheduler{
		runRepo:        runRepo,
		masterDataFlow: masterDataFlow,
		interval:       interval,
		draftRetention: draftRetention,
	}
	s.initLogger(logCfg)

	return s
}

// initLogger configures a logger that writes to both stdout and a rotated file
func (s *MaintenanceScheduler) initLogger(cfg config.LoggingConfig) {
	logDir := filepath.Dir(cfg.FilePath)
	if cfg.FilePath == "" || os.MkdirAll(logDir, 0o755) != nil {
		s.logger = log.New(os.Stdout, "scheduler ", log.LstdFlags|log.Lmicroseconds|log.LUTC)
		return
	}

	rotated := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, "scheduler.log"),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
	mw := io.MultiWriter(os.Stdout, rotated)
	s.logger = log.New(mw, "scheduler ", log.LstdFlags|log.Lmicroseconds|log.LUTC)
}

// Start launches the scheduler loop in a background goroutine and returns a stop function
func (s *MaintenanceScheduler) Start(parent context.Context) func() {
	ctx, cancel := context.WithCancel(parent)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.runOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runOnce(ctx)
			}
		}
	}()

	return cancel
}

func (s *MaintenanceScheduler) runOnce(ctx context.Context) {
	s.purgeStaleDrafts(ctx)
	s.warmMasterDataCache(ctx)
}

func (s *MaintenanceScheduler) purgeStaleDrafts(ctx context.Context) {
	cutoff := utils.UTCNow().Add(-s.draftRetention)
	removed, err := s.runRepo.DeleteStaleDrafts(ctx, cutoff)
	if err != nil {
		s.logger.Printf("scheduler: purge stale draft runs failed: %v", err)
		return
	}
	if removed > 0 {
		s.logger.Printf("scheduler: purged %d stale draft runs older than %s", removed, cutoff.Format(time.RFC3339))
	}
}

func (s *MaintenanceScheduler) warmMasterDataCache(ctx context.Context) {
	if s.masterDataFlow == nil {
		return
	}
	if _, err := s.masterDataFlow.GetAll(ctx); err != nil {
		s.logger.Printf("scheduler: master data cache warm failed: %v", err)
	}
}
