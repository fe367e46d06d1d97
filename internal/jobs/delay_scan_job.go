package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"shipment-tracker/internal/core/config"
	"shipment-tracker/internal/core/logger"
	"shipment-tracker/internal/core/metrics"
	notifdomain "shipment-tracker/internal/features/notifications/domain"
	notifports "shipment-tracker/internal/features/notifications/ports"
	"shipment-tracker/internal/features/shipments/domain"
	"shipment-tracker/internal/features/shipments/service"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DelayDetector runs the delay classifier.
type DelayDetector interface {
	Detect(opts domain.ClassifyOptions) service.DelayReport
}

// Notifier records stakeholder notifications.
type Notifier interface {
	Notify(ctx context.Context, in notifports.NotifyInput) (*notifports.Receipt, error)
}

// DelayScanJob periodically classifies the ledger and raises one ops alert per
// shipment and severity. A shipment that escalates is alerted again.
type DelayScanJob struct {
	detector  DelayDetector
	notifier  Notifier
	metrics   *metrics.Metrics
	threshold domain.Severity
	schedule  string
	cron      *cron.Cron
	log       *zap.Logger

	mu      sync.Mutex
	alerted map[string]struct{}
}

// NewDelayScanJob creates a new job. The threshold must be a known severity.
func NewDelayScanJob(cfg config.DelayScanConfig, detector DelayDetector, notifier Notifier, m *metrics.Metrics) (*DelayScanJob, error) {
	threshold, err := domain.ParseSeverity(cfg.Threshold)
	if err != nil {
		return nil, fmt.Errorf("delay scan threshold: %w", err)
	}

	return &DelayScanJob{
		detector:  detector,
		notifier:  notifier,
		metrics:   m,
		threshold: threshold,
		schedule:  cfg.Schedule,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:       logger.Component("delay_scan_job"),
		alerted:   make(map[string]struct{}),
	}, nil
}

// Start schedules the sweep.
func (j *DelayScanJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if _, err := j.RunOnce(context.Background()); err != nil {
			j.log.Error("Delay scan failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid delay scan schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.log.Info("Delay scan job started",
		zap.String("schedule", j.schedule),
		zap.String("threshold", string(j.threshold)),
	)
	return nil
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *DelayScanJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("Delay scan job stopped")
}

// RunOnce performs a single sweep and returns how many new alerts it raised.
func (j *DelayScanJob) RunOnce(ctx context.Context) (int, error) {
	report := j.detector.Detect(domain.ClassifyOptions{
		IncludeAtRisk: true,
		Threshold:     j.threshold,
	})

	j.mu.Lock()
	defer j.mu.Unlock()

	raised := 0
	var errs []error
	for _, d := range report.Shipments {
		key := d.Shipment.ShipmentID + "|" + string(d.Severity)
		if _, done := j.alerted[key]; done {
			continue
		}

		_, err := j.notifier.Notify(ctx, notifports.NotifyInput{
			ShipmentID: d.Shipment.ShipmentID,
			Channel:    notifdomain.ChannelInternal,
			Audience:   notifdomain.AudienceOps,
			Message:    alertMessage(d),
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", d.Shipment.ShipmentID, err))
			continue
		}
		j.alerted[key] = struct{}{}
		raised++
	}

	outcome := "ok"
	if len(errs) > 0 {
		outcome = "failed"
	}
	j.metrics.ObserveDelayScan(outcome)

	j.log.Info("Delay scan finished",
		zap.Int("flagged", report.TotalFlagged),
		zap.Int("alerts_raised", raised),
		zap.Int("alerts_failed", len(errs)),
	)

	return raised, errors.Join(errs...)
}

func alertMessage(d domain.DelayedShipment) string {
	return fmt.Sprintf("[%s] %s (%s, %s): %s",
		strings.ToUpper(string(d.Severity)),
		d.Shipment.ShipmentID,
		d.Shipment.OrderID,
		d.Shipment.Carrier,
		d.Reason,
	)
}
