package application

import (
	"context"

	"natanbot/domain/interfaces"

	log "github.com/sirupsen/logrus"
)

// VIPExpiryWorker periodically reaps expired VIP grants
type VIPExpiryWorker struct {
	vipService interfaces.VIPService
}

// NewVIPExpiryWorker creates a new VIP expiry worker
func NewVIPExpiryWorker(vipService interfaces.VIPService) *VIPExpiryWorker {
	return &VIPExpiryWorker{vipService: vipService}
}

// Sweep runs one pass and returns how many grants were removed
func (w *VIPExpiryWorker) Sweep(ctx context.Context) int {
	expired, err := w.vipService.SweepExpired(ctx)
	if err != nil {
		// Partial sweeps still removed what they could
		log.WithFields(log.Fields{
			"removed": len(expired),
			"error":   err,
		}).Error("VIP sweep finished with errors")
		return len(expired)
	}
	if len(expired) > 0 {
		log.WithField("removed", len(expired)).Info("VIP sweep finished")
	} else {
		log.Debug("VIP sweep found no expired grants")
	}
	return len(expired)
}
