package notify

import (
	"encoding/json"
	"fmt"

	"github.com/amberleaf/menuforge/internal/models"
	log "github.com/sirupsen/logrus"
)

// Notifier announces accepted form submissions to downstream
// consumers (front-of-house dashboards, CRM sync). Publishing is
// best-effort from the caller's point of view: a failed publish is
// logged, never surfaced to the guest.
type Notifier interface {
	Announce(sub *models.Submission) error
	Close() error
}

// LogNotifier is the fallback when Kafka is disabled.
type LogNotifier struct{}

func (LogNotifier) Announce(sub *models.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return err
	}
	log.WithField("kind", sub.Kind).Infof("submission: %s", data)
	return nil
}

func (LogNotifier) Close() error { return nil }

// New builds the configured notifier.
func New(cfg *models.Config) (Notifier, error) {
	if !cfg.KafkaEnabled {
		return LogNotifier{}, nil
	}
	producer, err := NewKafkaNotifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka notifier: %w", err)
	}
	return producer, nil
}
