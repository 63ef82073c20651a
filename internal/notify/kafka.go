package notify

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/amberleaf/menuforge/internal/models"
	log "github.com/sirupsen/logrus"
)

// KafkaNotifier publishes one JSON event per submission to a topic
// derived from the submission kind (<prefix>.<kind>).
type KafkaNotifier struct {
	producer    sarama.SyncProducer
	topicPrefix string
}

func NewKafkaNotifier(cfg *models.Config) (*KafkaNotifier, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	brokerList := strings.Split(cfg.KafkaBrokerList, ",")

	producer, err := sarama.NewSyncProducer(brokerList, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Infof("Sarama producer created successfully with brokers %v", brokerList)
	return &KafkaNotifier{producer: producer, topicPrefix: cfg.KafkaTopicPrefix}, nil
}

func (k *KafkaNotifier) Announce(sub *models.Submission) error {
	if k.producer == nil {
		return fmt.Errorf("Sarama producer is not initialized")
	}

	msg, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to encode submission %s: %w", sub.ID, err)
	}

	topic := fmt.Sprintf("%s.%s", k.topicPrefix, sub.Kind)
	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(sub.ID),
		Value: sarama.ByteEncoder(msg),
	})
	if err != nil {
		log.Errorf("Failed to send message to topic %s: %v", topic, err)
		return err
	}
	return nil
}

func (k *KafkaNotifier) Close() error {
	if k.producer != nil {
		return k.producer.Close()
	}
	return nil
}
