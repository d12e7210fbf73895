package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout       = 10 * time.Second
	publishTimeout       = 5 * time.Second
	connectRetryInterval = 5 * time.Second
	disconnectQuiesceMs  = 1000
)

var (
	ErrConnectTimeout = errors.New("mqtt connect timeout")
	ErrPublishTimeout = errors.New("mqtt publish timeout")
)

// MQTTConfig holds broker settings for the state publisher.
type MQTTConfig struct {
	Broker   string
	ClientID string
	Topic    string
	QoS      byte
	Retained bool
}

// tokenClient is the subset of paho.Client used for publishing.
type tokenClient interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher publishes events as JSON to a single topic.
type MQTTPublisher struct {
	client   tokenClient
	topic    string
	qos      byte
	retained bool
}

var _ Publisher = (*MQTTPublisher)(nil)

// NewMQTTPublisher connects to the broker and returns a ready publisher.
func NewMQTTPublisher(cfg MQTTConfig) (*MQTTPublisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(connectRetryInterval)

	client := paho.NewClient(opts)
	if err := connect(client, cfg.Broker, connectTimeout); err != nil {
		return nil, err
	}
	return newMQTTPublisher(client, cfg), nil
}

type connector interface {
	Connect() paho.Token
	Disconnect(quiesce uint)
}

// connect waits for the first connection. On failure the client is
// disconnected so connect-retry stops in the background.
func connect(client connector, broker string, timeout time.Duration) error {
	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		client.Disconnect(0)
		return fmt.Errorf("%w: broker %s", ErrConnectTimeout, broker)
	}
	if err := token.Error(); err != nil {
		client.Disconnect(0)
		return fmt.Errorf("connect to broker %s: %w", broker, err)
	}
	return nil
}

func newMQTTPublisher(client tokenClient, cfg MQTTConfig) *MQTTPublisher {
	return &MQTTPublisher{
		client:   client,
		topic:    cfg.Topic,
		qos:      cfg.QoS,
		retained: cfg.Retained,
	}
}

// Publish waits for the broker ack up to publishTimeout or the context deadline,
// whichever comes first.
func (p *MQTTPublisher) Publish(ctx context.Context, e Event) error {
	payload, err := e.Payload()
	if err != nil {
		return fmt.Errorf("format payload: %w", err)
	}

	token := p.client.Publish(p.topic, p.qos, p.retained, payload)

	timer := time.NewTimer(publishTimeout)
	defer timer.Stop()
	select {
	case <-token.Done():
	case <-ctx.Done():
		return fmt.Errorf("publish to %s: %w", p.topic, ctx.Err())
	case <-timer.C:
		return fmt.Errorf("%w: topic %s", ErrPublishTimeout, p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *MQTTPublisher) Close() error {
	p.client.Disconnect(disconnectQuiesceMs)
	return nil
}
