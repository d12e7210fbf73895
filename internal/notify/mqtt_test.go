package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func completedToken(err error) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool {
	<-t.done
	return true
}

func (t *fakeToken) WaitTimeout(d time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(d):
		return false
	}
}

func (t *fakeToken) Done() <-chan struct{} { return t.done }
func (t *fakeToken) Error() error          { return t.err }

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakeClient struct {
	token        paho.Token
	published    []published
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token {
	c.published = append(c.published, published{topic: topic, qos: qos, retained: retained, payload: payload.([]byte)})
	return c.token
}

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func sampleEvent() Event {
	return Event{
		Field:              "carga_bateria",
		AmbientTemperature: 21,
		TargetTemperature:  24,
		BatteryCharge:      3,
		ClimateMode:        "encendido",
		Indicator:          "BAJO",
		At:                 time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestMQTTPublisher_PublishesJSONPayload(t *testing.T) {
	client := &fakeClient{token: completedToken(nil)}
	p := newMQTTPublisher(client, MQTTConfig{Topic: "termostato/estado", QoS: 1, Retained: true})

	if err := p.Publish(context.Background(), sampleEvent()); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if len(client.published) != 1 {
		t.Fatalf("expected one publish, got %d", len(client.published))
	}
	msg := client.published[0]
	if msg.topic != "termostato/estado" || msg.qos != 1 || !msg.retained {
		t.Fatalf("unexpected publish params: %+v", msg)
	}

	var body map[string]any
	if err := json.Unmarshal(msg.payload, &body); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if body["campo"] != "carga_bateria" || body["indicador"] != "BAJO" || body["timestamp"] != "2024-05-01T10:00:00Z" {
		t.Fatalf("unexpected payload: %s", msg.payload)
	}
}

func TestMQTTPublisher_BrokerError(t *testing.T) {
	client := &fakeClient{token: completedToken(errors.New("not authorized"))}
	p := newMQTTPublisher(client, MQTTConfig{Topic: "t"})

	if err := p.Publish(context.Background(), sampleEvent()); err == nil {
		t.Fatalf("expected broker error to surface")
	}
}

func TestMQTTPublisher_ContextCancelled(t *testing.T) {
	client := &fakeClient{token: &fakeToken{done: make(chan struct{})}}
	p := newMQTTPublisher(client, MQTTConfig{Topic: "t"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Publish(ctx, sampleEvent())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Publish() error = %v, want context.Canceled", err)
	}
}

func TestMQTTPublisher_CloseDisconnects(t *testing.T) {
	client := &fakeClient{token: completedToken(nil)}
	p := newMQTTPublisher(client, MQTTConfig{Topic: "t"})
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !client.disconnected {
		t.Fatalf("expected Disconnect to be called")
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder(errors.New("down"))
	if err := r.Publish(context.Background(), sampleEvent()); err == nil {
		t.Fatalf("expected configured error")
	}
	if got := r.Events(); len(got) != 1 || got[0].Field != "carga_bateria" {
		t.Fatalf("Events()=%+v", got)
	}
}

func TestEventPayload_BatteryKeepsDecimalPoint(t *testing.T) {
	b, err := sampleEvent().Payload()
	if err != nil {
		t.Fatalf("Payload() error = %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(raw["carga_bateria"]) != "3.0" {
		t.Fatalf("carga_bateria=%s, want 3.0", raw["carga_bateria"])
	}
}

type fakeConnector struct {
	token        paho.Token
	disconnected bool
	quiesce      uint
}

func (c *fakeConnector) Connect() paho.Token { return c.token }

func (c *fakeConnector) Disconnect(q uint) {
	c.disconnected = true
	c.quiesce = q
}

func TestConnect(t *testing.T) {
	pending := &fakeToken{done: make(chan struct{})}
	cases := []struct {
		name             string
		token            paho.Token
		wantErr          error
		wantDisconnected bool
	}{
		{"connected", completedToken(nil), nil, false},
		{"timeout stops retrying", pending, ErrConnectTimeout, true},
		{"refused stops retrying", completedToken(errors.New("refused")), nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := &fakeConnector{token: tc.token}
			err := connect(c, "tcp://broker:1883", 10*time.Millisecond)
			if tc.wantDisconnected && err == nil {
				t.Fatalf("connect() error = nil, want failure")
			}
			if !tc.wantDisconnected && err != nil {
				t.Fatalf("connect() error = %v", err)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("connect() error = %v, want %v", err, tc.wantErr)
			}
			if c.disconnected != tc.wantDisconnected {
				t.Fatalf("disconnected=%v, want %v", c.disconnected, tc.wantDisconnected)
			}
			if c.disconnected && c.quiesce != 0 {
				t.Fatalf("quiesce=%d, want 0", c.quiesce)
			}
		})
	}
}
