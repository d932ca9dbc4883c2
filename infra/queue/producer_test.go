package queue

import "testing"

// An unconfigured broker yields a nil producer whose publishes are no-ops, so
// the ingestion pipeline never depends on Kafka being present.
func TestNewProducerUnconfigured(t *testing.T) {
	if p := NewProducer("", ""); p != nil {
		t.Fatal("NewProducer with empty broker: want nil")
	}
	if p := NewProducer("localhost:9092", ""); p != nil {
		t.Fatal("NewProducer with empty topic: want nil")
	}

	var p *Producer
	if err := p.PublishMessage([]byte("k"), []byte("v")); err != nil {
		t.Errorf("nil producer publish: %v, want nil", err)
	}
}
