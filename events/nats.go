package events

import (
	"context"
	"fmt"

	"github.com/CosmWasm/tinyjson"
	"github.com/nats-io/nats.go"

	"community_fund/sdk"
)

// DefaultSubjectPrefix is followed by the event kind, e.g. fund.events.pc.
const DefaultSubjectPrefix = "fund.events"

// NATSPublisher sends every event as JSON to <prefix>.<kind>.
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// ConnectNATS dials url and names the connection for server side monitoring.
func ConnectNATS(url, prefix string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("fundd"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return NewNATSPublisher(conn, prefix), nil
}

func NewNATSPublisher(conn *nats.Conn, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Subject is where an event of kind ends up.
func (p *NATSPublisher) Subject(kind string) string {
	return p.prefix + "." + kind
}

func (p *NATSPublisher) Publish(_ context.Context, ev sdk.Event) error {
	payload, err := tinyjson.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	if err := p.conn.Publish(p.Subject(ev.Kind), payload); err != nil {
		return fmt.Errorf("nats publish %s: %w", p.Subject(ev.Kind), err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() error {
	if err := p.conn.Drain(); err != nil {
		p.conn.Close()
		return err
	}
	return nil
}
