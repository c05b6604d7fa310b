package notify

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Channels carrying row-level change notifications. Database triggers
// NOTIFY on these whenever the corresponding table changes, so every
// client observing a pipeline can rerun the same reload routine a local
// mutation would.
const (
	ChannelLeads    = "leads_changed"
	ChannelStages   = "stages_changed"
	ChannelProducts = "products_changed"
)

// Event is one change notification.
type Event struct {
	Channel string
	Payload string
}

// Listener holds a dedicated connection subscribed to change channels.
// It is not safe for concurrent Wait calls; one owner drains it.
type Listener struct {
	conn *pgx.Conn
}

// Connect opens a dedicated connection and subscribes to the given
// channels.
func Connect(ctx context.Context, connStr string, channels ...string) (*Listener, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connecting listener: %w", err)
	}

	for _, ch := range channels {
		if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{ch}.Sanitize()); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("listening on %s: %w", ch, err)
		}
	}

	return &Listener{conn: conn}, nil
}

// Wait blocks until the next notification or until ctx is done.
func (l *Listener) Wait(ctx context.Context) (Event, error) {
	n, err := l.conn.WaitForNotification(ctx)
	if err != nil {
		return Event{}, fmt.Errorf("waiting for notification: %w", err)
	}

	return Event{Channel: n.Channel, Payload: n.Payload}, nil
}

func (l *Listener) Close(ctx context.Context) error {
	return l.conn.Close(ctx)
}
