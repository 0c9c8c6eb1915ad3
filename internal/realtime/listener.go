// Package realtime watches the orders table through Postgres LISTEN/NOTIFY
// and refreshes the reminder snapshot whenever anything changes.
package realtime

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/patramworks/patram/internal/database"
)

const channel = "orders_changed"

// OrderReloader is poked on every orders-table change. *reminders.Snapshot
// satisfies it.
type OrderReloader interface {
	ReloadOrders(ctx context.Context) error
}

type Listener struct {
	db      *database.DB
	store   OrderReloader
	log     *zap.Logger
	backoff time.Duration
}

func New(db *database.DB, store OrderReloader, log *zap.Logger) *Listener {
	return &Listener{
		db:      db,
		store:   store,
		log:     log,
		backoff: 5 * time.Second,
	}
}

// Start blocks until ctx is canceled, reconnecting with a fixed backoff when
// the listening connection drops.
func (l *Listener) Start(ctx context.Context) {
	l.log.Info("realtime listener started", zap.String("channel", channel))
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				l.log.Info("realtime listener stopped")
				return
			}
			l.log.Warn("listen connection lost, reconnecting", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			l.log.Info("realtime listener stopped")
			return
		case <-time.After(l.backoff):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := l.db.Pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return err
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}
		l.log.Debug("orders changed", zap.String("op", notification.Payload))
		if err := l.store.ReloadOrders(ctx); err != nil {
			// Snapshot keeps its previous data; nothing else to do here.
			l.log.Warn("order refresh after change notification failed", zap.Error(err))
		}
	}
}
