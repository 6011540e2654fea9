// Package cache wires the optional SQLite cache used by outbound
// integrations.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	webstorage "github.com/descilaunch/launchpad-web/internal/services/web/storage"
	websqlite "github.com/descilaunch/launchpad-web/internal/services/web/storage/sqlite"
	"github.com/sirupsen/logrus"
)

// OpenStore opens the web cache store when a storage path is provided.
func OpenStore(path string) (*websqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create web cache dir: %w", err)
		}
	}
	store, err := websqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open web cache sqlite store: %w", err)
	}
	return store, nil
}

// RunPurge deletes expired cache rows every interval until ctx is done.
func RunPurge(ctx context.Context, store webstorage.Store, interval time.Duration, log logrus.FieldLogger) {
	if store == nil || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := store.PurgeExpired(ctx, now)
			if err != nil {
				if log != nil && ctx.Err() == nil {
					log.WithError(err).Warn("purge web cache")
				}
				continue
			}
			if removed > 0 && log != nil {
				log.WithField("removed", removed).Debug("purged web cache")
			}
		}
	}
}
