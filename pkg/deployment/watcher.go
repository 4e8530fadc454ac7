// Package deployment turns changes of a deployment manifest on disk into
// deployment-completion events for the launcher notifier.
package deployment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/arthur-debert/bannerkit/pkg/errors"
	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the manifest must stay quiet before an event
// is emitted.
const DefaultDebounce = 250 * time.Millisecond

// Snapshot returns the identity of a deployment manifest: the hex SHA-256
// of its content.
func Snapshot(manifest []byte) string {
	sum := sha256.Sum256(manifest)
	return hex.EncodeToString(sum[:])
}

// Handler receives deployment events. It matches notifier.Notifier[string].
type Handler interface {
	DidDeploy(profileID string, snapshot string) (bool, error)
}

// Watcher emits a deployment event for a profile whenever its manifest
// settles after a write.
type Watcher struct {
	manifest string
	profile  string
	handler  Handler
	debounce time.Duration
	logger   zerolog.Logger

	// emitMu serializes handler calls; a debounced callback can still be
	// running when the next one fires.
	emitMu sync.Mutex
}

// NewWatcher creates a Watcher. A zero debounce selects DefaultDebounce.
func NewWatcher(manifest, profileID string, handler Handler, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		manifest: filepath.Clean(manifest),
		profile:  profileID,
		handler:  handler,
		debounce: debounce,
		logger:   logging.GetLogger("deployment.watch"),
	}
}

// Run blocks until ctx is cancelled. The manifest's directory is watched so
// editors and deployers that replace the file are still seen. An event is
// emitted right away when the manifest already exists.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "failed to create watcher")
	}
	defer fsw.Close() //nolint:errcheck

	dir := filepath.Dir(w.manifest)
	if err := fsw.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrWatch, "cannot watch %s", dir).WithDetail("path", dir)
	}

	w.logger.Info().Str("manifest", w.manifest).Str("profile", w.profile).Msg("Watching deployment manifest")

	if _, err := os.Stat(w.manifest); err == nil {
		w.emit()
	}

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.manifest {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Trace().Str("op", event.Op.String()).Msg("Manifest event")

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				w.emit()
			})
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn().Err(err).Msg("Watcher error")
		}
	}
}

// emit reads the manifest and forwards its snapshot to the handler.
func (w *Watcher) emit() {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()

	data, err := os.ReadFile(w.manifest)
	if err != nil {
		w.logger.Debug().Err(err).Msg("Manifest not readable, skipping event")
		return
	}

	snapshot := Snapshot(data)
	fired, err := w.handler.DidDeploy(w.profile, snapshot)
	if err != nil {
		w.logger.Warn().Err(err).Msg("Deployment handler failed")
		return
	}
	w.logger.Debug().Str("snapshot", snapshot[:12]).Bool("notified", fired).Msg("Deployment event")
}
