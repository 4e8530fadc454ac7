// Package notifier tells the user to start the game through its launcher
// whenever a new deployment lands for a Bannerlord profile.
//
// The notifier owns one piece of session state: the last deployment
// snapshot it has seen. It starts out as "never seen", lives as long as the
// Notifier value, and is never persisted.
package notifier

import (
	"sync"

	"github.com/arthur-debert/bannerkit/pkg/game"
	"github.com/arthur-debert/bannerkit/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultMessage is the text of the launcher notification.
const DefaultMessage = "Use game launcher to activate mods"

// NotificationID identifies the launcher notification so hosts can
// suppress repeats.
const NotificationID = "bannerlord-use-launcher"

// Level is the severity of a notification
type Level string

const (
	// LevelInfo is an informational notification
	LevelInfo Level = "info"
)

// Notification is a fire-and-forget request for the host to show a message
type Notification struct {
	ID            string `json:"id" yaml:"id" toml:"id"`
	Type          Level  `json:"type" yaml:"type" toml:"type"`
	Message       string `json:"message" yaml:"message" toml:"message"`
	AllowSuppress bool   `json:"allowSuppress" yaml:"allowSuppress" toml:"allowSuppress"`
}

// ProfileResolver maps a profile id to the game it manages
type ProfileResolver interface {
	GameForProfile(profileID string) (gameID string, ok bool)
}

// Sender delivers notifications to the user
type Sender interface {
	Send(n Notification) error
}

// SenderFunc adapts a function to Sender
type SenderFunc func(n Notification) error

// Send calls f(n)
func (f SenderFunc) Send(n Notification) error {
	return f(n)
}

// Notifier remembers the last deployment snapshot seen for the game and
// notifies when a different one arrives. S is the host's snapshot type.
type Notifier[S comparable] struct {
	profiles ProfileResolver
	sender   Sender
	message  string
	logger   zerolog.Logger

	mu   sync.Mutex
	seen bool
	last S
}

// New creates a Notifier with no snapshot seen. An empty message selects
// DefaultMessage.
func New[S comparable](profiles ProfileResolver, sender Sender, message string) *Notifier[S] {
	if message == "" {
		message = DefaultMessage
	}
	return &Notifier[S]{
		profiles: profiles,
		sender:   sender,
		message:  message,
		logger:   logging.GetLogger("notifier"),
	}
}

// DidDeploy handles a deployment-completion event. It reports whether a
// notification was requested. Events for other games and repeats of the
// last snapshot are ignored. The snapshot is remembered even when sending
// fails.
func (n *Notifier[S]) DidDeploy(profileID string, snapshot S) (bool, error) {
	gameID, ok := n.profiles.GameForProfile(profileID)
	if !ok || gameID != game.ID {
		n.logger.Trace().Str("profile", profileID).Str("game", gameID).Msg("Ignoring deployment for other game")
		return false, nil
	}

	if !n.observe(snapshot) {
		n.logger.Debug().Str("profile", profileID).Msg("Deployment unchanged")
		return false, nil
	}

	n.logger.Info().Str("profile", profileID).Msg("New deployment, requesting launcher notification")
	return true, n.sender.Send(Notification{
		ID:            NotificationID,
		Type:          LevelInfo,
		Message:       n.message,
		AllowSuppress: true,
	})
}

// observe records snapshot and reports whether it differs from the last one.
func (n *Notifier[S]) observe(snapshot S) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.seen && n.last == snapshot {
		return false
	}
	n.seen = true
	n.last = snapshot
	return true
}

// Last returns the remembered snapshot and whether one has been seen.
func (n *Notifier[S]) Last() (S, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.last, n.seen
}

// Reset forgets the remembered snapshot.
func (n *Notifier[S]) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()

	var zero S
	n.seen = false
	n.last = zero
}
