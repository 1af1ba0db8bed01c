// Package messaging publishes analysis lifecycle events over NATS so other
// services (digest builders, audit trails) can react to generated personas.
package messaging

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/echolytics/persona-engine/core"
)

const (
	// SubjectPersonaGenerated carries every generated persona.
	SubjectPersonaGenerated = "persona.generated"
	// SubjectAnalysisFailed carries analysis failures.
	SubjectAnalysisFailed = "persona.analysis.failed"
)

// UserSubject is the per-user subject a consumer can subscribe to.
func UserSubject(username string) string {
	return fmt.Sprintf("persona.user.%s", username)
}

// Messenger encapsulates a NATS connection.
type Messenger struct {
	NC *nats.Conn
}

// NewMessenger connects to the NATS server at url.
func NewMessenger(url string) (*Messenger, error) {
	nc, err := nats.Connect(url,
		nats.Timeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &Messenger{NC: nc}, nil
}

// PublishPersonaGenerated announces a generated persona on the global subject
// and on the per-user subject.
func (m *Messenger) PublishPersonaGenerated(p *core.Persona) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal persona: %w", err)
	}

	if err := m.NC.Publish(SubjectPersonaGenerated, data); err != nil {
		return err
	}
	return m.NC.Publish(UserSubject(p.Username), data)
}

// PublishAnalysisFailed announces a failed analysis attempt.
func (m *Messenger) PublishAnalysisFailed(profileURL string, cause error) error {
	payload := map[string]string{
		"profileUrl": profileURL,
		"error":      cause.Error(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return m.NC.Publish(SubjectAnalysisFailed, data)
}

// Subscribe registers a callback for a subject.
func (m *Messenger) Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error) {
	return m.NC.Subscribe(subject, cb)
}

// SubscribeUser registers a callback for one user's persona events.
func (m *Messenger) SubscribeUser(username string, cb nats.MsgHandler) (*nats.Subscription, error) {
	return m.NC.Subscribe(UserSubject(username), cb)
}

// Close gracefully closes the connection.
func (m *Messenger) Close() {
	if m.NC != nil {
		m.NC.Close()
	}
}

// Setup initializes the package-level messenger. Call once at startup; the
// server runs without messaging when NATS is unreachable.
func Setup(url string) *Messenger {
	messenger, err := NewMessenger(url)
	if err != nil {
		log.Printf("Warning: NATS unavailable at %s, persona events disabled: %v", url, err)
		return nil
	}
	log.Printf("Connected to NATS at %s", url)
	return messenger
}
