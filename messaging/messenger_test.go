package messaging

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"github.com/echolytics/persona-engine/core"
)

// startTestServer runs an embedded NATS server on a random port.
func startTestServer(t *testing.T) *server.Server {
	t.Helper()

	ns, err := server.NewServer(&server.Options{Port: -1})
	if err != nil {
		t.Fatalf("failed to create NATS server: %v", err)
	}
	go ns.Start()
	if !ns.ReadyForConnections(5 * time.Second) {
		t.Fatal("NATS server did not become ready")
	}
	t.Cleanup(ns.Shutdown)
	return ns
}

func TestPublishPersonaGenerated(t *testing.T) {
	ns := startTestServer(t)

	m, err := NewMessenger(ns.ClientURL())
	if err != nil {
		t.Fatalf("NewMessenger failed: %v", err)
	}
	defer m.Close()

	global := make(chan *nats.Msg, 1)
	perUser := make(chan *nats.Msg, 1)
	if _, err := m.Subscribe(SubjectPersonaGenerated, func(msg *nats.Msg) { global <- msg }); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	if _, err := m.SubscribeUser("kojied", func(msg *nats.Msg) { perUser <- msg }); err != nil {
		t.Fatalf("SubscribeUser failed: %v", err)
	}

	persona := &core.Persona{
		ID:       "abc",
		Username: "kojied",
		Metadata: core.Metadata{TotalPosts: 3, TotalComments: 4, Subreddits: []string{"running"}},
	}
	if err := m.PublishPersonaGenerated(persona); err != nil {
		t.Fatalf("PublishPersonaGenerated failed: %v", err)
	}

	for name, ch := range map[string]chan *nats.Msg{"global": global, "per-user": perUser} {
		select {
		case msg := <-ch:
			var got core.Persona
			if err := json.Unmarshal(msg.Data, &got); err != nil {
				t.Fatalf("%s payload is not a persona: %v", name, err)
			}
			if got.Username != "kojied" || got.Metadata.TotalPosts != 3 {
				t.Errorf("%s payload mismatch: %+v", name, got)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %s persona event", name)
		}
	}
}

func TestPublishAnalysisFailed(t *testing.T) {
	ns := startTestServer(t)

	m, err := NewMessenger(ns.ClientURL())
	if err != nil {
		t.Fatalf("NewMessenger failed: %v", err)
	}
	defer m.Close()

	received := make(chan *nats.Msg, 1)
	if _, err := m.Subscribe(SubjectAnalysisFailed, func(msg *nats.Msg) { received <- msg }); err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}

	cause := errors.New("provider exploded")
	if err := m.PublishAnalysisFailed("https://www.reddit.com/user/kojied", cause); err != nil {
		t.Fatalf("PublishAnalysisFailed failed: %v", err)
	}

	select {
	case msg := <-received:
		var payload map[string]string
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if payload["error"] != "provider exploded" {
			t.Errorf("payload = %v", payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for failure event")
	}
}

func TestSetupUnreachable(t *testing.T) {
	// Setup must not block startup when NATS is down.
	if m := Setup("nats://127.0.0.1:1"); m != nil {
		m.Close()
		t.Error("Setup should return nil for an unreachable server")
	}
}
