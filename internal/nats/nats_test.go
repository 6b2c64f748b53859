package nats

import (
	"testing"

	"github.com/jyyae86/badminton-8somes/config"

	"github.com/stretchr/testify/assert"
)

func TestConnectAndCreateStream(t *testing.T) {
	cfg := &config.Config{
		NATS: config.NATSConfig{
			Host: "localhost",
			Port: 4222,
			Stream: config.StreamConfig{
				Name:     "BADMINTON_TOURNAMENT_TEST",
				Subjects: []string{"badminton.test.>"},
			},
		},
	}

	nc, js, err := Connect(cfg)
	if err != nil {
		t.Skipf("NATS not available: %v", err)
	}
	defer nc.Close()

	assert.NotNil(t, nc, "NATS connection should not be nil")
	assert.NotNil(t, js, "NATS JS connection should not be nil")

	err = ConfigureStream(js, &cfg.NATS.Stream)
	if err != nil {
		t.Fatalf("Failed to configure JetStream: %v", err)
	}

	streamInfo, err := js.StreamInfo(cfg.NATS.Stream.Name)
	if err != nil {
		t.Fatalf("Failed to get stream info: %v", err)
	}

	assert.Equal(t, cfg.NATS.Stream.Name, streamInfo.Config.Name, "Stream name should match")
	assert.ElementsMatch(t, cfg.NATS.Stream.Subjects, streamInfo.Config.Subjects, "Stream subjects should match")
}
