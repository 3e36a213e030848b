package messaging

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pixil98/go-crew/internal/view"
)

const (
	DefaultFrameSubject = "crew.frames"
	DefaultInputSubject = "crew.input"
)

// FramePublisher sends every frame as JSON on a subject.
type FramePublisher struct {
	server  *NatsServer
	subject string
}

func NewFramePublisher(server *NatsServer, subject string) *FramePublisher {
	if subject == "" {
		subject = DefaultFrameSubject
	}
	return &FramePublisher{server: server, subject: subject}
}

func (p *FramePublisher) PublishFrame(f view.Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return p.server.Publish(p.subject, data)
}

// SubscribeInput passes each line published on subject to submit. Empty
// messages are ignored.
func SubscribeInput(server *NatsServer, subject string, submit func(line string)) (func(), error) {
	if subject == "" {
		subject = DefaultInputSubject
	}
	return server.Subscribe(subject, func(data []byte) {
		line := strings.TrimSpace(string(data))
		if line != "" {
			submit(line)
		}
	})
}
