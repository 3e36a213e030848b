package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"golang.org/x/crypto/ssh"
)

// slotExtension carries a connection's save slot from authentication to the
// game it plays.
const slotExtension = "go-crew-slot"

// SshListener plays one game per ssh connection. The ssh user name names the
// save slot, so a user whose name can not become a slot is turned away
// before the handshake completes.
type SshListener struct {
	port    uint16
	sm      *SessionManager
	hostKey ssh.Signer
}

func NewSshListener(port uint16, sm *SessionManager, hostKey ssh.Signer) *SshListener {
	return &SshListener{
		port:    port,
		sm:      sm,
		hostKey: hostKey,
	}
}

func (l *SshListener) serverConfig() *ssh.ServerConfig {
	config := &ssh.ServerConfig{
		NoClientAuth:         true,
		NoClientAuthCallback: admitSlot,
	}
	config.AddHostKey(l.hostKey)
	return config
}

// admitSlot accepts any user whose name leaves something to name a save slot
// with.
func admitSlot(meta ssh.ConnMetadata) (*ssh.Permissions, error) {
	slot := sessionSlot(meta.User())
	if slot == "" {
		return nil, fmt.Errorf("user name %q has no letters or digits to name a save slot", meta.User())
	}
	return &ssh.Permissions{Extensions: map[string]string{slotExtension: slot}}, nil
}

func (l *SshListener) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", l.port, err)
	}
	slog.InfoContext(ctx, "listening for ssh", "port", l.port)

	config := l.serverConfig()
	connCtx, cancelConns := context.WithCancel(context.WithoutCancel(ctx))
	var wg sync.WaitGroup
	defer func() {
		cancelConns()
		wg.Wait()
	}()

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()
			l.serve(connCtx, conn, config)
		}()
	}
}

// serve completes the handshake and plays on the first session channel that
// asks for a shell. The connection closes when that game ends.
func (l *SshListener) serve(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.WarnContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer sshConn.Close()
	go ssh.DiscardRequests(reqs)

	stop := context.AfterFunc(ctx, func() { sshConn.Close() })
	defer stop()

	slot := sshConn.Permissions.Extensions[slotExtension]
	slog.InfoContext(ctx, "ssh connection established", "remote", conn.RemoteAddr(), "slot", slot)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "only session channels are supported")
			continue
		}
		ch, requests, err := newChan.Accept()
		if err != nil {
			slog.ErrorContext(ctx, "accepting ssh channel", "error", err)
			continue
		}
		if !awaitShell(ctx, requests) {
			ch.Close()
			continue
		}

		l.sm.play(ctx, newCRLFReadWriter(ch), slot)
		ch.Close()
		return
	}
}

// awaitShell answers channel requests until the client asks for a shell,
// which is when it starts forwarding input. Pty requests are refused so the
// client keeps local echo and line editing. Requests after the shell are
// refused too.
func awaitShell(ctx context.Context, requests <-chan *ssh.Request) bool {
	ready := make(chan bool, 1)
	go func() {
		started := false
		for req := range requests {
			accept := req.Type == "shell" && !started
			req.Reply(accept, nil)
			if accept {
				started = true
				ready <- true
			}
		}
		if !started {
			ready <- false
		}
	}()

	select {
	case ok := <-ready:
		return ok
	case <-ctx.Done():
		return false
	}
}
