package listener

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/pixil98/go-crew/internal/game"
	"github.com/pixil98/go-crew/internal/location"
	"github.com/pixil98/go-crew/internal/storage"
	"github.com/pixil98/go-testutil"
	"golang.org/x/crypto/ssh"
)

type vault struct{}

func (vault) Blueprint(name string) (*location.Blueprint, error) {
	return location.Compile(name, &location.Template{
		Areas: []location.AreaSpec{{Name: "Vault", Objects: []string{"v", "f", "", "x"}}},
		Symbols: map[string]location.SymbolSpec{
			"x": {Type: location.SymbolFortunaChest},
		},
	}, nil)
}

func (vault) Categories() []*location.Category {
	return nil
}

func start() (*game.Game, error) {
	return game.New(game.Config{Seed: 3, Locations: 1}, vault{})
}

func TestSessionManager_AcceptConnection(t *testing.T) {
	tests := map[string]struct {
		name   string
		expOut string
	}{
		"named session saves": {
			name:   "Mint.Blue",
			expOut: `Saved the game to slot "remote-mintblue".`,
		},
		"anonymous session": {
			expOut: "Saving is not available.",
		},
		"name without usable characters": {
			name:   "***",
			expOut: "Saving is not available.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			saves, err := storage.NewFileSaveStore(t.TempDir())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			sm := NewSessionManager(start, vault{}, saves)

			var out bytes.Buffer
			conn := rwPair{Reader: strings.NewReader("save\nquit\n"), Writer: &out}
			sm.AcceptConnection(context.Background(), conn, tt.name)

			if !strings.Contains(out.String(), tt.expOut) {
				t.Errorf("output %q does not contain %q", out.String(), tt.expOut)
			}
		})
	}
}

func freePort(t *testing.T) uint16 {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer l.Close()
	return uint16(l.Addr().(*net.TCPAddr).Port)
}

func TestAdmitSlot(t *testing.T) {
	tests := map[string]struct {
		user    string
		expSlot string
		expErr  string
	}{
		"plain name": {
			user:    "mint",
			expSlot: "remote-mint",
		},
		"punctuation is dropped": {
			user:    "Mint.Blue",
			expSlot: "remote-mintblue",
		},
		"nothing usable": {
			user:   "***",
			expErr: `user name "***" has no letters or digits`,
		},
		"empty": {
			expErr: "has no letters or digits",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			perms, err := admitSlot(connMeta{user: tt.user})
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "slot", perms.Extensions[slotExtension], tt.expSlot)
		})
	}
}

type connMeta struct {
	ssh.ConnMetadata
	user string
}

func (m connMeta) User() string {
	return m.user
}

// startSsh runs an ssh listener until the test ends and returns its address.
func startSsh(t *testing.T, sm *SessionManager) string {
	t.Helper()
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	signer, err := ssh.NewSignerFromKey(key)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	port := freePort(t)
	l := NewSshListener(port, sm, signer)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Start(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Errorf("listener did not stop")
		}
	})

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	for range 50 {
		conn, err := net.Dial("tcp", addr)
		if err == nil {
			conn.Close()
			return addr
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("listener never came up on %s", addr)
	return ""
}

func TestSshListener(t *testing.T) {
	addr := startSsh(t, NewSessionManager(start, vault{}, nil))

	client, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            "mint",
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	session.Stdout = &out
	stdin, err := session.StdinPipe()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := session.Shell(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := stdin.Write([]byte("quit\r")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The server closes the channel without an exit status.
	_ = session.Wait()

	testutil.AssertEqual(t, "shown area", strings.Contains(out.String(), "Vault:"), true)
	testutil.AssertEqual(t, "crlf", strings.Contains(out.String(), "Goodbye!\r\n"), true)
}

func TestSshListener_SavesToUserSlot(t *testing.T) {
	saves, err := storage.NewFileSaveStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr := startSsh(t, NewSessionManager(start, vault{}, saves))

	client, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            "Mint.Blue",
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         time.Second,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out bytes.Buffer
	session.Stdout = &out
	session.Stdin = strings.NewReader("save\rquit\r")
	if err := session.Shell(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = session.Wait()

	testutil.AssertEqual(t, "saved", strings.Contains(out.String(), `Saved the game to slot "remote-mintblue".`), true)
}

func TestSshListener_RejectsUnusableName(t *testing.T) {
	addr := startSsh(t, NewSessionManager(start, vault{}, nil))

	_, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            "***",
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         time.Second,
	})
	testutil.AssertErrorContains(t, err, "unable to authenticate")
}
