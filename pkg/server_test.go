//go:build !windows
// +build !windows

package pkg

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/qnkhuat/sgfterm/pkg/config"
	"go.uber.org/zap"
	gossh "golang.org/x/crypto/ssh"
)

func TestViewerArgs(t *testing.T) {
	s := &Server{cfg: &config.ServerConfig{Path: "games"}}

	args := s.ViewerArgs("brave-otter")
	if len(args) != 3 || args[0] != "--log" || args[1] != os.DevNull || args[2] != "games" {
		t.Fatalf("unexpected args %v", args)
	}

	s.cfg.SessionLogs = "/var/log/sgfterm"
	args = s.ViewerArgs("brave-otter")
	if args[1] != filepath.Join("/var/log/sgfterm", "sgfterm-brave-otter.log") {
		t.Errorf("unexpected log path %s", args[1])
	}

	s.cfg.Path = ""
	if args := s.ViewerArgs("x"); len(args) != 2 {
		t.Errorf("expected no record path, got %v", args)
	}
}

func TestViewerEnv(t *testing.T) {
	t.Setenv("SGFTERM_THEMES", "/etc/passwd")

	env := viewerEnv("xterm-256color")
	if env[0] != "TERM=xterm-256color" {
		t.Errorf("expected TERM first, got %v", env)
	}
	for _, kv := range env {
		key := strings.SplitN(kv, "=", 2)[0]
		if key != "TERM" && key != "PATH" && key != "HOME" {
			t.Errorf("unexpected variable %s", kv)
		}
	}
}

func TestNewServerMissingHostKey(t *testing.T) {
	cfg := &config.ServerConfig{
		Listen:      config.DefaultListen,
		HostKey:     filepath.Join(t.TempDir(), "missing"),
		Binary:      "sgfterm",
		IdleTimeout: time.Minute,
	}
	if _, err := NewServer(cfg, zap.NewNop().Sugar()); err == nil {
		t.Error("expected error for a missing host key")
	}
}

func writeHostKey(t *testing.T, dir string) string {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate host key: %s", err)
	}
	block, err := gossh.MarshalPrivateKey(priv, "")
	if err != nil {
		t.Fatalf("failed to marshal host key: %s", err)
	}
	path := filepath.Join(dir, "host_key")
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestServerSession(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no shell to stand in for the viewer")
	}
	dir := t.TempDir()

	// Stands in for the viewer and prints what it was started with.
	binary := filepath.Join(dir, "viewer.sh")
	script := "#!/bin/sh\necho \"args: $*\"\nenv\n"
	if err := os.WriteFile(binary, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	cfg := &config.ServerConfig{
		HostKey:     writeHostKey(t, dir),
		Binary:      binary,
		Path:        "games",
		IdleTimeout: time.Minute,
	}
	s, err := NewServer(cfg, zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("failed to create server: %s", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go s.Serve(ln)
	defer s.Close()

	client, err := gossh.Dial("tcp", ln.Addr().String(), &gossh.ClientConfig{
		User: "guest",
		Auth: []gossh.AuthMethod{
			gossh.KeyboardInteractive(func(user, instruction string, questions []string, echos []bool) ([]string, error) {
				return make([]string, len(questions)), nil
			}),
		},
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to dial: %s", err)
	}
	defer client.Close()

	sess, err := client.NewSession()
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	for key, value := range map[string]string{
		"SGFTERM_THEMES": "/etc/passwd",
		"LD_PRELOAD":     "/tmp/evil.so",
	} {
		if err := sess.Setenv(key, value); err != nil {
			t.Fatalf("failed to send %s: %s", key, err)
		}
	}
	if err := sess.RequestPty("xterm", 40, 80, gossh.TerminalModes{}); err != nil {
		t.Fatalf("failed to request pty: %s", err)
	}

	var out bytes.Buffer
	sess.Stdout = &out
	if err := sess.Shell(); err != nil {
		t.Fatalf("failed to start shell: %s", err)
	}
	if err := sess.Wait(); err != nil {
		t.Fatalf("session failed: %s", err)
	}

	got := out.String()
	if !strings.Contains(got, "args: --log "+os.DevNull+" games") {
		t.Errorf("unexpected viewer args in %q", got)
	}
	if !strings.Contains(got, "TERM=xterm") {
		t.Errorf("expected TERM from the pty request in %q", got)
	}
	for _, key := range []string{"SGFTERM_THEMES", "LD_PRELOAD"} {
		if strings.Contains(got, key) {
			t.Errorf("expected %s from the client to be dropped, got %q", key, got)
		}
	}
}
