// satchel-server serves the game over SSH. Every connection plays its own
// independent session. Build:
//
//	go build -o satchel-server ./cmd/server
//
// Usage:
//
//	./satchel-server [--port 2222] [--key server_host_key] [--settings path]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"satchel/internal/game"
	"satchel/internal/settings"
	internalssh "satchel/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/spf13/cobra"
	xssh "golang.org/x/crypto/ssh"
)

var (
	port         int
	keyFile      string
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:   "satchel-server",
	Short: "Serve satchel over SSH",
	Long:  `Serve satchel over SSH. Each connection gets its own game with its own satchel.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		return serve(logger)
	},
}

func init() {
	rootCmd.Flags().IntVarP(&port, "port", "p", 2222, "SSH server port")
	rootCmd.Flags().StringVarP(&keyFile, "key", "k", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Settings file applied to every session (defaults when empty)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(logger *slog.Logger) error {
	signer, err := loadOrCreateHostKey(keyFile, logger)
	if err != nil {
		return err
	}
	prefs := settings.Default()
	if settingsPath != "" {
		if prefs, err = settings.Load(settingsPath); err != nil {
			logger.Warn("settings unreadable, using defaults", "path", settingsPath, "error", err)
		}
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", port),
		Handler: func(s gossh.Session) {
			handleSession(s, prefs, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may connect; add gossh.PublicKeyAuth for real auth.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("satchel SSH server listening", "addr", srv.Addr)
	logger.Info("connect with", "cmd", fmt.Sprintf("ssh -t -p %d -o StrictHostKeyChecking=no localhost", port))
	return srv.ListenAndServe()
}

// allowedTerms lists the TERM values a client may ask for. The value is
// written to the process environment before terminfo lookup, so it must
// never be client-controlled free text.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

const defaultTerm = "xterm-256color"

// maxNameBytes bounds a player name as stored in the run log.
const maxNameBytes = 16

// sanitizeName strips control characters from an SSH user name and cuts it
// to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == utf8.RuneError || unicode.IsControl(r) {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// termMu protects os.Setenv("TERM") around screen creation; sessions
// connect concurrently.
var termMu sync.Mutex

// handleSession runs one game for one SSH connection. It blocks until the
// player quits or disconnects so the session stays open.
func handleSession(s gossh.Session, prefs settings.Settings, logger *slog.Logger) {
	name := sanitizeName(s.User())
	log := logger.With("player", name, "remote", s.RemoteAddr().String())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "satchel needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}

	term := pty.Term
	if !allowedTerms[term] {
		log.Info("unsupported TERM, using default", "term", term)
		term = defaultTerm
	}

	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		log.Warn("terminal setup failed", "term", term, "error", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		log.Warn("screen init failed", "error", err)
		return
	}

	g, err := game.New(game.Options{
		Screen:   screen,
		Logger:   log,
		Settings: prefs,
		Player:   name,
	})
	if err != nil {
		screen.Fini()
		log.Warn("game setup failed", "error", err)
		return
	}
	log.Info("session started")
	if err := g.Run(s.Context()); err != nil {
		log.Info("session ended", "reason", err)
		return
	}
	log.Info("session ended")
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "satchel server")
	if err != nil {
		logger.Warn("host key not persisted", "error", err)
		return signer, nil
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		logger.Warn("host key not persisted", "path", path, "error", err)
	}
	return signer, nil
}
