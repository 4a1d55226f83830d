package ipc

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"

	log "github.com/echocat/slf4g"
)

// ResponseUnknown answers everything which is not a control command.
const ResponseUnknown = "unknown"

// Session is the daemon's state machine as the control server sees it. The
// server serializes every call through one exclusive lock; implementations do
// not need their own locking.
type Session interface {
	Toggle(ctx context.Context) string
	Cancel(ctx context.Context) string
	Status() string
}

// Server exposes a Session on a local unix socket. Protocol per connection:
// one newline-terminated UTF-8 command in, one newline-terminated token out,
// connection closed.
type Server struct {
	// Path of the socket to serve on. If empty SocketPath() is used.
	Path    string
	Session Session

	mutex    sync.Mutex
	listener net.Listener
}

// Initialize removes a stale socket at the resolved path and binds a fresh
// one. A second daemon initialized against the same path replaces the first
// one's endpoint; the first keeps running but becomes unreachable.
func (this *Server) Initialize() error {
	path := this.resolvePath()
	_ = os.Remove(path)

	listener, err := net.Listen("unix", path)
	if err != nil {
		return fmt.Errorf("cannot bind control endpoint %q: %w", path, err)
	}
	this.listener = listener

	log.With("path", path).
		Info("Listening for control commands.")
	return nil
}

// Run accepts connections until the given context is done. Every connection
// is served on its own goroutine; only the session access is mutually
// exclusive, so a connection which never sends a newline stalls nothing but
// itself.
func (this *Server) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = this.listener.Close()
	})
	defer stop()

	for {
		conn, err := this.listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("cannot accept control connection: %w", err)
		}
		go this.handle(ctx, conn)
	}
}

func (this *Server) handle(ctx context.Context, conn net.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && line == "" {
		log.WithError(err).
			Debug("Control connection dropped before sending a command.")
		return
	}

	response := this.executePlain(ctx, strings.TrimSpace(line))

	if _, err := fmt.Fprintln(conn, response); err != nil {
		log.WithError(err).
			Debug("Cannot answer control connection.")
	}
}

func (this *Server) executePlain(ctx context.Context, plain string) string {
	var cmd Command
	if err := cmd.Set(plain); err != nil {
		log.With("command", plain).
			With("expected", AllCommands).
			Info("Unknown control command received.")
		return ResponseUnknown
	}
	return this.Execute(ctx, cmd)
}

// Execute runs a single command against the session, holding the session
// lock for the whole call. A toggle which ends a recording keeps the lock for
// the entire transcription pipeline; concurrent commands block that long.
func (this *Server) Execute(ctx context.Context, cmd Command) string {
	this.mutex.Lock()
	defer this.mutex.Unlock()

	switch cmd {
	case CommandToggle:
		return this.Session.Toggle(ctx)
	case CommandCancel:
		return this.Session.Cancel(ctx)
	default:
		return this.Session.Status()
	}
}

// Dispose closes the listener and removes the socket.
func (this *Server) Dispose() error {
	if v := this.listener; v != nil {
		this.listener = nil
		_ = v.Close()
	}
	_ = os.Remove(this.resolvePath())
	return nil
}

func (this *Server) resolvePath() string {
	if v := this.Path; v != "" {
		return v
	}
	return SocketPath()
}
