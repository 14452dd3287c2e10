package player

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/pixil98/go-sokoban/internal"
	"github.com/pixil98/go-sokoban/internal/commands"
	"github.com/pixil98/go-sokoban/internal/messaging"
	"github.com/pixil98/go-sokoban/internal/metrics"
	"github.com/pixil98/go-sokoban/internal/session"
)

// Manager runs one puzzle session per connection over a shared level pool.
type Manager struct {
	levels      []session.Level
	cmdHandler  *commands.Handler
	publisher   messaging.Publisher
	metrics     *metrics.Metrics
	sessionOpts []session.SessionOpt

	mu       sync.Mutex
	sessions map[uuid.UUID]*session.Session
}

func NewManager(levels []session.Level, cmd *commands.Handler, opts ...ManagerOpt) (*Manager, error) {
	if len(levels) == 0 {
		return nil, session.ErrEmptyPool
	}

	m := &Manager{
		levels:     levels,
		cmdHandler: cmd,
		sessions:   map[uuid.UUID]*session.Session{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Start blocks until ctx is done, then closes every open session.
func (m *Manager) Start(ctx context.Context) error {
	<-ctx.Done()

	m.mu.Lock()
	open := make([]*session.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		open = append(open, s)
	}
	m.mu.Unlock()

	for _, s := range open {
		s.Close()
	}
	slog.InfoContext(ctx, "closed player sessions", "count", len(open))
	return nil
}

// SetLevels replaces the pool used by sessions started from now on.
// Running sessions keep the levels they started with.
func (m *Manager) SetLevels(levels []session.Level) error {
	if len(levels) == 0 {
		return session.ErrEmptyPool
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.levels = levels
	return nil
}

// Tick logs how many sessions are being played.
func (m *Manager) Tick(ctx context.Context) error {
	slog.DebugContext(ctx, "player sessions", "active", m.Active())
	return nil
}

// Active returns the number of sessions currently being played.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// RunSession plays a game over conn until the player quits, the connection
// drops or ctx is canceled.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	in := bufio.NewReader(conn)

	m.mu.Lock()
	levels := m.levels
	m.mu.Unlock()

	start, err := promptLevel(in, conn, len(levels))
	if err != nil {
		return fmt.Errorf("choosing start level: %w", err)
	}

	sess, err := session.New(levels, m.sessionOpts...)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}
	m.track(sess)
	defer m.untrack(sess)

	if start > 0 && !sess.GotoLevel(start) {
		return fmt.Errorf("level %d not in pool", start+1)
	}

	p := &Player{
		conn:       conn,
		in:         in,
		game:       sess,
		cmdHandler: m.cmdHandler,
		refresh:    make(chan struct{}, 1),
	}

	showHelp, err := internal.PromptYN(in, conn, "Show the controls first? (yes/no) ")
	if err != nil {
		return fmt.Errorf("asking about controls: %w", err)
	}
	if showHelp {
		if err := p.exec(ctx, "help"); err != nil {
			return err
		}
	}

	sess.AddListener(p.listener())
	if m.publisher != nil {
		sess.AddListener(messaging.NewEventPublisher(m.publisher, sess.Id()))
	}
	if m.metrics != nil {
		m.metrics.SessionStarted()
		defer m.metrics.SessionEnded()
		sess.AddListener(m.metrics.Listener())
	}

	slog.InfoContext(ctx, "session started", "session", sess.Id().String(), "level", start+1)
	return p.Play(ctx)
}

// promptLevel returns the zero based index the player wants to start on.
func promptLevel(in *bufio.Reader, w io.Writer, count int) (int, error) {
	if count == 1 {
		return 0, nil
	}

	prompt := fmt.Sprintf("Choose a starting level (1-%d) [1]: ", count)
	str, err := internal.Prompt(in, w, prompt,
		internal.WithMaxTries(3),
		internal.WithValidator(func(s string) (bool, string) {
			if _, ok := parseLevel(s, count); !ok {
				return false, fmt.Sprintf("enter a number from 1 to %d\n", count)
			}
			return true, ""
		}),
	)
	if err != nil {
		return 0, err
	}

	i, _ := parseLevel(str, count)
	return i, nil
}

func parseLevel(s string, count int) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > count {
		return 0, false
	}
	return n - 1, true
}

func (m *Manager) track(s *session.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Id()] = s
}

func (m *Manager) untrack(s *session.Session) {
	m.mu.Lock()
	delete(m.sessions, s.Id())
	m.mu.Unlock()

	s.Close()
}
