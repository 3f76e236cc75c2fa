package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/ipms/internal/client/client"
	"github.com/dmitrijs2005/ipms/internal/client/config"
	"github.com/dmitrijs2005/ipms/internal/client/export"
	"github.com/dmitrijs2005/ipms/internal/client/metrics"
	"github.com/dmitrijs2005/ipms/internal/client/router"
	"github.com/dmitrijs2005/ipms/internal/client/scan"
	"github.com/dmitrijs2005/ipms/internal/client/services"
	"github.com/dmitrijs2005/ipms/internal/client/session"
	"github.com/dmitrijs2005/ipms/internal/client/storage"
	"github.com/dmitrijs2005/ipms/internal/client/table"
	"github.com/dmitrijs2005/ipms/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	sessions *session.Store
	api      *client.Client
	metrics  *metrics.Metrics

	authService services.AuthService
	stock       *services.StockService
	dashboard   *services.DashboardService
	nav         *router.Navigator
	sink        export.Sink
	// exports is shared by every page so a running export stays busy after
	// its page is left. Keys are "<page>/<format>".
	exports *export.Trigger

	reader *bufio.Reader
	out    io.Writer
	outMu  sync.Mutex
	now    func() time.Time

	// bg tracks background exports so exit waits for them.
	bg sync.WaitGroup
}

// NewApp opens the local database and wires every service. Close releases
// what it opened.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	sink, err := newSink(ctx, c)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	m := metrics.New()
	sessions := session.NewStore(db)

	opts := []client.Option{
		client.WithLogger(log),
		client.WithMetrics(m),
		client.WithTimeout(c.RequestTimeout),
	}
	if c.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(c.RateLimit, c.RateBurst))
	}
	api := client.New(c.APIBaseURL, sessions, opts...)
	adapter := services.ClientAPI{C: api}

	return &App{
		config:      c,
		log:         log,
		db:          db,
		sessions:    sessions,
		api:         api,
		metrics:     m,
		authService: services.NewAuthService(adapter, sessions, log),
		stock:       services.NewStockService(adapter, scan.NewSimulated()),
		dashboard:   services.NewDashboardService(adapter, log),
		nav:         router.New(sessions),
		sink:        sink,
		exports:     export.NewTrigger(sink, log),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		now:         time.Now,
	}, nil
}

func newSink(ctx context.Context, c *config.Config) (export.Sink, error) {
	switch c.ExportSink {
	case "", config.SinkLocal:
		return export.LocalSink{Dir: c.DownloadDir}, nil
	case config.SinkS3:
		return export.NewS3SinkFromEnv(ctx, c.S3Region, c.S3Bucket, c.S3Prefix)
	default:
		return nil, fmt.Errorf("unknown export sink %q", c.ExportSink)
	}
}

// Run serves metrics when configured and blocks in the REPL until the user
// exits or ctx ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.config.MetricsAddr != "" {
		go func() {
			if err := a.metrics.Serve(ctx, a.config.MetricsAddr, a.log); err != nil {
				a.log.Error(ctx, "metrics server failed", "error", err)
			}
		}()
	}

	a.say("Welcome to IPMS CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	a.bg.Wait()
}

func (a *App) Close() error {
	a.bg.Wait()
	return a.db.Close()
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.sessions.HasSession(ctx)
}

// getStatus is the prompt prefix: user and, when the token says so, that it
// has expired. The backend stays the judge of validity.
func (a *App) getStatus() string {
	ctx := context.Background()
	if !a.sessions.HasSession(ctx) {
		return "(guest)"
	}
	s := a.sessions.Username(ctx)
	if s == "" {
		s = "user"
	}
	if claims, err := a.sessions.Claims(ctx); err == nil && claims.Expired(a.now()) {
		s += " expired"
	}
	return "(" + s + ")"
}

func (a *App) tableConfig() table.Config {
	return table.Config{
		Quiet:        a.config.SearchDebounce,
		DiscardStale: a.config.DiscardStaleResponses,
		Log:          a.log,
		OnStale:      a.metrics.StaleResponse,
		Now:          a.now,
	}
}

// say writes one line of user-facing output. Safe to call from the
// debounce and poller goroutines.
func (a *App) say(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format+"\n", args...)
}

// sayErr prints the banner for err, preferring the server's explanation.
func (a *App) sayErr(err error) {
	a.say("%s", table.Paint("! "+client.DetailMessage(err), table.ToneError, a.config.Color))
}

func (a *App) sayOK(msg string) {
	a.say("%s", table.Paint(msg, table.ToneSuccess, a.config.Color))
}

// write runs fn with exclusive access to the output.
func (a *App) write(fn func(w io.Writer) error) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	if err := fn(a.out); err != nil {
		a.log.Warn(context.Background(), "write output", "error", err)
	}
}

// console is a.out behind the output lock, for prompts written while a
// background render may be running.
func (a *App) console() io.Writer { return lockedWriter{a} }

type lockedWriter struct{ a *App }

func (w lockedWriter) Write(b []byte) (int, error) {
	w.a.outMu.Lock()
	defer w.a.outMu.Unlock()
	return w.a.out.Write(b)
}
