package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"playground.dev/pkg/playground/internal/adapter"
	"playground.dev/pkg/playground/internal/domain"
	"playground.dev/pkg/playground/pkg"
)

const shutdownTimeout = 5 * time.Second

var serveJournalFlag string
var serveMetricsAddrFlag string

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [dirs...]",
		Short: "Apply a stream of file events and report each recompilation",
		Long: `Without arguments, read one JSON message per line from stdin:

  {"command":"modify_file","content":{"root_path":"/p","name":"/p/a.yaml","content":"..."}}
  {"command":"add_project","content":{"root_path":"/p","files":{"/p/a.yaml":"..."}}}
  {"command":"remove_project","content":{"root_path":"/p"}}

With directories, watch each one as a project and turn file changes into
the same events. Events are applied strictly in arrival order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			sources, err := eventSources(cmd, args)
			if err != nil {
				return err
			}

			return serve(ctx, cmd, sources)
		},
	}

	cmd.Flags().StringVar(&serveJournalFlag, journalFlagName, viper.GetString(journalConfigKey), "record every applied message to this journal file")
	bindFlagToConfig(cmd.Flags().Lookup(journalFlagName), journalConfigKey)

	cmd.Flags().StringVar(&serveMetricsAddrFlag, metricsAddrFlagName, viper.GetString(metricsAddrConfigKey), "serve Prometheus metrics on this address (e.g. :9090)")
	bindFlagToConfig(cmd.Flags().Lookup(metricsAddrFlagName), metricsAddrConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func eventSources(cmd *cobra.Command, dirs []string) ([]adapter.EventSource, error) {
	if len(dirs) == 0 {
		return []adapter.EventSource{adapter.NewJSONLineSource(cmd.InOrStdin())}, nil
	}

	sources := make([]adapter.EventSource, 0, len(dirs))

	for _, dir := range dirs {
		source, err := adapter.NewWatchSource(dir, adapter.SchemaExtensions...)
		if err != nil {
			return nil, err
		}

		sources = append(sources, source)
	}

	return sources, nil
}

func serve(ctx context.Context, cmd *cobra.Command, sources []adapter.EventSource) error {
	recorder := adapter.NewPrometheusRecorder()

	s, err := openSession(ctx, recorder)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := []domain.IngestorOption{domain.WithEventRecorder(recorder)}

	if path := viper.GetString(journalConfigKey); path != "" {
		journal, err := pkg.CreateJournal[adapter.Message](path)
		if err != nil {
			return err
		}

		defer func() {
			if err := journal.Close(); err != nil {
				slog.Error("Failed to close journal", "path", path, "error", err)
			}
		}()

		opts = append(opts, domain.WithJournal(journal))
	}

	ui := newUI(cmd)
	unsubscribe := s.workspace.Subscribe(func(change domain.Change) {
		ui.DisplayChange(ctx, change, s.workspace.Snapshot())
	})
	defer unsubscribe()

	ingestor := domain.NewIngestor(s.workspace, opts...)
	envelopes := make(chan adapter.Envelope)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(runCtx)
	producers, producersCtx := errgroup.WithContext(groupCtx)

	for _, source := range sources {
		producers.Go(func() error {
			return source.Stream(producersCtx, envelopes)
		})
	}

	// A source blocked on stdin may never return after cancellation, so the
	// producers are not part of the group that is waited on.
	produced := make(chan error, 1)

	go func() {
		produced <- producers.Wait()
		close(envelopes)
	}()

	group.Go(func() error {
		defer cancel()
		return ingestor.Run(groupCtx, envelopes)
	})

	if addr := viper.GetString(metricsAddrConfigKey); addr != "" {
		group.Go(func() error {
			return serveMetrics(groupCtx, addr, recorder.Handler())
		})
	}

	err = ignoreCanceled(group.Wait())

	select {
	case produceErr := <-produced:
		err = errors.Join(err, ignoreCanceled(produceErr))
	default:
	}

	return err
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func serveMetrics(ctx context.Context, addr string, handler http.Handler) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to stop metrics server", "error", err)
		}
	}()

	slog.Info("serving metrics", "addr", addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}

	return nil
}
