// Command follow sigue la trayectoria de un beneficiario desde la terminal: la reconstruye
// cada -interval y la imprime. Usa la misma config que el API (DB_DSN, SEED_FILE, TIMELINE_TZ).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"beneficiary-trajectory/internal/domain/trajectory"
	"beneficiary-trajectory/internal/platform/config"
	"beneficiary-trajectory/internal/platform/logger"
	"beneficiary-trajectory/internal/router"
)

func main() {
	var (
		beneficiaryID string
		interval      time.Duration
		once          bool
	)
	flag.StringVar(&beneficiaryID, "beneficiary", "", "beneficiary id to follow (required)")
	flag.DurationVar(&interval, "interval", 30*time.Second, "refresh interval")
	flag.BoolVar(&once, "once", false, "print the trajectory once and exit")
	flag.Parse()

	if beneficiaryID == "" {
		fmt.Fprintln(os.Stderr, "Error: -beneficiary is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Output: os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, beneficiaryID, interval, once); err != nil {
		log.Error("follow failed", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log logger.Logger, beneficiaryID string, interval time.Duration, once bool) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	stores, closeStores, err := router.OpenStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = closeStores() }()

	asm := trajectory.NewAssembler(trajectory.Sources{
		Attendance: stores.Attendance,
		Notes:      stores.Notes,
		Activities: stores.Activities,
		Spaces:     stores.Spaces,
		Actors:     stores.Actors,
	}, trajectory.Options{Normalizer: trajectory.NewNormalizer(loc), Logger: log})

	f := &follower{
		feed:          trajectory.NewFeed(asm),
		beneficiaryID: beneficiaryID,
		out:           os.Stdout,
		log:           log,
	}
	if once {
		return f.refresh(ctx)
	}
	return f.loop(ctx, interval)
}

// follower imprime el snapshot del Feed después de cada reconstrucción que no fue superada.
type follower struct {
	feed          *trajectory.Feed
	beneficiaryID string

	outMu sync.Mutex
	out   io.Writer
	log   logger.Logger
}

func (f *follower) refresh(ctx context.Context) error {
	_, err := f.feed.Build(ctx, f.beneficiaryID)
	switch {
	case errors.Is(err, trajectory.ErrSuperseded):
		return nil
	case err != nil:
		// el snapshot conserva la última trayectoria buena
		f.log.Warn("trajectory refresh failed", map[string]any{
			"beneficiary_id": f.beneficiaryID,
			"error":          err,
		})
		return err
	}

	f.outMu.Lock()
	defer f.outMu.Unlock()
	printSnapshot(f.out, f.feed.Snapshot())
	return nil
}

// loop lanza un refresh por tick sin esperar al anterior: si uno lento termina después
// de uno más nuevo, el Feed lo descarta.
func (f *follower) loop(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	start := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.refresh(ctx)
		}()
	}

	start()
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			start()
		}
	}
}

func printSnapshot(w io.Writer, s trajectory.Snapshot) {
	fmt.Fprintf(w, "# %s: %d entries\n", s.BeneficiaryID, len(s.Entries))
	for _, e := range s.Entries {
		date := "----------"
		if !e.DateUnparsed {
			date = e.Instant.Format("2006-01-02")
		}

		var detail string
		switch {
		case e.Attendance != nil:
			detail = fmt.Sprintf("%s (%s)", e.Attendance.SpaceName, e.Attendance.Status)
		case e.Note != nil:
			detail = fmt.Sprintf("%s (%s)", e.Note.AuthorName, e.Note.AuthorRole)
		}
		fmt.Fprintf(w, "%s  %-10s  %s  %s\n", date, e.Kind, e.Title, detail)
	}
}
