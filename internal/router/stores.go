package router

import (
	"context"
	"database/sql"
	"fmt"

	mem "beneficiary-trajectory/internal/adapters/storage/memory"
	pg "beneficiary-trajectory/internal/adapters/storage/postgres"
	"beneficiary-trajectory/internal/platform/config"
	"beneficiary-trajectory/internal/platform/logger"
)

func PostgresStores(db *sql.DB) Stores {
	return Stores{
		Beneficiaries: pg.NewBeneficiariesRepo(db),
		Attendance:    pg.NewAttendanceRepo(db),
		Notes:         pg.NewNotesRepo(db),
		Activities:    pg.NewActivitiesRepo(db),
		Spaces:        pg.NewSpacesRepo(db),
		Actors:        pg.NewActorsRepo(db),
	}
}

func MemoryStores(st *mem.Store) Stores {
	return Stores{
		Beneficiaries: st.Beneficiaries,
		Attendance:    st.Attendance,
		Notes:         st.Notes,
		Activities:    st.Activities,
		Spaces:        st.Spaces,
		Actors:        st.Actors,
	}
}

// OpenStores elige el storage según la config: Postgres (con migración) si hay DB_DSN,
// si no in-memory cargado desde SEED_FILE. closeFn libera la conexión, si la hay.
func OpenStores(ctx context.Context, cfg config.Config, log logger.Logger) (stores Stores, closeFn func() error, err error) {
	noop := func() error { return nil }

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return Stores{}, noop, err
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return Stores{}, noop, err
		}
		if cfg.SeedFile != "" {
			log.Warn("SEED_FILE ignored with postgres storage", map[string]any{"seed_file": cfg.SeedFile})
		}
		log.Info("using postgres storage", nil)
		return PostgresStores(db), db.Close, nil
	}

	st := mem.NewStore()
	if cfg.SeedFile == "" {
		log.Warn("DB_DSN and SEED_FILE not set, in-memory storage starts empty", nil)
		return MemoryStores(st), noop, nil
	}

	seed, err := mem.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return Stores{}, noop, err
	}
	if err := st.Apply(ctx, seed); err != nil {
		return Stores{}, noop, fmt.Errorf("apply seed: %w", err)
	}
	log.Info("using in-memory storage", map[string]any{
		"seed_file":     cfg.SeedFile,
		"beneficiaries": len(seed.Beneficiaries),
	})
	return MemoryStores(st), noop, nil
}
