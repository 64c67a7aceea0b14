package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "beneficiary-trajectory/docs"
	mem "beneficiary-trajectory/internal/adapters/storage/memory"
	"beneficiary-trajectory/internal/domain/activities"
	"beneficiary-trajectory/internal/domain/actors"
	"beneficiary-trajectory/internal/domain/attendance"
	"beneficiary-trajectory/internal/domain/beneficiaries"
	"beneficiary-trajectory/internal/domain/notes"
	"beneficiary-trajectory/internal/domain/trajectory"
	"beneficiary-trajectory/internal/domain/trajectory/metrics"
	"beneficiary-trajectory/internal/middleware"
	"beneficiary-trajectory/internal/platform/logger"
	"beneficiary-trajectory/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Stores agrupa los repositorios que consume el servicio.
type Stores struct {
	Beneficiaries beneficiaries.Repository
	Attendance    attendance.Repository
	Notes         notes.Repository
	Activities    activities.Repository
	Spaces        activities.SpaceRepository
	Actors        actors.Repository
}

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Stores explícitos (tests, seeds). Si es nil: Postgres si hay DB, si no in-memory.
	Stores *Stores
	DB     *sql.DB

	// Opcional: reemplaza Stores.Actors (directorio de usuarios remoto).
	ActorDirectory actors.Repository

	Logger   logger.Logger
	Location *time.Location

	// Registry para /metrics. Si es nil se crea uno propio.
	Registry *prometheus.Registry
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	stores := resolveStores(opts)
	if opts.ActorDirectory != nil {
		stores.Actors = opts.ActorDirectory
	}

	trajOpts := trajectory.Options{
		Normalizer: trajectory.NewNormalizer(opts.Location),
		Logger:     log,
		Metrics:    metrics.New(reg),
	}

	asm := trajectory.NewAssembler(trajectory.Sources{
		Attendance: stores.Attendance,
		Notes:      stores.Notes,
		Activities: stores.Activities,
		Spaces:     stores.Spaces,
		Actors:     stores.Actors,
	}, trajOpts)
	gw := trajectory.NewGateway(stores.Notes, asm, trajOpts)

	benSvc := beneficiaries.NewService(stores.Beneficiaries)

	trajectory.RegisterRoutes(r, asm, gw, benSvc)

	return r
}

func resolveStores(opts Options) Stores {
	if opts.Stores != nil {
		return *opts.Stores
	}
	if opts.DB != nil {
		return PostgresStores(opts.DB)
	}
	return MemoryStores(mem.NewStore())
}
