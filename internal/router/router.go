package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "vet-clinic/internal/adapters/storage/memory"
	pg "vet-clinic/internal/adapters/storage/postgres"
	_ "vet-clinic/internal/docs"
	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/billings"
	"vet-clinic/internal/domain/medications"
	"vet-clinic/internal/domain/owners"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/staff"
	"vet-clinic/internal/domain/treatments"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/render"
	"vet-clinic/internal/platform/spa"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: store in-memory a usar cuando no hay DB (tests lo comparten).
	Store *mem.Store

	Logger zerolog.Logger

	// Directorio del frontend compilado. Vacío = shell embebido.
	SPADir string
}

type repositories struct {
	staff        staff.Repository
	owners       owners.Repository
	pets         pets.Repository
	appointments appointments.Repository
	treatments   treatments.Repository
	medications  medications.Repository
	billings     billings.Repository
}

func newRepositories(opts Options) repositories {
	if db := opts.DB; db != nil {
		return repositories{
			staff:        pg.NewStaffRepo(db),
			owners:       pg.NewOwnersRepo(db),
			pets:         pg.NewPetsRepo(db),
			appointments: pg.NewAppointmentsRepo(db),
			treatments:   pg.NewTreatmentsRepo(db),
			medications:  pg.NewMedicationsRepo(db),
			billings:     pg.NewBillingsRepo(db),
		}
	}

	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}
	return repositories{
		staff:        mem.NewStaffRepo(store),
		owners:       mem.NewOwnerRepo(store),
		pets:         mem.NewPetRepo(store),
		appointments: mem.NewAppointmentRepo(store),
		treatments:   mem.NewTreatmentRepo(store),
		medications:  mem.NewMedicationRepo(store),
		billings:     mem.NewBillingRepo(store),
	}
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(hlog.NewHandler(opts.Logger))
	r.Use(middleware.RequestID)
	r.Use(hlog.AccessHandler(accessLog))
	r.Use(middleware.Recover)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	repos := newRepositories(opts)

	// Services por módulo
	staffSvc := staff.NewService(repos.staff)
	ownersSvc := owners.NewService(repos.owners)
	petsSvc := pets.NewService(repos.pets)
	appointmentsSvc := appointments.NewService(repos.appointments)
	treatmentsSvc := treatments.NewService(repos.treatments)
	medicationsSvc := medications.NewService(repos.medications)
	billingsSvc := billings.NewService(repos.billings)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		staff.RegisterRoutes(api, staffSvc)
		owners.RegisterRoutes(api, ownersSvc)
		pets.RegisterRoutes(api, petsSvc)
		appointments.RegisterRoutes(api, appointmentsSvc)
		treatments.RegisterRoutes(api, treatmentsSvc)
		medications.RegisterRoutes(api, medicationsSvc)
		billings.RegisterRoutes(api, billingsSvc)

		api.NotFound(func(w http.ResponseWriter, _ *http.Request) {
			render.NotFound(w)
		})
		api.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
			render.JSON(w, http.StatusMethodNotAllowed, render.ErrorResponse{Error: "Method Not Allowed"})
		})
	})

	// Todo lo demás es del frontend.
	r.NotFound(spa.Handler(opts.SPADir))

	return r
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}
