package bot

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// StatusResponse is the body of GET /status
type StatusResponse struct {
	Status        string    `json:"status"`
	InstanceID    string    `json:"instance_id"`
	StartedAt     time.Time `json:"started_at"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Uptime        string    `json:"uptime"`
	Guilds        int       `json:"guilds"`
}

// StatusAPI serves the keep-alive and status endpoints
type StatusAPI struct {
	guilds     func() int
	instanceID string
	startedAt  time.Time
	now        func() time.Time
}

// NewStatusAPI creates the status API; guilds reports the current guild count
func NewStatusAPI(guilds func() int) *StatusAPI {
	return &StatusAPI{
		guilds:     guilds,
		instanceID: uuid.NewString(),
		startedAt:  time.Now(),
		now:        time.Now,
	}
}

// Router builds the HTTP routes
func (a *StatusAPI) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RedirectSlashes,
		middleware.Recoverer,
	)

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, "Bot online")
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	router.Get("/status", a.handleStatus)

	return router
}

func (a *StatusAPI) handleStatus(w http.ResponseWriter, r *http.Request) {
	uptime := a.now().Sub(a.startedAt)
	render.JSON(w, r, StatusResponse{
		Status:        "online",
		InstanceID:    a.instanceID,
		StartedAt:     a.startedAt.UTC(),
		UptimeSeconds: int64(uptime.Seconds()),
		Uptime:        uptime.Truncate(time.Second).String(),
		Guilds:        a.guilds(),
	})
}

// Start serves the API on port in the background and returns its shutdown function
func (a *StatusAPI) Start(port int) func(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      a.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Status API listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Status API server error: %v", err)
		}
	}()

	return server.Shutdown
}
