package main

import (
	"context"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mager/crossfade/config"
	"github.com/mager/crossfade/curator"
	"github.com/mager/crossfade/database"
	"github.com/mager/crossfade/dataset"
	curateHandler "github.com/mager/crossfade/handler/curate"
	"github.com/mager/crossfade/handler/health"
	runsHandler "github.com/mager/crossfade/handler/runs"
	"github.com/mager/crossfade/handler/setlist"
	"github.com/mager/crossfade/logger"
	"github.com/mager/crossfade/middleware"
	"github.com/mager/crossfade/spotify"
)

// Route is an http.Handler that knows the mux pattern
// under which it will be registered.
type Route interface {
	http.Handler

	// Pattern reports the path at which this is registered.
	Pattern() string
}

//	@title			Crossfade
//	@version		1.0
//	@description	DJ set sequencing API: orders tracks for harmonic, tempo and energy flow

// @host		localhost:8080
// @BasePath	/
func main() {
	fx.New(
		fx.Provide(NewHTTPServer,
			config.Options,
			logger.Options,
			dataset.Options,
			spotify.Options,
			database.Options,
			database.StoreOptions,
			curator.Options,

			AsRoute(health.NewHealthHandler),
			AsRoute(setlist.NewSequenceHandler),
			AsRoute(setlist.NewScoreHandler),
			AsRoute(setlist.NewSummaryHandler),
			AsRoute(runsHandler.NewRunsHandler),
		),
		fx.Invoke(func(*http.Server) {}),
	).Run()
}

func NewHTTPServer(
	lc fx.Lifecycle,
	log *zap.SugaredLogger,
	cfg config.Config,
	loader *dataset.Loader,
	spotifyClient *spotify.SpotifyClient,
	store *database.RunStore,
	cur *curator.Curator,
) *http.Server {
	router := mux.NewRouter()

	srv := &http.Server{Addr: ":8080", Handler: middleware.JSON(router)}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Infof("Starting HTTP server at %s", srv.Addr)
			go srv.Serve(ln)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})

	// Define handlers
	healthH := health.NewHealthHandler(log, spotifyClient)
	router.Handle(healthH.Pattern(), healthH).Methods(http.MethodGet)

	sequenceH := setlist.NewSequenceHandler(log)
	router.Handle(sequenceH.Pattern(), sequenceH).Methods(http.MethodPost)

	scoreH := setlist.NewScoreHandler(log)
	router.Handle(scoreH.Pattern(), scoreH).Methods(http.MethodPost)

	summaryH := setlist.NewSummaryHandler(log)
	router.Handle(summaryH.Pattern(), summaryH).Methods(http.MethodPost)

	runsH := runsHandler.NewRunsHandler(log, store)
	router.Handle(runsH.Pattern(), runsH).Methods(http.MethodGet)

	// The full pipeline mutates run history, so it sits behind auth.
	curateH := curateHandler.NewCurateHandler(log, cur)
	router.Handle(curateH.Pattern(),
		middleware.RequireAuth(cfg.JWTSecret, curateH)).Methods(http.MethodPost)

	progressH := curateHandler.NewProgressHandler(log, cur)
	router.Handle(progressH.Pattern(), progressH).Methods(http.MethodGet)

	return srv
}

// AsRoute annotates the given constructor to state that
// it provides a route to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(Route)),
		fx.ResultTags(`group:"routes"`),
	)
}
