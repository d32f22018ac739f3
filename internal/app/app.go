package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/sentinel/internal/notification/usecase"
	"github.com/shandysiswandi/sentinel/internal/pkg/clock"
	"github.com/shandysiswandi/sentinel/internal/pkg/config"
	"github.com/shandysiswandi/sentinel/internal/pkg/goroutine"
	"github.com/shandysiswandi/sentinel/internal/pkg/instrument"
	"github.com/shandysiswandi/sentinel/internal/pkg/jwt"
	"github.com/shandysiswandi/sentinel/internal/pkg/messaging"
	"github.com/shandysiswandi/sentinel/internal/pkg/router"
	"github.com/shandysiswandi/sentinel/internal/pkg/uid"
	"github.com/shandysiswandi/sentinel/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uuid      uid.StringID
	jwt       jwt.JWT

	// resources
	consumer messaging.Consumer

	// modules
	notification *usecase.Usecase

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}

// NewCommand initializes only what one-shot operational commands need: no
// HTTP server and no message consumer.
func NewCommand() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initModules()
	app.initClosers()

	return app
}
