package service

import (
	"context"
	"time"

	"smartcloth/internal/engine"
	"smartcloth/internal/input"
	"smartcloth/internal/logger"
	"smartcloth/internal/models"
	"smartcloth/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Device stands in for the physical keys and load cell.
type Device interface {
	Press(ctx context.Context, p ButtonParams) error
	SetScale(ctx context.Context, p ScaleParams) error
}

// Monitoring exposes the live engine state and the display it drives.
type Monitoring interface {
	GetState(ctx context.Context) (models.DeviceState, error)
	Snapshot(ctx context.Context) (engine.Snapshot, error)
	Display(ctx context.Context) (engine.View, error)
	Subscribe() (<-chan engine.View, func())
}

// Inspector exposes the transition table and the debug dump.
type Inspector interface {
	Rules() []engine.Rule
	Dump() string
}

// EventLog exposes the persisted transition history with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.TransitionLog, error)
}

// Diary exposes saved meals and their totals.
type Diary interface {
	List(ctx context.Context, f MealFilter) ([]models.Meal, error)
	Totals(ctx context.Context, f MealFilter) (models.Diary, error)
}

// Runner drives the engine loop. Stop it by cancelling ctx.
type Runner interface {
	Run(ctx context.Context, tick time.Duration)
}

// EngineView is the read side of the engine used by the services.
type EngineView interface {
	Snapshot() (engine.Snapshot, bool)
	Rules() []engine.Rule
	Dump() string
}

// EnginePoller is what the runner drives.
type EnginePoller interface {
	Poll(ctx context.Context)
	Snapshot() (engine.Snapshot, bool)
}

type Engine interface {
	EngineView
	Poll(ctx context.Context)
}

type Service struct {
	Device
	Monitoring
	Inspector
	EventLog
	Diary
	Runner
	Authorization
}

// Deps are the pieces built before the services: the engine and the input
// cells it reads from.
type Deps struct {
	Repos   *repository.Repository
	Engine  Engine
	Display *DisplayHub
	Buttons *input.ButtonCell
	Scale   *input.LoadCell
	Auth    AuthConfig
	Logger  *logger.Logger
}

func NewService(d Deps) *Service {
	log := logger.OrNop(d.Logger)
	return &Service{
		Device:        NewDeviceService(d.Buttons, d.Scale, log),
		Monitoring:    NewMonitoringService(d.Engine, d.Repos.Snapshots, d.Display),
		Inspector:     NewInspectorService(d.Engine),
		EventLog:      NewEventLogService(d.Repos.Transitions),
		Diary:         NewDiaryService(d.Repos.Meals),
		Runner:        NewRunnerService(d.Engine, d.Repos.Snapshots, log),
		Authorization: NewAuthService(d.Repos.Auth, d.Auth),
	}
}
