package cmd

import (
	"context"
	"errors"
	"io"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/auth"
	"logistics/internal/adapters/out/events"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/accountrepo"
	"logistics/internal/adapters/out/speech"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bootstrapAdminName = "Administrator"

type speechBackend interface {
	ports.SpeechRecognizer
	ports.IntentClassifier
	ports.SpeechSynthesizer
}

type CompositionRoot struct {
	cfg         Config
	logger      *zap.Logger
	gormDB      *gorm.DB
	registry    *prometheus.Registry
	uowFactory  *postgres.GormUnitOfWorkFactory
	speech      speechBackend
	credentials *auth.JWTCredentialService
	hasher      *auth.BcryptHasher
	closers     []io.Closer
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *zap.Logger) (*CompositionRoot, error) {
	credentials, err := auth.NewJWTCredentialService(cfg.JWTSecret, cfg.JWTAccessTTL)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c := &CompositionRoot{
		cfg:         cfg,
		logger:      logger,
		gormDB:      gormDB,
		registry:    registry,
		credentials: credentials,
		hasher:      auth.NewBcryptHasher(bcrypt.DefaultCost),
	}

	var publisher ports.EventPublisher = events.NewLogPublisher(logger)
	if brokers := cfg.KafkaBrokers(); len(brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(brokers, cfg.KafkaShipmentChangedTopic)
		c.closers = append(c.closers, kafkaPublisher)
		publisher = kafkaPublisher
	}
	c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, events.NewMeteredPublisher(publisher, registry), logger)

	c.speech = speech.Unavailable{}
	if cfg.SpeechAPIKey != "" {
		client, err := speech.NewClient(cfg.SpeechAPIURL, cfg.SpeechAPIKey, cfg.SpeechTimeout)
		if err != nil {
			return nil, err
		}
		c.speech = client
	} else {
		logger.Warn("SPEECH_API_KEY is not set, voice endpoints will fail")
	}

	return c, nil
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateRegisterAccountCommandHandler() commands.RegisterAccountCommandHandler {
	return commands.NewRegisterAccountCommandHandler(c.accountUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.accountUoWFactory(), c.hasher, c.credentials)
}

func (c *CompositionRoot) CreateSetDriverActiveCommandHandler() commands.SetDriverActiveCommandHandler {
	return commands.NewSetDriverActiveCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory(), c.cfg.DefaultFuelPrice)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateProcessVoiceCommandHandler() commands.ProcessVoiceCommandHandler {
	finder := queries.NewFindShipmentByNumberQueryHandler(c.gormDB)
	locator := commands.ShipmentLocatorFunc(func(ctx context.Context, number string) (kernel.UUID, error) {
		query, err := queries.NewFindShipmentByNumberQuery(number)
		if err != nil {
			return kernel.UUID{}, err
		}
		return finder.Handle(ctx, query)
	})
	return commands.NewProcessVoiceCommandHandler(c.speech, c.speech, locator, c.shipmentUoWFactory())
}

// Handlers wires every use case the HTTP adapter dispatches to.
func (c *CompositionRoot) Handlers() httpin.Handlers {
	shipments := c.shipmentUoWFactory()

	return httpin.Handlers{
		Register:        c.CreateRegisterAccountCommandHandler(),
		Login:           c.CreateLoginCommandHandler(),
		SetDriverActive: c.CreateSetDriverActiveCommandHandler(),

		CreateShipment:    c.CreateCreateShipmentCommandHandler(),
		CancelShipment:    commands.NewCancelShipmentCommandHandler(shipments),
		AssignDriver:      c.CreateAssignDriverCommandHandler(),
		OverrideStatus:    commands.NewOverrideStatusCommandHandler(shipments),
		AdvanceShipment:   commands.NewAdvanceShipmentCommandHandler(shipments),
		DeliverShipment:   commands.NewDeliverShipmentCommandHandler(shipments),
		FailShipment:      commands.NewFailShipmentCommandHandler(shipments),
		CollectCOD:        commands.NewCollectCODCommandHandler(shipments),
		ConfirmCustoms:    commands.NewConfirmCustomsClearanceCommandHandler(shipments),
		ConfirmPortPickup: commands.NewConfirmPortPickupCommandHandler(shipments),
		ReportDelay:       commands.NewReportDelayCommandHandler(shipments),
		RecordLocation:    commands.NewRecordLocationCommandHandler(shipments),
		ProcessVoice:      c.CreateProcessVoiceCommandHandler(),

		GetShipment:        queries.NewGetShipmentQueryHandler(c.gormDB),
		ListShipments:      queries.NewListShipmentsQueryHandler(c.gormDB),
		GetTrackingHistory: queries.NewGetTrackingHistoryQueryHandler(c.gormDB),
		GetLastPosition:    queries.NewGetLastPositionQueryHandler(c.gormDB),
		GetDashboard:       queries.NewGetDriverDashboardQueryHandler(c.gormDB),
		ListDrivers:        queries.NewListDriversQueryHandler(c.gormDB),
		GetDriver:          queries.NewGetDriverQueryHandler(c.gormDB),
		SynthesizeSpeech:   queries.NewSynthesizeSpeechQueryHandler(c.speech),

		QuotePrice:        queries.NewQuotePriceQueryHandler(c.cfg.DefaultFuelPrice),
		ListVoiceCommands: queries.NewListVoiceCommandsQueryHandler(),
	}
}

// NewRouter builds the HTTP stack. The token holder is re-read from the
// accounts table on every authenticated request.
func (c *CompositionRoot) NewRouter(api *httpin.APIDocument) *echo.Echo {
	server := httpin.NewServer(c.Handlers(), c.credentials, accountrepo.NewGormAccountRepository(c.gormDB))
	return httpin.NewRouter(server, httpin.RouterOptions{
		Logger:   c.logger,
		Registry: c.registry,
		API:      api,
	})
}

// BootstrapAdmin creates the configured administrator once. Administrators
// cannot sign up through the API.
func (c *CompositionRoot) BootstrapAdmin(ctx context.Context) error {
	if c.cfg.BootstrapAdminEmail == "" {
		return nil
	}

	cmd, err := commands.NewRegisterAccountCommand(kernel.NewUUID(), c.cfg.BootstrapAdminEmail,
		c.cfg.BootstrapAdminPassword, bootstrapAdminName, "", account.RoleAdmin)
	if err != nil {
		return err
	}

	_, err = c.CreateRegisterAccountCommandHandler().Handle(ctx, cmd)
	switch {
	case errors.Is(err, account.ErrEmailAlreadyRegistered):
		return nil
	case err != nil:
		return err
	}

	c.logger.Info("administrator created", zap.String("email", cmd.Email()))
	return nil
}

// Close releases the event transport.
func (c *CompositionRoot) Close() error {
	var errs []error
	for _, closer := range c.closers {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
