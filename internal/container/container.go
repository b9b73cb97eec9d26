// Package container wires the catalog use cases to their infrastructure.
package container

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	castmemberapp "github.com/narwhalmedia/catalog/internal/application/castmember"
	categoryapp "github.com/narwhalmedia/catalog/internal/application/category"
	genreapp "github.com/narwhalmedia/catalog/internal/application/genre"
	videoapp "github.com/narwhalmedia/catalog/internal/application/video"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/internal/infrastructure/events/nats"
	gormstore "github.com/narwhalmedia/catalog/internal/infrastructure/persistence/gorm"
	"github.com/narwhalmedia/catalog/internal/infrastructure/storage"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/database"
	"github.com/narwhalmedia/catalog/pkg/events"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

// Categories groups the category use cases
type Categories struct {
	Create  *categoryapp.CreateCategoryUseCase
	Update  *categoryapp.UpdateCategoryUseCase
	GetByID *categoryapp.GetCategoryByIDUseCase
	Delete  *categoryapp.DeleteCategoryUseCase
}

// Genres groups the genre use cases
type Genres struct {
	Create  *genreapp.CreateGenreUseCase
	Update  *genreapp.UpdateGenreUseCase
	GetByID *genreapp.GetGenreByIDUseCase
	Delete  *genreapp.DeleteGenreUseCase
}

// CastMembers groups the cast member use cases
type CastMembers struct {
	Create  *castmemberapp.CreateCastMemberUseCase
	Update  *castmemberapp.UpdateCastMemberUseCase
	GetByID *castmemberapp.GetCastMemberByIDUseCase
	Delete  *castmemberapp.DeleteCastMemberUseCase
}

// Videos groups the video use cases
type Videos struct {
	Create            *videoapp.CreateVideoUseCase
	Update            *videoapp.UpdateVideoUseCase
	GetByID           *videoapp.GetVideoByIDUseCase
	Delete            *videoapp.DeleteVideoUseCase
	GetMedia          *videoapp.GetMediaUseCase
	UpdateMediaStatus *videoapp.UpdateMediaStatusUseCase
}

// CatalogContainer holds all dependencies of the catalog service
type CatalogContainer struct {
	Config     *config.CatalogConfig
	Logger     *logger.ZapLogger
	DB         *gorm.DB
	NATSClient *nats.Client
	Publisher  interfaces.EventPublisher

	Categories  Categories
	Genres      Genres
	CastMembers CastMembers
	Videos      Videos
}

// InitializeCatalog opens the database, migrates it, selects the media
// storage and the event publisher and builds every use case. Without a NATS
// URL events go to an in-memory bus that logs them.
func InitializeCatalog(ctx context.Context, cfg *config.CatalogConfig, log *logger.ZapLogger) (*CatalogContainer, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	db, closeDB, err := database.Open(cfg.Database, log.Zap())
	if err != nil {
		return nil, nil, err
	}
	cleanups = append(cleanups, closeDB)

	if err := database.NewMigrator(db, gormstore.Migrations(), log.Zap()).Migrate(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	store, err := storage.New(ctx, cfg.Storage, log.Zap().Named("storage"))
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	c := &CatalogContainer{
		Config: cfg,
		Logger: log,
		DB:     db,
	}

	if cfg.NATS.Enabled() {
		client, closeNATS, err := nats.NewClient(cfg.NATS, log.Zap())
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, closeNATS)
		c.NATSClient = client
		c.Publisher = nats.NewPublisher(client, cfg.NATS, log.Zap())
	} else {
		bus := events.NewInMemoryEventBus(log)
		if err := bus.Start(ctx); err != nil {
			cleanup()
			return nil, nil, err
		}
		cleanups = append(cleanups, func() { _ = bus.Stop() })
		if err := subscribeEventLog(bus, log); err != nil {
			cleanup()
			return nil, nil, err
		}
		c.Publisher = bus
	}

	c.wire(gormstore.NewCategoryGateway(db), gormstore.NewGenreGateway(db),
		gormstore.NewCastMemberGateway(db), gormstore.NewVideoGateway(db),
		storage.NewMediaGateway(store, log.Zap().Named("media")))

	return c, cleanup, nil
}

func (c *CatalogContainer) wire(
	categories *gormstore.CategoryGateway,
	genres *gormstore.GenreGateway,
	castMembers *gormstore.CastMemberGateway,
	videos *gormstore.VideoGateway,
	media *storage.MediaGateway,
) {
	c.Categories = Categories{
		Create:  categoryapp.NewCreateCategoryUseCase(categories, c.Logger),
		Update:  categoryapp.NewUpdateCategoryUseCase(categories, c.Logger),
		GetByID: categoryapp.NewGetCategoryByIDUseCase(categories),
		Delete:  categoryapp.NewDeleteCategoryUseCase(categories, c.Logger),
	}

	c.Genres = Genres{
		Create:  genreapp.NewCreateGenreUseCase(genres, categories, c.Logger),
		Update:  genreapp.NewUpdateGenreUseCase(genres, categories, c.Logger),
		GetByID: genreapp.NewGetGenreByIDUseCase(genres),
		Delete:  genreapp.NewDeleteGenreUseCase(genres, c.Logger),
	}

	c.CastMembers = CastMembers{
		Create:  castmemberapp.NewCreateCastMemberUseCase(castMembers, c.Logger),
		Update:  castmemberapp.NewUpdateCastMemberUseCase(castMembers, c.Logger),
		GetByID: castmemberapp.NewGetCastMemberByIDUseCase(castMembers),
		Delete:  castmemberapp.NewDeleteCastMemberUseCase(castMembers, c.Logger),
	}

	lookups := videoapp.Lookups{
		Categories:  categories,
		Genres:      genres,
		CastMembers: castMembers,
	}
	c.Videos = Videos{
		Create:            videoapp.NewCreateVideoUseCase(videos, lookups, media, c.Publisher, c.Logger),
		Update:            videoapp.NewUpdateVideoUseCase(videos, lookups, media, c.Publisher, c.Logger),
		GetByID:           videoapp.NewGetVideoByIDUseCase(videos),
		Delete:            videoapp.NewDeleteVideoUseCase(videos, media, c.Logger),
		GetMedia:          videoapp.NewGetMediaUseCase(media),
		UpdateMediaStatus: videoapp.NewUpdateMediaStatusUseCase(videos, c.Logger),
	}
}

// subscribeEventLog logs every media event published on the in-memory bus.
func subscribeEventLog(bus *events.InMemoryEventBus, log interfaces.Logger) error {
	handler := &events.HandlerFunc{
		Type: video.MediaCreatedEventType,
		Fn: func(ctx context.Context, event interfaces.Event) error {
			log.Info("Media waiting for encoder",
				interfaces.String("event_type", event.EventType()),
				interfaces.String("video_id", event.AggregateID()))
			return nil
		},
	}
	return bus.Subscribe(handler.Type, handler)
}

// StartEncoderConsumer consumes encoder results in the background until ctx
// ends. It does nothing when NATS is not configured.
func (c *CatalogContainer) StartEncoderConsumer(ctx context.Context) {
	if c.NATSClient == nil {
		c.Logger.Info("NATS disabled, encoder results are not consumed")
		return
	}

	consumer := nats.NewEncoderConsumer(c.NATSClient, c.Videos.UpdateMediaStatus, c.Config.NATS, c.Logger.Zap())
	go func() {
		if err := consumer.Start(ctx); err != nil {
			c.Logger.Error("encoder consumer failed", interfaces.Error(err))
		}
	}()
}
