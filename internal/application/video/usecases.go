// Package video holds the video use cases. Writes validate references and
// fields first, then store media and persist under one compensating saga.
package video

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/application/shared"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

const aggregateName = "Video"

// Lookups groups the reference lookups a video write needs
type Lookups struct {
	Categories  category.Lookup
	Genres      genre.Lookup
	CastMembers castmember.Lookup
}

func (l Lookups) checks(categories []category.ID, genres []genre.ID, castMembers []castmember.ID) []shared.ReferenceCheck {
	return []shared.ReferenceCheck{
		shared.References(shared.KindCategories, categories, l.Categories.ExistsByIDs),
		shared.References(shared.KindGenres, genres, l.Genres.ExistsByIDs),
		shared.References(shared.KindCastMembers, castMembers, l.CastMembers.ExistsByIDs),
	}
}

// CreateVideoUseCase validates, stores and announces a new video
type CreateVideoUseCase struct {
	videos    video.Gateway
	lookups   Lookups
	media     *MediaAttachmentOrchestrator
	publisher interfaces.EventPublisher
	logger    interfaces.Logger
}

// NewCreateVideoUseCase creates the use case
func NewCreateVideoUseCase(
	videos video.Gateway,
	lookups Lookups,
	media video.MediaResourceGateway,
	publisher interfaces.EventPublisher,
	logger interfaces.Logger,
) *CreateVideoUseCase {
	return &CreateVideoUseCase{
		videos:    videos,
		lookups:   lookups,
		media:     NewMediaAttachmentOrchestrator(media, logger),
		publisher: publisher,
		logger:    logger,
	}
}

// Execute creates the video. Nothing is stored when validation fails.
func (uc *CreateVideoUseCase) Execute(ctx context.Context, cmd CreateVideoCommand) (*VideoIDOutput, error) {
	checks := uc.lookups.checks(cmd.Categories, cmd.Genres, cmd.CastMembers)

	v, err := shared.Assemble(ctx, shared.CreateFailure(aggregateName), checks,
		func(h validation.Handler) (*video.Video, error) {
			return shared.Validated(video.NewVideo(cmd.properties()), h)
		})
	if err != nil {
		uc.logger.Warn("Video rejected", interfaces.Error(err))
		return nil, err
	}

	created, err := uc.media.Attach(ctx, v, cmd.attachments(), uc.videos.Create)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, fmt.Sprintf("could not create video %s", v.ID()), err)
	}

	publishEvents(ctx, uc.publisher, uc.logger, v)

	uc.logger.Info("Video created",
		interfaces.String("id", created.ID().String()),
		interfaces.Int("media", len(cmd.attachments())))
	return &VideoIDOutput{ID: created.ID()}, nil
}

// UpdateVideoUseCase validates, stores and announces changes to a video
type UpdateVideoUseCase struct {
	videos    video.Gateway
	lookups   Lookups
	media     *MediaAttachmentOrchestrator
	publisher interfaces.EventPublisher
	logger    interfaces.Logger
}

// NewUpdateVideoUseCase creates the use case
func NewUpdateVideoUseCase(
	videos video.Gateway,
	lookups Lookups,
	media video.MediaResourceGateway,
	publisher interfaces.EventPublisher,
	logger interfaces.Logger,
) *UpdateVideoUseCase {
	return &UpdateVideoUseCase{
		videos:    videos,
		lookups:   lookups,
		media:     NewMediaAttachmentOrchestrator(media, logger),
		publisher: publisher,
		logger:    logger,
	}
}

// Execute updates the video. The target is resolved before any validation
// and the loaded instance is left untouched when the update is rejected.
func (uc *UpdateVideoUseCase) Execute(ctx context.Context, cmd UpdateVideoCommand) (*VideoIDOutput, error) {
	existing, err := findVideo(ctx, uc.videos, cmd.ID)
	if err != nil {
		return nil, err
	}

	checks := uc.lookups.checks(cmd.Categories, cmd.Genres, cmd.CastMembers)

	v, err := shared.Assemble(ctx, shared.UpdateFailure(aggregateName), checks,
		func(h validation.Handler) (*video.Video, error) {
			return shared.Validated(existing.Clone().Update(cmd.properties()), h)
		})
	if err != nil {
		uc.logger.Warn("Video update rejected",
			interfaces.String("id", cmd.ID.String()),
			interfaces.Error(err))
		return nil, err
	}

	updated, err := uc.media.Attach(ctx, v, cmd.attachments(), uc.videos.Update)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeInternal, fmt.Sprintf("could not update video %s", v.ID()), err)
	}

	publishEvents(ctx, uc.publisher, uc.logger, v)

	uc.logger.Info("Video updated", interfaces.String("id", updated.ID().String()))
	return &VideoIDOutput{ID: updated.ID()}, nil
}

// publishEvents hands the pending events of v to the publisher. A failed
// publish is logged and does not fail the write.
func publishEvents(ctx context.Context, publisher interfaces.EventPublisher, logger interfaces.Logger, v *video.Video) {
	defer v.ClearEvents()
	if publisher == nil {
		return
	}

	for _, event := range v.PendingEvents() {
		if err := publisher.Publish(ctx, event); err != nil {
			logger.Error("Failed to publish video event",
				interfaces.String("id", v.ID().String()),
				interfaces.String("event_type", event.EventType()),
				interfaces.Error(err))
		}
	}
}

func findVideo(ctx context.Context, videos video.Gateway, id video.ID) (*video.Video, error) {
	v, err := videos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, errors.NotFoundFor(aggregateName, id)
	}
	return v, nil
}
