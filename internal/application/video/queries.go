package video

import (
	"context"
	"fmt"

	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// GetVideoByIDUseCase loads one video
type GetVideoByIDUseCase struct {
	videos video.Gateway
}

// NewGetVideoByIDUseCase creates the use case
func NewGetVideoByIDUseCase(videos video.Gateway) *GetVideoByIDUseCase {
	return &GetVideoByIDUseCase{videos: videos}
}

// Execute returns the video or a not found error.
func (uc *GetVideoByIDUseCase) Execute(ctx context.Context, id video.ID) (*VideoOutput, error) {
	v, err := findVideo(ctx, uc.videos, id)
	if err != nil {
		return nil, err
	}
	return outputOf(v), nil
}

// DeleteVideoUseCase removes a video and its stored media
type DeleteVideoUseCase struct {
	videos video.Gateway
	media  video.MediaResourceGateway
	logger interfaces.Logger
}

// NewDeleteVideoUseCase creates the use case
func NewDeleteVideoUseCase(videos video.Gateway, media video.MediaResourceGateway, logger interfaces.Logger) *DeleteVideoUseCase {
	return &DeleteVideoUseCase{videos: videos, media: media, logger: logger}
}

// Execute deletes the video, then its media. Deleting a missing video
// succeeds.
func (uc *DeleteVideoUseCase) Execute(ctx context.Context, id video.ID) error {
	if err := uc.videos.DeleteByID(ctx, id); err != nil {
		return err
	}
	if err := uc.media.ClearResources(ctx, id); err != nil {
		return errors.Wrap(errors.ErrorTypeInternal, fmt.Sprintf("could not clear media of video %s", id), err)
	}
	uc.logger.Info("Video deleted", interfaces.String("id", id.String()))
	return nil
}

// GetMediaUseCase reads the stored content of one media slot
type GetMediaUseCase struct {
	media video.MediaResourceGateway
}

// NewGetMediaUseCase creates the use case
func NewGetMediaUseCase(media video.MediaResourceGateway) *GetMediaUseCase {
	return &GetMediaUseCase{media: media}
}

// Execute returns the content stored for videoID in the rawType slot.
func (uc *GetMediaUseCase) Execute(ctx context.Context, videoID video.ID, rawType string) (*MediaContentOutput, error) {
	mediaType, ok := video.MediaTypeOf(rawType)
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("Media type %s doesn't exist", rawType))
	}

	resource, err := uc.media.GetResource(ctx, videoID, mediaType)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, errors.NotFound(fmt.Sprintf("Media with ID %s/%s was not found", videoID, mediaType))
	}

	return &MediaContentOutput{
		Content:     resource.Content,
		ContentType: resource.ContentType,
		Name:        resource.Name,
	}, nil
}

// UpdateMediaStatusUseCase applies an encoder result to the media it names
type UpdateMediaStatusUseCase struct {
	videos video.Gateway
	logger interfaces.Logger
}

// NewUpdateMediaStatusUseCase creates the use case
func NewUpdateMediaStatusUseCase(videos video.Gateway, logger interfaces.Logger) *UpdateMediaStatusUseCase {
	return &UpdateMediaStatusUseCase{videos: videos, logger: logger}
}

// Execute moves the matching media to the reported status. A resource that
// belongs to no audio-video slot of the video is ignored.
func (uc *UpdateMediaStatusUseCase) Execute(ctx context.Context, cmd UpdateMediaStatusCommand) error {
	existing, err := findVideo(ctx, uc.videos, cmd.VideoID)
	if err != nil {
		return err
	}

	slot, media, ok := existing.FindAudioVideo(cmd.ResourceID)
	if !ok {
		uc.logger.Warn("Media status for unknown resource ignored",
			interfaces.String("video_id", cmd.VideoID.String()),
			interfaces.String("resource_id", cmd.ResourceID))
		return nil
	}

	var next *video.AudioVideoMedia
	switch cmd.Status {
	case video.MediaStatusPending, video.MediaStatusProcessing:
		next = media.Processing()
	case video.MediaStatusCompleted:
		next = media.Completed(fmt.Sprintf("%s/%s", cmd.Folder, cmd.Filename))
	case video.MediaStatusError:
		next = media.Failed()
	default:
		return errors.BadRequest(fmt.Sprintf("unknown media status %q", cmd.Status))
	}

	v := existing.Clone().ReplaceAudioVideo(slot, next)
	if _, err := uc.videos.Update(ctx, v); err != nil {
		return errors.Wrap(errors.ErrorTypeInternal, fmt.Sprintf("could not update video %s", v.ID()), err)
	}

	uc.logger.Info("Media status updated",
		interfaces.String("video_id", cmd.VideoID.String()),
		interfaces.String("type", slot.String()),
		interfaces.String("status", string(next.Status())))
	return nil
}
