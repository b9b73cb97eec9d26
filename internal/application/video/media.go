package video

import (
	"context"

	"github.com/narwhalmedia/catalog/internal/application/saga"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// Attachment is a resource destined for one media slot
type Attachment struct {
	Slot     video.MediaType
	Resource *video.Resource
}

// PersistFunc writes a video to its gateway
type PersistFunc func(ctx context.Context, v *video.Video) (*video.Video, error)

// MediaAttachmentOrchestrator stores the resources of a video, links the
// resulting media to it and persists it. When any of this fails every
// resource stored for the video is cleared.
type MediaAttachmentOrchestrator struct {
	media  video.MediaResourceGateway
	logger interfaces.Logger
}

// NewMediaAttachmentOrchestrator creates the orchestrator
func NewMediaAttachmentOrchestrator(media video.MediaResourceGateway, logger interfaces.Logger) *MediaAttachmentOrchestrator {
	return &MediaAttachmentOrchestrator{media: media, logger: logger}
}

// Attach stores the attachments in slot order, then persists v. The
// returned error is the *saga.StepError of the failing step.
func (o *MediaAttachmentOrchestrator) Attach(ctx context.Context, v *video.Video, attachments []Attachment, persist PersistFunc) (*video.Video, error) {
	var persisted *video.Video

	s := saga.New("attach media "+v.ID().String(), o.logger).
		AddStep(saga.Step{
			Name: "store media",
			Execute: func(ctx context.Context) error {
				return o.store(ctx, v, attachments)
			},
			Compensate: func(ctx context.Context) error {
				return o.media.ClearResources(ctx, v.ID())
			},
		}).
		AddStep(saga.Step{
			Name: "persist",
			Execute: func(ctx context.Context) error {
				var err error
				persisted, err = persist(ctx, v)
				return err
			},
		})

	if err := s.Run(ctx); err != nil {
		return nil, err
	}
	return persisted, nil
}

func (o *MediaAttachmentOrchestrator) store(ctx context.Context, v *video.Video, attachments []Attachment) error {
	for _, a := range attachments {
		resource := *a.Resource
		resource.Type = a.Slot

		if a.Slot.IsAudioVideo() {
			m, err := o.media.StoreAudioVideo(ctx, v.ID(), &resource)
			if err != nil {
				return err
			}
			v.ReplaceAudioVideo(a.Slot, m)
			continue
		}

		m, err := o.media.StoreImage(ctx, v.ID(), &resource)
		if err != nil {
			return err
		}
		v.ReplaceImage(a.Slot, m)
	}
	return nil
}
