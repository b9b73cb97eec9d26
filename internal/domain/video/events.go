package video

import "time"

// MediaCreatedEventType is the type of MediaCreated events.
const MediaCreatedEventType = "video.media_created"

// MediaCreated is raised when a raw video or trailer is attached and needs
// encoding.
type MediaCreated struct {
	VideoID    string `json:"video_id"`
	ResourceID string `json:"resource_id"`
	FilePath   string `json:"file_path"`
	OccurredAt int64  `json:"occurred_at"`
}

func NewMediaCreated(videoID ID, media *AudioVideoMedia) *MediaCreated {
	return &MediaCreated{
		VideoID:    videoID.String(),
		ResourceID: media.ID(),
		FilePath:   media.RawLocation(),
		OccurredAt: time.Now().Unix(),
	}
}

func (e *MediaCreated) EventType() string {
	return MediaCreatedEventType
}

func (e *MediaCreated) Timestamp() int64 {
	return e.OccurredAt
}

func (e *MediaCreated) AggregateID() string {
	return e.VideoID
}
