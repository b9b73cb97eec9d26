package video

import "context"

// Gateway persists Video aggregates together with their reference sets and
// media slots.
type Gateway interface {
	// Create stores a new video and returns its durable form
	Create(ctx context.Context, video *Video) (*Video, error)
	// Update stores the video and returns its durable form
	Update(ctx context.Context, video *Video) (*Video, error)
	// FindByID returns the video or nil when it does not exist
	FindByID(ctx context.Context, id ID) (*Video, error)
	// DeleteByID removes the video, missing ids are ignored
	DeleteByID(ctx context.Context, id ID) error
}

// MediaResourceGateway stores the binary resources behind media slots.
type MediaResourceGateway interface {
	// StoreAudioVideo stores a VIDEO or TRAILER resource
	StoreAudioVideo(ctx context.Context, id ID, resource *Resource) (*AudioVideoMedia, error)
	// StoreImage stores a BANNER, THUMBNAIL or THUMBNAIL_HALF resource
	StoreImage(ctx context.Context, id ID, resource *Resource) (*ImageMedia, error)
	// GetResource loads the stored resource of one slot, nil when absent
	GetResource(ctx context.Context, id ID, mediaType MediaType) (*Resource, error)
	// ClearResources removes every resource stored for the video
	ClearResources(ctx context.Context, id ID) error
}
