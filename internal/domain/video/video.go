// Package video holds the Video aggregate and its media slots.
package video

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/aggregate"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/identifier"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
)

// ID identifies a Video.
type ID string

// NewID generates a Video identifier.
func NewID() ID {
	return ID(identifier.New())
}

func (id ID) String() string {
	return string(id)
}

// Properties are the fields a caller sets on create and update. Nil pointers
// and the zero Rating mean the value was not supplied.
type Properties struct {
	Title       *string
	Description *string
	LaunchedAt  *int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      Rating
	Categories  []category.ID
	Genres      []genre.ID
	CastMembers []castmember.ID
}

// Video represents a video aggregate. Videos are not soft-deletable.
type Video struct {
	id          ID
	title       *string
	description *string
	launchedAt  *int
	duration    float64
	opened      bool
	published   bool
	rating      Rating
	createdAt   time.Time
	updatedAt   time.Time

	categories  []category.ID
	genres      []genre.ID
	castMembers []castmember.ID

	video         *AudioVideoMedia
	trailer       *AudioVideoMedia
	banner        *ImageMedia
	thumbnail     *ImageMedia
	thumbnailHalf *ImageMedia

	events aggregate.Events
}

// NewVideo creates a Video with a fresh identifier and empty media slots.
func NewVideo(props Properties) *Video {
	now := aggregate.Now()
	v := &Video{
		id:        NewID(),
		createdAt: now,
		updatedAt: now,
	}
	v.apply(props)
	return v
}

// Media holds the stored media slots of a video, nil for empty.
type Media struct {
	Video         *AudioVideoMedia
	Trailer       *AudioVideoMedia
	Banner        *ImageMedia
	Thumbnail     *ImageMedia
	ThumbnailHalf *ImageMedia
}

// Restore rebuilds a Video from stored state.
func Restore(id ID, props Properties, createdAt, updatedAt time.Time, media Media) *Video {
	v := &Video{
		id:            id,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		video:         media.Video,
		trailer:       media.Trailer,
		banner:        media.Banner,
		thumbnail:     media.Thumbnail,
		thumbnailHalf: media.ThumbnailHalf,
	}
	v.apply(props)
	return v
}

// Update replaces every core field and reference set.
func (v *Video) Update(props Properties) *Video {
	v.apply(props)
	v.touch()
	return v
}

func (v *Video) apply(props Properties) {
	v.title = aggregate.CopyString(props.Title)
	v.description = aggregate.CopyString(props.Description)
	v.launchedAt = copyInt(props.LaunchedAt)
	v.duration = props.Duration
	v.opened = props.Opened
	v.published = props.Published
	v.rating = props.Rating
	v.categories = identifier.Unique(props.Categories)
	v.genres = identifier.Unique(props.Genres)
	v.castMembers = identifier.Unique(props.CastMembers)
}

// Validate runs the video field checks against h.
func (v *Video) Validate(h validation.Handler) error {
	return NewValidator(v, h).Validate()
}

// SetVideo attaches the primary video media.
func (v *Video) SetVideo(m *AudioVideoMedia) *Video {
	v.video = m
	v.onAudioVideoMediaUpdated(m)
	v.touch()
	return v
}

// SetTrailer attaches the trailer media.
func (v *Video) SetTrailer(m *AudioVideoMedia) *Video {
	v.trailer = m
	v.onAudioVideoMediaUpdated(m)
	v.touch()
	return v
}

func (v *Video) SetBanner(m *ImageMedia) *Video {
	v.banner = m
	v.touch()
	return v
}

func (v *Video) SetThumbnail(m *ImageMedia) *Video {
	v.thumbnail = m
	v.touch()
	return v
}

func (v *Video) SetThumbnailHalf(m *ImageMedia) *Video {
	v.thumbnailHalf = m
	v.touch()
	return v
}

// AudioVideo returns the audio-video media in slot t, nil when empty or when
// t is an image slot.
func (v *Video) AudioVideo(t MediaType) *AudioVideoMedia {
	switch t {
	case MediaTypeVideo:
		return v.video
	case MediaTypeTrailer:
		return v.trailer
	default:
		return nil
	}
}

// Image returns the image media in slot t, nil when empty or when t is an
// audio-video slot.
func (v *Video) Image(t MediaType) *ImageMedia {
	switch t {
	case MediaTypeBanner:
		return v.banner
	case MediaTypeThumbnail:
		return v.thumbnail
	case MediaTypeThumbnailHalf:
		return v.thumbnailHalf
	default:
		return nil
	}
}

// FindAudioVideo returns the slot holding the audio-video media whose ID is
// resourceID.
func (v *Video) FindAudioVideo(resourceID string) (MediaType, *AudioVideoMedia, bool) {
	for _, t := range []MediaType{MediaTypeVideo, MediaTypeTrailer} {
		if m := v.AudioVideo(t); m != nil && m.ID() == resourceID {
			return t, m, true
		}
	}
	return "", nil, false
}

// ReplaceAudioVideo stores m in slot t. Image slots are ignored.
func (v *Video) ReplaceAudioVideo(t MediaType, m *AudioVideoMedia) *Video {
	switch t {
	case MediaTypeVideo:
		return v.SetVideo(m)
	case MediaTypeTrailer:
		return v.SetTrailer(m)
	default:
		return v
	}
}

// ReplaceImage stores m in slot t. Audio-video slots are ignored.
func (v *Video) ReplaceImage(t MediaType, m *ImageMedia) *Video {
	switch t {
	case MediaTypeBanner:
		return v.SetBanner(m)
	case MediaTypeThumbnail:
		return v.SetThumbnail(m)
	case MediaTypeThumbnailHalf:
		return v.SetThumbnailHalf(m)
	default:
		return v
	}
}

func (v *Video) onAudioVideoMediaUpdated(m *AudioVideoMedia) {
	if m != nil && m.IsPendingEncode() {
		v.events.Record(NewMediaCreated(v.id, m))
	}
}

// PendingEvents returns the events raised since the video was loaded.
func (v *Video) PendingEvents() []aggregate.Event {
	return v.events.Pending()
}

// ClearEvents drops the pending events once they were published.
func (v *Video) ClearEvents() {
	v.events.Clear()
}

// Clone returns a deep copy without pending events. Media values are
// immutable and shared.
func (v *Video) Clone() *Video {
	return Restore(v.id, v.Properties(), v.createdAt, v.updatedAt, v.Media())
}

// Properties returns a copy of the core fields and reference sets.
func (v *Video) Properties() Properties {
	return Properties{
		Title:       aggregate.CopyString(v.title),
		Description: aggregate.CopyString(v.description),
		LaunchedAt:  copyInt(v.launchedAt),
		Duration:    v.duration,
		Opened:      v.opened,
		Published:   v.published,
		Rating:      v.rating,
		Categories:  v.Categories(),
		Genres:      v.Genres(),
		CastMembers: v.CastMembers(),
	}
}

// Media returns the current media slots.
func (v *Video) Media() Media {
	return Media{
		Video:         v.video,
		Trailer:       v.trailer,
		Banner:        v.banner,
		Thumbnail:     v.thumbnail,
		ThumbnailHalf: v.thumbnailHalf,
	}
}

func (v *Video) touch() {
	v.updatedAt = aggregate.Advance(v.updatedAt)
}

func (v *Video) ID() ID                     { return v.id }
func (v *Video) Title() string              { return aggregate.Deref(v.title) }
func (v *Video) Description() string        { return aggregate.Deref(v.description) }
func (v *Video) Duration() float64          { return v.duration }
func (v *Video) Opened() bool               { return v.opened }
func (v *Video) Published() bool            { return v.published }
func (v *Video) Rating() Rating             { return v.rating }
func (v *Video) CreatedAt() time.Time       { return v.createdAt }
func (v *Video) UpdatedAt() time.Time       { return v.updatedAt }
func (v *Video) Trailer() *AudioVideoMedia  { return v.trailer }
func (v *Video) Video() *AudioVideoMedia    { return v.video }
func (v *Video) Banner() *ImageMedia        { return v.banner }
func (v *Video) Thumbnail() *ImageMedia     { return v.thumbnail }
func (v *Video) ThumbnailHalf() *ImageMedia { return v.thumbnailHalf }

// LaunchedAt returns the release year, zero when unset.
func (v *Video) LaunchedAt() int {
	if v.launchedAt == nil {
		return 0
	}
	return *v.launchedAt
}

// Categories returns a copy of the category set.
func (v *Video) Categories() []category.ID {
	return append([]category.ID{}, v.categories...)
}

// Genres returns a copy of the genre set.
func (v *Video) Genres() []genre.ID {
	return append([]genre.ID{}, v.genres...)
}

// CastMembers returns a copy of the cast member set.
func (v *Video) CastMembers() []castmember.ID {
	return append([]castmember.ID{}, v.castMembers...)
}

func copyInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
