package video

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/video"
)

// CreateVideoCommand represents a command to create a video. Rating is the
// raw value, unknown ratings are reported as missing. Nil resources leave
// their media slot empty.
type CreateVideoCommand struct {
	Title         *string
	Description   *string
	LaunchedAt    *int
	Duration      float64
	Rating        string
	Opened        bool
	Published     bool
	Categories    []category.ID
	Genres        []genre.ID
	CastMembers   []castmember.ID
	Video         *video.Resource
	Trailer       *video.Resource
	Banner        *video.Resource
	Thumbnail     *video.Resource
	ThumbnailHalf *video.Resource
}

// UpdateVideoCommand represents a command to update a video
type UpdateVideoCommand struct {
	ID            video.ID
	Title         *string
	Description   *string
	LaunchedAt    *int
	Duration      float64
	Rating        string
	Opened        bool
	Published     bool
	Categories    []category.ID
	Genres        []genre.ID
	CastMembers   []castmember.ID
	Video         *video.Resource
	Trailer       *video.Resource
	Banner        *video.Resource
	Thumbnail     *video.Resource
	ThumbnailHalf *video.Resource
}

// UpdateMediaStatusCommand reports an encoder result for one audio-video
// media of a video
type UpdateMediaStatusCommand struct {
	VideoID    video.ID
	ResourceID string
	Status     video.MediaStatus
	Folder     string
	Filename   string
}

// VideoIDOutput carries the identifier of a written video
type VideoIDOutput struct {
	ID video.ID
}

// MediaOutput describes one stored media slot
type MediaOutput struct {
	ID              string
	Checksum        string
	Name            string
	Location        string
	EncodedLocation string
	Status          video.MediaStatus
}

// VideoOutput is the read model of a video
type VideoOutput struct {
	ID            video.ID
	Title         string
	Description   string
	LaunchedAt    int
	Duration      float64
	Rating        video.Rating
	Opened        bool
	Published     bool
	Categories    []category.ID
	Genres        []genre.ID
	CastMembers   []castmember.ID
	Video         *MediaOutput
	Trailer       *MediaOutput
	Banner        *MediaOutput
	Thumbnail     *MediaOutput
	ThumbnailHalf *MediaOutput
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MediaContentOutput is the stored content of one media slot
type MediaContentOutput struct {
	Content     []byte
	ContentType string
	Name        string
}

func (c CreateVideoCommand) properties() video.Properties {
	return propertiesOf(c.Title, c.Description, c.LaunchedAt, c.Duration, c.Rating, c.Opened, c.Published,
		c.Categories, c.Genres, c.CastMembers)
}

func (c CreateVideoCommand) attachments() []Attachment {
	return attachmentsOf(c.Video, c.Trailer, c.Banner, c.Thumbnail, c.ThumbnailHalf)
}

func (c UpdateVideoCommand) properties() video.Properties {
	return propertiesOf(c.Title, c.Description, c.LaunchedAt, c.Duration, c.Rating, c.Opened, c.Published,
		c.Categories, c.Genres, c.CastMembers)
}

func (c UpdateVideoCommand) attachments() []Attachment {
	return attachmentsOf(c.Video, c.Trailer, c.Banner, c.Thumbnail, c.ThumbnailHalf)
}

// attachmentsOf lists the present resources in slot order.
func attachmentsOf(resources ...*video.Resource) []Attachment {
	var out []Attachment
	for i, slot := range video.MediaTypes {
		if resources[i] != nil {
			out = append(out, Attachment{Slot: slot, Resource: resources[i]})
		}
	}
	return out
}

func propertiesOf(
	title, description *string,
	launchedAt *int,
	duration float64,
	rawRating string,
	opened, published bool,
	categories []category.ID,
	genres []genre.ID,
	castMembers []castmember.ID,
) video.Properties {
	rating, _ := video.RatingOf(rawRating)
	return video.Properties{
		Title:       title,
		Description: description,
		LaunchedAt:  launchedAt,
		Duration:    duration,
		Opened:      opened,
		Published:   published,
		Rating:      rating,
		Categories:  categories,
		Genres:      genres,
		CastMembers: castMembers,
	}
}

func outputOf(v *video.Video) *VideoOutput {
	return &VideoOutput{
		ID:            v.ID(),
		Title:         v.Title(),
		Description:   v.Description(),
		LaunchedAt:    v.LaunchedAt(),
		Duration:      v.Duration(),
		Rating:        v.Rating(),
		Opened:        v.Opened(),
		Published:     v.Published(),
		Categories:    v.Categories(),
		Genres:        v.Genres(),
		CastMembers:   v.CastMembers(),
		Video:         audioVideoOutput(v.Video()),
		Trailer:       audioVideoOutput(v.Trailer()),
		Banner:        imageOutput(v.Banner()),
		Thumbnail:     imageOutput(v.Thumbnail()),
		ThumbnailHalf: imageOutput(v.ThumbnailHalf()),
		CreatedAt:     v.CreatedAt(),
		UpdatedAt:     v.UpdatedAt(),
	}
}

func audioVideoOutput(m *video.AudioVideoMedia) *MediaOutput {
	if m == nil {
		return nil
	}
	return &MediaOutput{
		ID:              m.ID(),
		Checksum:        m.Checksum(),
		Name:            m.Name(),
		Location:        m.RawLocation(),
		EncodedLocation: m.EncodedLocation(),
		Status:          m.Status(),
	}
}

func imageOutput(m *video.ImageMedia) *MediaOutput {
	if m == nil {
		return nil
	}
	return &MediaOutput{
		ID:       m.ID(),
		Checksum: m.Checksum(),
		Name:     m.Name(),
		Location: m.Location(),
	}
}
