package gorm

import (
	"time"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/identifier"
	"github.com/narwhalmedia/catalog/internal/domain/video"
)

// LifecycleColumns holds the active flag and timestamps shared by the
// soft-deletable aggregates. DeletedAt is a domain field, not gorm's soft
// delete marker.
type LifecycleColumns struct {
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false"`
	DeletedAt *time.Time
}

// CategoryModel represents a category in the database
type CategoryModel struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Name        string  `gorm:"size:255;not null"`
	Description *string `gorm:"size:4000"`
	LifecycleColumns
}

func (CategoryModel) TableName() string { return "categories" }

// GenreModel represents a genre in the database
type GenreModel struct {
	ID         string               `gorm:"primaryKey;size:36"`
	Name       string               `gorm:"size:255;not null"`
	Categories []GenreCategoryModel `gorm:"foreignKey:GenreID;constraint:OnDelete:CASCADE"`
	LifecycleColumns
}

func (GenreModel) TableName() string { return "genres" }

// GenreCategoryModel links a genre to a category
type GenreCategoryModel struct {
	GenreID    string `gorm:"primaryKey;size:36"`
	CategoryID string `gorm:"primaryKey;size:36;index"`
}

func (GenreCategoryModel) TableName() string { return "genres_categories" }

// CastMemberModel represents a cast member in the database
type CastMemberModel struct {
	ID   string `gorm:"primaryKey;size:36"`
	Name string `gorm:"size:255;not null"`
	Type string `gorm:"size:32;not null"`
	LifecycleColumns
}

func (CastMemberModel) TableName() string { return "cast_members" }

// VideoModel represents a video in the database
type VideoModel struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Title        string    `gorm:"size:255;not null"`
	Description  string    `gorm:"size:4000;not null"`
	YearLaunched int       `gorm:"not null"`
	Duration     float64   `gorm:"not null"`
	Rating       string    `gorm:"size:16;not null"`
	Opened       bool      `gorm:"not null"`
	Published    bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`

	Categories  []VideoCategoryModel   `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	Genres      []VideoGenreModel      `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	CastMembers []VideoCastMemberModel `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	AudioVideo  []AudioVideoMediaModel `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
	Images      []ImageMediaModel      `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}

func (VideoModel) TableName() string { return "videos" }

// VideoCategoryModel links a video to a category
type VideoCategoryModel struct {
	VideoID    string `gorm:"primaryKey;size:36"`
	CategoryID string `gorm:"primaryKey;size:36;index"`
}

func (VideoCategoryModel) TableName() string { return "videos_categories" }

// VideoGenreModel links a video to a genre
type VideoGenreModel struct {
	VideoID string `gorm:"primaryKey;size:36"`
	GenreID string `gorm:"primaryKey;size:36;index"`
}

func (VideoGenreModel) TableName() string { return "videos_genres" }

// VideoCastMemberModel links a video to a cast member
type VideoCastMemberModel struct {
	VideoID      string `gorm:"primaryKey;size:36"`
	CastMemberID string `gorm:"primaryKey;size:36;index"`
}

func (VideoCastMemberModel) TableName() string { return "videos_cast_members" }

// AudioVideoMediaModel holds the VIDEO or TRAILER media of a video
type AudioVideoMediaModel struct {
	ID              string `gorm:"primaryKey;size:36"`
	VideoID         string `gorm:"size:36;not null;uniqueIndex:idx_audio_video_slot"`
	Slot            string `gorm:"size:16;not null;uniqueIndex:idx_audio_video_slot"`
	Checksum        string `gorm:"size:64;not null"`
	Name            string `gorm:"size:255;not null"`
	RawLocation     string `gorm:"size:500;not null"`
	EncodedLocation string `gorm:"size:500"`
	Status          string `gorm:"size:16;not null"`
}

func (AudioVideoMediaModel) TableName() string { return "videos_video_media" }

// ImageMediaModel holds one image slot of a video
type ImageMediaModel struct {
	ID       string `gorm:"primaryKey;size:36"`
	VideoID  string `gorm:"size:36;not null;uniqueIndex:idx_image_slot"`
	Slot     string `gorm:"size:16;not null;uniqueIndex:idx_image_slot"`
	Checksum string `gorm:"size:64;not null"`
	Name     string `gorm:"size:255;not null"`
	Location string `gorm:"size:500;not null"`
}

func (ImageMediaModel) TableName() string { return "videos_image_media" }

// AllModels lists every table the gateways use, in creation order.
func AllModels() []interface{} {
	return []interface{}{
		&CategoryModel{},
		&GenreModel{},
		&GenreCategoryModel{},
		&CastMemberModel{},
		&VideoModel{},
		&VideoCategoryModel{},
		&VideoGenreModel{},
		&VideoCastMemberModel{},
		&AudioVideoMediaModel{},
		&ImageMediaModel{},
	}
}

func lifecycleOf(active bool, createdAt, updatedAt time.Time, deletedAt *time.Time) LifecycleColumns {
	return LifecycleColumns{Active: active, CreatedAt: createdAt, UpdatedAt: updatedAt, DeletedAt: deletedAt}
}

// FromDomain converts a domain Category to a CategoryModel
func (m *CategoryModel) FromDomain(c *category.Category) {
	m.ID = c.ID().String()
	m.Name = c.Name()
	m.Description = optional(c.Description())
	m.LifecycleColumns = lifecycleOf(c.IsActive(), c.CreatedAt(), c.UpdatedAt(), c.DeletedAt())
}

// ToDomain converts a CategoryModel to a domain Category
func (m *CategoryModel) ToDomain() *category.Category {
	name := m.Name
	return category.Restore(category.ID(m.ID), &name, m.Description,
		m.Active, m.CreatedAt, m.UpdatedAt, m.DeletedAt)
}

// FromDomain converts a domain Genre to a GenreModel
func (m *GenreModel) FromDomain(g *genre.Genre) {
	m.ID = g.ID().String()
	m.Name = g.Name()
	m.LifecycleColumns = lifecycleOf(g.IsActive(), g.CreatedAt(), g.UpdatedAt(), g.DeletedAt())

	m.Categories = make([]GenreCategoryModel, 0, len(g.Categories()))
	for _, id := range g.Categories() {
		m.Categories = append(m.Categories, GenreCategoryModel{GenreID: m.ID, CategoryID: id.String()})
	}
}

// ToDomain converts a GenreModel to a domain Genre
func (m *GenreModel) ToDomain() *genre.Genre {
	categories := make([]category.ID, len(m.Categories))
	for i, link := range m.Categories {
		categories[i] = category.ID(link.CategoryID)
	}
	name := m.Name
	return genre.Restore(genre.ID(m.ID), &name, m.Active, categories,
		m.CreatedAt, m.UpdatedAt, m.DeletedAt)
}

// FromDomain converts a domain CastMember to a CastMemberModel
func (m *CastMemberModel) FromDomain(c *castmember.CastMember) {
	m.ID = c.ID().String()
	m.Name = c.Name()
	m.Type = string(c.Type())
	m.LifecycleColumns = lifecycleOf(c.IsActive(), c.CreatedAt(), c.UpdatedAt(), c.DeletedAt())
}

// ToDomain converts a CastMemberModel to a domain CastMember
func (m *CastMemberModel) ToDomain() *castmember.CastMember {
	name := m.Name
	memberType, _ := castmember.TypeOf(m.Type)
	return castmember.Restore(castmember.ID(m.ID), &name, memberType,
		m.Active, m.CreatedAt, m.UpdatedAt, m.DeletedAt)
}

// FromDomain converts a domain Video to a VideoModel with its links and media
func (m *VideoModel) FromDomain(v *video.Video) {
	m.ID = v.ID().String()
	m.Title = v.Title()
	m.Description = v.Description()
	m.YearLaunched = v.LaunchedAt()
	m.Duration = v.Duration()
	m.Rating = string(v.Rating())
	m.Opened = v.Opened()
	m.Published = v.Published()
	m.CreatedAt = v.CreatedAt()
	m.UpdatedAt = v.UpdatedAt()

	m.Categories = make([]VideoCategoryModel, 0, len(v.Categories()))
	for _, id := range v.Categories() {
		m.Categories = append(m.Categories, VideoCategoryModel{VideoID: m.ID, CategoryID: id.String()})
	}
	m.Genres = make([]VideoGenreModel, 0, len(v.Genres()))
	for _, id := range v.Genres() {
		m.Genres = append(m.Genres, VideoGenreModel{VideoID: m.ID, GenreID: id.String()})
	}
	m.CastMembers = make([]VideoCastMemberModel, 0, len(v.CastMembers()))
	for _, id := range v.CastMembers() {
		m.CastMembers = append(m.CastMembers, VideoCastMemberModel{VideoID: m.ID, CastMemberID: id.String()})
	}

	m.AudioVideo = nil
	m.Images = nil
	for _, slot := range video.MediaTypes {
		if slot.IsAudioVideo() {
			if media := v.AudioVideo(slot); media != nil {
				m.AudioVideo = append(m.AudioVideo, AudioVideoMediaModel{
					ID:              media.ID(),
					VideoID:         m.ID,
					Slot:            string(slot),
					Checksum:        media.Checksum(),
					Name:            media.Name(),
					RawLocation:     media.RawLocation(),
					EncodedLocation: media.EncodedLocation(),
					Status:          string(media.Status()),
				})
			}
			continue
		}
		if media := v.Image(slot); media != nil {
			m.Images = append(m.Images, ImageMediaModel{
				ID:       media.ID(),
				VideoID:  m.ID,
				Slot:     string(slot),
				Checksum: media.Checksum(),
				Name:     media.Name(),
				Location: media.Location(),
			})
		}
	}
}

// ToDomain converts a VideoModel to a domain Video
func (m *VideoModel) ToDomain() *video.Video {
	title, description, launchedAt := m.Title, m.Description, m.YearLaunched
	rating, _ := video.RatingOf(m.Rating)

	categories := make([]string, len(m.Categories))
	for i, link := range m.Categories {
		categories[i] = link.CategoryID
	}
	genres := make([]string, len(m.Genres))
	for i, link := range m.Genres {
		genres[i] = link.GenreID
	}
	castMembers := make([]string, len(m.CastMembers))
	for i, link := range m.CastMembers {
		castMembers[i] = link.CastMemberID
	}

	props := video.Properties{
		Title:       &title,
		Description: &description,
		LaunchedAt:  &launchedAt,
		Duration:    m.Duration,
		Opened:      m.Opened,
		Published:   m.Published,
		Rating:      rating,
		Categories:  identifier.From[category.ID](categories),
		Genres:      identifier.From[genre.ID](genres),
		CastMembers: identifier.From[castmember.ID](castMembers),
	}

	var media video.Media
	for _, row := range m.AudioVideo {
		status, _ := video.MediaStatusOf(row.Status)
		restored := video.RestoreAudioVideoMedia(row.ID, row.Checksum, row.Name, row.RawLocation, row.EncodedLocation, status)
		switch video.MediaType(row.Slot) {
		case video.MediaTypeVideo:
			media.Video = restored
		case video.MediaTypeTrailer:
			media.Trailer = restored
		}
	}
	for _, row := range m.Images {
		restored := video.RestoreImageMedia(row.ID, row.Checksum, row.Name, row.Location)
		switch video.MediaType(row.Slot) {
		case video.MediaTypeBanner:
			media.Banner = restored
		case video.MediaTypeThumbnail:
			media.Thumbnail = restored
		case video.MediaTypeThumbnailHalf:
			media.ThumbnailHalf = restored
		}
	}

	return video.Restore(video.ID(m.ID), props, m.CreatedAt, m.UpdatedAt, media)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
