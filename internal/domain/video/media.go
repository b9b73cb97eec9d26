package video

import (
	"strings"

	"github.com/narwhalmedia/catalog/internal/domain/identifier"
)

// MediaStatus is the encoding state of an audio-video media.
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "PENDING"
	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusCompleted  MediaStatus = "COMPLETED"
	MediaStatusError      MediaStatus = "ERROR"
)

// MediaStatusOf maps a raw value to a MediaStatus, ignoring case.
func MediaStatusOf(raw string) (MediaStatus, bool) {
	switch s := MediaStatus(strings.ToUpper(strings.TrimSpace(raw))); s {
	case MediaStatusPending, MediaStatusProcessing, MediaStatusCompleted, MediaStatusError:
		return s, true
	default:
		return "", false
	}
}

// MediaType names one of the five media slots of a video.
type MediaType string

const (
	MediaTypeVideo         MediaType = "VIDEO"
	MediaTypeTrailer       MediaType = "TRAILER"
	MediaTypeBanner        MediaType = "BANNER"
	MediaTypeThumbnail     MediaType = "THUMBNAIL"
	MediaTypeThumbnailHalf MediaType = "THUMBNAIL_HALF"
)

// MediaTypes lists every slot in storage order.
var MediaTypes = []MediaType{
	MediaTypeVideo,
	MediaTypeTrailer,
	MediaTypeBanner,
	MediaTypeThumbnail,
	MediaTypeThumbnailHalf,
}

// MediaTypeOf maps a raw value to a MediaType, ignoring case.
func MediaTypeOf(raw string) (MediaType, bool) {
	value := MediaType(strings.ToUpper(strings.TrimSpace(raw)))
	for _, t := range MediaTypes {
		if t == value {
			return t, true
		}
	}
	return "", false
}

// IsAudioVideo reports whether the slot holds an AudioVideoMedia.
func (t MediaType) IsAudioVideo() bool {
	return t == MediaTypeVideo || t == MediaTypeTrailer
}

func (t MediaType) String() string {
	return string(t)
}

// AudioVideoMedia is a stored video or trailer. Two values are equal when
// checksum and raw location match.
type AudioVideoMedia struct {
	id              string
	checksum        string
	name            string
	rawLocation     string
	encodedLocation string
	status          MediaStatus
}

// NewAudioVideoMedia creates a pending media for a freshly stored file.
func NewAudioVideoMedia(checksum, name, rawLocation string) *AudioVideoMedia {
	return &AudioVideoMedia{
		id:          identifier.New(),
		checksum:    checksum,
		name:        name,
		rawLocation: rawLocation,
		status:      MediaStatusPending,
	}
}

// RestoreAudioVideoMedia rebuilds a media from stored state.
func RestoreAudioVideoMedia(id, checksum, name, rawLocation, encodedLocation string, status MediaStatus) *AudioVideoMedia {
	return &AudioVideoMedia{
		id:              id,
		checksum:        checksum,
		name:            name,
		rawLocation:     rawLocation,
		encodedLocation: encodedLocation,
		status:          status,
	}
}

// Processing returns a copy marked as being encoded.
func (m *AudioVideoMedia) Processing() *AudioVideoMedia {
	return m.with(m.encodedLocation, MediaStatusProcessing)
}

// Completed returns a copy marked as encoded at encodedLocation.
func (m *AudioVideoMedia) Completed(encodedLocation string) *AudioVideoMedia {
	return m.with(encodedLocation, MediaStatusCompleted)
}

// Failed returns a copy marked as failed to encode.
func (m *AudioVideoMedia) Failed() *AudioVideoMedia {
	return m.with(m.encodedLocation, MediaStatusError)
}

func (m *AudioVideoMedia) with(encodedLocation string, status MediaStatus) *AudioVideoMedia {
	c := *m
	c.encodedLocation = encodedLocation
	c.status = status
	return &c
}

// IsPendingEncode reports whether the media still waits for the encoder.
func (m *AudioVideoMedia) IsPendingEncode() bool {
	return m.status == MediaStatusPending
}

// Equal compares identity by checksum and raw location.
func (m *AudioVideoMedia) Equal(other *AudioVideoMedia) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.checksum == other.checksum && m.rawLocation == other.rawLocation
}

func (m *AudioVideoMedia) ID() string              { return m.id }
func (m *AudioVideoMedia) Checksum() string        { return m.checksum }
func (m *AudioVideoMedia) Name() string            { return m.name }
func (m *AudioVideoMedia) RawLocation() string     { return m.rawLocation }
func (m *AudioVideoMedia) EncodedLocation() string { return m.encodedLocation }
func (m *AudioVideoMedia) Status() MediaStatus     { return m.status }

// ImageMedia is a stored banner or thumbnail. Two values are equal when
// checksum and location match.
type ImageMedia struct {
	id       string
	checksum string
	name     string
	location string
}

// NewImageMedia creates an image media for a freshly stored file.
func NewImageMedia(checksum, name, location string) *ImageMedia {
	return RestoreImageMedia(identifier.New(), checksum, name, location)
}

// RestoreImageMedia rebuilds an image media from stored state.
func RestoreImageMedia(id, checksum, name, location string) *ImageMedia {
	return &ImageMedia{
		id:       id,
		checksum: checksum,
		name:     name,
		location: location,
	}
}

// Equal compares identity by checksum and location.
func (m *ImageMedia) Equal(other *ImageMedia) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.checksum == other.checksum && m.location == other.location
}

func (m *ImageMedia) ID() string       { return m.id }
func (m *ImageMedia) Checksum() string { return m.checksum }
func (m *ImageMedia) Name() string     { return m.name }
func (m *ImageMedia) Location() string { return m.location }
