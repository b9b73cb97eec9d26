// Package testutil holds fixtures, gateway mocks and container helpers
// shared by the test suites.
package testutil

import (
	"fmt"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/video"
)

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

// CreateTestCategory creates an active category with default values.
func CreateTestCategory(name string) *category.Category {
	return category.NewCategory(Ptr(name), Ptr(name+" description"), true)
}

// CreateTestGenre creates an active genre linked to categories.
func CreateTestGenre(name string, categories ...category.ID) *genre.Genre {
	return genre.NewGenre(Ptr(name), true).AddCategories(categories)
}

// CreateTestCastMember creates an actor.
func CreateTestCastMember(name string) *castmember.CastMember {
	return castmember.NewCastMember(Ptr(name), castmember.TypeActor)
}

// CreateTestVideo creates a valid video without media.
func CreateTestVideo(title string) *video.Video {
	return video.NewVideo(video.Properties{
		Title:       Ptr(title),
		Description: Ptr(title + " description"),
		LaunchedAt:  Ptr(2022),
		Duration:    120.5,
		Opened:      true,
		Published:   true,
		Rating:      video.RatingL,
	})
}

// CreateTestResource creates a small resource for the given slot.
func CreateTestResource(mediaType video.MediaType) *video.Resource {
	name := fmt.Sprintf("%s.bin", mediaType)
	contentType := "image/png"
	if mediaType.IsAudioVideo() {
		contentType = "video/mp4"
	}
	return video.NewResource([]byte("content of "+name), contentType, name, mediaType)
}

// CreateTestAudioVideoMedia creates a pending media as the store would.
func CreateTestAudioVideoMedia(id video.ID, mediaType video.MediaType) *video.AudioVideoMedia {
	return video.NewAudioVideoMedia(
		"checksum-"+string(mediaType),
		fmt.Sprintf("%s.bin", mediaType),
		fmt.Sprintf("videoId-%s/type-%s", id, mediaType),
	)
}

// CreateTestImageMedia creates an image media as the store would.
func CreateTestImageMedia(id video.ID, mediaType video.MediaType) *video.ImageMedia {
	return video.NewImageMedia(
		"checksum-"+string(mediaType),
		fmt.Sprintf("%s.bin", mediaType),
		fmt.Sprintf("videoId-%s/type-%s", id, mediaType),
	)
}
