package container_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	categoryapp "github.com/narwhalmedia/catalog/internal/application/category"
	genreapp "github.com/narwhalmedia/catalog/internal/application/genre"
	videoapp "github.com/narwhalmedia/catalog/internal/application/video"
	"github.com/narwhalmedia/catalog/internal/container"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/test/testutil"
)

func newCatalog(t *testing.T) *container.CatalogContainer {
	t.Helper()

	dir := t.TempDir()
	cfg := config.GetDefaults()
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = filepath.Join(dir, "catalog.db")
	cfg.Storage.LocalPath = filepath.Join(dir, "media")
	require.NoError(t, cfg.Validate())

	c, cleanup, err := container.InitializeCatalog(context.Background(), cfg, logger.FromZap(zaptest.NewLogger(t)))
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return c
}

func TestCatalog_VideoLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	// Arrange
	movies, err := c.Categories.Create.Execute(ctx, categoryapp.CreateCategoryCommand{
		Name:     testutil.Ptr("Movies"),
		IsActive: true,
	})
	require.NoError(t, err)

	action, err := c.Genres.Create.Execute(ctx, genreapp.CreateGenreCommand{
		Name:       testutil.Ptr("Action"),
		IsActive:   true,
		Categories: []category.ID{movies.ID},
	})
	require.NoError(t, err)

	// Act
	created, err := c.Videos.Create.Execute(ctx, videoapp.CreateVideoCommand{
		Title:       testutil.Ptr("Title"),
		Description: testutil.Ptr("Description"),
		LaunchedAt:  testutil.Ptr(2022),
		Duration:    120,
		Rating:      "L",
		Categories:  []category.ID{movies.ID},
		Genres:      []genre.ID{action.ID},
		Video:       testutil.CreateTestResource(video.MediaTypeVideo),
		Banner:      testutil.CreateTestResource(video.MediaTypeBanner),
	})
	require.NoError(t, err)

	// Assert
	out, err := c.Videos.GetByID.Execute(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, out.Video)
	assert.Equal(t, video.MediaStatusPending, out.Video.Status)
	require.NotNil(t, out.Banner)

	content, err := c.Videos.GetMedia.Execute(ctx, created.ID, "video")
	require.NoError(t, err)
	assert.Equal(t, "video/mp4", content.ContentType)

	err = c.Videos.UpdateMediaStatus.Execute(ctx, videoapp.UpdateMediaStatusCommand{
		VideoID:    created.ID,
		ResourceID: out.Video.ID,
		Status:     video.MediaStatusCompleted,
		Folder:     "encoded",
		Filename:   "video.mp4",
	})
	require.NoError(t, err)

	out, err = c.Videos.GetByID.Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "encoded/video.mp4", out.Video.EncodedLocation)

	require.NoError(t, c.Videos.Delete.Execute(ctx, created.ID))
	_, err = c.Videos.GetMedia.Execute(ctx, created.ID, "video")
	assert.Error(t, err)
}

func TestCatalog_RejectsMissingReferences(t *testing.T) {
	ctx := context.Background()
	c := newCatalog(t)

	_, err := c.Genres.Create.Execute(ctx, genreapp.CreateGenreCommand{
		Name:       testutil.Ptr("Action"),
		IsActive:   true,
		Categories: []category.ID{"c1", "c2"},
	})

	verr, ok := validation.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "could not create Aggregate Genre", verr.Message)
	require.Len(t, verr.Errors, 1)
	assert.Equal(t, "Some categories could not be found: c1, c2", verr.Errors[0].Message)
}
