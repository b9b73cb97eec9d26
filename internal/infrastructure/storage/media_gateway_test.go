package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/internal/infrastructure/storage"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type MediaGatewayTestSuite struct {
	suite.Suite
	ctx     context.Context
	base    string
	gateway *storage.MediaGateway
}

func (suite *MediaGatewayTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.base = suite.T().TempDir()

	logger := zaptest.NewLogger(suite.T())
	local, err := storage.NewLocalStorage(suite.base, logger)
	suite.Require().NoError(err)
	suite.gateway = storage.NewMediaGateway(local, logger)
}

func (suite *MediaGatewayTestSuite) TestStoreAudioVideo_ReturnsPendingMedia() {
	// Arrange
	id := video.NewID()
	resource := testutil.CreateTestResource(video.MediaTypeVideo)

	// Act
	media, err := suite.gateway.StoreAudioVideo(suite.ctx, id, resource)

	// Assert
	suite.Require().NoError(err)
	suite.Equal(video.MediaStatusPending, media.Status())
	suite.Equal(resource.Name, media.Name())
	suite.Equal(storage.Key(id, video.MediaTypeVideo), media.RawLocation())
	suite.Equal(storage.Checksum(resource.Content), media.Checksum())
	suite.Len(media.Checksum(), 64)
	suite.Empty(media.EncodedLocation())

	suite.FileExists(filepath.Join(suite.base, "videoId-"+id.String(), "type-VIDEO"))
}

func (suite *MediaGatewayTestSuite) TestStoreImage_ReturnsImageMedia() {
	id := video.NewID()
	resource := testutil.CreateTestResource(video.MediaTypeBanner)

	media, err := suite.gateway.StoreImage(suite.ctx, id, resource)

	suite.Require().NoError(err)
	suite.Equal("videoId-"+id.String()+"/type-BANNER", media.Location())
	suite.Equal(resource.Name, media.Name())
}

func (suite *MediaGatewayTestSuite) TestStore_RejectsWrongSlotKind() {
	id := video.NewID()

	_, err := suite.gateway.StoreImage(suite.ctx, id, testutil.CreateTestResource(video.MediaTypeTrailer))
	suite.Error(err)

	_, err = suite.gateway.StoreAudioVideo(suite.ctx, id, testutil.CreateTestResource(video.MediaTypeThumbnail))
	suite.Error(err)
}

func (suite *MediaGatewayTestSuite) TestGetResource_ReturnsStoredContent() {
	id := video.NewID()
	resource := testutil.CreateTestResource(video.MediaTypeThumbnailHalf)
	_, err := suite.gateway.StoreImage(suite.ctx, id, resource)
	suite.Require().NoError(err)

	found, err := suite.gateway.GetResource(suite.ctx, id, video.MediaTypeThumbnailHalf)

	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(resource.Content, found.Content)
	suite.Equal("image/png", found.ContentType)
	suite.Equal(resource.Name, found.Name)
	suite.Equal(video.MediaTypeThumbnailHalf, found.Type)
}

func (suite *MediaGatewayTestSuite) TestGetResource_MissingSlotIsNil() {
	found, err := suite.gateway.GetResource(suite.ctx, video.NewID(), video.MediaTypeTrailer)

	suite.NoError(err)
	suite.Nil(found)
}

func (suite *MediaGatewayTestSuite) TestClearResources_RemovesOnlyThatVideo() {
	// Arrange
	cleared, kept := video.NewID(), video.NewID()
	for _, id := range []video.ID{cleared, kept} {
		_, err := suite.gateway.StoreAudioVideo(suite.ctx, id, testutil.CreateTestResource(video.MediaTypeVideo))
		suite.Require().NoError(err)
		_, err = suite.gateway.StoreImage(suite.ctx, id, testutil.CreateTestResource(video.MediaTypeBanner))
		suite.Require().NoError(err)
	}

	// Act
	err := suite.gateway.ClearResources(suite.ctx, cleared)

	// Assert
	suite.Require().NoError(err)
	for _, t := range []video.MediaType{video.MediaTypeVideo, video.MediaTypeBanner} {
		gone, err := suite.gateway.GetResource(suite.ctx, cleared, t)
		suite.NoError(err)
		suite.Nil(gone)

		still, err := suite.gateway.GetResource(suite.ctx, kept, t)
		suite.NoError(err)
		suite.NotNil(still)
	}
	suite.NoDirExists(filepath.Join(suite.base, "videoId-"+cleared.String()))

	suite.NoError(suite.gateway.ClearResources(suite.ctx, cleared))
}

func TestMediaGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(MediaGatewayTestSuite))
}

func TestNew_SelectsBackend(t *testing.T) {
	logger := zaptest.NewLogger(t)
	dir := filepath.Join(t.TempDir(), "media")

	s, err := storage.New(context.Background(), config.StorageConfig{Type: config.StorageLocal, LocalPath: dir}, logger)
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, s)

	_, err = os.Stat(dir)
	assert.NoError(t, err)

	_, err = storage.New(context.Background(), config.StorageConfig{Type: "ftp"}, logger)
	assert.Error(t, err)
}

func TestLocalStorage_OverwritesKey(t *testing.T) {
	ctx := context.Background()
	s, err := storage.NewLocalStorage(t.TempDir(), zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, &storage.Object{Key: "a/b", Name: "one", ContentType: "text/plain", Content: []byte("1")}))
	require.NoError(t, s.Put(ctx, &storage.Object{Key: "a/b", Name: "two", ContentType: "text/plain", Content: []byte("2")}))

	obj, err := s.Get(ctx, "a/b")
	require.NoError(t, err)
	assert.Equal(t, "two", obj.Name)
	assert.Equal(t, []byte("2"), obj.Content)

	_, err = s.Get(ctx, "a/c")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
