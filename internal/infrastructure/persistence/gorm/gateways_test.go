package gorm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	gormstore "github.com/narwhalmedia/catalog/internal/infrastructure/persistence/gorm"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type GatewayTestSuite struct {
	suite.Suite
	ctx         context.Context
	db          *gorm.DB
	categories  *gormstore.CategoryGateway
	genres      *gormstore.GenreGateway
	castMembers *gormstore.CastMemberGateway
	videos      *gormstore.VideoGateway
}

func (suite *GatewayTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.db = gormstore.NewTestDB(suite.T())
	suite.categories = gormstore.NewCategoryGateway(suite.db)
	suite.genres = gormstore.NewGenreGateway(suite.db)
	suite.castMembers = gormstore.NewCastMemberGateway(suite.db)
	suite.videos = gormstore.NewVideoGateway(suite.db)
}

func (suite *GatewayTestSuite) TestCategory_RoundTrip() {
	// Arrange
	c := testutil.CreateTestCategory("Movies")
	c.Update(testutil.Ptr("Movies"), testutil.Ptr("Long form"), false)

	// Act
	_, err := suite.categories.Create(suite.ctx, c)
	suite.Require().NoError(err)
	found, err := suite.categories.FindByID(suite.ctx, c.ID())

	// Assert
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(c.ID(), found.ID())
	suite.Equal("Long form", found.Description())
	suite.False(found.IsActive())
	suite.Require().NotNil(found.DeletedAt())
	suite.True(c.CreatedAt().Equal(found.CreatedAt()))
	suite.True(c.UpdatedAt().Equal(found.UpdatedAt()))
}

func (suite *GatewayTestSuite) TestCategory_FindMissingReturnsNil() {
	found, err := suite.categories.FindByID(suite.ctx, "missing")

	suite.NoError(err)
	suite.Nil(found)
}

func (suite *GatewayTestSuite) TestCategory_DeleteIsIdempotent() {
	c := testutil.CreateTestCategory("Movies")
	_, err := suite.categories.Create(suite.ctx, c)
	suite.Require().NoError(err)

	suite.NoError(suite.categories.DeleteByID(suite.ctx, c.ID()))
	suite.NoError(suite.categories.DeleteByID(suite.ctx, c.ID()))

	found, err := suite.categories.FindByID(suite.ctx, c.ID())
	suite.NoError(err)
	suite.Nil(found)
}

func (suite *GatewayTestSuite) TestExistsByIDs_ReturnsStoredSubset() {
	movies := testutil.CreateTestCategory("Movies")
	series := testutil.CreateTestCategory("Series")
	for _, c := range []*category.Category{movies, series} {
		_, err := suite.categories.Create(suite.ctx, c)
		suite.Require().NoError(err)
	}

	found, err := suite.categories.ExistsByIDs(suite.ctx, []category.ID{movies.ID(), "anime", series.ID()})

	suite.Require().NoError(err)
	suite.ElementsMatch([]category.ID{movies.ID(), series.ID()}, found)

	none, err := suite.categories.ExistsByIDs(suite.ctx, nil)
	suite.NoError(err)
	suite.Empty(none)
}

func (suite *GatewayTestSuite) TestGenre_UpdateReplacesCategories() {
	// Arrange
	g := testutil.CreateTestGenre("Action", "c1", "c2")
	_, err := suite.genres.Create(suite.ctx, g)
	suite.Require().NoError(err)

	// Act
	updated := g.Clone().Update(testutil.Ptr("Adventure"), true, []category.ID{"c2", "c3"})
	_, err = suite.genres.Update(suite.ctx, updated)
	suite.Require().NoError(err)

	// Assert
	found, err := suite.genres.FindByID(suite.ctx, g.ID())
	suite.Require().NoError(err)
	suite.Equal("Adventure", found.Name())
	suite.ElementsMatch([]category.ID{"c2", "c3"}, found.Categories())

	exists, err := suite.genres.ExistsByIDs(suite.ctx, []genre.ID{g.ID(), "other"})
	suite.Require().NoError(err)
	suite.Equal([]genre.ID{g.ID()}, exists)

	suite.NoError(suite.genres.DeleteByID(suite.ctx, g.ID()))
	var links int64
	suite.db.Model(&gormstore.GenreCategoryModel{}).Count(&links)
	suite.Zero(links)
}

func (suite *GatewayTestSuite) TestCastMember_RoundTrip() {
	m := castmember.NewCastMember(testutil.Ptr("Quentin Tarantino"), castmember.TypeDirector)
	_, err := suite.castMembers.Create(suite.ctx, m)
	suite.Require().NoError(err)

	found, err := suite.castMembers.FindByID(suite.ctx, m.ID())

	suite.Require().NoError(err)
	suite.Equal(castmember.TypeDirector, found.Type())
	suite.Equal("Quentin Tarantino", found.Name())

	exists, err := suite.castMembers.ExistsByIDs(suite.ctx, []castmember.ID{m.ID()})
	suite.NoError(err)
	suite.Equal([]castmember.ID{m.ID()}, exists)
}

func (suite *GatewayTestSuite) TestVideo_RoundTripWithMedia() {
	// Arrange
	v := video.NewVideo(video.Properties{
		Title:       testutil.Ptr("Title"),
		Description: testutil.Ptr("Description"),
		LaunchedAt:  testutil.Ptr(2021),
		Duration:    90.5,
		Rating:      video.RatingAge16,
		Opened:      true,
		Categories:  []category.ID{"c1"},
		Genres:      []genre.ID{"g1", "g2"},
		CastMembers: []castmember.ID{"m1"},
	})
	v.SetVideo(testutil.CreateTestAudioVideoMedia(v.ID(), video.MediaTypeVideo))
	v.SetBanner(testutil.CreateTestImageMedia(v.ID(), video.MediaTypeBanner))

	// Act
	_, err := suite.videos.Create(suite.ctx, v)
	suite.Require().NoError(err)
	found, err := suite.videos.FindByID(suite.ctx, v.ID())

	// Assert
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal("Title", found.Title())
	suite.Equal(2021, found.LaunchedAt())
	suite.Equal(90.5, found.Duration())
	suite.Equal(video.RatingAge16, found.Rating())
	suite.True(found.Opened())
	suite.ElementsMatch([]category.ID{"c1"}, found.Categories())
	suite.ElementsMatch([]genre.ID{"g1", "g2"}, found.Genres())
	suite.ElementsMatch([]castmember.ID{"m1"}, found.CastMembers())
	suite.Require().NotNil(found.Video())
	suite.True(v.Video().Equal(found.Video()))
	suite.Equal(video.MediaStatusPending, found.Video().Status())
	suite.Require().NotNil(found.Banner())
	suite.Equal(v.Banner().Location(), found.Banner().Location())
	suite.Nil(found.Trailer())
	suite.Empty(found.PendingEvents())
}

func (suite *GatewayTestSuite) TestVideo_UpdateReplacesMediaAndLinks() {
	v := testutil.CreateTestVideo("Title")
	v.SetVideo(testutil.CreateTestAudioVideoMedia(v.ID(), video.MediaTypeVideo))
	_, err := suite.videos.Create(suite.ctx, v)
	suite.Require().NoError(err)

	props := v.Properties()
	props.Genres = []genre.ID{"g9"}
	updated := v.Clone().Update(props)
	updated.ReplaceAudioVideo(video.MediaTypeVideo, v.Video().Completed("encoded/video.mp4"))
	_, err = suite.videos.Update(suite.ctx, updated)
	suite.Require().NoError(err)

	found, err := suite.videos.FindByID(suite.ctx, v.ID())
	suite.Require().NoError(err)
	suite.Equal([]genre.ID{"g9"}, found.Genres())
	suite.Equal(video.MediaStatusCompleted, found.Video().Status())
	suite.Equal("encoded/video.mp4", found.Video().EncodedLocation())

	suite.NoError(suite.videos.DeleteByID(suite.ctx, v.ID()))
	suite.NoError(suite.videos.DeleteByID(suite.ctx, v.ID()))
	gone, err := suite.videos.FindByID(suite.ctx, v.ID())
	suite.NoError(err)
	suite.Nil(gone)
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func TestCategoryGateway_Postgres(t *testing.T) {
	pg := testutil.SetupPostgresContainer(t)
	require.NoError(t, gormstore.AutoMigrate(pg.DB))

	ctx := context.Background()
	gateway := gormstore.NewCategoryGateway(pg.DB)
	c := testutil.CreateTestCategory("Documentaries")

	_, err := gateway.Create(ctx, c)
	require.NoError(t, err)

	found, err := gateway.ExistsByIDs(ctx, []category.ID{c.ID(), "missing"})
	require.NoError(t, err)
	assert.Equal(t, []category.ID{c.ID()}, found)

	require.NoError(t, pg.TruncateTables("categories"))
}
