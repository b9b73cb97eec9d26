package video_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	app "github.com/narwhalmedia/catalog/internal/application/video"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type VideoUseCaseTestSuite struct {
	suite.Suite
	ctx         context.Context
	videos      *testutil.MockVideoGateway
	categories  *testutil.MockCategoryGateway
	genres      *testutil.MockGenreGateway
	castMembers *testutil.MockCastMemberGateway
	media       *testutil.MockMediaResourceGateway
	publisher   *testutil.MockEventPublisher
	create      *app.CreateVideoUseCase
	update      *app.UpdateVideoUseCase
}

func (suite *VideoUseCaseTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.videos = new(testutil.MockVideoGateway)
	suite.categories = new(testutil.MockCategoryGateway)
	suite.genres = new(testutil.MockGenreGateway)
	suite.castMembers = new(testutil.MockCastMemberGateway)
	suite.media = new(testutil.MockMediaResourceGateway)
	suite.publisher = new(testutil.MockEventPublisher)

	lookups := app.Lookups{Categories: suite.categories, Genres: suite.genres, CastMembers: suite.castMembers}
	suite.create = app.NewCreateVideoUseCase(suite.videos, lookups, suite.media, suite.publisher, logger.NewNoop())
	suite.update = app.NewUpdateVideoUseCase(suite.videos, lookups, suite.media, suite.publisher, logger.NewNoop())
}

func (suite *VideoUseCaseTestSuite) TearDownTest() {
	suite.videos.AssertExpectations(suite.T())
	suite.categories.AssertExpectations(suite.T())
	suite.genres.AssertExpectations(suite.T())
	suite.castMembers.AssertExpectations(suite.T())
	suite.media.AssertExpectations(suite.T())
	suite.publisher.AssertExpectations(suite.T())
}

func validCommand() app.CreateVideoCommand {
	return app.CreateVideoCommand{
		Title:       testutil.Ptr("System Design Interviews"),
		Description: testutil.Ptr("A walkthrough of distributed systems interviews"),
		LaunchedAt:  testutil.Ptr(2022),
		Duration:    120.10,
		Rating:      "L",
		Opened:      true,
		Published:   true,
	}
}

// expectStores makes every store call return fixture media for the slot it
// was asked to fill.
func (suite *VideoUseCaseTestSuite) expectStores() {
	for _, slot := range video.MediaTypes {
		slot := slot
		matcher := mock.MatchedBy(func(r *video.Resource) bool { return r.Type == slot })
		if slot.IsAudioVideo() {
			suite.media.On("StoreAudioVideo", suite.ctx, mock.Anything, matcher).
				Return(testutil.CreateTestAudioVideoMedia("video", slot), nil).Maybe()
			continue
		}
		suite.media.On("StoreImage", suite.ctx, mock.Anything, matcher).
			Return(testutil.CreateTestImageMedia("video", slot), nil).Maybe()
	}
}

func (suite *VideoUseCaseTestSuite) TestCreate_WithAllReferencesAndMedia() {
	// Arrange
	categories := []category.ID{"c1"}
	genres := []genre.ID{"g1", "g2"}
	members := []castmember.ID{"m1"}
	suite.categories.On("ExistsByIDs", suite.ctx, categories).Return(categories, nil).Once()
	suite.genres.On("ExistsByIDs", suite.ctx, genres).Return(genres, nil).Once()
	suite.castMembers.On("ExistsByIDs", suite.ctx, members).Return(members, nil).Once()
	suite.expectStores()

	var stored *video.Video
	suite.videos.On("Create", suite.ctx, mock.AnythingOfType("*video.Video")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*video.Video) }).
		Return(testutil.Echo, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.AnythingOfType("*video.MediaCreated")).Return(nil).Twice()

	cmd := validCommand()
	cmd.Categories = categories
	cmd.Genres = genres
	cmd.CastMembers = members
	cmd.Video = testutil.CreateTestResource(video.MediaTypeVideo)
	cmd.Trailer = testutil.CreateTestResource(video.MediaTypeTrailer)
	cmd.Banner = testutil.CreateTestResource(video.MediaTypeBanner)
	cmd.Thumbnail = testutil.CreateTestResource(video.MediaTypeThumbnail)
	cmd.ThumbnailHalf = testutil.CreateTestResource(video.MediaTypeThumbnailHalf)

	// Act
	out, err := suite.create.Execute(suite.ctx, cmd)

	// Assert
	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	suite.Equal(stored.ID(), out.ID)
	suite.Equal("System Design Interviews", stored.Title())
	suite.Equal(video.RatingL, stored.Rating())
	suite.Equal(2022, stored.LaunchedAt())
	suite.ElementsMatch(genres, stored.Genres())
	for _, slot := range video.MediaTypes {
		if slot.IsAudioVideo() {
			suite.NotNil(stored.AudioVideo(slot), slot)
		} else {
			suite.NotNil(stored.Image(slot), slot)
		}
	}
	suite.Empty(stored.PendingEvents())
	suite.media.AssertNotCalled(suite.T(), "ClearResources", mock.Anything, mock.Anything)
}

func (suite *VideoUseCaseTestSuite) TestCreate_MissingCategoryIsTheOnlyError() {
	// Arrange
	categories := []category.ID{"123"}
	suite.categories.On("ExistsByIDs", suite.ctx, categories).Return([]category.ID{}, nil).Once()

	cmd := validCommand()
	cmd.Categories = categories
	cmd.Video = testutil.CreateTestResource(video.MediaTypeVideo)

	// Act
	out, err := suite.create.Execute(suite.ctx, cmd)

	// Assert
	suite.Nil(out)
	verr, ok := validation.AsValidationError(err)
	suite.Require().True(ok)
	suite.Equal("could not create Aggregate Video", verr.Message)
	suite.Require().Len(verr.Errors, 1)
	suite.Equal("Some categories could not be found: 123", verr.Errors[0].Message)
	suite.videos.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	suite.media.AssertNotCalled(suite.T(), "StoreAudioVideo", mock.Anything, mock.Anything, mock.Anything)
	suite.media.AssertNotCalled(suite.T(), "ClearResources", mock.Anything, mock.Anything)
}

func (suite *VideoUseCaseTestSuite) TestCreate_InvalidFieldsHaveNoSideEffects() {
	cmd := validCommand()
	cmd.Title = nil
	cmd.Rating = "unknown"
	cmd.Banner = testutil.CreateTestResource(video.MediaTypeBanner)

	_, err := suite.create.Execute(suite.ctx, cmd)

	verr, ok := validation.AsValidationError(err)
	suite.Require().True(ok)
	suite.Require().Len(verr.Errors, 2)
	suite.Equal("'title' should not be null", verr.Errors[0].Message)
	suite.Equal("'rating' should not be null", verr.Errors[1].Message)
	suite.media.AssertNotCalled(suite.T(), "StoreImage", mock.Anything, mock.Anything, mock.Anything)
	suite.media.AssertNotCalled(suite.T(), "ClearResources", mock.Anything, mock.Anything)
	suite.videos.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *VideoUseCaseTestSuite) TestCreate_StoreFailureClearsResources() {
	// Arrange
	suite.media.On("StoreAudioVideo", suite.ctx, mock.Anything, mock.Anything).
		Return(testutil.CreateTestAudioVideoMedia("video", video.MediaTypeVideo), nil).Once()
	suite.media.On("StoreImage", suite.ctx, mock.Anything, mock.Anything).
		Return(nil, errors.New("bucket unavailable")).Once()
	suite.media.On("ClearResources", suite.ctx, mock.Anything).Return(nil).Once()

	cmd := validCommand()
	cmd.Video = testutil.CreateTestResource(video.MediaTypeVideo)
	cmd.Banner = testutil.CreateTestResource(video.MediaTypeBanner)

	// Act
	out, err := suite.create.Execute(suite.ctx, cmd)

	// Assert
	suite.Nil(out)
	suite.True(apperrors.IsInternal(err))
	suite.Contains(err.Error(), "bucket unavailable")
	suite.videos.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
	suite.publisher.AssertNotCalled(suite.T(), "Publish", mock.Anything, mock.Anything)
}

func (suite *VideoUseCaseTestSuite) TestCreate_PublishFailureDoesNotFailTheWrite() {
	suite.expectStores()
	suite.videos.On("Create", suite.ctx, mock.Anything).Return(testutil.Echo, nil).Once()
	suite.publisher.On("Publish", suite.ctx, mock.Anything).Return(errors.New("broker down")).Once()

	cmd := validCommand()
	cmd.Video = testutil.CreateTestResource(video.MediaTypeVideo)

	out, err := suite.create.Execute(suite.ctx, cmd)

	suite.Require().NoError(err)
	suite.NotEmpty(out.ID)
}

func (suite *VideoUseCaseTestSuite) TestUpdate_NotFoundBeforeValidation() {
	suite.videos.On("FindByID", suite.ctx, video.ID("missing")).Return(nil, nil).Once()

	_, err := suite.update.Execute(suite.ctx, app.UpdateVideoCommand{ID: "missing"})

	suite.True(apperrors.IsNotFound(err))
	suite.Equal("Video with ID missing was not found", apperrors.Message(err))
}

func (suite *VideoUseCaseTestSuite) TestUpdate_ReplacesFieldsOnACopy() {
	// Arrange
	existing := testutil.CreateTestVideo("Old title")
	suite.videos.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil).Once()
	suite.videos.On("Update", suite.ctx, mock.MatchedBy(func(v *video.Video) bool {
		return v.ID() == existing.ID() && v.Title() == "New title" && v.Trailer() != nil
	})).Return(testutil.Echo, nil).Once()
	suite.expectStores()
	suite.publisher.On("Publish", suite.ctx, mock.Anything).Return(nil).Once()

	// Act
	out, err := suite.update.Execute(suite.ctx, app.UpdateVideoCommand{
		ID:          existing.ID(),
		Title:       testutil.Ptr("New title"),
		Description: testutil.Ptr("New description"),
		LaunchedAt:  testutil.Ptr(2023),
		Duration:    10,
		Rating:      "AGE_18",
		Trailer:     testutil.CreateTestResource(video.MediaTypeTrailer),
	})

	// Assert
	suite.Require().NoError(err)
	suite.Equal(existing.ID(), out.ID)
	suite.Equal("Old title", existing.Title())
	suite.Nil(existing.Trailer())
}

func (suite *VideoUseCaseTestSuite) TestUpdate_PersistFailureClearsResources() {
	existing := testutil.CreateTestVideo("Old title")
	suite.videos.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil).Once()
	suite.videos.On("Update", suite.ctx, mock.Anything).Return(nil, errors.New("db down")).Once()
	suite.media.On("ClearResources", suite.ctx, existing.ID()).Return(nil).Once()

	_, err := suite.update.Execute(suite.ctx, app.UpdateVideoCommand{
		ID:          existing.ID(),
		Title:       testutil.Ptr("New title"),
		Description: testutil.Ptr("New description"),
		LaunchedAt:  testutil.Ptr(2023),
		Rating:      "12",
	})

	suite.True(apperrors.IsInternal(err))
	suite.Equal(fmt.Sprintf("could not update video %s", existing.ID()), apperrors.Message(err))
}

func TestVideoUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(VideoUseCaseTestSuite))
}

func TestCreateVideo_PersistFailureClearsResourcesOnce(t *testing.T) {
	ctx := context.Background()

	for n := 0; n <= len(video.MediaTypes); n++ {
		t.Run(fmt.Sprintf("%d resources", n), func(t *testing.T) {
			videos := new(testutil.MockVideoGateway)
			media := new(testutil.MockMediaResourceGateway)
			lookups := app.Lookups{
				Categories:  new(testutil.MockCategoryGateway),
				Genres:      new(testutil.MockGenreGateway),
				CastMembers: new(testutil.MockCastMemberGateway),
			}
			uc := app.NewCreateVideoUseCase(videos, lookups, media, nil, logger.NewNoop())

			cmd := validCommand()
			slots := []**video.Resource{&cmd.Video, &cmd.Trailer, &cmd.Banner, &cmd.Thumbnail, &cmd.ThumbnailHalf}
			for i := 0; i < n; i++ {
				slot := video.MediaTypes[i]
				*slots[i] = testutil.CreateTestResource(slot)
				if slot.IsAudioVideo() {
					media.On("StoreAudioVideo", ctx, mock.Anything, mock.Anything).
						Return(testutil.CreateTestAudioVideoMedia("video", slot), nil).Once()
				} else {
					media.On("StoreImage", ctx, mock.Anything, mock.Anything).
						Return(testutil.CreateTestImageMedia("video", slot), nil).Once()
				}
			}
			videos.On("Create", ctx, mock.Anything).Return(nil, errors.New("db down")).Once()
			media.On("ClearResources", ctx, mock.Anything).Return(nil).Once()

			out, err := uc.Execute(ctx, cmd)

			assert.Nil(t, out)
			require.Error(t, err)
			assert.True(t, apperrors.IsInternal(err))
			assert.Contains(t, apperrors.Message(err), "could not create video ")
			media.AssertNumberOfCalls(t, "ClearResources", 1)
			videos.AssertExpectations(t)
			media.AssertExpectations(t)
		})
	}
}

type MediaUseCaseTestSuite struct {
	suite.Suite
	ctx    context.Context
	videos *testutil.MockVideoGateway
	media  *testutil.MockMediaResourceGateway
}

func (suite *MediaUseCaseTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.videos = new(testutil.MockVideoGateway)
	suite.media = new(testutil.MockMediaResourceGateway)
}

func (suite *MediaUseCaseTestSuite) TearDownTest() {
	suite.videos.AssertExpectations(suite.T())
	suite.media.AssertExpectations(suite.T())
}

func (suite *MediaUseCaseTestSuite) withMedia() *video.Video {
	v := testutil.CreateTestVideo("Encoded")
	v.SetVideo(testutil.CreateTestAudioVideoMedia(v.ID(), video.MediaTypeVideo))
	v.ClearEvents()
	return v
}

func (suite *MediaUseCaseTestSuite) TestUpdateStatus_Completed() {
	// Arrange
	v := suite.withMedia()
	resourceID := v.Video().ID()
	suite.videos.On("FindByID", suite.ctx, v.ID()).Return(v, nil).Once()
	suite.videos.On("Update", suite.ctx, mock.MatchedBy(func(updated *video.Video) bool {
		m := updated.Video()
		return m.ID() == resourceID &&
			m.Status() == video.MediaStatusCompleted &&
			m.EncodedLocation() == "encoded/video.mp4"
	})).Return(testutil.Echo, nil).Once()

	// Act
	err := app.NewUpdateMediaStatusUseCase(suite.videos, logger.NewNoop()).Execute(suite.ctx, app.UpdateMediaStatusCommand{
		VideoID:    v.ID(),
		ResourceID: resourceID,
		Status:     video.MediaStatusCompleted,
		Folder:     "encoded",
		Filename:   "video.mp4",
	})

	// Assert
	suite.Require().NoError(err)
	suite.Equal(video.MediaStatusPending, v.Video().Status())
}

func (suite *MediaUseCaseTestSuite) TestUpdateStatus_UnknownResourceIsIgnored() {
	v := suite.withMedia()
	suite.videos.On("FindByID", suite.ctx, v.ID()).Return(v, nil).Once()

	err := app.NewUpdateMediaStatusUseCase(suite.videos, logger.NewNoop()).Execute(suite.ctx, app.UpdateMediaStatusCommand{
		VideoID:    v.ID(),
		ResourceID: "someone-else",
		Status:     video.MediaStatusProcessing,
	})

	suite.NoError(err)
	suite.videos.AssertNotCalled(suite.T(), "Update", mock.Anything, mock.Anything)
}

func (suite *MediaUseCaseTestSuite) TestGetMedia() {
	resource := testutil.CreateTestResource(video.MediaTypeBanner)
	suite.media.On("GetResource", suite.ctx, video.ID("v1"), video.MediaTypeBanner).Return(resource, nil).Once()
	suite.media.On("GetResource", suite.ctx, video.ID("v1"), video.MediaTypeTrailer).Return(nil, nil).Once()
	uc := app.NewGetMediaUseCase(suite.media)

	out, err := uc.Execute(suite.ctx, "v1", "banner")
	suite.Require().NoError(err)
	suite.Equal(resource.Content, out.Content)
	suite.Equal("image/png", out.ContentType)

	_, err = uc.Execute(suite.ctx, "v1", "TRAILER")
	suite.True(apperrors.IsNotFound(err))
	suite.Equal("Media with ID v1/TRAILER was not found", apperrors.Message(err))

	_, err = uc.Execute(suite.ctx, "v1", "poster")
	suite.True(apperrors.IsNotFound(err))
}

func (suite *MediaUseCaseTestSuite) TestDelete_ClearsMedia() {
	suite.videos.On("DeleteByID", suite.ctx, video.ID("v1")).Return(nil).Once()
	suite.media.On("ClearResources", suite.ctx, video.ID("v1")).Return(nil).Once()

	err := app.NewDeleteVideoUseCase(suite.videos, suite.media, logger.NewNoop()).Execute(suite.ctx, "v1")

	suite.NoError(err)
}

func (suite *MediaUseCaseTestSuite) TestGetByID() {
	v := suite.withMedia()
	suite.videos.On("FindByID", suite.ctx, v.ID()).Return(v, nil).Once()

	out, err := app.NewGetVideoByIDUseCase(suite.videos).Execute(suite.ctx, v.ID())

	suite.Require().NoError(err)
	suite.Equal("Encoded", out.Title)
	suite.Require().NotNil(out.Video)
	suite.Equal(video.MediaStatusPending, out.Video.Status)
	suite.Nil(out.Banner)
}

func TestMediaUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(MediaUseCaseTestSuite))
}
