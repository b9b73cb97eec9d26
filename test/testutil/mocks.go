package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/category"
	"github.com/narwhalmedia/catalog/internal/domain/genre"
	"github.com/narwhalmedia/catalog/internal/domain/video"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

// MockCategoryGateway is a mock for category.Gateway
type MockCategoryGateway struct {
	mock.Mock
}

func (m *MockCategoryGateway) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	args := m.Called(ctx, c)
	return aggregateResult(args, c)
}

func (m *MockCategoryGateway) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	args := m.Called(ctx, c)
	return aggregateResult(args, c)
}

func (m *MockCategoryGateway) FindByID(ctx context.Context, id category.ID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *MockCategoryGateway) DeleteByID(ctx context.Context, id category.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryGateway) ExistsByIDs(ctx context.Context, ids []category.ID) ([]category.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]category.ID), args.Error(1)
}

// MockGenreGateway is a mock for genre.Gateway
type MockGenreGateway struct {
	mock.Mock
}

func (m *MockGenreGateway) Create(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	args := m.Called(ctx, g)
	return aggregateResult(args, g)
}

func (m *MockGenreGateway) Update(ctx context.Context, g *genre.Genre) (*genre.Genre, error) {
	args := m.Called(ctx, g)
	return aggregateResult(args, g)
}

func (m *MockGenreGateway) FindByID(ctx context.Context, id genre.ID) (*genre.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genre.Genre), args.Error(1)
}

func (m *MockGenreGateway) DeleteByID(ctx context.Context, id genre.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGenreGateway) ExistsByIDs(ctx context.Context, ids []genre.ID) ([]genre.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]genre.ID), args.Error(1)
}

// MockCastMemberGateway is a mock for castmember.Gateway
type MockCastMemberGateway struct {
	mock.Mock
}

func (m *MockCastMemberGateway) Create(ctx context.Context, member *castmember.CastMember) (*castmember.CastMember, error) {
	args := m.Called(ctx, member)
	return aggregateResult(args, member)
}

func (m *MockCastMemberGateway) Update(ctx context.Context, member *castmember.CastMember) (*castmember.CastMember, error) {
	args := m.Called(ctx, member)
	return aggregateResult(args, member)
}

func (m *MockCastMemberGateway) FindByID(ctx context.Context, id castmember.ID) (*castmember.CastMember, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*castmember.CastMember), args.Error(1)
}

func (m *MockCastMemberGateway) DeleteByID(ctx context.Context, id castmember.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCastMemberGateway) ExistsByIDs(ctx context.Context, ids []castmember.ID) ([]castmember.ID, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]castmember.ID), args.Error(1)
}

// MockVideoGateway is a mock for video.Gateway
type MockVideoGateway struct {
	mock.Mock
}

func (m *MockVideoGateway) Create(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	return aggregateResult(args, v)
}

func (m *MockVideoGateway) Update(ctx context.Context, v *video.Video) (*video.Video, error) {
	args := m.Called(ctx, v)
	return aggregateResult(args, v)
}

func (m *MockVideoGateway) FindByID(ctx context.Context, id video.ID) (*video.Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Video), args.Error(1)
}

func (m *MockVideoGateway) DeleteByID(ctx context.Context, id video.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMediaResourceGateway is a mock for video.MediaResourceGateway
type MockMediaResourceGateway struct {
	mock.Mock
}

func (m *MockMediaResourceGateway) StoreAudioVideo(ctx context.Context, id video.ID, resource *video.Resource) (*video.AudioVideoMedia, error) {
	args := m.Called(ctx, id, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.AudioVideoMedia), args.Error(1)
}

func (m *MockMediaResourceGateway) StoreImage(ctx context.Context, id video.ID, resource *video.Resource) (*video.ImageMedia, error) {
	args := m.Called(ctx, id, resource)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.ImageMedia), args.Error(1)
}

func (m *MockMediaResourceGateway) GetResource(ctx context.Context, id video.ID, mediaType video.MediaType) (*video.Resource, error) {
	args := m.Called(ctx, id, mediaType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*video.Resource), args.Error(1)
}

func (m *MockMediaResourceGateway) ClearResources(ctx context.Context, id video.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventPublisher is a mock for interfaces.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event interfaces.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Echo makes a Create or Update mock return the aggregate it was given:
//
//	gateway.On("Create", ctx, mock.Anything).Return(testutil.Echo, nil)
const Echo = "echo"

func aggregateResult[T any](args mock.Arguments, in T) (T, error) {
	var zero T
	switch v := args.Get(0).(type) {
	case nil:
		return zero, args.Error(1)
	case string:
		if v == Echo {
			return in, args.Error(1)
		}
	}
	return args.Get(0).(T), args.Error(1)
}
