package castmember_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	app "github.com/narwhalmedia/catalog/internal/application/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/castmember"
	"github.com/narwhalmedia/catalog/internal/domain/validation"
	apperrors "github.com/narwhalmedia/catalog/pkg/errors"
	"github.com/narwhalmedia/catalog/pkg/logger"
	"github.com/narwhalmedia/catalog/test/testutil"
)

type CastMemberUseCaseTestSuite struct {
	suite.Suite
	ctx     context.Context
	gateway *testutil.MockCastMemberGateway
}

func (suite *CastMemberUseCaseTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.gateway = new(testutil.MockCastMemberGateway)
}

func (suite *CastMemberUseCaseTestSuite) TearDownTest() {
	suite.gateway.AssertExpectations(suite.T())
}

func (suite *CastMemberUseCaseTestSuite) TestCreate_Success() {
	suite.gateway.On("Create", suite.ctx, mock.MatchedBy(func(m *castmember.CastMember) bool {
		return m.Name() == "Vin Diesel" && m.Type() == castmember.TypeActor
	})).Return(testutil.Echo, nil)

	out, err := app.NewCreateCastMemberUseCase(suite.gateway, logger.NewNoop()).
		Execute(suite.ctx, app.CreateCastMemberCommand{Name: testutil.Ptr("Vin Diesel"), Type: "actor"})

	suite.Require().NoError(err)
	suite.NotEmpty(out.ID)
}

func (suite *CastMemberUseCaseTestSuite) TestCreate_AccumulatesErrors() {
	_, err := app.NewCreateCastMemberUseCase(suite.gateway, logger.NewNoop()).
		Execute(suite.ctx, app.CreateCastMemberCommand{Name: testutil.Ptr(""), Type: "PRODUCER"})

	verr, ok := validation.AsValidationError(err)
	suite.Require().True(ok)
	suite.Equal("could not create Aggregate CastMember", verr.Message)
	suite.Require().Len(verr.Errors, 2)
	suite.Equal("'name' should not be empty", verr.Errors[0].Message)
	suite.Equal("'type' should not be null", verr.Errors[1].Message)
	suite.gateway.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *CastMemberUseCaseTestSuite) TestUpdate_Success() {
	existing := testutil.CreateTestCastMember("Vin Diesel")
	suite.gateway.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil)
	suite.gateway.On("Update", suite.ctx, mock.MatchedBy(func(m *castmember.CastMember) bool {
		return m.ID() == existing.ID() && m.Type() == castmember.TypeDirector
	})).Return(testutil.Echo, nil)

	out, err := app.NewUpdateCastMemberUseCase(suite.gateway, logger.NewNoop()).
		Execute(suite.ctx, app.UpdateCastMemberCommand{ID: existing.ID(), Name: testutil.Ptr("Vin Diesel"), Type: "DIRECTOR"})

	suite.Require().NoError(err)
	suite.Equal(existing.ID(), out.ID)
	suite.Equal(castmember.TypeActor, existing.Type())
}

func (suite *CastMemberUseCaseTestSuite) TestUpdate_NotFound() {
	suite.gateway.On("FindByID", suite.ctx, castmember.ID("123")).Return(nil, nil)

	_, err := app.NewUpdateCastMemberUseCase(suite.gateway, logger.NewNoop()).
		Execute(suite.ctx, app.UpdateCastMemberCommand{ID: "123", Name: testutil.Ptr("Vin Diesel"), Type: "ACTOR"})

	suite.True(apperrors.IsNotFound(err))
	suite.Equal("CastMember with ID 123 was not found", apperrors.Message(err))
}

func (suite *CastMemberUseCaseTestSuite) TestGetAndDelete() {
	existing := testutil.CreateTestCastMember("Vin Diesel")
	suite.gateway.On("FindByID", suite.ctx, existing.ID()).Return(existing, nil)
	suite.gateway.On("DeleteByID", suite.ctx, existing.ID()).Return(nil)

	out, err := app.NewGetCastMemberByIDUseCase(suite.gateway).Execute(suite.ctx, existing.ID())
	suite.Require().NoError(err)
	suite.Equal("Vin Diesel", out.Name)
	suite.Equal(castmember.TypeActor, out.Type)

	suite.NoError(app.NewDeleteCastMemberUseCase(suite.gateway, logger.NewNoop()).Execute(suite.ctx, existing.ID()))
}

func TestCastMemberUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(CastMemberUseCaseTestSuite))
}
