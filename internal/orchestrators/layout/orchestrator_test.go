package layout_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dungeon-api/internal/dungeon"
	dungeonmock "github.com/KirkDiggler/dungeon-api/internal/dungeon/mock"
	"github.com/KirkDiggler/dungeon-api/internal/errors"
	"github.com/KirkDiggler/dungeon-api/internal/orchestrators/layout"
	"github.com/KirkDiggler/dungeon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/dungeon-api/internal/repositories/layouts"
	layoutsmock "github.com/KirkDiggler/dungeon-api/internal/repositories/layouts/mock"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *layoutsmock.MockRepository
	sink     *dungeon.RecordingSink
	service  layout.Service
	ctx      context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = layoutsmock.NewMockRepository(s.ctrl)
	s.sink = &dungeon.RecordingSink{}
	s.ctx = context.Background()

	svc, err := layout.NewOrchestrator(&layout.Config{
		Repository:  s.mockRepo,
		IDGenerator: idgen.NewSequential("lay"),
		Sink:        s.sink,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func validConfig() dungeon.Config {
	return dungeon.Config{
		Width:             40,
		Depth:             40,
		Divisions:         6,
		SizeConstrain:     8,
		AcceptableRatio:   3,
		WallWidth:         1,
		WallHeight:        3,
		DoorWidth:         2,
		SubtractedPercent: 20,
	}
}

func (s *OrchestratorTestSuite) TestGenerateLayout() {
	var saved *layouts.LayoutData
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *layouts.SaveInput) (*layouts.SaveOutput, error) {
			saved = input.Data
			return &layouts.SaveOutput{Success: true}, nil
		})

	out, err := s.service.GenerateLayout(s.ctx, &layout.GenerateLayoutInput{
		Seed:   42,
		Config: validConfig(),
	})

	s.Require().NoError(err)
	s.Require().NotNil(out)
	s.Equal("lay_1", out.LayoutID)
	s.NotNil(out.Layout)
	s.NotEmpty(out.Layout.Rooms)

	// The saved record matches the returned layout.
	s.Require().NotNil(saved)
	s.Equal(out.LayoutID, saved.ID)
	s.Equal(int64(42), saved.Seed)
	s.Same(out.Layout, saved.Layout)

	// The plan was forwarded to the placement sink in full.
	s.Equal(out.Layout.Plan.Tiles, s.sink.Tiles)
	s.Equal(out.Layout.Plan.Floors, s.sink.Floors)
}

func (s *OrchestratorTestSuite) TestGenerateLayout_InvalidConfig() {
	cfg := validConfig()
	cfg.Width = -5

	_, err := s.service.GenerateLayout(s.ctx, &layout.GenerateLayoutInput{
		Seed:   1,
		Config: cfg,
	})

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateLayout_NilInput() {
	_, err := s.service.GenerateLayout(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateLayout_SaveFails() {
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	_, err := s.service.GenerateLayout(s.ctx, &layout.GenerateLayoutInput{
		Seed:   1,
		Config: validConfig(),
	})

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to save layout")
}

func (s *OrchestratorTestSuite) TestGenerateLayout_BakeFailureIsNotFatal() {
	baker := dungeonmock.NewMockNavBaker(s.ctrl)
	svc, err := layout.NewOrchestrator(&layout.Config{
		Repository:  s.mockRepo,
		IDGenerator: idgen.NewSequential("lay"),
		NavBaker:    baker,
	})
	s.Require().NoError(err)

	baker.EXPECT().Bake(s.ctx).Return(errors.Unavailable("baker offline"))
	s.mockRepo.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(&layouts.SaveOutput{Success: true}, nil)

	out, err := svc.GenerateLayout(s.ctx, &layout.GenerateLayoutInput{
		Seed:   1,
		Config: validConfig(),
	})

	s.Require().NoError(err, "a failed bake only warns")
	s.NotNil(out.Layout)
}

func (s *OrchestratorTestSuite) TestGetLayout() {
	s.mockRepo.EXPECT().
		Get(s.ctx, &layouts.GetInput{LayoutID: "lay_7"}).
		Return(&layouts.GetOutput{
			Data: &layouts.LayoutData{ID: "lay_7", Seed: 9, Layout: &dungeon.Layout{Seed: 9}},
		}, nil)

	out, err := s.service.GetLayout(s.ctx, &layout.GetLayoutInput{LayoutID: "lay_7"})

	s.Require().NoError(err)
	s.Equal("lay_7", out.LayoutID)
	s.Equal(int64(9), out.Seed)
	s.NotNil(out.Layout)
}

func (s *OrchestratorTestSuite) TestGetLayout_NotFound() {
	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("layout not found"))

	_, err := s.service.GetLayout(s.ctx, &layout.GetLayoutInput{LayoutID: "missing"})

	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListLayouts() {
	s.mockRepo.EXPECT().
		ListBySeed(s.ctx, &layouts.ListBySeedInput{Seed: 42}).
		Return(&layouts.ListBySeedOutput{LayoutIDs: []string{"lay_1", "lay_2"}}, nil)

	out, err := s.service.ListLayouts(s.ctx, &layout.ListLayoutsInput{Seed: 42})

	s.Require().NoError(err)
	s.Equal([]string{"lay_1", "lay_2"}, out.LayoutIDs)
}

func (s *OrchestratorTestSuite) TestDeleteLayout() {
	s.mockRepo.EXPECT().
		Delete(s.ctx, &layouts.DeleteInput{LayoutID: "lay_1"}).
		Return(&layouts.DeleteOutput{Success: true}, nil)

	out, err := s.service.DeleteLayout(s.ctx, &layout.DeleteLayoutInput{LayoutID: "lay_1"})

	s.Require().NoError(err)
	s.True(out.Success)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDeps() {
	_, err := layout.NewOrchestrator(&layout.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
