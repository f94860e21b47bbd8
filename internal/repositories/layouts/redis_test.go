package layouts_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dungeon-api/internal/dungeon"
	"github.com/KirkDiggler/dungeon-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dungeon-api/internal/redis"
	"github.com/KirkDiggler/dungeon-api/internal/repositories/layouts"
	"github.com/KirkDiggler/dungeon-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	miniRedis *miniredis.Miniredis
	client    redisclient.Client
	cleanup   func()
	repo      layouts.Repository
	ctx       context.Context
	now       time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.client, s.miniRedis, s.cleanup = testutils.CreateTestRedisClient(s.T())

	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo, err := layouts.NewRedis(&layouts.RedisConfig{
		Client: s.client,
		Clock:  &clock.Fixed{T: s.now},
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testLayout() *dungeon.Layout {
	layout, err := dungeon.Generate(7, dungeon.Config{
		Width:             30,
		Depth:             30,
		Divisions:         4,
		SizeConstrain:     6,
		AcceptableRatio:   3,
		WallWidth:         1,
		WallHeight:        3,
		DoorWidth:         2,
		SubtractedPercent: 0,
	})
	s.Require().NoError(err)
	return layout
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	layout := s.testLayout()

	saveOut, err := s.repo.Save(s.ctx, &layouts.SaveInput{
		Data: &layouts.LayoutData{ID: "lay_001", Seed: 7, Layout: layout},
	})
	s.Require().NoError(err)
	s.True(saveOut.Success)
	s.True(s.miniRedis.Exists("layout:lay_001"))

	getOut, err := s.repo.Get(s.ctx, &layouts.GetInput{LayoutID: "lay_001"})
	s.Require().NoError(err)
	s.Equal("lay_001", getOut.Data.ID)
	s.Equal(int64(7), getOut.Data.Seed)
	s.Equal(s.now, getOut.Data.CreatedAt, "save stamps CreatedAt from the clock")
	s.Equal(len(layout.Rooms), len(getOut.Data.Layout.Rooms))
	s.Equal(layout.Config, getOut.Data.Layout.Config)
}

func (s *RedisRepositoryTestSuite) TestSaveDuplicate() {
	data := &layouts.LayoutData{ID: "lay_dup", Seed: 7, Layout: s.testLayout()}

	_, err := s.repo.Save(s.ctx, &layouts.SaveInput{Data: data})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, &layouts.SaveInput{Data: data})
	s.Require().Error(err)
	s.Contains(err.Error(), "already exists")
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, &layouts.GetInput{LayoutID: "missing"})
	s.Require().Error(err)
	s.Contains(err.Error(), "not found")
}

func (s *RedisRepositoryTestSuite) TestListBySeed() {
	layout := s.testLayout()
	for _, id := range []string{"lay_a", "lay_b"} {
		_, err := s.repo.Save(s.ctx, &layouts.SaveInput{
			Data: &layouts.LayoutData{ID: id, Seed: 7, Layout: layout},
		})
		s.Require().NoError(err)
	}
	_, err := s.repo.Save(s.ctx, &layouts.SaveInput{
		Data: &layouts.LayoutData{ID: "lay_other", Seed: 99, Layout: layout},
	})
	s.Require().NoError(err)

	out, err := s.repo.ListBySeed(s.ctx, &layouts.ListBySeedInput{Seed: 7})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"lay_a", "lay_b"}, out.LayoutIDs)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, &layouts.SaveInput{
		Data: &layouts.LayoutData{ID: "lay_del", Seed: 7, Layout: s.testLayout()},
	})
	s.Require().NoError(err)

	delOut, err := s.repo.Delete(s.ctx, &layouts.DeleteInput{LayoutID: "lay_del"})
	s.Require().NoError(err)
	s.True(delOut.Success)
	s.False(s.miniRedis.Exists("layout:lay_del"))

	listOut, err := s.repo.ListBySeed(s.ctx, &layouts.ListBySeedInput{Seed: 7})
	s.Require().NoError(err)
	s.NotContains(listOut.LayoutIDs, "lay_del", "seed index entry removed")

	_, err = s.repo.Delete(s.ctx, &layouts.DeleteInput{LayoutID: "lay_del"})
	s.Require().Error(err)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
