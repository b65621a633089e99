package service

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/sgerasimov/bankgen/internal/domain"
	"github.com/sgerasimov/bankgen/internal/metrics"
	"github.com/sgerasimov/bankgen/internal/service/mocks"
	"github.com/sgerasimov/bankgen/pkg/uow"
	uowmocks "github.com/sgerasimov/bankgen/pkg/uow/mocks"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUOW      *uowmocks.MockUOW
	mockUserRepo *mocks.MockUserRepository
	cache        *EntityCache
	collector    *metrics.Collector
	service      *UserService
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockUserRepo = mocks.NewMockUserRepository(s.mockCtrl)
	s.cache = NewEntityCache()
	s.collector = metrics.NewCollector()

	s.mockUOW.EXPECT().
		GetRepository(uow.RepositoryName(domain.UserRepoName)).
		Return(s.mockUserRepo, nil).AnyTimes()

	var err error
	s.service, err = NewUserService(s.mockUOW, s.cache, s.collector, testRand(), 100, testLogger())
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserServiceTestSuite) TestCreateUser() {
	s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args domain.UserCreate) (*domain.User, error) {
			s.NotEmpty(args.FirstName)
			s.NotEmpty(args.LastName)
			s.Contains(args.Email, "@")
			s.LessOrEqual(len(args.Phone), phoneMaxLen)
			return &domain.User{
				ID:        42,
				FirstName: args.FirstName,
				LastName:  args.LastName,
				Email:     args.Email,
				Phone:     args.Phone,
			}, nil
		})

	user, err := s.service.CreateUser(s.T().Context())
	s.Require().NoError(err)
	s.Require().NotNil(user)

	s.Equal(int64(42), user.ID)
	s.Equal(1, s.cache.UserCount())
	s.Equal(uint64(1), s.collector.Snapshot().UsersCreated)
}

func (s *UserServiceTestSuite) TestCreateUser_EmailLowercased() {
	s.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, args domain.UserCreate) (*domain.User, error) {
			s.Equal(strings.ToLower(args.Email), args.Email)
			return &domain.User{ID: 1}, nil
		})

	_, err := s.service.CreateUser(s.T().Context())
	s.Require().NoError(err)
}

func (s *UserServiceTestSuite) TestCreateUser_CapReached() {
	capped, err := NewUserService(s.mockUOW, s.cache, s.collector, testRand(), 0, testLogger())
	s.Require().NoError(err)

	// лимит популяции: без вставки и без ошибки
	user, createErr := capped.CreateUser(s.T().Context())
	s.Require().NoError(createErr)
	s.Nil(user)
	s.Zero(s.collector.Snapshot().UsersCreated)
}
