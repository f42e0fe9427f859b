package studentrepo_test

import (
	"context"
	"testing"
	"time"

	"canteen/internal/adapters/out/postgres/studentrepo"
	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/student"
	"canteen/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// StudentRepositoryIntegrationTestSuite verifies student persistence,
// in particular the unique registration ID guarantee the placement flow
// depends on.
type StudentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *studentrepo.GormStudentRepository
	tracker    *MockAggregateTracker
}

func (suite *StudentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&studentrepo.StudentDTO{}))
}

func (suite *StudentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE students").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = studentrepo.NewGormStudentRepository(suite.db, suite.tracker)
}

func (suite *StudentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *StudentRepositoryIntegrationTestSuite) TestAdd_ValidStudent_Success() {
	ctx := context.Background()
	testStudent, err := student.NewStudent(kernel.NewUUID(), "Asel Nurlanovna", "ST-2023-001")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testStudent.ID(), testStudent).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testStudent))

	var count int64
	suite.Require().NoError(suite.db.Model(&studentrepo.StudentDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *StudentRepositoryIntegrationTestSuite) TestAdd_DuplicateRegistrationID_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	first, err := student.NewStudent(kernel.NewUUID(), "Asel Nurlanovna", "ST-2023-001")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Same registration ID, different aggregate identity.
	second, err := student.NewStudent(kernel.NewUUID(), "Asel N.", "ST-2023-001")
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *StudentRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testStudent, err := student.NewStudent(kernel.NewUUID(), "Daniyar Bekov", "ST-2023-042")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, testStudent))

	loaded, err := suite.repository.Get(ctx, testStudent.ID())

	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testStudent.ID()))
	suite.Equal("Daniyar Bekov", loaded.Name())
	suite.Equal("ST-2023-042", loaded.RegistrationID())
}

func (suite *StudentRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StudentRepositoryIntegrationTestSuite) TestGetByRegistrationID_FindsStudent() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	testStudent, err := student.NewStudent(kernel.NewUUID(), "Daniyar Bekov", "ST-2023-042")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, testStudent))

	loaded, err := suite.repository.GetByRegistrationID(ctx, "ST-2023-042")

	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(testStudent.ID()))
}

func (suite *StudentRepositoryIntegrationTestSuite) TestGetByRegistrationID_Unknown_ReturnsNotFound() {
	_, err := suite.repository.GetByRegistrationID(context.Background(), "ST-0000-000")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *StudentRepositoryIntegrationTestSuite) TestGetByRegistrationID_Empty_ReturnsRequiredError() {
	_, err := suite.repository.GetByRegistrationID(context.Background(), "")

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

func TestStudentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(StudentRepositoryIntegrationTestSuite))
}
