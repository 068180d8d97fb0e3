package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"file-portal-backend/internal/api/handlers"
	"file-portal-backend/internal/mocks"
	"file-portal-backend/internal/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// HealthHandlerTestSuite defines the test suite for HealthHandler
type HealthHandlerTestSuite struct {
	suite.Suite
	*testutils.HTTPTestSuite
	db      *gorm.DB
	sqlMock sqlmock.Sqlmock
	ctrl    *gomock.Controller
}

// SetupTest sets up the test suite
func (suite *HealthHandlerTestSuite) SetupTest() {
	suite.HTTPTestSuite = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())

	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(suite.T(), err)
	suite.sqlMock = mock

	suite.db, err = gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true, DisableAutomaticPing: true})
	require.NoError(suite.T(), err)
}

// TearDownTest cleans up after each test
func (suite *HealthHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HealthHandlerTestSuite) TestHealth() {
	suite.T().Run("Healthy", func(t *testing.T) {
		store := testutils.NewFakeObjectStore()
		handler := handlers.NewHealthHandler(suite.db, store)
		suite.Router.GET("/health", handler.Health)

		suite.sqlMock.ExpectPing()

		recorder := suite.MakeRequest(http.MethodGet, "/health", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "healthy", response.Services["database"])
		assert.Equal(t, "healthy", response.Services["storage"])
	})

	suite.T().Run("Storage Unreachable", func(t *testing.T) {
		store := mocks.NewMockObjectStore(suite.ctrl)
		store.EXPECT().
			ListKeys(gomock.Any(), "health-probe/").
			Return(nil, errors.New("connection refused")).
			Times(1)

		handler := handlers.NewHealthHandler(suite.db, store)
		suite.Router.GET("/health-storage-down", handler.Health)

		suite.sqlMock.ExpectPing()

		recorder := suite.MakeRequest(http.MethodGet, "/health-storage-down", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Services["storage"], "connection refused")
	})

	suite.T().Run("Database Down", func(t *testing.T) {
		store := testutils.NewFakeObjectStore()
		handler := handlers.NewHealthHandler(suite.db, store)
		suite.Router.GET("/health-db-down", handler.Health)

		suite.sqlMock.ExpectPing().WillReturnError(errors.New("connection reset"))

		recorder := suite.MakeRequest(http.MethodGet, "/health-db-down", nil)

		var response handlers.HealthResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusServiceUnavailable, &response)
		assert.Equal(t, "unhealthy", response.Status)
		assert.Contains(t, response.Services["database"], "connection reset")
	})
}

func (suite *HealthHandlerTestSuite) TestReady() {
	handler := handlers.NewHealthHandler(suite.db, nil)
	suite.Router.GET("/health/ready", handler.Ready)

	suite.sqlMock.ExpectPing()

	recorder := suite.MakeRequest(http.MethodGet, "/health/ready", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"ready":true`)
}

func (suite *HealthHandlerTestSuite) TestLive() {
	handler := handlers.NewHealthHandler(suite.db, nil)
	suite.Router.GET("/health/live", handler.Live)

	recorder := suite.MakeRequest(http.MethodGet, "/health/live", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), `"alive":true`)
}

// TestHealthHandlerTestSuite runs the test suite
func TestHealthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HealthHandlerTestSuite))
}
