package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"file-portal-backend/internal/api/handlers"
	"file-portal-backend/internal/database/models"
	"file-portal-backend/internal/mocks"
	"file-portal-backend/internal/service"
	"file-portal-backend/internal/storage"
	"file-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// FileHandlerTestSuite defines the test suite for FileHandler
type FileHandlerTestSuite struct {
	suite.Suite
	*testutils.HTTPTestSuite
	ctrl            *gomock.Controller
	mockFileRepo    *mocks.MockFileUploadRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockRelatedRepo *mocks.MockRelatedFileRepositoryInterface
	store           *testutils.FakeObjectStore
	users           *testutils.UserFactory
	files           *testutils.FileUploadFactory
	relatedFiles    *testutils.RelatedFileFactory
	currentUser     *models.User
}

// SetupTest sets up the test suite
func (suite *FileHandlerTestSuite) SetupTest() {
	suite.HTTPTestSuite = testutils.SetupHTTPTest()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFileRepo = mocks.NewMockFileUploadRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRelatedRepo = mocks.NewMockRelatedFileRepositoryInterface(suite.ctrl)
	suite.store = testutils.NewFakeObjectStore()
	suite.users = testutils.NewUserFactory()
	suite.files = testutils.NewFileUploadFactory()
	suite.relatedFiles = testutils.NewRelatedFileFactory()
	suite.currentUser = suite.users.Create()

	uploadService := service.NewUploadService(suite.mockFileRepo, suite.mockUserRepo, suite.mockRelatedRepo, suite.store, 0)
	handler := handlers.NewFileHandler(uploadService)

	suite.Router.Use(func(c *gin.Context) {
		if suite.currentUser != nil {
			testutils.SetAuthenticatedUser(c, suite.currentUser)
		}
	})
	suite.Router.POST("/files/upload", handler.UploadFile)
	suite.Router.GET("/files", handler.ListFiles)
	suite.Router.GET("/files/mine", handler.ListMyFiles)
	suite.Router.GET("/files/:fileId/url", handler.GetFileURL)
	suite.Router.GET("/files/:fileId/download", handler.DownloadFile)
	suite.Router.GET("/folders", handler.ListFolders)
	suite.Router.POST("/folders", handler.CreateFolder)
	suite.Router.POST("/files/:fileId/related", handler.AddRelatedFile)
	suite.Router.GET("/files/:fileId/related", handler.ListRelatedFiles)
	suite.Router.DELETE("/files/:fileId/related/:relatedId", handler.DeleteRelatedFile)
}

// TearDownTest cleans up after each test
func (suite *FileHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FileHandlerTestSuite) TestUploadFile() {
	suite.T().Run("Success", func(t *testing.T) {
		user := suite.currentUser
		content := []byte("%PDF-1.7 test document")

		suite.mockFileRepo.EXPECT().
			GetByNameInFolder(user.Organization, models.FolderAnnualReports, "report.pdf").
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)
		suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
		suite.mockFileRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

		recorder := suite.MakeMultipartRequest(http.MethodPost, "/files/upload", "report.pdf", content, map[string]string{
			"folder_name": models.FolderAnnualReports,
			"comment":     "quarterly numbers",
		}, nil)

		var response service.FileResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "report.pdf", response.FileName)
		assert.Equal(t, int64(len(content)), response.FileSize)

		stored, ok := suite.store.Object(storage.UploadKey(user.Organization, models.FolderAnnualReports, "report.pdf"))
		assert.True(t, ok)
		assert.Equal(t, content, stored)
	})

	suite.T().Run("Missing File Part", func(t *testing.T) {
		recorder := suite.MakeRequest(http.MethodPost, "/files/upload", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "File is required")
	})

	suite.T().Run("Missing Folder", func(t *testing.T) {
		recorder := suite.MakeMultipartRequest(http.MethodPost, "/files/upload", "orphan.pdf", []byte("data"), nil, nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "")
	})

	suite.T().Run("Duplicate Name In Folder", func(t *testing.T) {
		user := suite.currentUser
		existing := suite.files.Create(user.ID)

		suite.mockFileRepo.EXPECT().
			GetByNameInFolder(user.Organization, models.FolderAnnualReports, "dup.pdf").
			Return(existing, nil).
			Times(1)

		recorder := suite.MakeMultipartRequest(http.MethodPost, "/files/upload", "dup.pdf", []byte("data"), map[string]string{
			"folder_name": models.FolderAnnualReports,
		}, nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "")
		assert.Empty(t, suite.store.Keys())
	})
}

func (suite *FileHandlerTestSuite) TestListFiles() {
	user := suite.currentUser
	listed := []models.FileUpload{*suite.files.Create(user.ID), *suite.files.Create(user.ID)}

	suite.mockFileRepo.EXPECT().
		ListVisible(user.Organization, user.ID, 50, 0).
		Return(listed, int64(2), nil).
		Times(1)

	recorder := suite.MakeRequest(http.MethodGet, "/files", nil)

	var response service.FilesListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Files, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

func (suite *FileHandlerTestSuite) TestListMyFiles() {
	user := suite.currentUser
	mine := []models.FileUpload{*suite.files.Confidential(user.ID)}

	suite.mockFileRepo.EXPECT().
		ListByUploader(user.ID, 50, 0).
		Return(mine, int64(1), nil).
		Times(1)

	recorder := suite.MakeRequest(http.MethodGet, "/files/mine", nil)

	var response service.FilesListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Files, 1)
	assert.True(suite.T(), response.Files[0].Confidential)
}

func (suite *FileHandlerTestSuite) TestGetFileURL() {
	suite.T().Run("Success", func(t *testing.T) {
		user := suite.currentUser
		file := suite.files.Create(user.ID)
		suite.store.Seed(file.StorageKey, []byte("data"))

		suite.mockFileRepo.EXPECT().GetByID(file.ID).Return(file, nil).Times(1)

		recorder := suite.MakeRequest(http.MethodGet, fmt.Sprintf("/files/%s/url", file.ID), nil)

		var response map[string]string
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Contains(t, response["url"], file.StorageKey)
	})

	suite.T().Run("Invalid UUID", func(t *testing.T) {
		recorder := suite.MakeRequest(http.MethodGet, "/files/not-a-uuid/url", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Invalid file ID")
	})

	suite.T().Run("Confidential File Of Another User", func(t *testing.T) {
		stranger := suite.users.WithOrganization(suite.currentUser.Organization)
		file := suite.files.Confidential(stranger.ID)

		suite.mockFileRepo.EXPECT().GetByID(file.ID).Return(file, nil).Times(1)

		recorder := suite.MakeRequest(http.MethodGet, fmt.Sprintf("/files/%s/url", file.ID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "")
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		file := suite.files.Create(suite.currentUser.ID)
		suite.mockFileRepo.EXPECT().GetByID(file.ID).Return(nil, gorm.ErrRecordNotFound).Times(1)

		recorder := suite.MakeRequest(http.MethodGet, fmt.Sprintf("/files/%s/url", file.ID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "")
	})
}

func (suite *FileHandlerTestSuite) TestDownloadFile() {
	suite.T().Run("Success", func(t *testing.T) {
		user := suite.currentUser
		file := suite.files.Create(user.ID)
		content := []byte("stored file body")
		suite.store.Seed(file.StorageKey, content)

		suite.mockFileRepo.EXPECT().GetByID(file.ID).Return(file, nil).Times(1)

		recorder := suite.MakeRequest(http.MethodGet, fmt.Sprintf("/files/%s/download", file.ID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, content, recorder.Body.Bytes())
		assert.Contains(t, recorder.Header().Get("Content-Disposition"), file.FileName)
	})

	suite.T().Run("Confidential File Of Another User", func(t *testing.T) {
		stranger := suite.users.WithOrganization(suite.currentUser.Organization)
		file := suite.files.Confidential(stranger.ID)

		suite.mockFileRepo.EXPECT().GetByID(file.ID).Return(file, nil).Times(1)

		recorder := suite.MakeRequest(http.MethodGet, fmt.Sprintf("/files/%s/download", file.ID), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "")
	})

	suite.T().Run("Missing Object", func(t *testing.T) {
		file := suite.files.Create(suite.currentUser.ID)

		suite.mockFileRepo.EXPECT().GetByID(file.ID).Return(file, nil).Times(1)

		recorder := suite.MakeRequest(http.MethodGet, fmt.Sprintf("/files/%s/download", file.ID), nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func (suite *FileHandlerTestSuite) TestFolders() {
	suite.T().Run("List", func(t *testing.T) {
		user := suite.currentUser
		suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)

		recorder := suite.MakeRequest(http.MethodGet, "/folders", nil)

		var response map[string][]string
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.ElementsMatch(t, []string{models.FolderTemplates, models.FolderAnnualReports}, response["folders"])
	})

	suite.T().Run("Create", func(t *testing.T) {
		user := suite.currentUser
		suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
		suite.mockUserRepo.EXPECT().
			UpdateUploadFolders(user.ID, gomock.Any()).
			Return(nil).
			Times(1)

		recorder := suite.MakeRequest(http.MethodPost, "/folders", map[string]string{
			"folder_name": "Contracts",
		})

		var response map[string][]string
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Contains(t, response["folders"], "Contracts")
	})

	suite.T().Run("Create Missing Name", func(t *testing.T) {
		recorder := suite.MakeRequest(http.MethodPost, "/folders", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *FileHandlerTestSuite) TestRelatedFiles() {
	suite.T().Run("Add", func(t *testing.T) {
		user := suite.currentUser
		primary := suite.files.Create(user.ID)
		content := []byte("attachment body")

		suite.mockFileRepo.EXPECT().GetByID(primary.ID).Return(primary, nil).Times(1)
		suite.mockRelatedRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

		recorder := suite.MakeMultipartRequest(http.MethodPost, fmt.Sprintf("/files/%s/related", primary.ID), "appendix.pdf", content, nil, nil)

		var response service.RelatedFileResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "appendix.pdf", response.FileName)

		stored, ok := suite.store.Object(storage.RelatedFileKey(user.Organization, primary.ID.String(), "appendix.pdf"))
		assert.True(t, ok)
		assert.Equal(t, content, stored)
	})

	suite.T().Run("List", func(t *testing.T) {
		user := suite.currentUser
		primary := suite.files.Create(user.ID)
		attachments := []models.RelatedFile{*suite.relatedFiles.Create(primary.ID)}

		suite.mockFileRepo.EXPECT().GetByID(primary.ID).Return(primary, nil).Times(1)
		suite.mockRelatedRepo.EXPECT().ListByPrimaryFileID(primary.ID).Return(attachments, nil).Times(1)

		recorder := suite.MakeRequest(http.MethodGet, fmt.Sprintf("/files/%s/related", primary.ID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "related_files")
	})

	suite.T().Run("Delete", func(t *testing.T) {
		user := suite.currentUser
		primary := suite.files.Create(user.ID)
		related := suite.relatedFiles.Create(primary.ID)
		suite.store.Seed(related.StorageKey, []byte("attachment"))

		suite.mockRelatedRepo.EXPECT().GetByID(related.ID).Return(related, nil).Times(1)
		suite.mockFileRepo.EXPECT().GetByID(primary.ID).Return(primary, nil).Times(1)
		suite.mockRelatedRepo.EXPECT().Delete(related.ID).Return(nil).Times(1)

		recorder := suite.MakeRequest(http.MethodDelete, fmt.Sprintf("/files/%s/related/%s", primary.ID, related.ID), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		_, ok := suite.store.Object(related.StorageKey)
		assert.False(t, ok)
	})
}

// TestFileHandlerTestSuite runs the test suite
func TestFileHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FileHandlerTestSuite))
}
