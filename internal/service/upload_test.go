package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"file-portal-backend/internal/database/models"
	apperrors "file-portal-backend/internal/errors"
	"file-portal-backend/internal/mocks"
	"file-portal-backend/internal/service"
	"file-portal-backend/internal/storage"
	"file-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const testPartSize = 5 * 1024 * 1024

// UploadServiceTestSuite defines the test suite for UploadService
type UploadServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockFileRepo    *mocks.MockFileUploadRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockRelatedRepo *mocks.MockRelatedFileRepositoryInterface
	store           *testutils.FakeObjectStore
	uploadService   *service.UploadService
	users           *testutils.UserFactory
	files           *testutils.FileUploadFactory
	related         *testutils.RelatedFileFactory
}

// SetupTest sets up the test suite
func (suite *UploadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFileRepo = mocks.NewMockFileUploadRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRelatedRepo = mocks.NewMockRelatedFileRepositoryInterface(suite.ctrl)
	suite.store = testutils.NewFakeObjectStore()
	suite.users = testutils.NewUserFactory()
	suite.files = testutils.NewFileUploadFactory()
	suite.related = testutils.NewRelatedFileFactory()

	suite.uploadService = service.NewUploadService(
		suite.mockFileRepo,
		suite.mockUserRepo,
		suite.mockRelatedRepo,
		suite.store,
		time.Hour,
	)
}

// TearDownTest cleans up after each test
func (suite *UploadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func actorFor(user *models.User) service.Actor {
	return service.Actor{
		UserID:       user.ID,
		Email:        user.Email,
		Role:         user.Role,
		Organization: user.Organization,
	}
}

// patternedData builds a non-repeating buffer so any part misordering or
// truncation during reassembly changes the content.
func patternedData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}
	return data
}

func (suite *UploadServiceTestSuite) expectNoDuplicate(organization, folder, name string) {
	suite.mockFileRepo.EXPECT().
		GetByNameInFolder(organization, folder, name).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
}

func (suite *UploadServiceTestSuite) TestUploadFileSmall() {
	user := suite.users.Create()
	data := []byte("quarterly numbers")

	suite.expectNoDuplicate(user.Organization, models.FolderAnnualReports, "report.pdf")
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)

	var saved *models.FileUpload
	suite.mockFileRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(file *models.FileUpload) error {
			saved = file
			return nil
		}).
		Times(1)

	response, err := suite.uploadService.UploadFile(context.Background(), actorFor(user), &service.UploadFileRequest{
		FileName:    "report.pdf",
		ContentType: "application/pdf",
		Data:        data,
		FolderName:  models.FolderAnnualReports,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(len(data)), response.FileSize)
	assert.NotEmpty(suite.T(), response.FilePath)

	// The stored object is byte-identical to the input
	stored, ok := suite.store.Object(saved.StorageKey)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), data, stored)
	assert.Zero(suite.T(), suite.store.OpenSessions())
}

func (suite *UploadServiceTestSuite) TestUploadFileMultiPartReassembly() {
	user := suite.users.Create()
	// Two full parts plus a short tail; exercises the part split boundary
	data := patternedData(2*testPartSize + 1337)

	suite.expectNoDuplicate(user.Organization, models.FolderAnnualReports, "big.bin")
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)

	var saved *models.FileUpload
	suite.mockFileRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(file *models.FileUpload) error {
			saved = file
			return nil
		}).
		Times(1)

	response, err := suite.uploadService.UploadFile(context.Background(), actorFor(user), &service.UploadFileRequest{
		FileName:    "big.bin",
		ContentType: "application/octet-stream",
		Data:        data,
		FolderName:  models.FolderAnnualReports,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(len(data)), response.FileSize)

	stored, ok := suite.store.Object(saved.StorageKey)
	assert.True(suite.T(), ok)
	assert.True(suite.T(), bytes.Equal(data, stored), "reassembled object differs from input")
}

func (suite *UploadServiceTestSuite) TestUploadDuplicateRejectedBeforeTransfer() {
	user := suite.users.Create()
	existing := suite.files.Create(user.ID)

	suite.mockFileRepo.EXPECT().
		GetByNameInFolder(user.Organization, existing.FolderName, existing.FileName).
		Return(existing, nil).
		Times(1)

	_, err := suite.uploadService.UploadFile(context.Background(), actorFor(user), &service.UploadFileRequest{
		FileName:   existing.FileName,
		Data:       []byte("second copy"),
		FolderName: existing.FolderName,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrFileExists)
	// Nothing was transferred: no object, no dangling session
	assert.Empty(suite.T(), suite.store.Keys())
	assert.Zero(suite.T(), suite.store.OpenSessions())
}

func (suite *UploadServiceTestSuite) TestUploadAbortsOnPartFailure() {
	user := suite.users.Create()
	mockStore := mocks.NewMockObjectStore(suite.ctrl)
	svc := service.NewUploadService(suite.mockFileRepo, suite.mockUserRepo, suite.mockRelatedRepo, mockStore, time.Hour)

	suite.expectNoDuplicate(user.Organization, "Reports", "fail.bin")
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)

	key := storage.UploadKey(user.Organization, "Reports", "fail.bin")
	mockStore.EXPECT().
		InitiateMultipart(gomock.Any(), key, gomock.Any()).
		Return("upload-1", nil).
		Times(1)
	mockStore.EXPECT().
		UploadPart(gomock.Any(), key, "upload-1", 1, gomock.Any()).
		Return(storage.Part{}, errors.New("connection reset")).
		Times(1)
	mockStore.EXPECT().
		AbortMultipart(gomock.Any(), key, "upload-1").
		Return(nil).
		Times(1)

	_, err := svc.UploadFile(context.Background(), actorFor(user), &service.UploadFileRequest{
		FileName:   "fail.bin",
		Data:       []byte("doomed"),
		FolderName: "Reports",
	})

	assert.Error(suite.T(), err)
	assert.ErrorContains(suite.T(), err, "upload part 1")
}

func (suite *UploadServiceTestSuite) TestUploadNewFolderJoinsUserFolderSet() {
	user := suite.users.Create()

	suite.expectNoDuplicate(user.Organization, "Contracts", "nda.pdf")
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
	suite.mockFileRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	suite.mockUserRepo.EXPECT().
		UpdateUploadFolders(user.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, folders models.StringList) error {
			assert.Contains(suite.T(), []string(folders), "Contracts")
			return nil
		}).
		Times(1)

	_, err := suite.uploadService.UploadFile(context.Background(), actorFor(user), &service.UploadFileRequest{
		FileName:   "nda.pdf",
		Data:       []byte("terms"),
		FolderName: "Contracts",
	})

	assert.NoError(suite.T(), err)
}

func (suite *UploadServiceTestSuite) TestUploadKnownFolderLeavesUserUntouched() {
	user := suite.users.Create()

	suite.expectNoDuplicate(user.Organization, models.FolderTemplates, "form.docx")
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)
	suite.mockFileRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	// No UpdateUploadFolders expectation: uploading into a default folder
	// must not rewrite the user row

	_, err := suite.uploadService.UploadFile(context.Background(), actorFor(user), &service.UploadFileRequest{
		FileName:   "form.docx",
		Data:       []byte("template body"),
		FolderName: models.FolderTemplates,
	})

	assert.NoError(suite.T(), err)
}

func (suite *UploadServiceTestSuite) TestUploadRequiresFolderAndContent() {
	user := suite.users.Create()

	_, err := suite.uploadService.UploadFile(context.Background(), actorFor(user), &service.UploadFileRequest{
		FileName: "a.txt",
		Data:     []byte("x"),
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrFolderMissing)

	_, err = suite.uploadService.UploadFile(context.Background(), actorFor(user), &service.UploadFileRequest{
		FileName:   "a.txt",
		FolderName: "Reports",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmptyFile)
}

func (suite *UploadServiceTestSuite) TestFreshURLOwnConfidentialFile() {
	user := suite.users.Create()
	file := suite.files.Confidential(user.ID)

	suite.mockFileRepo.EXPECT().GetByID(file.ID).Return(file, nil).Times(1)

	url, err := suite.uploadService.FreshURL(context.Background(), actorFor(user), file.ID)

	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), url, file.StorageKey)
}

func (suite *UploadServiceTestSuite) TestFreshURLConfidentialHiddenFromOthers() {
	owner := suite.users.Create()
	viewer := suite.users.Create()
	file := suite.files.Confidential(owner.ID)

	suite.mockFileRepo.EXPECT().GetByID(file.ID).Return(file, nil).Times(1)

	_, err := suite.uploadService.FreshURL(context.Background(), actorFor(viewer), file.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFileNotVisible)
}

func (suite *UploadServiceTestSuite) TestFreshURLCrossOrganization() {
	owner := suite.users.WithOrganization("acme")
	outsider := suite.users.WithOrganization("other-org")
	file := suite.files.Create(owner.ID)

	suite.mockFileRepo.EXPECT().GetByID(file.ID).Return(file, nil).Times(1)

	_, err := suite.uploadService.FreshURL(context.Background(), actorFor(outsider), file.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrFileNotVisible)
}

func (suite *UploadServiceTestSuite) TestListFiles() {
	user := suite.users.Create()
	visible := suite.files.Create(user.ID)

	suite.mockFileRepo.EXPECT().
		ListVisible(user.Organization, user.ID, 50, 0).
		Return([]models.FileUpload{*visible}, int64(1), nil).
		Times(1)

	response, err := suite.uploadService.ListFiles(actorFor(user), 0, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Files, 1)
	assert.Equal(suite.T(), visible.FileName, response.Files[0].FileName)
}

func (suite *UploadServiceTestSuite) TestListMyFiles() {
	user := suite.users.Create()

	suite.mockFileRepo.EXPECT().
		ListByUploader(user.ID, 50, 0).
		Return([]models.FileUpload{*suite.files.Confidential(user.ID)}, int64(1), nil).
		Times(1)

	response, err := suite.uploadService.ListMyFiles(actorFor(user), 0, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Files, 1)
	assert.True(suite.T(), response.Files[0].Confidential)
}

func (suite *UploadServiceTestSuite) TestCreateFolderIdempotent() {
	user := suite.users.Create()

	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(2)
	suite.mockUserRepo.EXPECT().
		UpdateUploadFolders(user.ID, gomock.Any()).
		Return(nil).
		Times(1)

	folders, err := suite.uploadService.CreateFolder(actorFor(user), "Contracts")
	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), []string(folders), "Contracts")

	// Second create of an existing folder changes nothing
	folders, err = suite.uploadService.CreateFolder(actorFor(user), models.FolderTemplates)
	assert.NoError(suite.T(), err)
	assert.Contains(suite.T(), []string(folders), models.FolderTemplates)
}

func (suite *UploadServiceTestSuite) TestAddRelatedFile() {
	user := suite.users.Create()
	primary := suite.files.Create(user.ID)
	data := []byte("appendix body")

	suite.mockFileRepo.EXPECT().GetByID(primary.ID).Return(primary, nil).Times(1)

	var saved *models.RelatedFile
	suite.mockRelatedRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(related *models.RelatedFile) error {
			saved = related
			return nil
		}).
		Times(1)

	response, err := suite.uploadService.AddRelatedFile(context.Background(), actorFor(user), primary.ID, "appendix.pdf", data, "application/pdf")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), primary.ID, response.PrimaryFileID)

	stored, ok := suite.store.Object(saved.StorageKey)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), data, stored)
}

func (suite *UploadServiceTestSuite) TestDeleteRelatedFileRemovesObjectFirst() {
	user := suite.users.Create()
	primary := suite.files.Create(user.ID)
	attachment := suite.related.Create(primary.ID)
	suite.store.Seed(attachment.StorageKey, []byte("appendix body"))

	suite.mockRelatedRepo.EXPECT().GetByID(attachment.ID).Return(attachment, nil).Times(1)
	suite.mockFileRepo.EXPECT().GetByID(primary.ID).Return(primary, nil).Times(1)
	suite.mockRelatedRepo.EXPECT().Delete(attachment.ID).Return(nil).Times(1)

	err := suite.uploadService.DeleteRelatedFile(context.Background(), actorFor(user), attachment.ID)

	assert.NoError(suite.T(), err)
	_, ok := suite.store.Object(attachment.StorageKey)
	assert.False(suite.T(), ok)
}

// TestUploadServiceTestSuite runs the test suite
func TestUploadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UploadServiceTestSuite))
}
