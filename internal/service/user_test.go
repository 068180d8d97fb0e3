package service_test

import (
	"testing"

	"file-portal-backend/internal/database/models"
	apperrors "file-portal-backend/internal/errors"
	"file-portal-backend/internal/mocks"
	"file-portal-backend/internal/service"
	"file-portal-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockUserRepositoryInterface
	userService *service.UserService
	users       *testutils.UserFactory
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.users = testutils.NewUserFactory()
	suite.userService = service.NewUserService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) rootActor() service.Actor {
	return service.Actor{
		UserID:       uuid.New(),
		Email:        "root@portal.com",
		Role:         models.RoleRootAdmin,
		Organization: "portal",
	}
}

func (suite *UserServiceTestSuite) tenantAdminActor(organization string) service.Actor {
	return service.Actor{
		UserID:       uuid.New(),
		Email:        "admin@" + organization + ".com",
		Role:         models.RoleTenantAdmin,
		Organization: organization,
	}
}

func (suite *UserServiceTestSuite) addUserRequest(role, organization string) *service.AddUserRequest {
	return &service.AddUserRequest{
		FirstName:    "John",
		LastName:     "Smith",
		Email:        "john.smith@example.com",
		Password:     "password123",
		Role:         role,
		Organization: organization,
	}
}

func (suite *UserServiceTestSuite) TestAddUserAsRootAdmin() {
	req := suite.addUserRequest("TENANT_ADMIN", "acme")

	suite.mockRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			assert.Equal(suite.T(), "John Smith", user.Name)
			assert.Equal(suite.T(), models.RoleTenantAdmin, user.Role)
			return nil
		}).
		Times(1)

	response, err := suite.userService.AddUser(suite.rootActor(), req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "John Smith", response.Name)
	assert.ElementsMatch(suite.T(), []string{models.FolderTemplates, models.FolderAnnualReports}, response.UploadFolders)
}

func (suite *UserServiceTestSuite) TestAddUserTenantAdminInOwnOrg() {
	req := suite.addUserRequest("USER", "acme")

	suite.mockRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	_, err := suite.userService.AddUser(suite.tenantAdminActor("acme"), req)

	assert.NoError(suite.T(), err)
}

func (suite *UserServiceTestSuite) TestAddUserTenantAdminCannotCreateRootAdmin() {
	req := suite.addUserRequest("ROOT_ADMIN", "acme")

	_, err := suite.userService.AddUser(suite.tenantAdminActor("acme"), req)

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *UserServiceTestSuite) TestAddUserTenantAdminCannotCrossOrganizations() {
	req := suite.addUserRequest("USER", "other-org")

	_, err := suite.userService.AddUser(suite.tenantAdminActor("acme"), req)

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *UserServiceTestSuite) TestAddUserMemberRolesForbidden() {
	req := suite.addUserRequest("USER", "acme")
	actor := service.Actor{UserID: uuid.New(), Role: models.RoleUser, Organization: "acme"}

	_, err := suite.userService.AddUser(actor, req)

	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

func (suite *UserServiceTestSuite) TestAddUserDuplicateEmailIsValidationError() {
	req := suite.addUserRequest("USER", "acme")

	suite.mockRepo.EXPECT().
		GetByEmail(req.Email).
		Return(suite.users.WithEmail(req.Email), nil).
		Times(1)

	_, err := suite.userService.AddUser(suite.rootActor(), req)

	// Unlike self-signup, admin creation treats the duplicate as recoverable
	// input, not a conflict
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestListUsersAsRootExcludesActor() {
	actor := suite.rootActor()
	self := suite.users.Create()
	self.ID = actor.UserID
	other := suite.users.Create()

	suite.mockRepo.EXPECT().
		ListNonRoot(50, 0).
		Return([]models.User{*self, *other}, int64(2), nil).
		Times(1)

	response, err := suite.userService.ListUsers(actor, 0, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Users, 1)
	assert.Equal(suite.T(), other.ID, response.Users[0].ID)
}

func (suite *UserServiceTestSuite) TestListUsersAsTenantAdminScopesByOrganization() {
	actor := suite.tenantAdminActor("acme")
	member := suite.users.WithOrganization("acme")

	suite.mockRepo.EXPECT().
		ListByOrganization("acme", 50, 0).
		Return([]models.User{*member}, int64(1), nil).
		Times(1)

	response, err := suite.userService.ListUsers(actor, 0, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Users, 1)
}

func (suite *UserServiceTestSuite) TestListUsersForbiddenForMembers() {
	actor := service.Actor{UserID: uuid.New(), Role: models.RoleUser, Organization: "acme"}

	_, err := suite.userService.ListUsers(actor, 0, 0)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestListOnlyUsers() {
	actor := suite.tenantAdminActor("acme")

	suite.mockRepo.EXPECT().
		ListByRole(models.RoleUser, "acme", 50, 0).
		Return([]models.User{*suite.users.Create()}, int64(1), nil).
		Times(1)

	response, err := suite.userService.ListOnlyUsers(actor, 0, 0)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Users, 1)
}

func (suite *UserServiceTestSuite) TestListTenantsRootOnly() {
	suite.mockRepo.EXPECT().
		ListTenants(50, 0).
		Return([]models.User{*suite.users.WithRole(models.RoleTenantAdmin)}, int64(1), nil).
		Times(1)

	response, err := suite.userService.ListTenants(suite.rootActor(), 0, 0)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Users, 1)

	_, err = suite.userService.ListTenants(suite.tenantAdminActor("acme"), 0, 0)
	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestDeleteUser() {
	target := suite.users.WithOrganization("acme")

	suite.mockRepo.EXPECT().
		GetByID(target.ID).
		Return(target, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		SetDeleted(target.ID).
		Return(nil).
		Times(1)

	response, err := suite.userService.DeleteUser(suite.tenantAdminActor("acme"), target.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), response.IsDeleted)
}

func (suite *UserServiceTestSuite) TestDeleteUserOrganizationMismatch() {
	target := suite.users.WithOrganization("other-org")

	suite.mockRepo.EXPECT().
		GetByID(target.ID).
		Return(target, nil).
		Times(1)

	_, err := suite.userService.DeleteUser(suite.tenantAdminActor("acme"), target.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationMismatch)
}

func (suite *UserServiceTestSuite) TestDeleteUserNotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	_, err := suite.userService.DeleteUser(suite.rootActor(), id)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestResetPassword() {
	target := suite.users.WithOrganization("acme")

	suite.mockRepo.EXPECT().
		GetByID(target.ID).
		Return(target, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		UpdatePassword(target.ID, gomock.Not("new-password-123")).
		Return(nil).
		Times(1)

	err := suite.userService.ResetPassword(suite.tenantAdminActor("acme"), target.ID, "new-password-123")

	assert.NoError(suite.T(), err)
}

func (suite *UserServiceTestSuite) TestResetPasswordTooShort() {
	err := suite.userService.ResetPassword(suite.rootActor(), uuid.New(), "short")

	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestManageRole() {
	target := suite.users.WithOrganization("acme")

	suite.mockRepo.EXPECT().
		GetByID(target.ID).
		Return(target, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		UpdateRole(target.ID, models.RoleTenantAdmin).
		Return(nil).
		Times(1)

	response, err := suite.userService.ManageRole(suite.tenantAdminActor("acme"), target.ID, models.RoleTenantAdmin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RoleTenantAdmin, response.Role)
}

func (suite *UserServiceTestSuite) TestManageRoleOutsideAuthority() {
	_, err := suite.userService.ManageRole(suite.tenantAdminActor("acme"), uuid.New(), models.RoleRootAdmin)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleNotAssignable)
}

func (suite *UserServiceTestSuite) TestDisableAndEnableUser() {
	target := suite.users.WithOrganization("acme")
	actor := suite.tenantAdminActor("acme")

	suite.mockRepo.EXPECT().GetByID(target.ID).Return(target, nil).Times(2)
	suite.mockRepo.EXPECT().SetDisabled(target.ID, true).Return(nil).Times(1)
	suite.mockRepo.EXPECT().SetDisabled(target.ID, false).Return(nil).Times(1)

	disabled, err := suite.userService.DisableUser(actor, target.ID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), disabled.IsDisabled)

	enabled, err := suite.userService.EnableUser(actor, target.ID)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), enabled.IsDisabled)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
