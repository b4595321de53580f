package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/TraceKeep/custody_ledger_app/internal/apperrors"
	"github.com/TraceKeep/custody_ledger_app/internal/core/domain"
	portssvc "github.com/TraceKeep/custody_ledger_app/internal/core/ports/services"
	"github.com/TraceKeep/custody_ledger_app/internal/dto"
	"github.com/TraceKeep/custody_ledger_app/internal/handlers"
	"github.com/TraceKeep/custody_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockUserSvc  *MockUserService
	mockTokenSvc *MockTokenService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "custody-ledger-test",
		AuthRateLimit:     "100-M",
		IsProduction:      true,
	}

	suite.mockUserSvc = new(MockUserService)
	suite.mockTokenSvc = new(MockTokenService)

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Product: new(MockProductService),
		Journal: new(MockJournalService),
		User:    suite.mockUserSvc,
		Token:   suite.mockTokenSvc,
	})
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: uuid.NewString(), Username: "warehouse_ops", Name: "Warehouse Ops"}
	expiresAt := time.Now().Add(time.Hour).UTC()

	suite.mockUserSvc.On("AuthenticateUser", mock.Anything, "warehouse_ops", "password123").
		Return(user, nil).Once()
	suite.mockTokenSvc.On("GenerateAccessToken", mock.Anything, user).
		Return("signed.jwt.token", expiresAt, nil).Once()

	w := suite.postJSON("/auth/login", dto.LoginRequest{Username: "warehouse_ops", Password: "password123"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed.jwt.token", resp.AccessToken)
	suite.Equal(user.UserID, resp.User.UserID)
	suite.mockUserSvc.AssertExpectations(suite.T())
	suite.mockTokenSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockUserSvc.On("AuthenticateUser", mock.Anything, "warehouse_ops", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postJSON("/auth/login", dto.LoginRequest{Username: "warehouse_ops", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTokenSvc.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterUserRequest{Username: "warehouse_ops", Password: "password123", Name: "Warehouse Ops"}
	user := &domain.User{UserID: uuid.NewString(), Username: req.Username, Name: req.Name}

	suite.mockUserSvc.On("RegisterUser", mock.Anything, req).Return(user, nil).Once()

	w := suite.postJSON("/auth/register", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(user.UserID, resp.UserID)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateUsername() {
	req := dto.RegisterUserRequest{Username: "taken", Password: "password123", Name: "Someone"}

	suite.mockUserSvc.On("RegisterUser", mock.Anything, req).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.postJSON("/auth/register", req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockUserSvc.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPassword() {
	w := suite.postJSON("/auth/register", gin.H{"username": "ops", "password": "short", "name": "Ops"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserSvc.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
