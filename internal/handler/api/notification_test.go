//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gig-negotiation/internal/handler/api"
	"gig-negotiation/internal/pkg/jwt"
	"gig-negotiation/internal/usecase/commands"
	"gig-negotiation/internal/usecase/queries"
	commandsmock "gig-negotiation/tests/mock/commands"
	queriesmock "gig-negotiation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNotificationCommands
	mockQueries  *queriesmock.MockNotificationQueries
	handler      *api.NotificationHandler
	userID       uuid.UUID
}

func (s *NotificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNotificationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNotificationQueries(s.mockCtrl)
	s.handler = api.NewNotificationHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", jwt.RoleMember)
		c.Next()
	}

	s.router.GET("/notifications", authMiddleware, s.handler.List)
	s.router.POST("/notifications/:id/read", authMiddleware, s.handler.MarkRead)
	s.router.POST("/notifications/read-all", authMiddleware, s.handler.MarkAllRead)
}

func (s *NotificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNotificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}

func (s *NotificationHandlerTestSuite) do(method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *NotificationHandlerTestSuite) TestList() {
	s.Run("returns feed with unread count", func() {
		s.mockQueries.EXPECT().
			ListForUser(gomock.Any(), s.userID, 0).
			Return(&queries.NotificationFeed{
				Notifications: []*queries.NotificationView{
					{ID: uuid.New(), RequestID: uuid.New(), Kind: "offer_received", CreatedAt: time.Now()},
				},
				Unread: 1,
			}, nil)

		rec := s.do(http.MethodGet, "/notifications")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "offer_received")
		s.Contains(rec.Body.String(), `"unread":1`)
	})

	s.Run("unauthenticated", func() {
		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *NotificationHandlerTestSuite) TestMarkRead() {
	id := uuid.New()

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			MarkRead(gomock.Any(), s.userID, id).
			Return(nil)

		rec := s.do(http.MethodPost, "/notifications/"+id.String()+"/read")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().
			MarkRead(gomock.Any(), s.userID, id).
			Return(commands.ErrNotificationNotFound)

		rec := s.do(http.MethodPost, "/notifications/"+id.String()+"/read")
		s.Equal(http.StatusNotFound, rec.Code)
		s.Contains(rec.Body.String(), `"message":"Notification not found"`)
	})

	s.Run("invalid id", func() {
		rec := s.do(http.MethodPost, "/notifications/nope/read")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *NotificationHandlerTestSuite) TestMarkAllRead() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().
			MarkAllRead(gomock.Any(), s.userID).
			Return(int64(3), nil)

		rec := s.do(http.MethodPost, "/notifications/read-all")
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"updated":3`)
	})
}
