package service_test

import (
	"testing"
	"time"

	"application-catalog-bff/internal/database/models"
	apperrors "application-catalog-bff/internal/errors"
	"application-catalog-bff/internal/mocks"
	"application-catalog-bff/internal/repository"
	"application-catalog-bff/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnalyticsServiceTestSuite defines the test suite for AnalyticsService
type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockToolAccessRepositoryInterface
	analyticsService *service.AnalyticsService
}

// SetupTest sets up the test suite
func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockToolAccessRepositoryInterface(suite.ctrl)
	suite.analyticsService = service.NewAnalyticsService(suite.mockRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRecordAccess tests event recording
func (suite *AnalyticsServiceTestSuite) TestRecordAccess() {
	suite.Run("Success", func() {
		toolID := uuid.New()
		req := &service.ToolAccessRequest{
			ToolID:    toolID,
			ToolTitle: "Grafana",
			Action:    models.AccessActionOpenTool,
			UserEmail: "user@test.com",
		}

		suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(event *models.ToolAccess) error {
			assert.Equal(suite.T(), toolID, event.ToolID)
			assert.Equal(suite.T(), "Grafana", event.ToolTitle)
			assert.Equal(suite.T(), models.AccessActionOpenTool, event.Action)
			event.ID = uuid.New()
			event.Timestamp = time.Now()
			return nil
		})

		resp, err := suite.analyticsService.RecordAccess(req)
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), "Grafana", resp.ToolTitle)
		assert.NotEmpty(suite.T(), resp.Timestamp)
	})

	suite.Run("Anonymous event without email", func() {
		req := &service.ToolAccessRequest{
			ToolID:    uuid.New(),
			ToolTitle: "Grafana",
			Action:    models.AccessActionViewModal,
		}

		suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

		resp, err := suite.analyticsService.RecordAccess(req)
		assert.NoError(suite.T(), err)
		assert.Empty(suite.T(), resp.UserEmail)
	})
}

// TestRecordAccessValidation tests the validation rules for access events
func (suite *AnalyticsServiceTestSuite) TestRecordAccessValidation() {
	testCases := []struct {
		name    string
		request *service.ToolAccessRequest
		message string
	}{
		{
			name: "Missing tool ID",
			request: &service.ToolAccessRequest{
				ToolTitle: "Grafana",
				Action:    models.AccessActionOpenTool,
			},
			message: "required",
		},
		{
			name: "Missing tool title",
			request: &service.ToolAccessRequest{
				ToolID: uuid.New(),
				Action: models.AccessActionOpenTool,
			},
			message: "required",
		},
		{
			name: "Unknown action",
			request: &service.ToolAccessRequest{
				ToolID:    uuid.New(),
				ToolTitle: "Grafana",
				Action:    "clicked",
			},
			message: "invalid_value",
		},
		{
			name: "Invalid user email",
			request: &service.ToolAccessRequest{
				ToolID:    uuid.New(),
				ToolTitle: "Grafana",
				Action:    models.AccessActionOpenTool,
				UserEmail: "nope",
			},
			message: "invalid_email",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			resp, err := suite.analyticsService.RecordAccess(tc.request)
			assert.Nil(suite.T(), resp)
			assert.True(suite.T(), apperrors.IsValidation(err), "expected validation error, got %v", err)
			assert.Contains(suite.T(), err.Error(), tc.message)
		})
	}
}

// TestSummary tests the aggregate summary
func (suite *AnalyticsServiceTestSuite) TestSummary() {
	suite.Run("Success", func() {
		recent := []models.ToolAccess{
			{
				ID:        uuid.New(),
				ToolID:    uuid.New(),
				ToolTitle: "Grafana",
				Action:    models.AccessActionOpenTool,
				Timestamp: time.Now(),
			},
		}
		topTools := []repository.ToolUsage{
			{ToolTitle: "Grafana", Count: 12},
			{ToolTitle: "Kibana", Count: 5},
		}

		suite.mockRepo.EXPECT().CountAll().Return(int64(17), nil)
		suite.mockRepo.EXPECT().CountByAction(models.AccessActionViewModal).Return(int64(5), nil)
		suite.mockRepo.EXPECT().CountByAction(models.AccessActionOpenTool).Return(int64(12), nil)
		suite.mockRepo.EXPECT().TopTools(10).Return(topTools, nil)
		suite.mockRepo.EXPECT().Recent(20).Return(recent, nil)

		summary, err := suite.analyticsService.Summary()
		assert.NoError(suite.T(), err)
		assert.Equal(suite.T(), int64(17), summary.TotalInteractions)
		assert.Equal(suite.T(), int64(5), summary.TotalViews)
		assert.Equal(suite.T(), int64(12), summary.TotalOpens)
		assert.Len(suite.T(), summary.TopTools, 2)
		assert.Equal(suite.T(), "Grafana", summary.TopTools[0].ToolTitle)
		assert.Len(suite.T(), summary.RecentActivity, 1)
	})

	suite.Run("Empty event table yields empty slices, not nulls", func() {
		suite.mockRepo.EXPECT().CountAll().Return(int64(0), nil)
		suite.mockRepo.EXPECT().CountByAction(models.AccessActionViewModal).Return(int64(0), nil)
		suite.mockRepo.EXPECT().CountByAction(models.AccessActionOpenTool).Return(int64(0), nil)
		suite.mockRepo.EXPECT().TopTools(10).Return(nil, nil)
		suite.mockRepo.EXPECT().Recent(20).Return(nil, nil)

		summary, err := suite.analyticsService.Summary()
		assert.NoError(suite.T(), err)
		assert.Zero(suite.T(), summary.TotalInteractions)
		assert.NotNil(suite.T(), summary.TopTools)
		assert.Empty(suite.T(), summary.TopTools)
		assert.NotNil(suite.T(), summary.RecentActivity)
		assert.Empty(suite.T(), summary.RecentActivity)
	})
}

// TestAnalyticsServiceTestSuite runs the test suite
func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
