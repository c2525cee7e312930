package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"testing"

	"application-catalog-bff/internal/api/handlers"
	apperrors "application-catalog-bff/internal/errors"
	"application-catalog-bff/internal/mocks"
	"application-catalog-bff/internal/repository"
	"application-catalog-bff/internal/service"
	"application-catalog-bff/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ToolHandlerTestSuite defines the test suite for ToolHandler
type ToolHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockToolServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ToolHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockToolServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewToolHandler(suite.mockService)
	router := suite.httpSuite.Router
	tools := router.Group("/tools")
	{
		tools.GET("", handler.ListTools)
		tools.POST("", handler.CreateTool)
		tools.POST("/bulk", handler.BulkCreateTools)
		tools.GET("/:id", handler.GetTool)
		tools.PUT("/:id", handler.UpdateTool)
		tools.PUT("/by-title/:title", handler.UpdateToolByTitle)
		tools.DELETE("/:id", handler.DeleteTool)
		tools.POST("/:id/logo/upload", handler.UploadLogo)
		tools.POST("/:id/logo/import", handler.ImportLogo)
	}
	router.GET("/logos/:id", handler.GetLogo)
}

// TearDownTest cleans up after each test
func (suite *ToolHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListTools tests GET /tools
func (suite *ToolHandlerTestSuite) TestListTools() {
	suite.Run("Success with filters", func() {
		expected := repository.ToolListFilter{Search: "graf", Category: "Observability", Status: "Active"}
		suite.mockService.EXPECT().List(expected).Return([]service.ToolResponse{{Title: "Grafana"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/tools?search=graf&category=Observability&status=Active", nil)

		var tools []service.ToolResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tools)
		assert.Len(suite.T(), tools, 1)
		assert.Equal(suite.T(), "Grafana", tools[0].Title)
	})

	suite.Run("Empty catalog returns an empty array", func() {
		suite.mockService.EXPECT().List(repository.ToolListFilter{}).Return([]service.ToolResponse{}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/tools", nil)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		assert.JSONEq(suite.T(), "[]", recorder.Body.String())
	})
}

// TestCreateTool tests POST /tools
func (suite *ToolHandlerTestSuite) TestCreateTool() {
	suite.Run("Success returns 200", func() {
		payload := map[string]interface{}{"title": "Grafana", "category": "Observability"}
		suite.mockService.EXPECT().Create(gomock.Any()).Return(&service.ToolResponse{Title: "Grafana"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/tools", payload)

		var tool service.ToolResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tool)
		assert.Equal(suite.T(), "Grafana", tool.Title)
	})

	suite.Run("Duplicate title", func() {
		payload := map[string]interface{}{"title": "Grafana", "category": "Observability"}
		suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrToolTitleExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/tools", payload)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusBadRequest, "Title must be unique.")
	})

	suite.Run("Validation failure", func() {
		payload := map[string]interface{}{"title": "", "category": "Observability"}
		suite.mockService.EXPECT().Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("Title", "required"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/tools", payload)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusBadRequest, "validation error: Title - required")
	})

	suite.Run("Malformed JSON", func() {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/tools",
			bytes.NewBufferString("{not json"), map[string]string{"Content-Type": "application/json"})

		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	})
}

// TestBulkCreateTools tests POST /tools/bulk
func (suite *ToolHandlerTestSuite) TestBulkCreateTools() {
	suite.Run("Success", func() {
		payload := map[string]interface{}{
			"tools": []map[string]interface{}{
				{"title": "Grafana", "category": "Observability"},
				{"title": "Kibana", "category": "Observability"},
			},
		}
		suite.mockService.EXPECT().BulkCreate(gomock.Len(2)).
			Return([]service.ToolResponse{{Title: "Grafana"}, {Title: "Kibana"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/tools/bulk", payload)

		var tools []service.ToolResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tools)
		assert.Len(suite.T(), tools, 2)
	})

	suite.Run("Duplicate title names the offender", func() {
		payload := map[string]interface{}{
			"tools": []map[string]interface{}{{"title": "Grafana", "category": "Observability"}},
		}
		suite.mockService.EXPECT().BulkCreate(gomock.Any()).
			Return(nil, apperrors.NewDuplicateTitleError("Grafana"))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/tools/bulk", payload)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusBadRequest, "Title already exists: Grafana")
	})
}

// TestGetTool tests GET /tools/:id
func (suite *ToolHandlerTestSuite) TestGetTool() {
	suite.Run("Success", func() {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(id).Return(&service.ToolResponse{ID: id, Title: "Grafana"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/tools/"+id.String(), nil)

		var tool service.ToolResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tool)
		assert.Equal(suite.T(), id, tool.ID)
	})

	suite.Run("Unknown id", func() {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrToolNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/tools/"+id.String(), nil)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusNotFound, "Tool not found.")
	})

	suite.Run("Malformed id is a 404, not a 400", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/tools/not-a-uuid", nil)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusNotFound, "Tool not found.")
	})
}

// TestUpdateTool tests PUT /tools/:id
func (suite *ToolHandlerTestSuite) TestUpdateTool() {
	suite.Run("Success", func() {
		id := uuid.New()
		payload := map[string]interface{}{"title": "Grafana OSS", "category": "Observability"}
		suite.mockService.EXPECT().Update(id, gomock.Any()).
			Return(&service.ToolResponse{ID: id, Title: "Grafana OSS"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/tools/"+id.String(), payload)

		var tool service.ToolResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tool)
		assert.Equal(suite.T(), "Grafana OSS", tool.Title)
	})

	suite.Run("Title conflict", func() {
		id := uuid.New()
		payload := map[string]interface{}{"title": "Kibana", "category": "Observability"}
		suite.mockService.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrToolTitleExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/tools/"+id.String(), payload)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusBadRequest, "Title must be unique.")
	})

	suite.Run("Unknown id", func() {
		id := uuid.New()
		payload := map[string]interface{}{"title": "Grafana", "category": "Observability"}
		suite.mockService.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.ErrToolNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/tools/"+id.String(), payload)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusNotFound, "Tool not found.")
	})
}

// TestUpdateToolByTitle tests PUT /tools/by-title/:title
func (suite *ToolHandlerTestSuite) TestUpdateToolByTitle() {
	suite.Run("Success", func() {
		payload := map[string]interface{}{"title": "Grafana OSS", "category": "Observability"}
		suite.mockService.EXPECT().UpdateByTitle("Grafana", gomock.Any()).
			Return(&service.ToolResponse{Title: "Grafana OSS"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/tools/by-title/Grafana", payload)

		var tool service.ToolResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tool)
		assert.Equal(suite.T(), "Grafana OSS", tool.Title)
	})

	suite.Run("Unknown title", func() {
		payload := map[string]interface{}{"title": "Missing", "category": "Observability"}
		suite.mockService.EXPECT().UpdateByTitle("Missing", gomock.Any()).Return(nil, apperrors.ErrToolNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/tools/by-title/Missing", payload)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusNotFound, "Tool not found.")
	})
}

// TestDeleteTool tests DELETE /tools/:id
func (suite *ToolHandlerTestSuite) TestDeleteTool() {
	suite.Run("Success", func() {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/tools/"+id.String(), nil)

		var status handlers.StatusResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &status)
		assert.Equal(suite.T(), "deleted", status.Status)
	})

	suite.Run("Repeated delete", func() {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrToolNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/tools/"+id.String(), nil)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusNotFound, "Tool not found.")
	})
}

// multipartLogo builds a multipart body with a single "file" part
func multipartLogo(t *testing.T, contentType string, data []byte) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="logo.png"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(data)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

// TestUploadLogo tests POST /tools/:id/logo/upload
func (suite *ToolHandlerTestSuite) TestUploadLogo() {
	suite.Run("Success", func() {
		id := uuid.New()
		data := []byte{0x89, 0x50, 0x4e, 0x47}
		body, contentType := multipartLogo(suite.T(), "image/png", data)

		suite.mockService.EXPECT().UploadLogo(id, data, "image/png").Return(nil)

		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost,
			"/tools/"+id.String()+"/logo/upload", body, map[string]string{"Content-Type": contentType})

		var status handlers.StatusResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &status)
		assert.Equal(suite.T(), "uploaded", status.Status)
	})

	suite.Run("Non-image file", func() {
		id := uuid.New()
		body, contentType := multipartLogo(suite.T(), "application/pdf", []byte("%PDF"))

		suite.mockService.EXPECT().UploadLogo(id, gomock.Any(), "application/pdf").
			Return(apperrors.ErrLogoNotImage)

		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost,
			"/tools/"+id.String()+"/logo/upload", body, map[string]string{"Content-Type": contentType})

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusBadRequest, "Logo must be an image file.")
	})

	suite.Run("Missing file part", func() {
		id := uuid.New()

		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost,
			"/tools/"+id.String()+"/logo/upload", bytes.NewBuffer(nil),
			map[string]string{"Content-Type": "multipart/form-data; boundary=x"})

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusBadRequest, "Logo must be an image file.")
	})
}

// TestImportLogo tests POST /tools/:id/logo/import
func (suite *ToolHandlerTestSuite) TestImportLogo() {
	suite.Run("Success", func() {
		id := uuid.New()
		suite.mockService.EXPECT().ImportLogo(id, "https://example.com/logo.png").Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost,
			"/tools/"+id.String()+"/logo/import?url=https://example.com/logo.png", nil)

		var status handlers.StatusResponse
		testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &status)
		assert.Equal(suite.T(), "imported", status.Status)
	})

	suite.Run("Fetch failure", func() {
		id := uuid.New()
		suite.mockService.EXPECT().ImportLogo(id, "https://example.com/missing.png").
			Return(apperrors.NewExternalFetchError("Unable to fetch logo URL."))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost,
			"/tools/"+id.String()+"/logo/import?url=https://example.com/missing.png", nil)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusBadRequest, "Unable to fetch logo URL.")
	})

	suite.Run("Non-image URL", func() {
		id := uuid.New()
		suite.mockService.EXPECT().ImportLogo(id, "https://example.com/page.html").
			Return(apperrors.NewExternalFetchError("Logo URL must be an image."))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost,
			"/tools/"+id.String()+"/logo/import?url=https://example.com/page.html", nil)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusBadRequest, "Logo URL must be an image.")
	})

	suite.Run("Missing url parameter", func() {
		id := uuid.New()

		recorder := suite.httpSuite.MakeRequest(http.MethodPost,
			"/tools/"+id.String()+"/logo/import", nil)

		assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	})
}

// TestGetLogo tests GET /logos/:id
func (suite *ToolHandlerTestSuite) TestGetLogo() {
	suite.Run("Success serves raw bytes", func() {
		id := uuid.New()
		data := []byte{0x89, 0x50, 0x4e, 0x47}
		suite.mockService.EXPECT().GetLogo(id).Return(data, "image/png", nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/logos/"+id.String(), nil)

		assert.Equal(suite.T(), http.StatusOK, recorder.Code)
		assert.Equal(suite.T(), "image/png", recorder.Header().Get("Content-Type"))
		assert.Equal(suite.T(), data, recorder.Body.Bytes())
	})

	suite.Run("No logo stored", func() {
		id := uuid.New()
		suite.mockService.EXPECT().GetLogo(id).Return(nil, "", apperrors.ErrLogoNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/logos/"+id.String(), nil)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusNotFound, "Logo not found.")
	})

	suite.Run("Malformed id", func() {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/logos/nope", nil)

		testutils.AssertDetailResponse(suite.T(), recorder, http.StatusNotFound, "Logo not found.")
	})
}

// TestToolHandlerTestSuite runs the test suite
func TestToolHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ToolHandlerTestSuite))
}
