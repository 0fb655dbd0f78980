package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidshare/vidshare-api/internal/models"
	"github.com/vidshare/vidshare-api/internal/videos"
	"github.com/vidshare/vidshare-api/pkg/utils"
)

type mockVideoUC struct {
	called          bool
	listFn          func(ctx context.Context, f *models.VideoFilter, pq *utils.Pagination) (*models.VideoList, error)
	createFn        func(ctx context.Context, input *models.VideoCreateInput) (*models.Video, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*models.Video, error)
	updateFn        func(ctx context.Context, id uuid.UUID, input *models.VideoUpdateInput) (*models.Video, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	togglePublishFn func(ctx context.Context, id uuid.UUID) (*models.Video, error)
}

func (m *mockVideoUC) List(ctx context.Context, f *models.VideoFilter, pq *utils.Pagination) (*models.VideoList, error) {
	m.called = true
	return m.listFn(ctx, f, pq)
}
func (m *mockVideoUC) Create(ctx context.Context, input *models.VideoCreateInput) (*models.Video, error) {
	m.called = true
	return m.createFn(ctx, input)
}
func (m *mockVideoUC) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	m.called = true
	return m.getByIDFn(ctx, id)
}
func (m *mockVideoUC) Update(ctx context.Context, id uuid.UUID, input *models.VideoUpdateInput) (*models.Video, error) {
	m.called = true
	return m.updateFn(ctx, id, input)
}
func (m *mockVideoUC) Delete(ctx context.Context, id uuid.UUID) error {
	m.called = true
	return m.deleteFn(ctx, id)
}
func (m *mockVideoUC) TogglePublish(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	m.called = true
	return m.togglePublishFn(ctx, id)
}

func newContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestIDHandlers_InvalidUUIDSkipsStore(t *testing.T) {
	uc := &mockVideoUC{}
	h := NewVideoHandler(uc)

	tests := []struct {
		name    string
		handler echo.HandlerFunc
	}{
		{"get", h.GetVideoByID()},
		{"update", h.UpdateVideo()},
		{"delete", h.DeleteVideo()},
		{"toggle", h.TogglePublish()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(t, http.MethodGet, "/")
			c.SetParamNames("video_id")
			c.SetParamValues("not-a-uuid")

			require.NoError(t, tt.handler(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, uc.called)
		})
	}
}

func TestListVideos_Envelope(t *testing.T) {
	uc := &mockVideoUC{
		listFn: func(ctx context.Context, f *models.VideoFilter, pq *utils.Pagination) (*models.VideoList, error) {
			assert.Equal(t, "cats", f.Query)
			return &models.VideoList{
				Videos:     make([]*models.VideoWithOwner, 0),
				TotalCount: 0,
				Page:       pq.GetPage(),
				PageSize:   pq.GetSize(),
			}, nil
		},
	}
	h := NewVideoHandler(uc)

	c, rec := newContext(t, http.MethodGet, "/api/v1/videos?query=cats")
	require.NoError(t, h.ListVideos()(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status  int              `json:"status"`
		Data    models.VideoList `json:"data"`
		Message string           `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.NotNil(t, resp.Data.Videos)
	assert.Empty(t, resp.Data.Videos)
	assert.Equal(t, 1, resp.Data.Page)
	assert.NotEmpty(t, resp.Message)
}

func TestCreateVideo_MissingFiles(t *testing.T) {
	uc := &mockVideoUC{}
	h := NewVideoHandler(uc)

	c, rec := newContext(t, http.MethodPost, "/api/v1/videos")
	require.NoError(t, h.CreateVideo()(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, uc.called)
}

func TestGetVideoByID_NotFound(t *testing.T) {
	uc := &mockVideoUC{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*models.Video, error) {
			return nil, videos.ErrVideoNotFound
		},
	}
	h := NewVideoHandler(uc)

	c, rec := newContext(t, http.MethodGet, "/")
	c.SetParamNames("video_id")
	c.SetParamValues(uuid.New().String())

	require.NoError(t, h.GetVideoByID()(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTogglePublish_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", videos.ErrVideoNotFound, http.StatusNotFound},
		{"not owner", videos.ErrNotOwner, http.StatusForbidden},
		{"unauthenticated", utils.ErrUnauthorized, http.StatusUnauthorized},
		{"upstream", videos.ErrMediaUpload, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockVideoUC{
				togglePublishFn: func(ctx context.Context, id uuid.UUID) (*models.Video, error) {
					return nil, tt.err
				},
			}
			h := NewVideoHandler(uc)

			c, rec := newContext(t, http.MethodPatch, "/")
			c.SetParamNames("video_id")
			c.SetParamValues(uuid.New().String())

			require.NoError(t, h.TogglePublish()(c))
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}

func TestDeleteVideo_NullPayload(t *testing.T) {
	uc := &mockVideoUC{
		deleteFn: func(ctx context.Context, id uuid.UUID) error { return nil },
	}
	h := NewVideoHandler(uc)

	c, rec := newContext(t, http.MethodDelete, "/")
	c.SetParamNames("video_id")
	c.SetParamValues(uuid.New().String())

	require.NoError(t, h.DeleteVideo()(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "null", string(resp["data"]))
}
