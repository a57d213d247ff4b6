package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "http://backend.test"

type blockPayload struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
}

func newTestClient(t *testing.T, transport http.RoundTripper, metrics Metrics) *Client {
	t.Helper()

	return NewClient(Config{
		BaseURL:    testBaseURL,
		Timeout:    time.Second,
		HTTPClient: &http.Client{Transport: transport},
	}, zap.NewNop(), metrics)
}

func TestClientGet(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		params     map[string]string
		prepare    func(mt *httpmock.MockTransport, m *MockMetrics)
		want       blockPayload
		wantStatus int
		wantErr    bool
	}{
		{
			name:   "decodes payload",
			path:   "/blocks/{blockId}",
			params: map[string]string{"blockId": "800000"},
			prepare: func(mt *httpmock.MockTransport, m *MockMetrics) {
				mt.RegisterResponder(http.MethodGet, testBaseURL+"/blocks/800000",
					httpmock.NewStringResponder(http.StatusOK, `{"hash":"abc","height":800000}`))
				m.EXPECT().Observe("get_block", nil, gomock.AssignableToTypeOf(time.Time{}))
			},
			want: blockPayload{Hash: "abc", Height: 800000},
		},
		{
			name: "sends json headers",
			path: "/network/info",
			prepare: func(mt *httpmock.MockTransport, m *MockMetrics) {
				mt.RegisterResponder(http.MethodGet, testBaseURL+"/network/info",
					func(req *http.Request) (*http.Response, error) {
						if req.Header.Get("Accept") != "application/json" {
							return httpmock.NewStringResponse(http.StatusBadRequest, "missing headers"), nil
						}
						return httpmock.NewStringResponse(http.StatusOK, `{"hash":"tip","height":1}`), nil
					})
				m.EXPECT().Observe("get_block", nil, gomock.AssignableToTypeOf(time.Time{}))
			},
			want: blockPayload{Hash: "tip", Height: 1},
		},
		{
			name:   "non-2xx becomes status error",
			path:   "/blocks/{blockId}",
			params: map[string]string{"blockId": "missing"},
			prepare: func(mt *httpmock.MockTransport, m *MockMetrics) {
				mt.RegisterResponder(http.MethodGet, testBaseURL+"/blocks/missing",
					httpmock.NewStringResponder(http.StatusNotFound, `{"detail":"Block not found"}`))
				m.EXPECT().Observe("get_block", gomock.Not(gomock.Nil()), gomock.AssignableToTypeOf(time.Time{}))
			},
			wantStatus: http.StatusNotFound,
			wantErr:    true,
		},
		{
			name:   "transport failure",
			path:   "/blocks/{blockId}",
			params: map[string]string{"blockId": "1"},
			prepare: func(mt *httpmock.MockTransport, m *MockMetrics) {
				mt.RegisterResponder(http.MethodGet, testBaseURL+"/blocks/1",
					httpmock.NewErrorResponder(errors.New("connection refused")))
				m.EXPECT().Observe("get_block", gomock.Not(gomock.Nil()), gomock.AssignableToTypeOf(time.Time{}))
			},
			wantErr: true,
		},
		{
			name:   "malformed body",
			path:   "/blocks/{blockId}",
			params: map[string]string{"blockId": "2"},
			prepare: func(mt *httpmock.MockTransport, m *MockMetrics) {
				mt.RegisterResponder(http.MethodGet, testBaseURL+"/blocks/2",
					httpmock.NewStringResponder(http.StatusOK, `{"hash":`))
				m.EXPECT().Observe("get_block", gomock.Not(gomock.Nil()), gomock.AssignableToTypeOf(time.Time{}))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			t.Cleanup(ctrl.Finish)

			mt := httpmock.NewMockTransport()
			metrics := NewMockMetrics(ctrl)
			tt.prepare(mt, metrics)

			client := newTestClient(t, mt, metrics)

			var got blockPayload
			err := client.Get(context.Background(), "get_block", tt.path, tt.params, &got)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantStatus != 0 {
					var statusErr *StatusError
					require.ErrorAs(t, err, &statusErr)
					require.Equal(t, tt.wantStatus, statusErr.StatusCode)
					require.Equal(t, "get_block", statusErr.Operation)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, 1, mt.GetTotalCallCount())
		})
	}
}

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(&StatusError{Operation: "get_address", StatusCode: http.StatusNotFound}))
	require.False(t, IsNotFound(&StatusError{Operation: "get_address", StatusCode: http.StatusInternalServerError}))
	require.False(t, IsNotFound(errors.New("boom")))
}
