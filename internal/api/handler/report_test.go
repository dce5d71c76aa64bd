package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-report-engine/internal/domain"
	"github.com/vfg2006/ads-report-engine/internal/usecases/reporting"
	"github.com/vfg2006/ads-report-engine/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestRunReportHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporter(ctrl)

	body := `{
		"source": "mirror",
		"date_preset": "yesterday",
		"custom_view": "video_ctr_2",
		"country": "PK",
		"min_roas": 1.5,
		"sort_by": "roas"
	}`

	mockReporter.EXPECT().
		RunReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, spec *domain.ReportSpec) (*domain.ReportResult, error) {
			// A spec decodificada deve chegar intacta ao serviço
			assert.Equal(t, domain.SourceMirror, spec.Source)
			assert.Equal(t, domain.ViewVideoCTR2, spec.CustomView)
			assert.Equal(t, "PK", spec.Country)
			require.NotNil(t, spec.MinROAS)
			assert.Equal(t, 1.5, *spec.MinROAS)
			assert.Equal(t, "roas", spec.SortBy)

			return &domain.ReportResult{
				Records: []*domain.MetricRecord{{AdID: "ad1"}},
				Summary: domain.Summary{TotalRecords: 1},
			}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/reports/run", strings.NewReader(body))
	rec := httptest.NewRecorder()

	RunReport(mockReporter).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_records":1`)
	assert.Contains(t, rec.Body.String(), `"ad_id":"ad1"`)
}

func TestRunReportHandlerErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		serviceErr   error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "corpo inválido",
			body:         "{nope",
			expectedCode: http.StatusBadRequest,
			expectedBody: "VAL_003",
		},
		{
			name:         "spec rejeitada pelo serviço",
			body:         `{"source": "live"}`,
			serviceErr:   errors.Wrap(reporting.ErrInvalidSpec, "a estratégia live exige ao menos uma conta de anúncios"),
			expectedCode: http.StatusBadRequest,
			expectedBody: "VAL_004",
		},
		{
			name:         "falha do espelho",
			body:         `{"source": "mirror"}`,
			serviceErr:   errors.New("erro ao executar a query do espelho"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: "SRV_002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReporter := mocks.NewMockReporter(ctrl)
			if tt.serviceErr != nil {
				mockReporter.EXPECT().
					RunReport(gomock.Any(), gomock.Any()).
					Return(nil, tt.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/reports/run", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			RunReport(mockReporter).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestReportVocabularyHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/reports/vocabulary", nil)
	rec := httptest.NewRecorder()

	ReportVocabulary().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "top_performing_quarter")
	assert.Contains(t, rec.Body.String(), "55+")
	assert.Contains(t, rec.Body.String(), "campaign_name")
}
