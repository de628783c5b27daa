package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/vitalrisk/internal/metrics"
)

type fakeDB struct {
	err error
}

func (f fakeDB) Ping(ctx context.Context) error {
	return f.err
}

var fixedNow = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC) }

func newTestRouter(t *testing.T, db HealthChecker) (*gin.Engine, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	router := NewRouter(Options{
		DB:       db,
		Metrics:  metrics.New(reg),
		Gatherer: reg,
		Now:      fixedNow,
	})
	return router, reg
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

const validBody = `{
	"age": 45,
	"systolicBP": 125,
	"cholesterol": 210,
	"heartRate": 75,
	"bloodSugar": 98,
	"bmi": 26,
	"exerciseLevel": "Moderate",
	"smokingStatus": "Never Smoked",
	"familyHistory": "No"
}`

func TestRouterHealthz(t *testing.T) {
	router, _ := newTestRouter(t, fakeDB{})

	w := serve(router, "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouterReadyz(t *testing.T) {
	t.Run("db disabled", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)
		w := serve(router, "GET", "/readyz", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"db":"disabled"`)
	})

	t.Run("db healthy", func(t *testing.T) {
		router, _ := newTestRouter(t, fakeDB{})
		w := serve(router, "GET", "/readyz", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"db":"ok"`)
	})

	t.Run("db down", func(t *testing.T) {
		router, _ := newTestRouter(t, fakeDB{err: errors.New("connection refused")})
		w := serve(router, "GET", "/readyz", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

func TestCreateAssessment(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := serve(router, "POST", "/api/assessments", validBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ID         string    `json:"id"`
		AssessedAt time.Time `json:"assessedAt"`
		Profile    struct {
			Smoking string `json:"smokingStatus"`
		} `json:"profile"`
		Result struct {
			RawScore int      `json:"rawScore"`
			Score    int      `json:"score"`
			Tier     string   `json:"tier"`
			Insights []string `json:"insights"`
			Vitals   map[string]struct {
				Status struct {
					Label string `json:"label"`
				} `json:"status"`
				Delta int `json:"delta"`
			} `json:"vitals"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	assert.True(t, fixedNow().Equal(resp.AssessedAt))
	assert.Equal(t, "NeverSmoked", resp.Profile.Smoking)
	assert.Equal(t, 80, resp.Result.RawScore)
	assert.Equal(t, 80, resp.Result.Score)
	assert.Equal(t, "High", resp.Result.Tier)
	assert.Len(t, resp.Result.Insights, 2)
	assert.Equal(t, "Elevated", resp.Result.Vitals["bloodPressure"].Status.Label)
	assert.Equal(t, 15, resp.Result.Vitals["cholesterol"].Delta)
}

func TestCreateAssessment_Markdown(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := serve(router, "POST", "/api/assessments?format=markdown", validBody)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Body.String(), "🔴 HIGH RISK")
	assert.Contains(t, w.Body.String(), "Assessment Date: 2024-03-09 14:05")
}

func TestCreateAssessment_Validation(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		kind  string
		field string
	}{
		{
			name:  "out of range",
			body:  strings.Replace(validBody, `"systolicBP": 125`, `"systolicBP": 0`, 1),
			kind:  "out_of_range",
			field: "systolicBP",
		},
		{
			name:  "missing field",
			body:  strings.Replace(validBody, `"age": 45,`, "", 1),
			kind:  "missing_field",
			field: "age",
		},
		{
			name:  "unknown enum",
			body:  strings.Replace(validBody, `"Moderate"`, `"Marathon"`, 1),
			kind:  "unknown_enum_value",
			field: "exerciseLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t, nil)
			w := serve(router, "POST", "/api/assessments", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "validation_failed", body["error"])
			assert.Equal(t, tt.kind, body["kind"])
			assert.Equal(t, tt.field, body["field"])
		})
	}
}

func TestCreateAssessment_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := serve(router, "POST", "/api/assessments", `{"age": "old"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_payload")
}

func TestExamples(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	w := serve(router, "GET", "/api/examples", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Examples []struct {
			Name        string `json:"name"`
			SourceLabel string `json:"sourceLabel"`
			Tier        string `json:"tier"`
			Score       int    `json:"score"`
		} `json:"examples"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Examples, 3)
	assert.Equal(t, "healthy-adult", body.Examples[0].Name)
	assert.Equal(t, "Low risk", body.Examples[0].SourceLabel)
	assert.Equal(t, "Moderate", body.Examples[0].Tier)
	assert.Equal(t, 45, body.Examples[0].Score)

	w = serve(router, "GET", "/api/examples/at-risk-senior/assessment", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rawScore":145`)

	w = serve(router, "GET", "/api/examples/unknown/assessment", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	serve(router, "POST", "/api/assessments", validBody)
	serve(router, "POST", "/api/assessments", strings.Replace(validBody, `"bmi": 26`, `"bmi": 99`, 1))

	w := serve(router, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `vitalrisk_assessment_total{tier="High"} 1`)
	assert.Contains(t, w.Body.String(), `vitalrisk_assessment_rejected_total{field="bmi",kind="out_of_range"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(Options{})

	w := serve(router, "GET", "/metrics", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, "POST", "/api/assessments", validBody)
	assert.Equal(t, http.StatusOK, w.Code)
}

// Ensure limitBodySize middleware allows small payloads and blocks large ones.
func TestLimitBodySize(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(limitBodySize(10))
	router.POST("/echo", func(c *gin.Context) {
		_, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too large"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	t.Run("within limit", func(t *testing.T) {
		w := serve(router, "POST", "/echo", "12345")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("over limit", func(t *testing.T) {
		w := serve(router, "POST", "/echo", "01234567890")
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}
