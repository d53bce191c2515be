package aggregate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-attendo/internal/aggregate"
	aggregateerrors "go-attendo/internal/aggregate/errors"
	"go-attendo/internal/aggregate/mock"
	"go-attendo/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", "u1")
	return c, w
}

func TestAggregateHandler_GetWeekly(t *testing.T) {
	t.Run("date parsed in the handler location", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			GetWeeklyStatus(gomock.Any(), "u1", time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)).
			Return(aggregate.WeeklyStatus{Week: "2026-W43"}, nil)

		h := aggregate.NewHandler(svc, time.UTC)
		c, w := newContext(http.MethodGet, "/status/weekly?date=2026-10-21", "")
		h.GetWeekly(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var weekly aggregate.WeeklyStatus
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &weekly))
		assert.Equal(t, "2026-W43", weekly.Week)
	})

	t.Run("no date means current week", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().GetWeeklyStatus(gomock.Any(), "u1", time.Time{}).Return(aggregate.WeeklyStatus{}, nil)

		h := aggregate.NewHandler(svc, time.UTC)
		c, w := newContext(http.MethodGet, "/status/weekly", "")
		h.GetWeekly(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		h := aggregate.NewHandler(svc, time.UTC)
		c, w := newContext(http.MethodGet, "/status/weekly?date=21-10-2026", "")
		h.GetWeekly(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestAggregateHandler_GetMonthly(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			GetMonthlyStats(gomock.Any(), "u1", 2026, time.October).
			Return(aggregate.MonthlyStats{Month: "2026-10"}, nil)

		h := aggregate.NewHandler(svc, time.UTC)
		c, w := newContext(http.MethodGet, "/status/monthly?year=2026&month=10", "")
		h.GetMonthly(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("month out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		h := aggregate.NewHandler(svc, time.UTC)
		c, w := newContext(http.MethodGet, "/status/monthly?year=2026&month=13", "")
		h.GetMonthly(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAggregateHandler_ExportMonthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	svc.EXPECT().
		ExportMonthly(gomock.Any(), "u1", 2026, time.October).
		Return([]byte("xlsx"), "attendance_2026-10.xlsx", nil)

	h := aggregate.NewHandler(svc, time.UTC)
	c, w := newContext(http.MethodGet, "/status/monthly/export?year=2026&month=10", "")
	h.ExportMonthly(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="attendance_2026-10.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx", w.Body.String())
}

func TestAggregateHandler_SetDayStatus(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			SetDayStatus(gomock.Any(), "u1", "2026-10-19", aggregate.CodeSick, "flu").
			Return(aggregate.DayStatusDetail{Date: "2026-10-19", Status: aggregate.CodeSick, Note: "flu", ManualOverride: true}, nil)

		h := aggregate.NewHandler(svc, time.UTC)
		c, w := newContext(http.MethodPut, "/status/days/2026-10-19", `{"code":"B","note":"flu"}`)
		c.Params = gin.Params{{Key: "date", Value: "2026-10-19"}}
		h.SetDayStatus(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var d aggregate.DayStatusDetail
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &d))
		assert.Equal(t, aggregate.CodeSick, d.Status)
	})

	t.Run("service rejects the code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().
			SetDayStatus(gomock.Any(), "u1", "2026-10-19", aggregate.Code("Z"), "").
			Return(aggregate.DayStatusDetail{}, aggregateerrors.ErrInvalidCode)

		h := aggregate.NewHandler(svc, time.UTC)
		c, w := newContext(http.MethodPut, "/status/days/2026-10-19", `{"code":"Z"}`)
		c.Params = gin.Params{{Key: "date", Value: "2026-10-19"}}
		h.SetDayStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apperror.CodeInvalidInput, decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("missing code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		h := aggregate.NewHandler(svc, time.UTC)
		c, w := newContext(http.MethodPut, "/status/days/2026-10-19", `{"note":"x"}`)
		h.SetDayStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
