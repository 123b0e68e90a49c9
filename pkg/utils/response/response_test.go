package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/VitamPoc/VitamCommon/pkg/errors"
	"github.com/VitamPoc/VitamCommon/pkg/utils/json"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		resp *Response
		want int
	}{
		{"success", Success(nil), http.StatusOK},
		{"explicit", &Response{Code: 1, HTTPCode: http.StatusTeapot}, http.StatusTeapot},
		{"registered", &Response{Code: errors.ErrNotFound.Code}, http.StatusNotFound},
		{"request category", &Response{Code: errors.MakeCode(99, errors.CategoryRequest, 999)}, http.StatusBadRequest},
		{"rate limit category", &Response{Code: errors.MakeCode(99, errors.CategoryRateLimit, 999)}, http.StatusTooManyRequests},
		{"unknown category", &Response{Code: errors.MakeCode(99, 42, 999)}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resp.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrWithLang(t *testing.T) {
	resp := ErrWithLang(errors.ErrInvalidParam, "zh")
	if resp.Message != errors.ErrInvalidParam.MessageZH {
		t.Errorf("Message = %q, want %q", resp.Message, errors.ErrInvalidParam.MessageZH)
	}
	if resp.IsSuccess() {
		t.Error("error response reported success")
	}
	if !Err(nil).IsSuccess() {
		t.Error("nil errno should produce success")
	}
}

func TestWriter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("OK", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		NewWriter(c).WithRequestID("3JxTEWDQ3vELzswAAUYoYUuJ").WithTimestamp().OK(map[string]int{"n": 1})

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp Response
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if resp.RequestID != "3JxTEWDQ3vELzswAAUYoYUuJ" || resp.Timestamp == 0 {
			t.Errorf("unexpected envelope: %+v", resp)
		}
	})

	t.Run("FailWithError", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		NewWriter(c).FailWithError(http.ErrBodyNotAllowed)

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp Response
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if resp.Code != errors.ErrInternal.Code {
			t.Errorf("code = %d, want %d", resp.Code, errors.ErrInternal.Code)
		}
	})
}
