package response

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VitamPoc/VitamCommon/pkg/errors"
)

// Writer writes Responses to a gin context.
type Writer struct {
	ctx       *gin.Context
	withTime  bool
	requestID string
	lang      string
}

// NewWriter creates a new response writer for the given context.
func NewWriter(ctx *gin.Context) *Writer {
	return &Writer{ctx: ctx}
}

// WithTimestamp enables automatic timestamp in responses.
func (w *Writer) WithTimestamp() *Writer {
	w.withTime = true
	return w
}

// WithRequestID sets the request ID for responses.
func (w *Writer) WithRequestID(requestID string) *Writer {
	w.requestID = requestID
	return w
}

// WithLang sets the language for error messages.
func (w *Writer) WithLang(lang string) *Writer {
	w.lang = lang
	return w
}

func (w *Writer) prepare(r *Response) *Response {
	if w.withTime {
		r.Timestamp = time.Now().UnixMilli()
	}
	if w.requestID != "" {
		r.RequestID = w.requestID
	}
	return r
}

// OK sends a successful response with data.
func (w *Writer) OK(data any) {
	w.send(Success(data))
}

// Fail sends an error response using Errno.
func (w *Writer) Fail(e *errors.Errno) {
	w.send(ErrWithLang(e, w.lang))
}

// FailWithError converts a standard error and sends it.
// Errors that are not an Errno are reported as ErrInternal.
func (w *Writer) FailWithError(err error) {
	w.Fail(errors.FromError(err))
}

func (w *Writer) send(r *Response) {
	resp := w.prepare(r)
	w.ctx.JSON(resp.HTTPStatus(), resp)
}
