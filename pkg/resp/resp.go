package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a failed result and decides its HTTP status.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindInternal
)

func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Envelope is the wire shape of every enveloped response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Result is either Ok(data) or Err(kind, message). Build it with Ok or Err
// and write it with Send.
type Result struct {
	ok      bool
	status  int
	kind    Kind
	message string
	data    any
}

func Ok(status int, message string, data any) Result {
	return Result{ok: true, status: status, message: message, data: data}
}

func Err(kind Kind, message string) Result {
	return Result{kind: kind, status: kind.Status(), message: message}
}

func (r Result) IsOk() bool { return r.ok }
func (r Result) Status() int { return r.status }
func (r Result) Kind() Kind { return r.kind }
func (r Result) Message() string { return r.message }

func (r Result) Envelope() Envelope {
	if r.ok {
		return Envelope{Success: true, Message: r.message, Data: r.data}
	}
	return Envelope{Success: false, Message: r.message}
}

func Send(c *gin.Context, r Result) {
	c.JSON(r.status, r.Envelope())
}

// Abort writes r and stops the handler chain.
func Abort(c *gin.Context, r Result) {
	c.AbortWithStatusJSON(r.status, r.Envelope())
}

func OK(c *gin.Context, message string, data any) {
	Send(c, Ok(http.StatusOK, message, data))
}
func Created(c *gin.Context, message string, data any) {
	Send(c, Ok(http.StatusCreated, message, data))
}
func BadRequest(c *gin.Context, msg string) {
	Send(c, Err(KindValidation, msg))
}
func NotFound(c *gin.Context, msg string) {
	Send(c, Err(KindNotFound, msg))
}
func Unauthorized(c *gin.Context, msg string) {
	Send(c, Err(KindUnauthorized, msg))
}
func Forbidden(c *gin.Context, msg string) {
	Send(c, Err(KindForbidden, msg))
}

// ServerError never echoes err; callers log it.
func ServerError(c *gin.Context) {
	Send(c, Err(KindInternal, "internal server error"))
}
