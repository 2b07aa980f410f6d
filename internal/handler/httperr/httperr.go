package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the body of every non-2xx answer. Code is set for booking rule rejections
// so clients can branch without matching on the message.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(status int, msg, code string) Response {
	r := Response{Status: status}
	r.Error.Message = msg
	r.Error.Code = code
	return r
}

func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, err, msg, "", detail)
}

// AbortWithCode answers with msg and keeps err on the context for the request log;
// err never reaches the client.
func AbortWithCode(c *gin.Context, status int, err error, msg, code string, detail any) {
	if err == nil {
		panic("httperr: abort without an underlying error")
	}

	resp := New(status, msg, code)
	resp.Detail = detail

	_ = c.Error(err).SetType(gin.ErrorTypePublic).SetMeta(resp)
	c.AbortWithStatusJSON(status, resp)
}
