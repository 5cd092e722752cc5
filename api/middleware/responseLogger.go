package middleware

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("api/middleware")

const (
	prefixDurationTooLong = "[too long]"
	prefixBadRequest      = "[bad request]"
	prefixInternalError   = "[internal error]"
	bodyMaxLength         = 100
	notAvailable          = "n/a"
)

type printRequestHandler func(title string, path string, duration time.Duration, status int, request string, response string)

type responseLoggerMiddleware struct {
	thresholdDurationForLoggingRequest time.Duration
	printRequestFunc                   printRequestHandler
}

// NewResponseLoggerMiddleware returns a new instance of responseLoggerMiddleware
func NewResponseLoggerMiddleware(thresholdDurationForLoggingRequest time.Duration) *responseLoggerMiddleware {
	rlm := &responseLoggerMiddleware{
		thresholdDurationForLoggingRequest: thresholdDurationForLoggingRequest,
	}
	rlm.printRequestFunc = rlm.printRequest

	return rlm
}

// MiddlewareHandlerFunc logs details about a request if it is not successful or its duration is higher than a threshold
func (rlm *responseLoggerMiddleware) MiddlewareHandlerFunc() gin.HandlerFunc {
	return func(c *gin.Context) {
		t := time.Now()

		request := readRequestBody(c)
		bw := &bodyWriter{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
		c.Writer = bw

		c.Next()

		latency := time.Since(t)
		status := c.Writer.Status()

		shouldLogRequest := latency > rlm.thresholdDurationForLoggingRequest || status != http.StatusOK
		if shouldLogRequest {
			title := computeLogTitle(status)
			response := removeWhitespacesFromString(bw.body.String())
			rlm.printRequestFunc(title, c.Request.RequestURI, latency, status, request, response)
		}
	}
}

// readRequestBody returns the request body and restores it so the handlers can read it again
func readRequestBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return notAvailable
	}

	reqBodyBytes, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error("cannot read request body", "error", err)
		return notAvailable
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(reqBodyBytes))

	if len(reqBodyBytes) == 0 {
		return notAvailable
	}

	return removeWhitespacesFromString(string(reqBodyBytes))
}

func computeLogTitle(status int) string {
	logPrefix := prefixDurationTooLong
	switch {
	case status == http.StatusBadRequest:
		logPrefix = prefixBadRequest
	case status == http.StatusInternalServerError:
		logPrefix = prefixInternalError
	case status != http.StatusOK:
		logPrefix = fmt.Sprintf("http code %d", status)
	}

	return fmt.Sprintf("%s api request", logPrefix)
}

func (rlm *responseLoggerMiddleware) printRequest(title string, path string, duration time.Duration, status int, request string, response string) {
	log.Debug(title,
		"path", path,
		"duration", duration,
		"status", status,
		"request", truncate(request),
		"response", truncate(response),
	)
}

// IsInterfaceNil returns true if there is no value under the interface
func (rlm *responseLoggerMiddleware) IsInterfaceNil() bool {
	return rlm == nil
}

func truncate(str string) string {
	if len(str) > bodyMaxLength {
		return str[:bodyMaxLength] + "..."
	}

	return str
}

func removeWhitespacesFromString(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for _, ch := range str {
		if !unicode.IsSpace(ch) {
			b.WriteRune(ch)
		}
	}

	return b.String()
}

type bodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write -
func (w bodyWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}
