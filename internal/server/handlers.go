package server

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/Lllllllleong/legaldocassistant/internal/apperr"
	"github.com/Lllllllleong/legaldocassistant/internal/config"
	"github.com/Lllllllleong/legaldocassistant/internal/extract"
	"github.com/Lllllllleong/legaldocassistant/internal/models"
	"github.com/Lllllllleong/legaldocassistant/internal/services"
)

// multipartOverhead leaves room for form boundaries and the language field.
const multipartOverhead = 1 << 20

func (s *Server) analyzeReady(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Analyze endpoint is working. Send a POST request with a file."})
}

func (s *Server) chatReady(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Chat endpoint is working. Send a POST request with history."})
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, services.Health(s.cfg))
}

func (s *Server) limitBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.cfg.MaxUploadBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadBytes+multipartOverhead)
		}
		c.Next()
	}
}

// handleAnalyze extracts, analyzes and persists one uploaded document.
func (s *Server) handleAnalyze(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.rejectTooLarge(c)
			return
		}
		slog.Warn("No file part in the request.", "error", err)
		s.writeError(c, apperr.Invalid("No file part in request."))
		return
	}
	if s.cfg.MaxUploadBytes > 0 && fh.Size > s.cfg.MaxUploadBytes {
		s.rejectTooLarge(c)
		return
	}

	content, err := readUpload(fh)
	if err != nil {
		s.writeError(c, apperr.New(apperr.ErrInvalidInput, "Could not read uploaded file", err))
		return
	}

	res, err := s.analyzer.Analyze(c.Request.Context(), models.Submission{
		Filename: fh.Filename,
		Content:  content,
		Language: c.DefaultPostForm("language", config.DefaultLanguage),
	})
	if err != nil {
		if errors.Is(err, apperr.ErrUpstream) {
			s.metrics.RecordModelCall("analyze", err)
		}
		s.writeError(c, err)
		return
	}

	s.metrics.RecordModelCall("analyze", nil)
	s.metrics.RecordExtraction(extract.FileType(fh.Filename), utf8.RuneCountInString(res.Response.DocumentText))
	s.metrics.RecordPersist("upload", res.Storage.State.String())
	s.metrics.RecordPersist("metadata", res.Metadata.State.String())

	c.JSON(http.StatusOK, res.Response)
}

// handleChat answers the last turn of the supplied history.
func (s *Server) handleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("Could not decode chat request body", "error", err)
		s.writeError(c, apperr.Invalid("No JSON data received."))
		return
	}

	reply, err := s.chatter.Reply(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperr.ErrUpstream) {
			s.metrics.RecordModelCall("chat", err)
		}
		s.writeError(c, err)
		return
	}

	s.metrics.RecordModelCall("chat", nil)
	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}

// writeError renders err. Server-side failures carry the captured traceback.
func (s *Server) writeError(c *gin.Context, err error) {
	status := apperr.StatusCode(err)
	body := models.ErrorResponse{Error: apperr.Message(err)}
	if status >= http.StatusInternalServerError {
		body.Traceback = apperr.Traceback(err)
		slog.Error("Request failed", "path", c.Request.URL.Path, "status", status, "error", err)
	}
	c.JSON(status, body)
}

func (s *Server) rejectTooLarge(c *gin.Context) {
	c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
		Error: fmt.Sprintf("Uploaded file exceeds the %d byte limit.", s.cfg.MaxUploadBytes),
	})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
