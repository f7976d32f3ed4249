package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/jengzang/vessel-intervals-go/internal/logging"
	"github.com/jengzang/vessel-intervals-go/internal/models"
	"github.com/jengzang/vessel-intervals-go/internal/service"
	"github.com/jengzang/vessel-intervals-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for interval analysis
type AnalysisHandler struct {
	service *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Analyze handles POST /api/v1/intervals/analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	req, ok := h.bindBatch(c)
	if !ok {
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		h.batchError(c, err)
		return
	}
	response.Result(c, result.Success, result)
}

// RawRows handles POST /api/v1/intervals/raw
func (h *AnalysisHandler) RawRows(c *gin.Context) {
	req, ok := h.bindBatch(c)
	if !ok {
		return
	}

	result, err := h.service.RawRows(c.Request.Context(), req)
	if err != nil {
		h.batchError(c, err)
		return
	}
	response.Result(c, result.Success, result)
}

// ClassifyRequest is the body of POST /api/v1/classify
type ClassifyRequest struct {
	NavStatus models.NavStatus     `json:"navStatus"`
	StartPort *models.PortAnalysis `json:"startPort"`
	EndPort   *models.PortAnalysis `json:"endPort"`
}

// Classify handles POST /api/v1/classify
func (h *AnalysisHandler) Classify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.NavStatus.Code == "" {
		response.BadRequest(c, "navStatus is required")
		return
	}

	response.Success(c, h.service.Classify(req.NavStatus, req.StartPort, req.EndPort))
}

// Ports handles GET /api/v1/ports
func (h *AnalysisHandler) Ports(c *gin.Context) {
	response.Success(c, h.service.Ports())
}

// bindBatch reads the multipart form: files, delimiter and gapThreshold
func (h *AnalysisHandler) bindBatch(c *gin.Context) (service.BatchRequest, bool) {
	var req service.BatchRequest

	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "expected a multipart form with files")
		return req, false
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		response.BadRequest(c, "no files uploaded")
		return req, false
	}

	req.Delimiter = c.PostForm("delimiter")
	if raw := c.PostForm("gapThreshold"); raw != "" {
		secs, err := strconv.ParseFloat(raw, 64)
		if err != nil || secs < 0 {
			response.BadRequest(c, fmt.Sprintf("invalid gapThreshold %q", raw))
			return req, false
		}
		gap := time.Duration(secs * float64(time.Second))
		req.GapThreshold = &gap
	}

	files, readErrs, err := readUploads(c.Request.Context(), headers)
	if err != nil {
		logging.LogError(logging.FromContext(c.Request.Context()), "upload read cancelled", err)
		response.BadRequest(c, "request cancelled while reading uploads")
		return req, false
	}
	req.Files = files
	req.ReadErrors = readErrs

	return req, true
}

// readUploads reads every uploaded file concurrently. Unreadable uploads are
// reported as error strings and left out; the others keep upload order. The
// only returned error is a cancelled context.
func readUploads(ctx context.Context, headers []*multipart.FileHeader) ([]models.FileContent, []string, error) {
	contents := make([]*models.FileContent, len(headers))
	failures := make([]string, len(headers))

	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range headers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := readUpload(fh)
			if err != nil {
				failures[i] = fmt.Sprintf("error reading %s: %v", fh.Filename, err)
				return nil
			}
			contents[i] = &models.FileContent{Name: fh.Filename, Content: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	files := make([]models.FileContent, 0, len(headers))
	errs := []string{}
	for i := range headers {
		if contents[i] != nil {
			files = append(files, *contents[i])
		} else if failures[i] != "" {
			errs = append(errs, failures[i])
		}
	}
	return files, errs, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (h *AnalysisHandler) batchError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		response.Error(c, http.StatusServiceUnavailable, "request cancelled")
		return
	}
	response.InternalError(c, "analysis failed")
}
