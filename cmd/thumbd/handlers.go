package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/previewlab/thumbd/cmd/thumbd/inspector"
	"github.com/previewlab/thumbd/cmd/thumbd/storage"
	"github.com/previewlab/thumbd/internal/formats"
	"github.com/previewlab/thumbd/internal/geometry"
)

type handler struct {
	inspector *inspector.Inspector
	storage   storage.Storage
}

func newHandler(ins *inspector.Inspector, store storage.Storage) *handler {
	return &handler{inspector: ins, storage: store}
}

type formatsResponse struct {
	Extensions          []string `json:"extensions"`
	MaxFileSize         int64    `json:"max_file_size"`
	VectorTargetPx      float64  `json:"vector_target_px"`
	DocumentRenderWidth int      `json:"document_render_width"`
}

func (h *handler) listFormats(c echo.Context) error {
	return c.JSON(http.StatusOK, formatsResponse{
		Extensions:          formats.AllCompatibleExtensions(),
		MaxFileSize:         formats.MaxFileSize,
		VectorTargetPx:      formats.VectorTargetPx,
		DocumentRenderWidth: formats.DocumentRenderWidth,
	})
}

type formatResponse struct {
	Extension formats.Extension `json:"extension"`
	Group     string            `json:"group"`
}

func (h *handler) getFormat(c echo.Context) error {
	ext, err := formats.Parse(c.Param("ext"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, formatResponse{
		Extension: ext,
		Group:     ext.Group().String(),
	})
}

type fitRequest struct {
	Width  float64 `query:"width"`
	Height float64 `query:"height"`
}

func (req fitRequest) validate() error {
	if req.Width <= 0 || req.Height <= 0 {
		return errors.Errorf("Invalid source dimensions: %gx%g. Both width and height must be positive", req.Width, req.Height)
	}
	return nil
}

type fitResponse struct {
	Extension formats.Extension `json:"extension"`
	Source    geometry.Size     `json:"source"`
	Target    geometry.Size     `json:"target"`
}

func (h *handler) fit(c echo.Context) error {
	ext, err := formats.Parse(c.Param("ext"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var req fitRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := req.validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var target geometry.Size
	switch ext.Group() {
	case formats.GroupVector:
		target, err = geometry.FitVector(req.Width, req.Height)
	case formats.GroupDocument:
		target, err = geometry.FitDocument(req.Width, req.Height)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "fit is only defined for vector and document sources")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, fitResponse{
		Extension: ext,
		Source:    geometry.Size{Width: int(req.Width), Height: int(req.Height)},
		Target:    target,
	})
}

type checkRequest struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

func (req checkRequest) validate() error {
	if req.Filename == "" {
		return errors.New("filename is required")
	}
	if req.Size < 0 {
		return errors.Errorf("Invalid size: %d", req.Size)
	}
	return nil
}

func (h *handler) check(c echo.Context) error {
	var req checkRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := req.validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, h.inspector.Inspect(req.Filename, req.Size))
}

func (h *handler) thumbnailKey(c echo.Context) (string, error) {
	if h.storage == nil {
		return "", echo.NewHTTPError(http.StatusServiceUnavailable, "thumbnail storage is not configured")
	}
	key := c.Param("*")
	if key == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "thumbnail name is required")
	}
	return key, nil
}

func (h *handler) getThumbnail(c echo.Context) error {
	key, err := h.thumbnailKey(c)
	if err != nil {
		return err
	}

	if !h.storage.Exists(key) {
		return echo.NewHTTPError(http.StatusNotFound, key)
	}

	reader, err := h.storage.Download(key)
	if err != nil {
		return err
	}
	return c.Stream(http.StatusOK, "image/png", reader)
}

func (h *handler) putThumbnail(c echo.Context) error {
	key, err := h.thumbnailKey(c)
	if err != nil {
		return err
	}

	if err := h.storage.Upload(c.Request().Body, key); err != nil {
		return err
	}
	return c.NoContent(http.StatusCreated)
}
