package ui

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chartdeck/app"
	"chartdeck/domain/chart"
	"chartdeck/domain/core"
)

// handleHome reports service liveness
func (s *Server) handleHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"message": "Chart generation service is running",
	})
}

// handleGenerateChart accepts a multipart upload and produces a stored
// presentation artifact.
func (s *Server) handleGenerateChart(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.respondError(c, core.ErrMissingInput, "")
		return
	}

	dataFile, err := c.FormFile("dataFile")
	if err != nil {
		s.respondError(c, core.ErrMissingInput, "")
		return
	}

	kind := chart.ParseKind(c.DefaultPostForm("chartType", string(chart.DefaultKind)))

	position := 1
	if raw := c.PostForm("slidePosition"); raw != "" {
		position, err = strconv.Atoi(raw)
		if err != nil || position < 1 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("invalid slide position: %s", raw)})
			return
		}
	}

	req := app.GenerateRequest{
		DataFileName:  dataFile.Filename,
		Kind:          kind,
		SlidePosition: position,
	}

	data, err := dataFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer data.Close()
	req.DataFile = data

	if templateFile, err := c.FormFile("templateFile"); err == nil && templateFile.Filename != "" {
		template, err := templateFile.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer template.Close()
		req.TemplateFileName = templateFile.Filename
		req.TemplateFile = template
	}

	result, err := s.generator.Generate(c.Request.Context(), req)
	if err != nil {
		s.respondError(c, err, dataFile.Filename)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Chart generated successfully",
		"downloadUrl": fmt.Sprintf("/download-chart/%s", result.ArtifactID),
		"previewUrl":  fmt.Sprintf("https://via.placeholder.com/800x450.png?text=Chart+Preview+%s", result.Kind),
		"chartType":   string(result.Kind),
		"summary":     result.Summary,
	})
}

// handleDownloadChart streams a stored artifact as an attachment
func (s *Server) handleDownloadChart(c *gin.Context) {
	id := c.Param("id")

	artifact, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
			return
		}
		log.Printf("[DownloadChart] Store lookup failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// handleCleanup evicts artifacts older than the configured maximum age
func (s *Server) handleCleanup(c *gin.Context) {
	removed, remaining, err := s.store.Sweep(c.Request.Context(), s.sweepMaxAge)
	if err != nil {
		log.Printf("[Cleanup] Sweep failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Cleanup complete. Removed %d old files.", removed),
		"remaining": remaining,
	})
}

// respondError maps pipeline failures onto wire status codes and the exact
// error strings clients rely on.
func (s *Server) respondError(c *gin.Context, err error, dataFilename string) {
	switch {
	case errors.Is(err, core.ErrMissingInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data file provided"})
	case errors.Is(err, core.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported file format: %s", dataFilename)})
	case errors.Is(err, core.ErrInsufficientColumns):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Data must have at least two columns (categories and values)"})
	default:
		log.Printf("[GenerateChart] Processing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
