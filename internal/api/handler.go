package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/insightdelivered/mae-pdf-processing/internal/models"
	"github.com/insightdelivered/mae-pdf-processing/internal/parser"
	"github.com/insightdelivered/mae-pdf-processing/internal/writer"
)

// Handler holds the HTTP handlers for the processing API.
type Handler struct {
	Registry *parser.Registry
	Log      zerolog.Logger
	Version  string
}

// FileError reports one failed file of a batch.
type FileError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// RegisterRoutes sets up the API routes on the fiber app.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/", h.handleRoot)
	app.Get("/favicon.ico", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/health", h.handleHealth)
	app.Get("/modes", h.handleModes)
	app.Post("/process", h.handleProcess)
}

func (h *Handler) handleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "mae-pdf-processing-api",
		"status":  "ok",
		"health":  "/health",
		"modes":   "/modes",
		"process": "/process",
	})
}

func (h *Handler) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "version": h.Version})
}

func (h *Handler) handleModes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"modes": h.Registry.Modes()})
}

// handleProcess accepts a multipart batch of statement PDFs and returns
// the combined transaction table as CSV or JSON. Per-file failures are
// collected without aborting the batch; only a batch with zero
// successful documents fails as a whole.
func (h *Handler) handleProcess(c *fiber.Ctx) error {
	mode := models.Mode(c.FormValue("mode"))
	handler, ok := h.Registry.Get(mode)
	if !ok {
		return badRequest(c, fmt.Sprintf("Unsupported mode %q. Use /modes.", mode))
	}

	format := c.FormValue("response_format", "csv")
	if format != "csv" && format != "json" {
		return badRequest(c, "Invalid response_format. Use 'csv' or 'json'.")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return badRequest(c, "Malformed multipart form.")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return badRequest(c, "No files uploaded.")
	}

	var tables []*models.Table
	fileErrors := []FileError{}

	for _, fh := range files {
		name := fh.Filename
		if name == "" {
			name = "uploaded.pdf"
		}
		if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
			fileErrors = append(fileErrors, FileError{File: name, Error: "Only PDF files are supported"})
			continue
		}

		data, err := readUpload(fh)
		if err != nil {
			fileErrors = append(fileErrors, FileError{File: name, Error: err.Error()})
			continue
		}
		if len(data) == 0 {
			fileErrors = append(fileErrors, FileError{File: name, Error: "File is empty"})
			continue
		}

		table, err := handler(data, name)
		if err != nil {
			fileErrors = append(fileErrors, FileError{File: name, Error: err.Error()})
			continue
		}
		tables = append(tables, table)
	}

	log := h.Log.With().
		Str("mode", string(mode)).
		Int("files", len(files)).
		Int("failed", len(fileErrors)).
		Logger()

	if len(tables) == 0 {
		log.Warn().Msg("batch produced no rows")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "No data extracted from uploaded PDFs.",
			"errors":  fileErrors,
		})
	}

	combined := models.Concat(tables)
	importID := time.Now().UTC().Format("20060102-150405")
	log.Info().Int("rows", combined.Len()).Str("import_id", importID).Msg("batch processed")

	if format == "json" {
		return c.JSON(fiber.Map{
			"import_id": importID,
			"mode":      string(mode),
			"row_count": combined.Len(),
			"rows":      jsonRows(combined),
			"errors":    fileErrors,
		})
	}

	var buf bytes.Buffer
	if err := writer.WriteCSV(&buf, combined); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": fmt.Sprintf("CSV generation failed: %v", err),
		})
	}

	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s-%s.csv", mode, importID)))
	if len(fileErrors) > 0 {
		c.Set("X-Partial-Errors", strconv.Itoa(len(fileErrors)))
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(buf.Bytes())
}

func badRequest(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": detail})
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("could not read upload: %w", err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// jsonRows converts records into JSON-safe field mappings: dates become
// ISO-8601 strings, missing values become null.
func jsonRows(t *models.Table) []map[string]any {
	rows := make([]map[string]any, 0, t.Len())
	for _, rec := range t.Rows {
		row := make(map[string]any, len(t.Columns))
		for _, col := range t.Columns {
			row[col] = normalizeValue(rec[col])
		}
		rows = append(rows, row)
	}
	return rows
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		return val.Format("2006-01-02")
	case models.Flow:
		return string(val)
	default:
		return v
	}
}
