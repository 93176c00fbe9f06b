package handler

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"portfolioapi/internal/model"
	"portfolioapi/internal/service"
)

// publicDocument is the trimmed document shape exposed to visitors. The
// stored name and admin flags other than the download permission stay private.
type publicDocument struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	FileName        string `json:"fileName"`
	DownloadEnabled bool   `json:"downloadEnabled"`
	FileURL         string `json:"fileUrl"`
}

// publicSlot is a content slot as visitors see it. A hidden or empty slot
// is omitted from the payload entirely (nil).
type publicSlot struct {
	FileName        string `json:"fileName"`
	DownloadEnabled bool   `json:"downloadEnabled"`
	URL             string `json:"url"`
}

type publicContent struct {
	Resume *publicSlot `json:"resume"`
	CV     *publicSlot `json:"cv"`
}

func toPublicDocument(doc model.Document) publicDocument {
	return publicDocument{
		ID:              doc.ID,
		Title:           doc.Title,
		FileName:        doc.OriginalName,
		DownloadEnabled: doc.DownloadEnabled,
		FileURL:         "/documents/" + doc.ID + "/file",
	}
}

func toPublicSlot(slot model.FileSlot, slotType string) *publicSlot {
	if !slot.Visible || slot.StoredName == "" {
		return nil
	}
	return &publicSlot{
		FileName:        slot.OriginalName,
		DownloadEnabled: slot.DownloadEnabled,
		URL:             "/content/file/" + slotType,
	}
}

// downloadQuery parses the download toggle on the file serving routes.
// Omitting it means download.
func downloadQuery(c *fiber.Ctx) (bool, error) {
	return strconv.ParseBool(c.Query("download", "true"))
}

// sendFile streams a resolved file with its content type and disposition.
func sendFile(c *fiber.Ctx, res *service.FileResponse) error {
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", res.Disposition, res.FileName))
	return c.SendStream(res.Content)
}

// HealthCheck reports readiness by pinging the database.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a plain liveness endpoint with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// GetContent returns the public site content payload: the visible slots only.
func GetContent(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content, err := svc.Get(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(publicContent{
			Resume: toPublicSlot(content.Resume, model.SlotResume),
			CV:     toPublicSlot(content.CV, model.SlotCV),
		})
	}
}

// ListPublicDocuments returns visible documents in display order.
func ListPublicDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ListPublic(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		items := make([]publicDocument, 0, len(docs))
		for _, doc := range docs {
			items = append(items, toPublicDocument(doc))
		}
		return c.JSON(items)
	}
}

// ServeDocumentFile streams a document's file, honoring the visibility and
// download rules enforced by the service.
func ServeDocumentFile(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		download, err := downloadQuery(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DOWNLOAD", "invalid download flag")
		}

		res, err := svc.ServeFile(c.UserContext(), id, download)
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendFile(c, res)
	}
}

// ServeContentFile streams a content slot's file (resume or cv).
func ServeContentFile(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		download, err := downloadQuery(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_DOWNLOAD", "invalid download flag")
		}

		res, err := svc.ServeSlot(c.UserContext(), c.Params("type"), download)
		if err != nil {
			return writeServiceError(c, err)
		}
		return sendFile(c, res)
	}
}

// ListAdminDocuments returns every document, after reconciling records
// against the actual file inventory.
func ListAdminDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ListAdmin(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

// CreateDocument publishes a new document from a multipart upload
// (field name: file) plus optional metadata form fields.
func CreateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "please select a file to upload")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		visible, err := formBool(c, "visible", true)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "visible must be a boolean")
		}
		downloadEnabled, err := formBool(c, "downloadEnabled", false)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "downloadEnabled must be a boolean")
		}
		displayOrder, err := formInt(c, "displayOrder", 0)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "displayOrder must be an integer")
		}

		doc, err := svc.Create(c.UserContext(), service.CreateDocumentInput{
			Title:           c.FormValue("title"),
			File:            f,
			FileName:        fh.Filename,
			Visible:         visible,
			DownloadEnabled: downloadEnabled,
			DisplayOrder:    displayOrder,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

type updateDocumentRequest struct {
	Title           string `json:"title"`
	Visible         bool   `json:"visible"`
	DownloadEnabled bool   `json:"downloadEnabled"`
	DisplayOrder    int    `json:"displayOrder"`
}

// UpdateDocument changes a document's metadata. The backing file is immutable.
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req updateDocumentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		doc, err := svc.Update(c.UserContext(), id, service.UpdateDocumentInput{
			Title:           req.Title,
			Visible:         req.Visible,
			DownloadEnabled: req.DownloadEnabled,
			DisplayOrder:    req.DisplayOrder,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document record and its backing file.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type slotFlagsRequest struct {
	Visible         bool `json:"visible"`
	DownloadEnabled bool `json:"downloadEnabled"`
}

type updateContentRequest struct {
	Resume slotFlagsRequest `json:"resume"`
	CV     slotFlagsRequest `json:"cv"`
}

// UpdateContentFlags toggles the visibility and download flags on the
// resume/cv slots.
func UpdateContentFlags(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req updateContentRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		content, err := svc.UpdateFlags(c.UserContext(), service.UpdateContentFlagsInput{
			ResumeVisible:         req.Resume.Visible,
			ResumeDownloadEnabled: req.Resume.DownloadEnabled,
			CVVisible:             req.CV.Visible,
			CVDownloadEnabled:     req.CV.DownloadEnabled,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(content)
	}
}

// UploadContentFile stores a file into the slot named by the type query
// parameter, replacing any previous file.
func UploadContentFile(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "please select a file to upload")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		res, err := svc.UploadSlot(c.UserContext(), c.Query("type"), f, fh.Filename)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// DeleteContentFile removes the slot's file and clears its metadata.
func DeleteContentFile(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slotType, err := svc.DeleteSlot(c.UserContext(), c.Query("type"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"type":    slotType,
			"message": "File deleted successfully",
		})
	}
}

func formBool(c *fiber.Ctx, key string, def bool) (bool, error) {
	raw := c.FormValue(key)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}

func formInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.FormValue(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, docs service.DocumentService, content service.ContentService) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Get("/content", GetContent(content))
	app.Get("/content/documents", ListPublicDocuments(docs))
	app.Get("/content/file/:type", ServeContentFile(content))
	app.Get("/documents/:id/file", ServeDocumentFile(docs))

	admin := app.Group("/admin")
	admin.Get("/documents", ListAdminDocuments(docs))
	admin.Post("/documents", CreateDocument(docs))
	admin.Put("/documents/:id", UpdateDocument(docs))
	admin.Delete("/documents/:id", DeleteDocument(docs))
	admin.Put("/content", UpdateContentFlags(content))
	admin.Post("/content/upload", UploadContentFile(content))
	admin.Delete("/content/upload", DeleteContentFile(content))
}
