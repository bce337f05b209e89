package handler

import (
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// Uploads stores multipart files under dir and serves them below /media.
// With an empty dir files are accepted and given a URL but not kept.
type Uploads struct {
	dir string
}

func NewUploads(dir string) *Uploads {
	return &Uploads{dir: strings.TrimSpace(dir)}
}

func (u *Uploads) RegisterRoutes(r fiber.Router) {
	if r == nil || u == nil {
		return
	}
	r.Get("/media/:kind/:name", u.Serve)
}

// Save stores the file sent as field, if any, and returns its public URL.
func (u *Uploads) Save(c fiber.Ctx, form *multipart.Form, field, kind string, owner int64) (*string, error) {
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	fh := files[0]

	name := strconv.FormatInt(owner, 10) + "-" + uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	url := path.Join("/media", kind, name)
	if u == nil || u.dir == "" {
		return &url, nil
	}

	dir := filepath.Join(u.dir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return nil, middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	return &url, nil
}

func (u *Uploads) Serve(c fiber.Ctx) error {
	if u.dir == "" {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil)
	}
	kind := filepath.Base(c.Params("kind"))
	name := filepath.Base(c.Params("name"))
	p := filepath.Join(u.dir, kind, name)
	if _, err := os.Stat(p); err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, err)
	}
	return c.SendFile(p)
}

func isMultipart(c fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}
