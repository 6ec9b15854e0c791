package mail

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type layout string

const (
	layoutPortfolio layout = "portfolio.html"
	layoutBlog      layout = "blog.html"
	layoutAdmin     layout = "admin.html"
)

// cardData feeds the customer-facing portfolio and blog layouts.
type cardData struct {
	Title     string
	Message   string
	Link      string
	LinkLabel string
	Reason    string
	Year      int
	// QRCodeCID references an embedded QR image of Link
	QRCodeCID string
}

type adminField struct {
	Label string
	Value string
	Href  string
}

type articleCard struct {
	Title string
	Link  string
	Image string
}

// adminData feeds the compact notification layout sent to the site owner.
type adminData struct {
	Title      string
	Intro      string
	Fields     []adminField
	Article    *articleCard
	InboxLink  string
	InboxLabel string
	Year       int
}

func render(name layout, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(name), data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s", name)
	}

	return buf.String(), nil
}
