package app

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/saasbase/pkg/session"
)

// Metadata is written into the document head.
type Metadata struct {
	Title       string
	Description string
}

// DefaultMetadata is the metadata of every page that does not set its own.
var DefaultMetadata = Metadata{
	Title:       "SaaS Boilerplate",
	Description: "A streamlined SaaS application boilerplate",
}

// Layout renders the document shell around its children: the head with meta,
// then a body holding Providers with a background element and the children.
//
//	err := app.Layout(app.DefaultMetadata, s).Render(templ.WithChildren(ctx, page), w)
func Layout(meta Metadata, s *session.Session) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title><meta name="description" content="%s"></head><body class="min-h-screen bg-background text-foreground relative">`,
			templ.EscapeString(meta.Title),
			templ.EscapeString(meta.Description),
		); err != nil {
			return err
		}

		inner := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if _, err := io.WriteString(w, `<div class="gradient-background" aria-hidden="true"></div>`); err != nil {
				return err
			}
			return children.Render(ctx, w)
		})
		if err := Providers(s).Render(templ.WithChildren(ctx, inner), w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
