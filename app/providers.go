package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/saasbase/pkg/session"
)

// clientSession is the part of a session that is exposed to the page.
type clientSession struct {
	User    *session.User `json:"user"`
	Expires time.Time     `json:"expires"`
}

// Providers wraps its children in the element that hands the session to
// client scripts. The session is serialized to the data-session attribute as
// JSON, or "null" when there is none. The token never leaves the server.
func Providers(s *session.Session) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)

		data := "null"
		if s != nil {
			encoded, err := templ.JSONString(clientSession{User: s.User, Expires: s.ExpiresAt.UTC()})
			if err != nil {
				return err
			}
			data = encoded
		}

		if _, err := fmt.Fprintf(w, `<div id="providers" data-session="%s">`, templ.EscapeString(data)); err != nil {
			return err
		}
		if err := children.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
