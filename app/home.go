package app

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/saasbase/pkg/session"
)

// Home is the landing page. It greets the signed-in user found in the
// request context.
func Home() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s, _ := session.FromContext(ctx)
		if !s.IsAuthenticated() {
			_, err := io.WriteString(w, `<main><h1>SaaS Boilerplate</h1><p>You are not signed in.</p></main>`)
			return err
		}

		name := s.User.Name
		if name == "" {
			name = s.User.Email
		}
		if name == "" {
			name = s.User.ID
		}
		_, err := fmt.Fprintf(w, `<main><h1>SaaS Boilerplate</h1><p>Signed in as %s.</p></main>`, templ.EscapeString(name))
		return err
	})
}
