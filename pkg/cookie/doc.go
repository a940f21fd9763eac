// Package cookie reads and writes HTTP cookies, including sealed cookies that
// are encrypted and authenticated with a key derived from the application
// secret (NEXTAUTH_SECRET).
//
// Sealing uses XChaCha20-Poly1305 from golang.org/x/crypto. The key is derived
// from each secret with HKDF-SHA256 and the cookie name is used as additional
// data. Several secrets can be configured; the first one seals, all of them open.
//
//	man, err := cookie.New([]string{app.AuthSecret}, cookie.WithSecure(true))
//	if err != nil {
//		return err
//	}
//	_ = man.SetSealed(w, "saas.session-token", token)
//	token, err := man.GetSealed(r, "saas.session-token")
//
// Failures are reported with the sentinel errors in errors.go, for example
// ErrCookieNotFound and ErrDecryptionFailed.
package cookie
