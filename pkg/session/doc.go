// Package session keeps server-side sessions for signed-in users.
//
// A Manager reads the session token from a Transport (a sealed cookie by
// default), loads the session from a Store and exposes it to handlers through
// the request context. Create issues a session for a signed-in user; the
// sign-in flow itself lives outside this package. Two stores are provided: MongoStore keeps sessions in
// the "sessions" collection with a TTL index on expires_at, MemoryStore keeps
// them in process memory.
//
//	man := session.NewFromConfig(cfg,
//		session.WithStore(session.NewMongoStore(db)),
//		session.WithCookieManager(cookies),
//		session.WithLogger(log),
//	)
//	defer man.Close()
//
//	r.Use(session.Middleware(man))
//	r.With(session.RequireAuth).Get("/api/...", handler)
//
// Resolve returns (nil, nil) when a request carries no session or an expired
// one, so page handlers can treat "no session" as a normal state. Every
// resolved session has its activity queued; updates and written by a background goroutine; the queue never
// blocks a request.
package session
