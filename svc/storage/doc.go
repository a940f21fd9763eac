// Package storage keeps small per-user item lists under "{type}_{userID}" keys.
//
// The Service validates keys and reports failures; persistence is delegated to
// a Repository. NopRepository, the default, stores nothing. MongoRepository
// keeps one document per key in the "storage" collection and CachedRepository
// puts a Redis read-through cache in front of any repository.
//
//	repo := storage.Repository(storage.NewMongoRepository(db))
//	if rdb != nil {
//		repo = storage.NewCachedRepository(repo, rdb)
//	}
//	svc := storage.NewService(storage.WithRepository(repo), storage.WithLogger(log))
//
//	items, err := svc.Get(ctx, storage.NewKey("bookmarks", userID))
package storage
