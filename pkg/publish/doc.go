// Package publish writes rendered HTML to a destination.
//
// Store is implemented by DiskStore (local directory) and S3Store (an S3
// bucket through aws-sdk-go-v2):
//
//	store, _ := publish.NewDiskStore("dist")
//	loc, err := store.Put(ctx, "index.html", html)
//
// Keys are slash-separated relative paths; ".." segments and absolute keys
// are rejected with ErrBadKey.
package publish
