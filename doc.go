// Package objects provides a high-level client for Neva Objects and other
// S3-compatible storage services.
//
// The package wraps the AWS S3 SDK with an opinionated surface: upload a
// local file, check existence, list objects lazily, generate presigned
// download URLs, and delete — without handling request signing, pagination,
// or raw SDK errors.
//
// Basic usage:
//
//	import (
//		"context"
//
//		objects "github.com/nevaobjects/objects-go"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		cfg := objects.NewConfig("ACCESS_KEY", "SECRET_KEY", "my-bucket")
//		client, err := objects.New(ctx, cfg)
//		if err != nil {
//			panic(err)
//		}
//		defer client.Close()
//
//		// Upload; the key defaults to the base filename.
//		key, err := client.Upload(ctx, "./photo.jpg")
//		if err != nil {
//			panic(err)
//		}
//
//		// List objects.
//		it := client.List(ctx, "")
//		for it.Next() {
//			obj := it.Object()
//			println(obj.Key, obj.Size)
//		}
//		if err := it.Err(); err != nil {
//			panic(err)
//		}
//
//		// Presigned download URL, valid for the configured default expiry.
//		url, err := client.DownloadURL(ctx, key, 0)
//		if err != nil {
//			panic(err)
//		}
//		_ = url
//
//		_ = client.Delete(ctx, key)
//	}
//
// # Configuration
//
// Configuration can be built directly or loaded from the environment
// (a .env file is honored when present):
//
//	cfg, err := objects.LoadConfig() // OBJECTS_ACCESS_KEY, OBJECTS_SECRET_KEY, OBJECTS_BUCKET, ...
//
// Endpoint defaults to the canonical Neva Objects host and can point at any
// S3-compatible service; addressing is always path-style.
//
// # Errors
//
// Every backend failure is returned as *Error carrying the backend machine
// code and a failure kind. Catch broadly or narrowly:
//
//	_, err := client.Upload(ctx, "./report.pdf")
//	switch {
//	case errors.Is(err, objects.ErrFileNotFound):
//		// the local source file is missing
//	case objects.IsUploadError(err):
//		// the backend rejected the upload
//	}
//
// A missing local file is deliberately not an upload-kind error so callers
// can special-case it.
//
// # Lifecycle
//
// A Client owns one storage session, acquired in New and released by Close.
// Close is idempotent; any operation after Close fails with an error wrapping
// ErrClientClosed. A single Client is not safe for concurrent use; create one
// client per goroutine — Config is read-only and freely shareable.
package objects
