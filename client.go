package objects

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/google/uuid"
)

// ObjectInfo describes a single stored object. Produced by listings only;
// read-only value semantics.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	ETag         string
}

// Client is a high-level client for Neva Objects S3-compatible storage.
// It owns one storage session; Close releases it. A Client is not safe for
// concurrent use from multiple goroutines — use one client per goroutine or
// serialize access. Independent clients may run concurrently.
type Client struct {
	cfg  Config
	sess *session
	log  *slog.Logger
}

// Option configures a Client at construction time.
type Option func(*clientOptions)

type clientOptions struct {
	s3Client         S3Client
	presigner        S3Presigner
	httpClient       *http.Client
	awsConfigOptions []func(*awsconfig.LoadOptions) error
	logger           *slog.Logger
}

// WithS3Client sets a custom pre-configured S3 client.
// Primarily used for testing with mocks, but also allows advanced client
// customization. Pair with WithPresigner, since a presign client cannot be
// derived from an arbitrary S3Client implementation.
func WithS3Client(client S3Client) Option {
	return func(o *clientOptions) {
		o.s3Client = client
	}
}

// WithPresigner sets a custom presigned-URL generator.
func WithPresigner(p S3Presigner) Option {
	return func(o *clientOptions) {
		o.presigner = p
	}
}

// WithHTTPClient sets a custom HTTP client for backend requests.
// Useful for custom timeout, proxy, or TLS configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithAWSConfigOption adds a custom AWS config option.
func WithAWSConfigOption(option func(*awsconfig.LoadOptions) error) Option {
	return func(o *clientOptions) {
		o.awsConfigOptions = append(o.awsConfigOptions, option)
	}
}

// WithLogger sets a structured logger for debug-level operation records.
// Operations are silent by default.
func WithLogger(log *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = log
	}
}

// New creates a client for the configured bucket. Optional Config fields are
// defaulted before validation; the storage session is acquired here and held
// until Close.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &clientOptions{}
	for _, opt := range opts {
		opt(options)
	}

	sess, err := newSession(ctx, cfg, options)
	if err != nil {
		return nil, err
	}

	log := options.logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Client{
		cfg:  cfg,
		sess: sess,
		log:  log,
	}, nil
}

// UploadOption configures a single Upload call.
type UploadOption func(*uploadOptions)

type uploadOptions struct {
	key         string
	contentType string
	metadata    map[string]string
	generateKey bool
}

// WithKey sets the destination object key instead of deriving it from the
// local filename. The key is normalized before use.
func WithKey(key string) UploadOption {
	return func(o *uploadOptions) {
		o.key = key
	}
}

// WithContentType overrides the media type inferred from the key.
func WithContentType(contentType string) UploadOption {
	return func(o *uploadOptions) {
		o.contentType = contentType
	}
}

// WithMetadata attaches user-defined metadata to the stored object.
func WithMetadata(metadata map[string]string) UploadOption {
	return func(o *uploadOptions) {
		o.metadata = metadata
	}
}

// WithGeneratedKey stores the object under a random UUID-based key, keeping
// the original file extension. Ignored when WithKey is also given.
func WithGeneratedKey() UploadOption {
	return func(o *uploadOptions) {
		o.generateKey = true
	}
}

// Upload streams a local file to the bucket and returns the object key it was
// stored under. Creates or overwrites one remote object. A missing local file
// is reported via ErrFileNotFound, distinct from upload-kind errors.
func (c *Client) Upload(ctx context.Context, localPath string, opts ...UploadOption) (string, error) {
	if c.sess.isClosed() {
		return "", closedError("upload")
	}

	var options uploadOptions
	for _, opt := range opts {
		opt(&options)
	}

	info, err := os.Stat(localPath)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrFileNotFound, localPath)
	}

	var key string
	if options.generateKey && options.key == "" {
		key = uuid.NewString() + strings.ToLower(filepath.Ext(localPath))
	} else {
		key, err = resolveKey(localPath, options.key)
		if err != nil {
			return "", err
		}
	}

	contentType := options.contentType
	if contentType == "" {
		contentType = contentTypeFor(key)
	}

	src, err := os.Open(localPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, localPath)
		}
		return "", newError(KindUpload, err, "failed to open %q", localPath)
	}
	defer func() { _ = src.Close() }()

	if err := c.sess.put(ctx, key, src, contentType, options.metadata); err != nil {
		if errors.Is(err, ErrClientClosed) {
			return "", closedError("upload")
		}
		return "", newError(KindUpload, err, "upload failed for %q", localPath)
	}

	c.log.DebugContext(ctx, "uploaded object",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int64("size", info.Size()))
	return key, nil
}

// Exists checks whether an object exists in the bucket. A confirmed
// not-found response is (false, nil); transport failures surface as a
// download-kind error, never as a silent false.
func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	if c.sess.isClosed() {
		return false, closedError("exists")
	}

	key, err := normalizeKey(key)
	if err != nil {
		return false, err
	}

	found, err := c.sess.head(ctx, key)
	if err != nil {
		if errors.Is(err, ErrClientClosed) {
			return false, closedError("exists")
		}
		return false, newError(KindDownload, err, "existence check failed for %q", key)
	}
	return found, nil
}

// List returns a lazy iterator over objects under the given prefix, in
// backend order. Pages are fetched only as the iterator is advanced; a page
// failure terminates the iteration with a list-kind error while items already
// yielded remain valid. Each call starts a fresh traversal.
func (c *Client) List(ctx context.Context, prefix string, opts ...ListOption) *ObjectIterator {
	var options listOptions
	for _, opt := range opts {
		opt(&options)
	}

	return &ObjectIterator{
		ctx:      ctx,
		sess:     c.sess,
		prefix:   prefix,
		pageSize: options.pageSize,
	}
}

// ListKeys is List projected onto object keys; same traversal, laziness, and
// failure semantics.
func (c *Client) ListKeys(ctx context.Context, prefix string, opts ...ListOption) *KeyIterator {
	return &KeyIterator{objects: c.List(ctx, prefix, opts...)}
}

// DownloadURL generates a presigned GET URL for an object. An expiresIn of
// zero falls back to the configured default; negative values are rejected.
// The object's existence is deliberately not verified — presigning is pure
// URL construction, and a URL for an absent key is valid until dereferenced.
func (c *Client) DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	if c.sess.isClosed() {
		return "", closedError("download url")
	}

	if expiresIn < 0 {
		return "", &Error{Kind: KindGeneric, Code: "InvalidExpiry", Message: fmt.Sprintf("expiry %s is not positive", expiresIn), Err: ErrInvalidExpiry}
	}
	if expiresIn == 0 {
		expiresIn = c.cfg.DefaultExpiry
	}

	key, err := normalizeKey(key)
	if err != nil {
		return "", err
	}

	url, err := c.sess.presignGet(ctx, key, expiresIn)
	if err != nil {
		if errors.Is(err, ErrClientClosed) {
			return "", closedError("download url")
		}
		return "", newError(KindDownload, err, "failed to generate URL for %q", key)
	}

	c.log.DebugContext(ctx, "generated download url",
		slog.String("key", key),
		slog.Duration("expires_in", expiresIn))
	return url, nil
}

// Delete removes an object from the bucket. Failures map to the generic
// error kind.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c.sess.isClosed() {
		return closedError("delete")
	}

	key, err := normalizeKey(key)
	if err != nil {
		return err
	}

	if err := c.sess.delete(ctx, key); err != nil {
		if errors.Is(err, ErrClientClosed) {
			return closedError("delete")
		}
		return newError(KindGeneric, err, "failed to delete %q", key)
	}

	c.log.DebugContext(ctx, "deleted object", slog.String("key", key))
	return nil
}

// Close releases the storage session. Idempotent; after the first call every
// operation fails with an error wrapping ErrClientClosed.
func (c *Client) Close() error {
	c.sess.close()
	return nil
}

// String identifies the client by bucket and endpoint for diagnostics.
// Credentials are never included.
func (c *Client) String() string {
	return fmt.Sprintf("objects.Client(bucket=%s, endpoint=%s)", c.cfg.Bucket, c.cfg.Endpoint)
}
