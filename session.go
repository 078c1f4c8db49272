package objects

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Client is the subset of the AWS S3 API the session depends on.
// Exported so tests and advanced callers can inject their own implementation.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Presigner generates presigned GET requests.
type S3Presigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// session is the sole point of contact with the AWS SDK. It owns the
// connection scope for one Client; after close every primitive fails fast
// with ErrClientClosed. Primitives are direct pass-throughs with no retry
// logic beyond what the SDK transport already provides.
type session struct {
	api     S3Client
	presign S3Presigner
	bucket  string
	closed  atomic.Bool
}

func newSession(ctx context.Context, cfg Config, opts *clientOptions) (*session, error) {
	api := opts.s3Client
	presigner := opts.presigner

	if api == nil {
		loadOpts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			)),
		}
		if opts.httpClient != nil {
			loadOpts = append(loadOpts, awsconfig.WithHTTPClient(opts.httpClient))
		}
		loadOpts = append(loadOpts, opts.awsConfigOptions...)

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
		if err != nil {
			return nil, &Error{Kind: KindGeneric, Code: unknownCode, Message: "failed to load AWS config: " + err.Error(), Err: err}
		}

		api = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true // virtual-hosted buckets are not assumed resolvable on S3-compatible hosts
		})
	}

	// A presign client can only be derived from the concrete SDK client.
	// Injected S3Client implementations must bring their own presigner.
	if presigner == nil {
		if real, ok := api.(*s3.Client); ok {
			presigner = s3.NewPresignClient(real)
		}
	}

	return &session{
		api:     api,
		presign: presigner,
		bucket:  cfg.Bucket,
	}, nil
}

func (s *session) isClosed() bool {
	return s.closed.Load()
}

// close releases the session. Idempotent; the underlying SDK client holds no
// per-session state, so release amounts to refusing further use.
func (s *session) close() {
	s.closed.Store(true)
}

func (s *session) put(ctx context.Context, key string, body io.Reader, contentType string, metadata map[string]string) error {
	if s.isClosed() {
		return ErrClientClosed
	}
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
		Metadata:    metadata,
	})
	return err
}

// head reports object existence. A confirmed not-found response is
// (false, nil); any other failure is returned as-is for the caller to map.
func (s *session) head(ctx context.Context, key string) (bool, error) {
	if s.isClosed() {
		return false, ErrClientClosed
	}
	_, err := s.api.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// listPage fetches one page of the listing. An empty returned token means
// the listing is exhausted.
func (s *session) listPage(ctx context.Context, prefix, token string, pageSize int32) ([]ObjectInfo, string, error) {
	if s.isClosed() {
		return nil, "", ErrClientClosed
	}

	in := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	}
	if token != "" {
		in.ContinuationToken = aws.String(token)
	}
	if pageSize > 0 {
		in.MaxKeys = aws.Int32(pageSize)
	}

	out, err := s.api.ListObjectsV2(ctx, in)
	if err != nil {
		return nil, "", err
	}

	infos := make([]ObjectInfo, 0, len(out.Contents))
	for _, obj := range out.Contents {
		info := ObjectInfo{
			Key:  aws.ToString(obj.Key),
			Size: aws.ToInt64(obj.Size),
			ETag: strings.Trim(aws.ToString(obj.ETag), `"`),
		}
		if obj.LastModified != nil {
			info.LastModified = *obj.LastModified
		}
		infos = append(infos, info)
	}

	next := ""
	if aws.ToBool(out.IsTruncated) {
		next = aws.ToString(out.NextContinuationToken)
	}
	return infos, next, nil
}

func (s *session) delete(ctx context.Context, key string) error {
	if s.isClosed() {
		return ErrClientClosed
	}
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

func (s *session) presignGet(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	if s.isClosed() {
		return "", ErrClientClosed
	}
	if s.presign == nil {
		return "", &Error{Kind: KindGeneric, Code: unknownCode, Message: "no presigner configured for custom S3 client"}
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiresIn))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
