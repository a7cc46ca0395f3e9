package deploy

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/calyx-ui/calyx/internal/errors"
)

// API is the slice of the S3 client the publisher uses. Satisfied by
// *s3.Client; tests substitute a fake.
type API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// NewClientFromEnv creates an S3 client for the given region using the
// standard AWS credential environment variables.
func NewClientFromEnv(region string) *s3.Client {
	cfg := aws.Config{
		Region: region,
		Credentials: aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
				SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
				SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			}, nil
		}),
	}
	return s3.NewFromConfig(cfg)
}

// Publisher uploads a rendered output directory to a bucket.
type Publisher struct {
	client API
	bucket string
	prefix string
}

// New creates a publisher for the given bucket and key prefix.
func New(client API, bucket, prefix string) *Publisher {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Publisher{client: client, bucket: bucket, prefix: prefix}
}

// contentTypes maps file extensions to their MIME types. Extensions not
// listed fall back to application/octet-stream.
var contentTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "text/javascript; charset=utf-8",
	".json":  "application/json",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".txt":   "text/plain; charset=utf-8",
	".xml":   "application/xml",
	".woff":  "font/woff",
	".woff2": "font/woff2",
}

// ContentType returns the MIME type for a file name.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Publish uploads every file under dir and returns the set of keys written.
func (p *Publisher) Publish(ctx context.Context, dir string) (map[string]bool, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.New("C102").WithDetail("Output directory " + dir + " does not exist").Wrap(err)
	}

	uploaded := make(map[string]bool)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := p.prefix + filepath.ToSlash(rel)

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String(ContentType(path)),
		})
		if err != nil {
			return errors.New("C101").WithDetail("Failed to upload " + key).Wrap(err)
		}

		log.Debug().Str("key", key).Msg("uploaded")
		uploaded[key] = true
		return nil
	})
	if err != nil {
		if _, ok := err.(*errors.CalyxError); ok {
			return nil, err
		}
		return nil, errors.New("C101").Wrap(err)
	}

	log.Info().Int("files", len(uploaded)).Str("bucket", p.bucket).Msg("published")
	return uploaded, nil
}

// Prune deletes remote objects under the prefix that are not in keep.
// It returns the number of objects deleted.
func (p *Publisher) Prune(ctx context.Context, keep map[string]bool) (int, error) {
	deleted := 0
	paginator := s3.NewListObjectsV2Paginator(p.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(p.prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return deleted, errors.New("C101").Wrap(err)
		}

		for _, obj := range page.Contents {
			if obj.Key == nil || keep[*obj.Key] {
				continue
			}
			_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(p.bucket),
				Key:    obj.Key,
			})
			if err != nil {
				return deleted, errors.New("C101").WithDetail("Failed to delete " + *obj.Key).Wrap(err)
			}
			deleted++
		}
	}

	if deleted > 0 {
		log.Info().Int("objects", deleted).Msg("pruned stale objects")
	}
	return deleted, nil
}
