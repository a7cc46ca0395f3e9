package deploy

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/calyx-ui/calyx/internal/errors"
)

// fakeS3 records uploads and serves a canned listing.
type fakeS3 struct {
	puts    map[string]string // key -> content type
	bodies  map[string]string // key -> body
	remote  []string
	deleted []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		puts:   make(map[string]string),
		bodies: make(map[string]string),
	}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.puts[*params.Key] = aws.ToString(params.ContentType)
	f.bodies[*params.Key] = string(body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	var objs []types.Object
	for _, key := range f.remote {
		if strings.HasPrefix(key, aws.ToString(params.Prefix)) {
			objs = append(objs, types.Object{Key: aws.String(key)})
		}
	}
	return &s3.ListObjectsV2Output{
		Contents:    objs,
		IsTruncated: aws.Bool(false),
	}, nil
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestPublish(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"index.html":       "<!DOCTYPE html>",
		"assets/app.css":   "body{}",
		"assets/bundle.js": "void 0",
	})

	fake := newFakeS3()
	pub := New(fake, "demo-site", "site")

	keys, err := pub.Publish(context.Background(), dir)
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("uploaded %d keys, want 3: %v", len(keys), keys)
	}

	if ct := fake.puts["site/index.html"]; !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("index.html content type = %q", ct)
	}
	if ct := fake.puts["site/assets/app.css"]; !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("app.css content type = %q", ct)
	}
	if fake.bodies["site/index.html"] != "<!DOCTYPE html>" {
		t.Fatal("body not uploaded intact")
	}
}

func TestPublishMissingDir(t *testing.T) {
	pub := New(newFakeS3(), "demo-site", "")
	_, err := pub.Publish(context.Background(), filepath.Join(t.TempDir(), "nope"))

	ce, ok := err.(*errors.CalyxError)
	if !ok || ce.Code != "C102" {
		t.Fatalf("got %v, want C102", err)
	}
}

func TestPrune(t *testing.T) {
	fake := newFakeS3()
	fake.remote = []string{
		"site/index.html",
		"site/stale.html",
		"site/assets/old.css",
		"other/untouched.html",
	}

	pub := New(fake, "demo-site", "site")
	keep := map[string]bool{"site/index.html": true}

	deleted, err := pub.Prune(context.Background(), keep)
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("deleted = %d, want 2", deleted)
	}
	for _, key := range fake.deleted {
		if key == "site/index.html" || key == "other/untouched.html" {
			t.Fatalf("deleted %q, which should have been kept", key)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"page.html", "text/html; charset=utf-8"},
		{"logo.SVG", "image/svg+xml"},
		{"archive.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		if got := ContentType(tt.name); got != tt.want {
			t.Errorf("ContentType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
