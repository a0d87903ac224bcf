package utils

import (
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type R2Options struct {
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // https://<account-id>.r2.cloudflarestorage.com
	PublicDomain    string // custom domain or r2.dev URL
}

// objectAPI is the subset of *s3.Client used here.
type objectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// R2Client uploads product images to an S3-compatible bucket.
type R2Client struct {
	S3           objectAPI
	Bucket       string
	PublicDomain string
	now          func() time.Time
}

func NewCloudClient(ctx context.Context, o R2Options) (*R2Client, error) {
	if o.Bucket == "" || o.AccessKeyID == "" || o.SecretAccessKey == "" || o.Endpoint == "" {
		return nil, fmt.Errorf("missing R2 env vars (R2_BUCKET, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_ENDPOINT)")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.AccessKeyID, o.SecretAccessKey, ""),
		),
		config.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("r2 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(so *s3.Options) {
		so.BaseEndpoint = aws.String(o.Endpoint)
		so.UsePathStyle = true // required for R2
	})

	return &R2Client{S3: client, Bucket: o.Bucket, PublicDomain: o.PublicDomain, now: time.Now}, nil
}

// UploadImages stores files under sellers/<sellerID>/ and returns their
// public URLs in the same order. If any upload fails, the objects already
// written by this call are deleted.
func (r *R2Client) UploadImages(ctx context.Context, sellerID string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	written := make([]string, 0, len(files))

	for _, fh := range files {
		objectName := ImageObjectName(sellerID, fh.Filename, r.clock())

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = mime.TypeByExtension(filepath.Ext(objectName))
		}
		if ct == "" {
			ct = "application/octet-stream"
		}

		f, err := fh.Open()
		if err != nil {
			_ = r.DeleteObjects(ctx, written)
			return nil, fmt.Errorf("open file: %w", err)
		}

		_, err = r.S3.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(r.Bucket),
			Key:           aws.String(objectName),
			Body:          f,
			ContentLength: aws.Int64(fh.Size),
			ContentType:   aws.String(ct),
		})
		_ = f.Close()
		if err != nil {
			_ = r.DeleteObjects(ctx, written)
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}

		written = append(written, objectName)
		urls = append(urls, r.PublicURL(objectName))
	}

	return urls, nil
}

// DeleteObjects keeps going after a failure and returns the first error.
func (r *R2Client) DeleteObjects(ctx context.Context, objectNames []string) error {
	var firstErr error
	for _, obj := range objectNames {
		if obj == "" {
			continue
		}
		_, err := r.S3.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(r.Bucket),
			Key:    aws.String(obj),
		})
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("delete %s: %w", obj, err)
		}
	}
	return firstErr
}

func (r *R2Client) PublicURL(objectName string) string {
	domain := strings.TrimRight(r.PublicDomain, "/")
	return fmt.Sprintf("%s/%s/%s", domain, r.Bucket, objectName)
}

func (r *R2Client) clock() time.Time {
	if r.now == nil {
		return time.Now()
	}
	return r.now()
}

// ImageObjectName builds a unique key for an uploaded image, keeping the
// lower-cased extension of the original file name.
func ImageObjectName(sellerID, filename string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("sellers/%s/%d-%s%s", sellerID, now.UTC().Unix(), uuid.New().String(), ext)
}
