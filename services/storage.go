package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"autobot_site_go/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// XLSXContentType is the MIME type of spreadsheet exports
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportStorage keeps generated lead workbooks under date-partitioned keys
type ExportStorage interface {
	Put(ctx context.Context, key string, body io.Reader, size int64) (*StoredExport, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// Link returns a URL the sales team can open for ttl
	Link(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// StoredExport is the result of a Put
type StoredExport struct {
	Key  string
	Size int64
}

// Storage is where exports go. InitializeStorage sets it.
var Storage ExportStorage

// InitializeStorage picks R2 when all of its credentials are set and the
// bucket answers, and the local export directory otherwise.
func InitializeStorage(cfg *config.Config) {
	if cfg.R2AccountID == "" || cfg.R2AccessKeyID == "" || cfg.R2SecretAccessKey == "" || cfg.R2BucketName == "" {
		Storage = NewLocalStorage(cfg.ExportDir)
		log.Printf("[INFO] Exports stored locally in %s", cfg.ExportDir)
		return
	}

	r2, err := NewR2Storage(cfg)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		_, err = r2.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(r2.bucket)})
		cancel()
	}
	if err != nil {
		log.Printf("[WARNING] R2 unavailable (%v), storing exports in %s", err, cfg.ExportDir)
		Storage = NewLocalStorage(cfg.ExportDir)
		return
	}

	Storage = r2
	log.Printf("[INFO] Exports stored in R2 bucket %s", r2.bucket)
}

// R2Storage stores exports in a Cloudflare R2 bucket through the S3 API
type R2Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

// NewR2Storage builds an S3 client pointed at the account's R2 endpoint
func NewR2Storage(cfg *config.Config) (*R2Storage, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID))
		o.UsePathStyle = true
	})
	return &R2Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.R2BucketName,
	}, nil
}

func (r *R2Storage) Put(ctx context.Context, key string, body io.Reader, size int64) (*StoredExport, error) {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(exportContentType(key)),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store export %s: %w", key, err)
	}
	return &StoredExport{Key: key, Size: size}, nil
}

func (r *R2Storage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch export %s: %w", key, err)
	}
	return obj.Body, nil
}

func (r *R2Storage) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete export %s: %w", key, err)
	}
	return nil
}

// Link presigns a GET so the bucket can stay private
func (r *R2Storage) Link(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := r.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("failed to sign link for %s: %w", key, err)
	}
	return req.URL, nil
}

// LocalStorage writes exports below a directory on disk
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

func (l *LocalStorage) path(key string) string {
	return filepath.Join(l.dir, filepath.FromSlash(key))
}

func (l *LocalStorage) Put(ctx context.Context, key string, body io.Reader, size int64) (*StoredExport, error) {
	path := l.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create export %s: %w", key, err)
	}
	defer f.Close()

	written, err := io.Copy(f, body)
	if err != nil {
		return nil, fmt.Errorf("failed to write export %s: %w", key, err)
	}
	return &StoredExport{Key: key, Size: written}, nil
}

func (l *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(l.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch export %s: %w", key, err)
	}
	return f, nil
}

// Delete treats a missing export as already deleted
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := os.Remove(l.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete export %s: %w", key, err)
	}
	return nil
}

// Link points at the file itself; local links never expire
func (l *LocalStorage) Link(ctx context.Context, key string, ttl time.Duration) (string, error) {
	abs, err := filepath.Abs(l.path(key))
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func exportContentType(key string) string {
	if strings.EqualFold(filepath.Ext(key), ".xlsx") {
		return XLSXContentType
	}
	return "application/octet-stream"
}

// GenerateExportKey returns exports/<kind>/<UTC date>/<uuid><ext>
func GenerateExportKey(kind string, at time.Time, ext string) string {
	return fmt.Sprintf("exports/%s/%s/%s%s", kind, at.UTC().Format(DateLayout), uuid.New().String(), ext)
}
