package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type S3Config struct {
	Bucket        string
	Region        string
	Endpoint      string
	PublicBaseURL string
	AccessKeyID   string
	SecretKey     string
}

// S3PhotoStore keeps barber photos in a bucket. A custom endpoint switches to
// path-style addressing for S3-compatible stores such as MinIO.
type S3PhotoStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3PhotoStore(cfg S3Config) *S3PhotoStore {
	opts := s3.Options{
		Region: cfg.Region,
	}
	if cfg.AccessKeyID != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		)
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	return &S3PhotoStore{
		client:  s3.New(opts),
		bucket:  cfg.Bucket,
		baseURL: publicBaseURL(cfg),
	}
}

func publicBaseURL(cfg S3Config) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}

// ObjectKey names a fresh object per upload so CDNs never serve a stale photo.
func ObjectKey(barberID uint) string {
	return fmt.Sprintf("barbers/%d/%s.webp", barberID, uuid.NewString())
}

func (s *S3PhotoStore) PutBarberPhoto(
	ctx context.Context,
	barberID uint,
	contentType string,
	data []byte,
) (string, error) {

	key := ObjectKey(barberID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", httperr.Transient("photo_upload_failed", "Falha ao enviar a foto. Tente novamente.", err)
	}

	return s.baseURL + "/" + key, nil
}

var _ catalog.PhotoStore = (*S3PhotoStore)(nil)
