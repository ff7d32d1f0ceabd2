package services

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// The four buckets the portfolio stores images in. Uploads to any other
// bucket name are refused.
var mediaBuckets = map[string]bool{
	"avatars":     true,
	"experiences": true,
	"projects":    true,
	"about":       true,
}

// MediaStore uploads portfolio images to S3-compatible object storage.
// It is online-only: there is no local spool, and callers are expected to
// hold the image until a connection exists.
type MediaStore struct {
	client    *s3.Client
	publicURL string
	logger    zerolog.Logger
	now       func() time.Time
}

// NewMediaStore builds a MediaStore against the given endpoint. publicURL
// is the base under which uploaded objects are served.
func NewMediaStore(ctx context.Context, endpoint, region, publicURL string, logger zerolog.Logger) (*MediaStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading object storage config: %w", err)
	}
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return &MediaStore{
		client:    client,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger.With().Str("component", "media").Logger(),
		now:       time.Now,
	}, nil
}

// Upload stores one image and returns its public URL. Object names are
// timestamped so repeated uploads of the same file never collide.
func (m *MediaStore) Upload(ctx context.Context, bucket, fileName, contentType string, body io.Reader) (string, error) {
	if !mediaBuckets[bucket] {
		return "", fmt.Errorf("unknown media bucket %q", bucket)
	}
	key := m.objectName(fileName)
	_, err := m.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("uploading to bucket %s: %w", bucket, err)
	}
	url := fmt.Sprintf("%s/%s/%s", m.publicURL, bucket, key)
	m.logger.Info().Str("bucket", bucket).Str("key", key).Msg("media uploaded")
	return url, nil
}

// Delete removes one object by its public URL. Unknown URLs are ignored so
// record deletion never fails over a missing image.
func (m *MediaStore) Delete(ctx context.Context, url string) error {
	bucket, key, ok := m.parseURL(url)
	if !ok {
		return nil
	}
	_, err := m.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (m *MediaStore) objectName(fileName string) string {
	ext := path.Ext(fileName)
	return fmt.Sprintf("%d-%04d%s", m.now().UnixMilli(), rand.Intn(10000), ext)
}

func (m *MediaStore) parseURL(url string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(url, m.publicURL+"/")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || !mediaBuckets[bucket] || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
