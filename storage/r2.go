package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sekenkampus/api-go/config"
)

// Client is the object-storage collaborator. Listing photos and avatars live
// behind it; the rest of the system only ever sees URLs.
type Client interface {
	Put(ctx context.Context, data []byte, filename, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
	PublicURL(key string) string
}

type R2Client struct {
	s3     *s3.Client
	config *config.R2Config
}

func NewR2Client(cfg *config.R2Config) *R2Client {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &R2Client{s3: client, config: cfg}
}

// Put uploads data under a generated key and returns the public URL.
func (c *R2Client) Put(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	key := generateKey(filename)

	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return c.PublicURL(key), nil
}

// Delete removes one object, addressed by its public URL or raw key.
func (c *R2Client) Delete(ctx context.Context, url string) error {
	key := strings.TrimPrefix(url, c.config.PublicURL+"/")

	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.config.BucketName),
		Key:    aws.String(key),
	})
	return err
}

// PresignPut returns a one-hour upload URL for direct client uploads.
func (c *R2Client) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(c.s3)
	req, err := presigner.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (c *R2Client) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.s3.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (c *R2Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", c.config.PublicURL, key)
}

func generateKey(filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("uploads/listings/%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
}
