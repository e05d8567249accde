package storage

import (
	"bytes"
	"context"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const DefaultBucket = "avatars"

type S3Client interface {
	UploadAvatar(data []byte, filename, contentType string) (string, error)
}

// s3API is the slice of the AWS client the storage layer actually uses.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type storageClient struct {
	bucket   string
	client   s3API
	resolver URLResolver
}

func NewStorageClient() (S3Client, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		bucket = DefaultBucket
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "auto"
	}

	endpoint := ResolveEndpoint()
	creds := credentials.NewStaticCredentialsProvider(
		os.Getenv("S3_ACCESS_KEY_ID"),
		os.Getenv("S3_SECRET_ACCESS_KEY"),
		"",
	)

	cfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(region),
		config.WithCredentialsProvider(creds),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		// Supabase and minio both route on the path, not the host
		o.UsePathStyle = true
	})

	return &storageClient{
		bucket:   bucket,
		client:   client,
		resolver: ResolverFor(endpoint),
	}, nil
}

// ResolveEndpoint prefers the explicit S3_ENDPOINT and otherwise derives
// the S3-compatible endpoint from the managed-platform base URL.
func ResolveEndpoint() string {
	if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	if base := os.Getenv("SUPABASE_URL"); base != "" {
		return strings.TrimRight(base, "/") + "/storage/v1/s3"
	}
	return ""
}

// UploadAvatar streams the payload to the bucket under a fresh object key
// with a public-read policy and returns the public URL.
func (s *storageClient) UploadAvatar(data []byte, filename, contentType string) (string, error) {
	key := NewObjectKey(filename)
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filename))
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	}

	_, err := s.client.PutObject(context.Background(), input)
	if err != nil {
		return "", err
	}
	return s.resolver.PublicURL(s.bucket, key), nil
}
