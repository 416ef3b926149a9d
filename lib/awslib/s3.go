package awslib

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/artie-labs/materializer/lib/config/constants"
	"github.com/artie-labs/materializer/lib/storage"
)

type S3URI struct {
	Bucket string
	Key    string
}

func (s S3URI) String() string {
	return fmt.Sprintf("%s%s/%s", constants.S3Prefix, s.Bucket, s.Key)
}

func ParseS3URI(uri string) (S3URI, error) {
	if !strings.HasPrefix(uri, constants.S3Prefix) {
		return S3URI{}, fmt.Errorf("s3 uri %q does not start with %q", uri, constants.S3Prefix)
	}

	bucket, key, found := strings.Cut(strings.TrimPrefix(uri, constants.S3Prefix), "/")
	if !found || bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return S3URI{}, fmt.Errorf("s3 uri %q must point to an object (s3://bucket/key)", uri)
	}

	return S3URI{Bucket: bucket, Key: key}, nil
}

type S3Client struct {
	client storage.ObjectAPI
}

func NewS3Client(cfg aws.Config) S3Client {
	return S3Client{client: s3.NewFromConfig(cfg)}
}

// DownloadToDir copies the object at [uri] into [dir] and returns the local file path.
func (s S3Client) DownloadToDir(ctx context.Context, uri string, dir string) (string, error) {
	s3URI, err := ParseS3URI(uri)
	if err != nil {
		return "", err
	}

	output, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s3URI.Bucket),
		Key:    aws.String(s3URI.Key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get object %q: %w", s3URI.String(), err)
	}
	defer output.Body.Close()

	filePath := filepath.Join(dir, filepath.Base(s3URI.Key))
	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err = io.Copy(file, output.Body); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("failed to download %q: %w", s3URI.String(), err)
	}

	if err = file.Close(); err != nil {
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return filePath, nil
}

// UploadFile copies the local file at [filePath] to the object at [uri].
func (s S3Client) UploadFile(ctx context.Context, filePath string, uri string) error {
	s3URI, err := ParseS3URI(uri)
	if err != nil {
		return err
	}

	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s3URI.Bucket),
		Key:    aws.String(s3URI.Key),
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to %q: %w", s3URI.String(), err)
	}

	return nil
}
