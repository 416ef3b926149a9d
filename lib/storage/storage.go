package storage

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectAPI is the subset of the S3 client used to move objects around.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Store copies whole files between the local disk and object storage URIs.
type Store interface {
	DownloadToDir(ctx context.Context, uri string, dir string) (string, error)
	UploadFile(ctx context.Context, filePath string, uri string) error
}
