package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "superstore-cli/config"
)

// ExportUploader defines the interface for shipping export files offsite
type ExportUploader interface {
	UploadExport(filename string, content []byte) (string, error)
}

// S3ExportService uploads CSV exports to an S3 bucket
type S3ExportService struct {
	client *s3.Client
	bucket string
}

var exportUploaderInstance ExportUploader

// InitS3ExportService initializes the S3 export uploader with AWS credentials.
// It should only be called when an export bucket is configured.
func InitS3ExportService() (ExportUploader, error) {
	cfg := appConfig.GetConfig()

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig)

	exportUploaderInstance = &S3ExportService{
		client: client,
		bucket: cfg.AWSS3Bucket,
	}
	return exportUploaderInstance, nil
}

// GetExportUploader returns the initialized uploader, or nil when exports stay
// local only
func GetExportUploader() ExportUploader {
	return exportUploaderInstance
}

// SetExportUploader sets the uploader instance (primarily for testing)
func SetExportUploader(uploader ExportUploader) {
	exportUploaderInstance = uploader
}

// UploadExport uploads an export file to S3 under exports/ and returns the
// object key
func (s *S3ExportService) UploadExport(filename string, content []byte) (string, error) {
	key := fmt.Sprintf("exports/%d_%s", time.Now().Unix(), filename)

	_, err := s.client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return key, nil
}
