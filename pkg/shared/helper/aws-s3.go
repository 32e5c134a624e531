package helper

import (
	"bytes"
	"context"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Store uploads public files (item images) to an S3 compatible bucket.
type S3Store struct {
	client    *s3.S3
	bucket    string
	publicURL string
}

func NewS3StoreFromEnv() (*S3Store, error) {
	s3Config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(GetenvStr("S3_API_KEY", ""), GetenvStr("S3_SECRET", ""), ""),
		Endpoint:         aws.String(GetenvStr("S3_ENDPOINT", "")),
		Region:           aws.String(GetenvStr("S3_REGION", "us-east-1")),
		S3ForcePathStyle: aws.Bool(GetenvBool("S3_FORCE_PATH_STYLE", false)),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, err
	}
	bucket := GetenvStr("S3_BUCKET", "medicare")
	return &S3Store{
		client:    s3.New(sess),
		bucket:    bucket,
		publicURL: strings.TrimRight(GetenvStr("S3_PUBLIC_URL", GetenvStr("S3_ENDPOINT", "")+"/"+bucket), "/"),
	}, nil
}

// ContentTypeFor guesses the content type from the file extension.
func ContentTypeFor(fileName string) string {
	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}

// Upload stores file under key and returns its public link.
func (s *S3Store) Upload(ctx context.Context, key string, file []byte) (string, error) {
	contentType := ContentTypeFor(key)
	contentDisposition := "inline"
	if contentType == "application/pdf" {
		contentDisposition = "attachment"
	}
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:             aws.String(s.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(file),
		ContentType:        aws.String(contentType),
		ACL:                aws.String("public-read"),
		ContentDisposition: aws.String(contentDisposition),
	})
	if err != nil {
		return "", err
	}
	return s.publicURL + "/" + key, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	return err
}

// KeyFromURL returns the object key of a link produced by Upload, or "" for foreign links.
func (s *S3Store) KeyFromURL(link string) string {
	prefix := s.publicURL + "/"
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
