package storage

import (
	"bytes"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"

	"github.com/previewlab/thumbd/cmd/thumbd/config"
)

// AWS keeps generated thumbnails in an S3 bucket. Thumbnails are always PNG.
type AWS struct {
	bucket     *string
	client     *s3.S3
	uploader   *s3manager.Uploader
	downloader *s3manager.Downloader
}

// NewAWS returns nil when the settings are incomplete, which disables
// storage-backed features.
func NewAWS(settings config.AWS) *AWS {
	if settings.AccessKey == "" || settings.BucketName == "" || settings.Region == "" || settings.Secret == "" {
		return nil
	}

	sess := session.Must(session.NewSession(&aws.Config{
		Endpoint:    &settings.Endpoint,
		Region:      aws.String(settings.Region),
		Credentials: credentials.NewStaticCredentials(settings.AccessKey, settings.Secret, ""),
		MaxRetries:  aws.Int(3),
	}))

	return &AWS{
		bucket:     aws.String(settings.BucketName),
		client:     s3.New(sess),
		uploader:   s3manager.NewUploader(sess),
		downloader: s3manager.NewDownloader(sess),
	}
}

// Ping verifies the bucket is reachable, retrying with exponential backoff.
func (storage *AWS) Ping() error {
	return backoff.Retry(func() error {
		_, err := storage.client.HeadBucket(&s3.HeadBucketInput{
			Bucket: storage.bucket,
		})
		return err
	}, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5))
}

// Upload -
func (storage *AWS) Upload(body io.Reader, filename string) error {
	_, err := storage.uploader.Upload(&s3manager.UploadInput{
		Bucket:      storage.bucket,
		Key:         aws.String(filename),
		Body:        body,
		ContentType: aws.String("image/png"),
	})
	return errors.Wrap(err, filename)
}

// Download -
func (storage *AWS) Download(filename string) (io.Reader, error) {
	buf := aws.NewWriteAtBuffer([]byte{})

	if _, err := storage.downloader.Download(buf, &s3.GetObjectInput{
		Bucket: storage.bucket,
		Key:    aws.String(filename),
	}); err != nil {
		return nil, errors.Wrap(err, filename)
	}

	return bytes.NewReader(buf.Bytes()), nil
}

// Exists -
func (storage *AWS) Exists(filename string) bool {
	_, err := storage.client.HeadObject(&s3.HeadObjectInput{
		Bucket: storage.bucket,
		Key:    aws.String(filename),
	})
	return err == nil
}
