package rays

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

const UploadTimeout = 10 * time.Second

// UploadCfg selects the S3 (or S3-compatible) bucket rendered files are copied to.
type UploadCfg struct {
	Bucket    string
	Region    string
	Endpoint  string // empty for AWS, set for MinIO and friends
	AccessKey string // empty to use the default credential chain
	SecretKey string
	Prefix    string // key prefix, e.g. "renders/"
}

func (c UploadCfg) Enabled() bool { return c.Bucket != "" }

// Uploader copies output files to a bucket.
type Uploader struct {
	cfg    UploadCfg
	client s3iface.S3API
}

func NewUploader(cfg UploadCfg) (*Uploader, error) {
	awsCfg := &aws.Config{}
	if cfg.Region != "" {
		awsCfg.Region = aws.String(cfg.Region)
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create S3 session: %w", err)
	}
	return newUploaderWithClient(cfg, s3.New(sess)), nil
}

func newUploaderWithClient(cfg UploadCfg, client s3iface.S3API) *Uploader {
	return &Uploader{cfg: cfg, client: client}
}

// Key is the object key a local file is stored under.
func (u *Uploader) Key(file string) string {
	return path.Join(u.cfg.Prefix, filepath.Base(file))
}

func contentType(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".gif":
		return "image/gif"
	case ".png":
		return "image/png"
	}
	return "application/octet-stream"
}

// UploadFile puts one file into the bucket and returns its key.
func (u *Uploader) UploadFile(ctx context.Context, file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	key := u.Key(file)
	size := int64(len(data))
	_, err = u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType(file)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	log.Printf("Uploaded %s to s3://%s (%d bytes)", key, u.cfg.Bucket, size)
	return key, nil
}
