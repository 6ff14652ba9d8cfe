// file: internals/services/storage/storage.go
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"bursary_backend/internals/configs"
	"bursary_backend/internals/constants"
)

// Store wraps the object storage used for receipt and invoice attachments.
type Store struct {
	Client *minio.Client
	Bucket string
}

func NewFromEnv() (*Store, error) {
	endpoint := configs.Conf.GetString("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil, fmt.Errorf("MINIO_ENDPOINT is not set")
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			configs.Conf.GetString("MINIO_ACCESS_KEY"),
			configs.Conf.GetString("MINIO_SECRET_KEY"),
			"",
		),
		Secure: configs.Conf.GetBool("MINIO_USE_SSL"),
	})
	if err != nil {
		return nil, err
	}

	return &Store{
		Client: client,
		Bucket: configs.Conf.GetString("MINIO_BUCKET"),
	}, nil
}

func (s *Store) EnsureBucket(ctx context.Context) error {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.Client.MakeBucket(ctx, s.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// UploadAttachment stores an uploaded receipt/invoice. Images are normalized
// to webp first; PDFs go up untouched. Returns the object URL.
func (s *Store) UploadAttachment(ctx context.Context, folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, src); err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}

	var (
		data        []byte
		contentType string
		filename    = fileHeader.Filename
	)

	switch constants.DetectAttachmentType(fileHeader.Filename) {
	case constants.AttachmentImage:
		converted, err := NormalizeImage(buf.Bytes(), fileHeader.Filename, configs.Conf.GetInt("RECEIPT_MAX_WIDTH"))
		if err != nil {
			return "", err
		}
		data = converted
		contentType = "image/webp"
		filename = replaceExt(filename, ".webp")
	case constants.AttachmentPDF:
		data = buf.Bytes()
		contentType = "application/pdf"
	default:
		return "", fmt.Errorf("unsupported attachment type: %s", fileHeader.Filename)
	}

	objectName := GenerateObjectName(folder, filename)
	_, err = s.Client.PutObject(ctx, s.Bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return s.ObjectURL(objectName), nil
}

func (s *Store) Remove(ctx context.Context, objectName string) error {
	return s.Client.RemoveObject(ctx, s.Bucket, objectName, minio.RemoveObjectOptions{})
}

// ObjectURL builds the public URL for an object.
func (s *Store) ObjectURL(objectName string) string {
	scheme := "http"
	if configs.Conf.GetBool("MINIO_USE_SSL") {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s",
		scheme,
		s.Client.EndpointURL().Host,
		s.Bucket,
		url.PathEscape(objectName),
	)
}

/* ===============================
   Object naming
=================================*/

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// GenerateObjectName yields folder/YYYYMMDD-<uuid>-<safe name> so uploads
// never collide.
func GenerateObjectName(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}

func replaceExt(filename, newExt string) string {
	for i := len(filename) - 1; i >= 0; i-- {
		if filename[i] == '.' {
			return filename[:i] + newExt
		}
	}
	return filename + newExt
}
