package s3

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Asset is the stable reference handed back after an upload: the object
// key, its public URL and the image dimensions read from the file.
type Asset struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ItfS3 interface {
	UploadFile(localPath string) (Asset, error)
	DeleteFile(key string) error
}

type s3Client struct {
	client     *s3.S3
	session    *session.Session
	bucketName string
	folder     string
}

func New() (ItfS3, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	return &s3Client{
		client:     s3.New(sess),
		session:    sess,
		bucketName: os.Getenv("AWS_BUCKET_NAME"),
		folder:     "blog_uploads",
	}, nil
}

// UploadFile pushes a local temp file to object storage and removes the
// local copy once the upload succeeded. On failure the temp file is
// left behind for the caller.
func (s *s3Client) UploadFile(localPath string) (Asset, error) {
	uploader := s3manager.NewUploader(s.session)

	width, height := imageDimensions(localPath)

	src, err := os.Open(localPath)
	if err != nil {
		return Asset{}, err
	}

	key := fmt.Sprintf("%s/%d-%s", s.folder, time.Now().UnixNano(), filepath.Base(localPath))

	uploadOutput, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
		Body:   src,
	})
	src.Close()
	if err != nil {
		return Asset{}, err
	}

	if err := os.Remove(localPath); err != nil {
		fmt.Println("Failed to remove temp file", localPath)
	}

	return Asset{
		ID:     key,
		URL:    uploadOutput.Location,
		Width:  width,
		Height: height,
	}, nil
}

func (s *s3Client) DeleteFile(key string) error {
	decodedKey, err := url.QueryUnescape(key)
	if err != nil {
		return fmt.Errorf("failed to decode object key: %w", err)
	}

	_, err = s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(decodedKey),
	})

	return err
}

func imageDimensions(localPath string) (int, int) {
	f, err := os.Open(localPath)
	if err != nil {
		return 0, 0
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		// webp and friends are not decodable here, dimensions stay zero
		return 0, 0
	}
	return cfg.Width, cfg.Height
}

// ExtractKey recovers the object key from a stored asset URL, used when
// only the URL survived in older records.
func ExtractKey(fileURL string) string {
	parts := strings.Split(fileURL, ".com/")
	if len(parts) > 1 {
		return parts[1]
	}
	return fileURL
}

func newSession() (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	})

	if err != nil {
		return nil, err
	}

	return sess, nil
}
