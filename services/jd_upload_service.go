package services

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

const maxJDFileSize = 10 * 1024 * 1024

var jdNameCleanPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// JDFile is the stored reference to an uploaded job-description file.
type JDFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"` // "pdf" or "docx"
}

// JDUploadService validates and uploads job-description files. Checks run
// before any network call; an upload failure leaves no file reference behind.
type JDUploadService struct {
	s3Client *s3.S3
	bucket   string
	region   string
}

func NewJDUploadService() (*JDUploadService, error) {
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	region := os.Getenv("AWS_REGION")
	bucket := os.Getenv("AWS_S3_BUCKET")

	if accessKey == "" || secretKey == "" || region == "" || bucket == "" {
		return nil, fmt.Errorf("AWS credentials not configured")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %v", err)
	}

	return &JDUploadService{
		s3Client: s3.New(sess),
		bucket:   bucket,
		region:   region,
	}, nil
}

// ValidateJDFile runs the client-side pre-checks: only .pdf/.docx, 10MB cap.
// The messages are surfaced verbatim as the inline upload error.
func ValidateJDFile(fileName string, size int64) (string, error) {
	lower := strings.ToLower(fileName)
	var fileType string
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		fileType = "pdf"
	case strings.HasSuffix(lower, ".docx"):
		fileType = "docx"
	default:
		return "", validationErr("Please select a PDF or DOCX file.")
	}
	if size > maxJDFileSize {
		return "", validationErr("File size exceeds limit (10MB max).")
	}
	return fileType, nil
}

// JDObjectKey derives the S3 object name: companyId_jobName_JD.ext with the
// job name reduced to word characters.
func JDObjectKey(companyID, jobName, fileType string) string {
	if companyID == "" {
		companyID = "unknown"
	}
	clean := jdNameCleanPattern.ReplaceAllString(jobName, "_")
	if clean == "" {
		clean = "job"
	}
	return fmt.Sprintf("%s_%s_JD.%s", companyID, clean, fileType)
}

// Upload pushes a validated JD file to S3 and returns the stored reference.
func (s *JDUploadService) Upload(fileName string, content []byte, companyID, jobName string) (*JDFile, error) {
	fileType, err := ValidateJDFile(fileName, int64(len(content)))
	if err != nil {
		return nil, err
	}

	contentType := "application/pdf"
	if fileType == "docx" {
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}

	key := JDObjectKey(companyID, jobName, fileType)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	}
	if _, err := s.s3Client.PutObject(input); err != nil {
		return nil, fmt.Errorf("failed to upload JD to S3: %v", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
	return &JDFile{Name: key, URL: url, Type: fileType}, nil
}

// Delete removes an uploaded JD file.
func (s *JDUploadService) Delete(fileName string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileName),
	}
	if _, err := s.s3Client.DeleteObject(input); err != nil {
		return fmt.Errorf("failed to delete JD from S3: %v", err)
	}
	return nil
}
