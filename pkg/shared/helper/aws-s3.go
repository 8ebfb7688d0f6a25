package helper

import (
	"bytes"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

var s3Client *s3.S3

func InitS3Client() {
	var api_key = os.Getenv("S3_API_KEY")
	var secret = os.Getenv("S3_SECRET")
	var endpoint = os.Getenv("S3_ENDPOINT")
	var region = os.Getenv("S3_REGION")

	var s3Config = &aws.Config{
		Credentials:      credentials.NewStaticCredentials(api_key, secret, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}
	var newSession = session.New(s3Config)
	s3Client = s3.New(newSession)
}

func UploadFile(bucketName string, fileName string, file []byte) (string, error) {
	InitS3Client()
	// Determine the content type based on the file extension
	ext := filepath.Ext(fileName)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream" // default to binary stream if unknown
	}

	// PDFs download as attachment, everything else shows in browser
	var contentDisposition string
	if contentType == "application/pdf" {
		contentDisposition = "attachment"
	} else {
		contentDisposition = "inline"
	}

	object := s3.PutObjectInput{
		Bucket:             aws.String(bucketName),
		Key:                aws.String(fileName),
		Body:               bytes.NewReader(file),
		ContentType:        aws.String(contentType),
		ACL:                aws.String("public-read"),
		ContentDisposition: aws.String(contentDisposition),
	}
	_, err := s3Client.PutObject(&object)
	if err != nil {
		return "", err
	}

	fileLink := fmt.Sprintf("%s/%s%s", GetenvStr("S3_PUBLIC_URL", ""), bucketName, fileName)
	return fileLink, nil
}

func GetDownloadUrl(bucketName string, fileName string) string {
	InitS3Client()
	req, _ := s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(fileName),
	})
	urlStr, err := req.Presign(5 * time.Minute)
	if err != nil {
		return ""
	}
	return urlStr
}

func DeleteFile(bucketName string, fileName string) bool {
	InitS3Client()
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(fileName),
	}
	result, err := s3Client.DeleteObject(input)
	if err != nil {
		fmt.Println(err.Error())
		return false
	}
	return deleteApplied(result.DeleteMarker)
}

// deleteApplied - DeleteMarker is nil on unversioned buckets even though
// the delete went through
func deleteApplied(marker *bool) bool {
	return marker == nil || *marker
}
