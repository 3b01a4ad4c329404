package minio

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/thehellodigital/job-khuiji/config"
)

var Client *minioSDK.Client
var BucketName string

// InitMinio connects to the object store and ensures the bucket exists. A
// failure leaves Client nil and uploads answer 503; the rest of the service
// keeps working.
func InitMinio() {
	BucketName = config.MinioBucket

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: true,
		},
	}

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:     credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure:    config.MinioUseSSL,
		Transport: transport,
	})
	if err != nil {
		log.Println("Failed to configure MinIO client:", err)
		return
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Println("Failed to reach MinIO, uploads disabled:", err)
		return
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Println("Failed to create bucket:", err)
			return
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Println("Connected to MinIO")
}

// PublicURL builds the externally reachable URL for an uploaded object.
func PublicURL(objectName string) string {
	if config.MinioPublicURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(config.MinioPublicURL, "/"), BucketName, objectName)
	}
	scheme := "http"
	if config.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.MinioEndpoint, BucketName, objectName)
}
