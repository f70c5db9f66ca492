package services

import (
	"context"
	"fmt"
	"path"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Archive keeps a copy of a rendered export file.
type Archive interface {
	Put(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}

// FirebaseService stores export files in the project's Firebase Storage bucket.
type FirebaseService struct {
	app    *firebase.App
	bucket *storage.BucketHandle
	prefix string
	logger logrus.FieldLogger
}

func NewFirebaseService(ctx context.Context, credentialsFilePath, bucketName, prefix string, logger logrus.FieldLogger) (*FirebaseService, error) {
	var opts []option.ClientOption
	if credentialsFilePath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFilePath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase storage client: %v", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("error opening bucket %s: %v", bucketName, err)
	}

	return &FirebaseService{
		app:    app,
		bucket: bucket,
		prefix: prefix,
		logger: logger,
	}, nil
}

// Put writes data under prefix/objectName and returns the gs:// location.
func (fs *FirebaseService) Put(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	name := path.Join(fs.prefix, objectName)

	wc := fs.bucket.Object(name).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		wc.Close()
		return "", fmt.Errorf("error writing %s to firebase storage: %v", name, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("error closing writer: %v", err)
	}

	location := fmt.Sprintf("gs://%s/%s", fs.bucket.BucketName(), name)
	fs.logger.WithField("object", location).Info("Export archived")
	return location, nil
}
