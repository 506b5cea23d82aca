// Package s3store provides an assets.Store implementation backed by an S3
// compatible object storage.
package s3store

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"yokeair/pkg/assets"
	"yokeair/pkg/domain"
	"yokeair/pkg/serrors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Options configure the S3 client and the public URLs handed out for uploads.
type Options struct {
	Bucket string
	Region string
	// Endpoint overrides the AWS endpoint, e.g. for MinIO. Path style
	// addressing is used whenever it is set.
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	// PublicBaseURL is prepended to object keys to build asset URLs.
	PublicBaseURL string
}

// Store puts and deletes objects in a single bucket. It is safe for
// concurrent use.
type Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ assets.Store = (*Store)(nil)

// New loads the AWS configuration and builds a Store. Extra S3 option
// functions are applied after the ones derived from opts.
func New(ctx context.Context, opts Options, optFns ...func(*s3.Options)) (*Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	fns := make([]func(*s3.Options), 0, len(optFns)+1)
	if opts.Endpoint != "" {
		fns = append(fns, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		})
	}
	fns = append(fns, optFns...)

	return &Store{
		client:  s3.NewFromConfig(cfg, fns...),
		bucket:  opts.Bucket,
		baseURL: strings.TrimSuffix(opts.PublicBaseURL, "/"),
	}, nil
}

// Key builds the object key for an upload: the folder, a random id and the
// lower-cased extension of the original file name.
func Key(file assets.File) string {
	name := uuid.NewString() + strings.ToLower(path.Ext(file.Name))
	if file.Folder == "" {
		return name
	}

	return strings.Trim(file.Folder, "/") + "/" + name
}

// Upload stores the file under a fresh key.
func (s *Store) Upload(ctx context.Context, file assets.File) (domain.Asset, error) {
	if len(file.Data) == 0 {
		return domain.Asset{}, serrors.With(serrors.ErrBadRequest, "file %q is empty", file.Name)
	}

	key := Key(file)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(file.Data),
	}
	if file.ContentType != "" {
		input.ContentType = aws.String(file.ContentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return domain.Asset{}, serrors.Wrap(serrors.ErrDependency, err, "could not upload %q", file.Name)
	}

	return domain.Asset{URL: s.baseURL + "/" + key, ExternalID: key}, nil
}

// Destroy deletes the object. S3 reports success for missing keys.
func (s *Store) Destroy(ctx context.Context, assetID string) error {
	if assetID == "" {
		return nil
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(assetID),
	}); err != nil {
		return serrors.Wrap(serrors.ErrDependency, err, "could not delete asset %q", assetID)
	}

	return nil
}
