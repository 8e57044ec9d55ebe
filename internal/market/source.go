// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package market

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"

	"github.com/MKhiriev/market-pulse/internal/config"
	"github.com/MKhiriev/market-pulse/internal/utils"
)

// Fixture file names shared by every source.
const (
	PriceFile        = "price_chart.json"
	SentimentFile    = "sentiment_over_time.json"
	DistributionFile = "sentiment_distribution.json"
)

// DefaultFixture is the bundled directory used when no per-symbol fixture
// can be read.
const DefaultFixture = "default"

//go:embed fixtures
var bundled embed.FS

// FixtureSource returns the raw bytes of one fixture file of a symbol.
type FixtureSource interface {
	Name() string
	Fetch(ctx context.Context, symbol, file string) ([]byte, error)
}

// BundledSource reads fixtures compiled into the binary.
type BundledSource struct {
	fsys fs.FS
}

// NewBundledSource serves the embedded fixtures.
func NewBundledSource() *BundledSource {
	sub, _ := fs.Sub(bundled, "fixtures")
	return &BundledSource{fsys: sub}
}

// NewBundledSourceFS serves fixtures laid out as {SYMBOL}/{file} in fsys.
func NewBundledSourceFS(fsys fs.FS) *BundledSource {
	return &BundledSource{fsys: fsys}
}

func (b *BundledSource) Name() string { return "bundled" }

func (b *BundledSource) Fetch(_ context.Context, symbol, file string) ([]byte, error) {
	data, err := fs.ReadFile(b.fsys, path.Join(symbol, file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", ErrFixtureNotFound, symbol, file)
	}
	return data, err
}

// HTTPSource fetches {base}/data/{SYMBOL}/{file}.
type HTTPSource struct {
	client *utils.HTTPClient
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{client: utils.NewHTTPClient(baseURL, timeout)}
}

func (h *HTTPSource) Name() string { return "http" }

func (h *HTTPSource) Fetch(ctx context.Context, symbol, file string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"symbol": symbol, "file": file}).
		Get("/data/{symbol}/{file}")
	if err != nil {
		return nil, fmt.Errorf("error fetching %s/%s: %w", symbol, file, err)
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s/%s", ErrFixtureNotFound, symbol, file)
	case code < 200 || code > 299:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedCode, code)
	}

	return resp.Body(), nil
}

// S3Source reads objects {prefix}/{SYMBOL}/{file} from a bucket.
type S3Source struct {
	client s3iface.S3API
	bucket string
	prefix string
}

// NewS3Source builds an S3 client from cfg. A custom endpoint (MinIO,
// localstack) switches to path-style addressing.
func NewS3Source(cfg config.S3) (*S3Source, error) {
	awsConfig := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Region == "" {
		awsConfig.Region = aws.String("us-east-1")
	}
	if cfg.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		awsConfig.DisableSSL = aws.Bool(strings.HasPrefix(cfg.Endpoint, "http://"))
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewS3SourceWithClient(s3.New(sess), cfg.Bucket, cfg.Prefix), nil
}

func NewS3SourceWithClient(client s3iface.S3API, bucket, prefix string) *S3Source {
	return &S3Source{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *S3Source) Name() string { return "s3" }

func (s *S3Source) Fetch(ctx context.Context, symbol, file string) ([]byte, error) {
	key := path.Join(s.prefix, symbol, file)

	out, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var aerr awserr.Error
		if errors.As(err, &aerr) && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, fmt.Errorf("%w: %s", ErrFixtureNotFound, key)
		}
		return nil, fmt.Errorf("failed to get %s from S3: %w", key, err)
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// NewRemoteSource builds the remote source named by cfg.Remote, or nil when
// none is configured.
func NewRemoteSource(cfg config.Market) (FixtureSource, error) {
	switch cfg.Remote {
	case config.RemoteHTTP:
		return NewHTTPSource(cfg.BaseURL, cfg.Timeout), nil
	case config.RemoteS3:
		return NewS3Source(cfg.S3)
	default:
		return nil, nil
	}
}
