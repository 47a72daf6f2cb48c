package blob

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	putIn  *s3.PutObjectInput
	putErr error
	delIn  *s3.DeleteObjectsInput
	delErr error
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putIn = in
	return &s3.PutObjectOutput{}, f.putErr
}

func (f *fakeS3) DeleteObjects(ctx context.Context, in *s3.DeleteObjectsInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error) {
	f.delIn = in
	return &s3.DeleteObjectsOutput{}, f.delErr
}

func newTestStorage(fake *fakeS3) *S3Storage {
	return &S3Storage{client: fake, cfg: Config{
		Bucket:       "archive",
		Region:       "us-east-1",
		BaseEndpoint: "http://127.0.0.1:9000/",
	}}
}

func TestUploadSendsBucketKeyAndType(t *testing.T) {
	fake := &fakeS3{}
	s := newTestStorage(fake)

	err := s.Upload(context.Background(), "photographs/2026/01/x", strings.NewReader("img"), "image/jpeg")
	require.NoError(t, err)

	require.NotNil(t, fake.putIn)
	assert.Equal(t, "archive", aws.ToString(fake.putIn.Bucket))
	assert.Equal(t, "photographs/2026/01/x", aws.ToString(fake.putIn.Key))
	assert.Equal(t, "image/jpeg", aws.ToString(fake.putIn.ContentType))

	body, err := io.ReadAll(fake.putIn.Body)
	require.NoError(t, err)
	assert.Equal(t, "img", string(body))
}

func TestUploadWrapsError(t *testing.T) {
	fake := &fakeS3{putErr: errors.New("denied")}
	s := newTestStorage(fake)

	err := s.Upload(context.Background(), "k", strings.NewReader(""), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blob upload error")
}

func TestPublicURLWithCustomEndpoint(t *testing.T) {
	s := newTestStorage(&fakeS3{})
	assert.Equal(t, "http://127.0.0.1:9000/archive/a/b", s.PublicURL("a/b"))
}

func TestPublicURLDefaultEndpoint(t *testing.T) {
	s := &S3Storage{cfg: Config{Bucket: "archive", Region: "eu-west-2"}}
	assert.Equal(t, "https://s3.eu-west-2.amazonaws.com/archive/a", s.PublicURL("a"))
}

func TestRemoveBatchesKeys(t *testing.T) {
	fake := &fakeS3{}
	s := newTestStorage(fake)

	require.NoError(t, s.Remove(context.Background(), []string{"a", "b"}))
	require.NotNil(t, fake.delIn)
	assert.Len(t, fake.delIn.Delete.Objects, 2)
}

func TestRemoveNoKeysIsNoop(t *testing.T) {
	fake := &fakeS3{delErr: errors.New("should not be called")}
	s := newTestStorage(fake)

	assert.NoError(t, s.Remove(context.Background(), nil))
	assert.Nil(t, fake.delIn)
}

func TestRandomKeyHasPrefix(t *testing.T) {
	key := RandomKey("photographs")
	assert.True(t, strings.HasPrefix(key, "photographs/"))
	assert.NotEqual(t, key, RandomKey("photographs"))
}
