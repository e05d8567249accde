package storage

import (
	"context"
	"io"
	"regexp"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3API struct {
	input *s3.PutObjectInput
	err   error
}

func (f *fakeS3API) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestNewObjectKey_Format(t *testing.T) {
	keyShape := regexp.MustCompile(`^\d{13}-[0-9a-z]{13}\.png$`)

	key := NewObjectKey("photo.png")
	assert.Regexp(t, keyShape, key)

	// No extension on the original name means no extension on the key
	bare := NewObjectKey("photo")
	assert.Regexp(t, regexp.MustCompile(`^\d{13}-[0-9a-z]{13}$`), bare)
}

func TestNewObjectKey_Distinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		key := NewObjectKey("a.jpg")
		assert.False(t, seen[key], "key %s generated twice", key)
		seen[key] = true
	}
}

func TestUploadAvatar_GenericEndpoint(t *testing.T) {
	api := &fakeS3API{}
	client := &storageClient{
		bucket:   "avatars",
		client:   api,
		resolver: ResolverFor("http://minio.local"),
	}

	url, err := client.UploadAvatar([]byte("0123456789"), "photo.png", "image/png")
	require.NoError(t, err)
	assert.Regexp(t, `^http://minio\.local/avatars/\d+-[0-9a-z]+\.png$`, url)

	require.NotNil(t, api.input)
	assert.Equal(t, "avatars", aws.ToString(api.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(api.input.ContentType))
	assert.Equal(t, types.ObjectCannedACLPublicRead, api.input.ACL)

	body, rerr := io.ReadAll(api.input.Body)
	require.NoError(t, rerr)
	assert.Equal(t, []byte("0123456789"), body)
}

func TestUploadAvatar_DetectsContentType(t *testing.T) {
	api := &fakeS3API{}
	client := &storageClient{
		bucket:   "avatars",
		client:   api,
		resolver: ResolverFor("http://minio.local"),
	}

	_, err := client.UploadAvatar([]byte("data"), "photo.png", "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", aws.ToString(api.input.ContentType))
}

func TestResolverFor_SupabaseRewritesPath(t *testing.T) {
	resolver := ResolverFor("https://abc.supabase.co/storage/v1/s3")
	url := resolver.PublicURL("avatars", "k.png")
	assert.Equal(t, "https://abc.supabase.co/storage/v1/object/public/avatars/k.png", url)
}

func TestResolverFor_GenericConcatenates(t *testing.T) {
	resolver := ResolverFor("http://minio.local")
	url := resolver.PublicURL("avatars", "k.png")
	assert.Equal(t, "http://minio.local/avatars/k.png", url)
}

func TestResolveEndpoint_PrefersExplicit(t *testing.T) {
	t.Setenv("S3_ENDPOINT", "http://minio.local")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	assert.Equal(t, "http://minio.local", ResolveEndpoint())
}

func TestResolveEndpoint_DerivesFromManagedPlatform(t *testing.T) {
	t.Setenv("S3_ENDPOINT", "")
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
	assert.Equal(t, "https://abc.supabase.co/storage/v1/s3", ResolveEndpoint())
}
