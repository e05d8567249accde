package storage

import "strings"

// URLResolver turns a bucket and object key into the URL the public can
// fetch the object from. Providers disagree on what that looks like, so
// the policy lives behind this interface instead of in the upload path.
type URLResolver interface {
	PublicURL(bucket, key string) string
}

// ResolverFor picks the resolver matching the configured endpoint.
func ResolverFor(endpoint string) URLResolver {
	if strings.Contains(endpoint, "supabase.co") {
		return &supabaseResolver{endpoint: endpoint}
	}
	return &genericResolver{endpoint: endpoint}
}

// supabaseResolver rewrites the internal S3 path to Supabase's public
// object path: .../storage/v1/s3 serves the protocol, while anonymous
// reads go through .../storage/v1/object/public.
type supabaseResolver struct {
	endpoint string
}

func (r *supabaseResolver) PublicURL(bucket, key string) string {
	base := strings.TrimSuffix(r.endpoint, "/s3") + "/object/public"
	return base + "/" + bucket + "/" + key
}

// genericResolver covers every plain S3-compatible host (minio and
// friends): the object is public at endpoint/bucket/key.
type genericResolver struct {
	endpoint string
}

func (r *genericResolver) PublicURL(bucket, key string) string {
	return r.endpoint + "/" + bucket + "/" + key
}
