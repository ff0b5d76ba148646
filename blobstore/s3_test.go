package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 answers the path-style object requests the store issues
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]fakeObject
}

type fakeObject struct {
	body        []byte
	contentType string
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// /<bucket>/<key>
	parts := strings.SplitN(strings.TrimPrefix(req.URL.Path, "/"), "/", 2)
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	respond := func(status int, header http.Header, body []byte) *http.Response {
		if header == nil {
			header = http.Header{}
		}
		return &http.Response{StatusCode: status, Header: header, Body: io.NopCloser(bytes.NewReader(body)), Request: req}
	}

	obj, exists := f.objects[key]
	switch req.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(req.Body)
		f.objects[key] = fakeObject{body: body, contentType: req.Header.Get("Content-Type")}
		return respond(http.StatusOK, http.Header{"Etag": {`"etag"`}}, nil), nil
	case http.MethodGet, http.MethodHead:
		if !exists {
			return respond(http.StatusNotFound, http.Header{"Content-Type": {"application/xml"}},
				[]byte(`<?xml version="1.0"?><Error><Code>NoSuchKey</Code><Message>missing</Message></Error>`)), nil
		}
		header := http.Header{
			"Content-Length": {fmt.Sprintf("%d", len(obj.body))},
			"Content-Type":   {obj.contentType},
			"Last-Modified":  {time.Now().UTC().Format(http.TimeFormat)},
			"Etag":           {`"etag"`},
		}
		if req.Method == http.MethodHead {
			return respond(http.StatusOK, header, nil), nil
		}
		return respond(http.StatusOK, header, obj.body), nil
	case http.MethodDelete:
		delete(f.objects, key)
		return respond(http.StatusNoContent, nil, nil), nil
	}
	return respond(http.StatusNotImplemented, nil, nil), nil
}

func newFakeS3Store(t *testing.T) (*S3Store, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: map[string]fakeObject{}}
	store, err := NewS3(context.Background(),
		S3Config{Bucket: "documents", Endpoint: "https://s3.test.local", PathStyle: true},
		config.WithHTTPClient(&http.Client{Transport: fake}),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("AKIDTEST", "SECRET", "")),
	)
	require.NoError(t, err)
	return store, fake
}

func TestS3Store_RoundTrip(t *testing.T) {
	store, fake := newFakeS3Store(t)
	ctx := context.Background()
	key := "org/2/documents/9/plan.pdf"
	content := []byte("recall plan v2")

	info, err := store.Put(ctx, key, bytes.NewReader(content), PutOptions{ContentType: "application/pdf", Size: int64(len(content))})
	require.NoError(t, err)
	assert.Equal(t, key, info.Key)
	assert.Equal(t, content, fake.objects[key].body)
	assert.Equal(t, "application/pdf", fake.objects[key].contentType)

	got, body, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, int64(len(content)), got.Size)
	assert.Equal(t, "application/pdf", got.ContentType)

	existed, err := store.Delete(ctx, key)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.Empty(t, fake.objects)
}

func TestS3Store_MissingKeys(t *testing.T) {
	store, _ := newFakeS3Store(t)
	ctx := context.Background()

	_, _, err := store.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	existed, err := store.Delete(ctx, "nope")
	require.NoError(t, err)
	assert.False(t, existed)
}
