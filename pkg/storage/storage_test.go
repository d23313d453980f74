package storage_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsletter/pkg/storage"
)

type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
	types map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStorage) Put(_ context.Context, key string, r io.Reader, size int64, ct string) (storage.Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return storage.Object{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = data
	m.types[key] = ct
	return storage.Object{Key: key, URL: m.URL(key), ContentType: ct, Size: size}, nil
}

func (m *memStorage) Get(_ context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, key)
	return nil
}

func (m *memStorage) URL(key string) string { return "https://cdn.test/" + key }

// 1x1 transparent PNG.
var pngPixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestValidateImage(t *testing.T) {
	t.Parallel()

	require.NoError(t, storage.ValidateImage(10, "image/png"))
	require.NoError(t, storage.ValidateImage(storage.MaxImageSize, "image/jpeg"))
	require.NoError(t, storage.ValidateImage(10, "image/gif"))
	require.ErrorIs(t, storage.ValidateImage(0, "image/png"), storage.ErrEmptyFile)
	require.ErrorIs(t, storage.ValidateImage(storage.MaxImageSize+1, "image/png"), storage.ErrFileTooLarge)
	require.ErrorIs(t, storage.ValidateImage(10, "application/pdf"), storage.ErrNotAnImage)

	for _, ct := range []string{"image/webp", "image/svg+xml", "image/bmp"} {
		require.ErrorIs(t, storage.ValidateImage(10, ct), storage.ErrNotAnImage, ct)
	}
}

func TestValidateFile(t *testing.T) {
	t.Parallel()

	require.NoError(t, storage.ValidateFile(0, "text/plain"))
	require.NoError(t, storage.ValidateFile(3, "text/plain; charset=utf-8", storage.AllowedTypes("text/plain")))

	err := storage.ValidateFile(0, "image/bmp", storage.ImageOnly(), storage.NotEmpty())
	require.ErrorIs(t, err, storage.ErrNotAnImage)

	custom := storage.ValidationFunc(func(size int64, _ string) error {
		if size%2 != 0 {
			return storage.ErrEmptyFile
		}
		return nil
	})
	require.ErrorIs(t, storage.ValidateFile(3, "image/png", storage.MaxSize(10), custom), storage.ErrEmptyFile)
	require.ErrorIs(t, storage.ValidateFile(12, "image/png", storage.MaxSize(10), custom), storage.ErrFileTooLarge)
}

func TestDetectMIME(t *testing.T) {
	t.Parallel()

	require.Equal(t, "image/png", storage.DetectMIME(pngPixel))
	require.Equal(t, "image/gif", storage.DetectMIME([]byte("GIF89a\x01\x00")))
	require.Equal(t, "application/pdf", storage.DetectMIME([]byte("%PDF-1.4")))
	require.Equal(t, "text/xml", storage.DetectMIME([]byte(`<?xml version="1.0"?><svg/>`)))
}

func TestUploadImage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("sniffed png", func(t *testing.T) {
		t.Parallel()

		s := newMemStorage()
		obj, err := storage.UploadImage(ctx, s, bytes.NewReader(pngPixel), int64(len(pngPixel)))
		require.NoError(t, err)
		require.Equal(t, "image/png", obj.ContentType)
		require.True(t, strings.HasPrefix(obj.Key, "images/"))
		require.True(t, strings.HasSuffix(obj.Key, ".png"))
		require.Equal(t, "https://cdn.test/"+obj.Key, obj.URL)
		require.Equal(t, pngPixel, s.files[obj.Key])
	})

	t.Run("type comes from content", func(t *testing.T) {
		t.Parallel()

		s := newMemStorage()
		for name, body := range map[string]string{
			"pdf":          "%PDF-1.4",
			"html":         "<html><body>hi</body></html>",
			"svg":          `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`,
			"svg with xml": `<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"/>`,
		} {
			_, err := storage.UploadImage(ctx, s, strings.NewReader(body), int64(len(body)))
			require.ErrorIs(t, err, storage.ErrNotAnImage, name)
		}
		require.Empty(t, s.files)
	})

	t.Run("rejects large files", func(t *testing.T) {
		t.Parallel()

		s := newMemStorage()
		_, err := storage.UploadImage(ctx, s, bytes.NewReader(pngPixel), storage.MaxImageSize+1)
		require.ErrorIs(t, err, storage.ErrFileTooLarge)
	})

	t.Run("nil storage", func(t *testing.T) {
		t.Parallel()

		_, err := storage.UploadImage(ctx, nil, bytes.NewReader(pngPixel), 1)
		require.ErrorIs(t, err, storage.ErrNotConfigured)
	})
}

func TestPublishHTML(t *testing.T) {
	t.Parallel()

	s := newMemStorage()
	obj, err := storage.PublishHTML(context.Background(), s, "Nr 7/2026", "<html></html>")
	require.NoError(t, err)
	require.Equal(t, "published/nr-7-2026.html", obj.Key)
	require.Equal(t, "text/html; charset=utf-8", s.types[obj.Key])
	require.Equal(t, "<html></html>", string(s.files[obj.Key]))
}

func TestPublishedKey_Empty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "published/newsletter.html", storage.PublishedKey(""))
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := storage.New(storage.Config{Bucket: "b"})
	require.ErrorIs(t, err, storage.ErrInvalidConfig)

	s, err := storage.New(storage.Config{Bucket: "b", AccessKey: "k", SecretKey: "s"})
	require.NoError(t, err)
	require.Equal(t, "https://b.s3.us-east-1.amazonaws.com/x.png", s.URL("x.png"))
}

func TestURL(t *testing.T) {
	t.Parallel()

	base := storage.Config{Bucket: "news", AccessKey: "k", SecretKey: "s"}

	pathStyle := base
	pathStyle.Endpoint = "http://localhost:9000/"
	pathStyle.PathStyle = true
	s, err := storage.New(pathStyle)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9000/news/a.png", s.URL("a.png"))

	cdn := base
	cdn.PublicURL = "https://cdn.example.com/"
	s, err = storage.New(cdn)
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example.com/a.png", s.URL("a.png"))
}
