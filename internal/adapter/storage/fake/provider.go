package fake

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kursuslab/kursus/internal/core"
)

// Provider simulates an object store that hands out pre-signed thumbnail
// upload targets.
type Provider struct {
	uploadBase string
	cdnBase    string
	expiry     time.Duration
	now        func() time.Time
}

// NewProvider constructs a fake thumbnail store.
func NewProvider(uploadBase, cdnBase string, expiry time.Duration) *Provider {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &Provider{
		uploadBase: uploadBase,
		cdnBase:    cdnBase,
		expiry:     expiry,
		now:        time.Now,
	}
}

// WithClock overrides the clock used for expiry timestamps.
func (p *Provider) WithClock(fn func() time.Time) {
	if fn != nil {
		p.now = fn
	}
}

var _ core.ThumbnailStore = (*Provider)(nil)

// CreateThumbnailUpload issues a pre-signed PUT target and the public URL the
// thumbnail will be served from once uploaded.
func (p *Provider) CreateThumbnailUpload(ctx context.Context, filename string) (*core.ThumbnailUpload, error) {
	_ = ctx // unused in fake implementation

	key := uuid.New().String() + path.Ext(filename)
	uploadURL := fmt.Sprintf("%s/%s", normalizeBase(p.uploadBase, "https://fake-upload.example.com"), key)
	publicURL := fmt.Sprintf("%s/%s", normalizeBase(p.cdnBase, "https://fake-cdn.example.com"), key)

	return &core.ThumbnailUpload{
		UploadURL: uploadURL,
		Method:    "PUT",
		Headers: map[string]string{
			"X-Fake-Provider": "true",
		},
		PublicURL: publicURL,
		ExpiresAt: p.now().Add(p.expiry).UTC(),
	}, nil
}

func normalizeBase(base, fallback string) string {
	if base == "" {
		return fallback
	}
	return strings.TrimSuffix(base, "/")
}
