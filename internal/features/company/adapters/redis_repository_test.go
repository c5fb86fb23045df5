package adapters

import (
	"context"
	"testing"

	"roadways-api/internal/core/kvstore"
	"roadways-api/internal/features/company/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *RedisCompanyRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := kvstore.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewRedisCompanyRepository(store)
}

func TestRedisCompanyRepository_DetailsDefaults(t *testing.T) {
	repo := newTestRepo(t)

	details, err := repo.GetDetails(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Deluxe Roadways", details.Name)
	assert.Equal(t, 2017, details.Estd)
	assert.Equal(t, "06BYTPB5931P1ZS", details.GST)
}

func TestRedisCompanyRepository_DetailsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	details := domain.DefaultDetails()
	details.Phone = "+91 99999 11111"
	details.AboutText = "Updated copy."

	require.NoError(t, repo.SaveDetails(ctx, details))

	out, err := repo.GetDetails(ctx)
	require.NoError(t, err)
	assert.Equal(t, details, *out)
}

func TestRedisCompanyRepository_AssetsDefaults(t *testing.T) {
	repo := newTestRepo(t)

	assets, err := repo.GetAssets(context.Background())
	require.NoError(t, err)
	assert.Contains(t, assets.HeroImage, "unsplash.com")
	assert.NotEmpty(t, assets.AboutImage)
}

func TestRedisCompanyRepository_AssetsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assets := domain.SiteAssets{
		HeroImage:  "https://cdn.example.com/hero.jpg",
		AboutImage: "https://cdn.example.com/about.jpg",
	}

	require.NoError(t, repo.SaveAssets(ctx, assets))

	out, err := repo.GetAssets(ctx)
	require.NoError(t, err)
	assert.Equal(t, assets, *out)
}
