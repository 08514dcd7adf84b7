package sermonsearch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/sermonsearch/ai/mock"
	"github.com/poiesic/sermonsearch/catalog"
	"github.com/poiesic/sermonsearch/config"
	"github.com/poiesic/sermonsearch/core"
)

func testConfig(t *testing.T, dataDir string) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.CatalogURL = "https://example.com/export.csv"
	cfg.DataDir = dataDir
	return cfg
}

func testLoader() catalog.Loader {
	return catalog.LoaderFunc(func(_ context.Context) ([]core.CatalogRecord, error) {
		records := []core.CatalogRecord{
			{Title: "Faith in Trials", Speaker: "Pastor Seun", Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
			{Title: "Walking in Love", Speaker: "Temitope Adeola", Date: time.Date(2024, 1, 21, 0, 0, 0, 0, time.UTC)},
		}
		for i := range records {
			core.NormalizeRecord(&records[i])
		}
		return records, nil
	})
}

func TestNewService(t *testing.T) {
	t.Run("in-memory wiring end to end", func(t *testing.T) {
		svc, err := NewService(testConfig(t, ""),
			WithCatalogLoader(testLoader()),
			WithIntentExtractor(mock.NewMockIntentExtractor()),
		)
		require.NoError(t, err)
		defer svc.Close()

		sess := svc.Sessions().EnsureSession("", time.Hour)
		reply, err := svc.Assistant().HandleQuery(context.Background(), sess, "faith")
		require.NoError(t, err)
		require.Len(t, reply.Records, 1)
		assert.Equal(t, "Faith in Trials", reply.Records[0].Title)
	})

	t.Run("data dir enables the snapshot backend", func(t *testing.T) {
		svc, err := NewService(testConfig(t, t.TempDir()),
			WithCatalogLoader(testLoader()),
			WithIntentExtractor(mock.NewMockIntentExtractor()),
		)
		require.NoError(t, err)

		sess := svc.Sessions().EnsureSession("", time.Hour)
		_, err = svc.Assistant().HandleQuery(context.Background(), sess, "faith")
		require.NoError(t, err)
		require.NoError(t, svc.Close())
	})

	t.Run("nil config uses defaults but needs no source until load", func(t *testing.T) {
		svc, err := NewService(nil,
			WithCatalogLoader(testLoader()),
			WithIntentExtractor(mock.NewMockIntentExtractor()),
		)
		require.NoError(t, err)
		assert.NotNil(t, svc.Catalog())
		require.NoError(t, svc.Close())
	})

	t.Run("missing catalog url without loader fails", func(t *testing.T) {
		cfg := config.New()
		_, err := NewService(cfg, WithIntentExtractor(mock.NewMockIntentExtractor()))
		assert.Error(t, err)
	})
}
