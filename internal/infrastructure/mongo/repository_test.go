package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phiCalc/internal/domain"
	"phiCalc/internal/pkg/testutil"
)

// setupMongoRepo поднимает MongoDB и очищает коллекцию.
func setupMongoRepo(t *testing.T) *OperationRepo {
	t.Helper()
	testutil.SkipShort(t)

	container := testutil.StartMongo(t)
	ctx := context.Background()

	client, err := New(ctx, &Config{
		URI:        container.URI(),
		Database:   "testdb",
		Collection: "phi_operations",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	if err := client.Coll().Drop(ctx); err != nil {
		t.Logf("drop collection: %v (игнорируем)", err)
	}
	require.NoError(t, client.EnsureIndexes(ctx))
	require.NoError(t, client.EnsureIndexes(ctx), "повторный вызов не падает")

	return NewOperationRepo(client, testutil.Logger())
}

func TestMongoRepo_SaveAndGetHistory(t *testing.T) {
	repo := setupMongoRepo(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, repo.SaveOperation(ctx, domain.Operation{
		Kind: domain.KindPhi, Params: `{"base":1,"power":1,"unit":"rem"}`, Result: `"1.618rem"`, Timestamp: now.Add(-time.Second),
	}))
	require.NoError(t, repo.SaveOperation(ctx, domain.Operation{
		Kind: domain.KindClamp, Params: `{"min":1}`, Result: `"clamp()"`, Timestamp: now,
	}))

	history, err := repo.GetHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.KindClamp, history[0].Kind, "первая запись — самая новая")
	assert.Equal(t, `"1.618rem"`, history[1].Result)
	assert.True(t, now.Equal(history[0].Timestamp))

	assert.NoError(t, repo.Ping(ctx))
}
