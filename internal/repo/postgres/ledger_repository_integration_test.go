//go:build integration

package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/distrinaranjos/internal/domain"
	"github.com/Gunvolt24/distrinaranjos/internal/repo/postgres"
	"github.com/Gunvolt24/distrinaranjos/internal/testutil"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Infof(_ context.Context, _ string, _ ...any)  {}
func (nopLogger) Warnf(_ context.Context, _ string, _ ...any)  {}
func (nopLogger) Errorf(_ context.Context, _ string, _ ...any) {}

func TestLedgerRepository_AppendAndRecent(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	repo := postgres.NewLedgerRepository(pg.Pool, nopLogger{})

	entry := &domain.LedgerEntry{
		UserID:      "web-client",
		UserName:    "Comercial " + testutil.UniqSuffix(),
		Details:     "Cliente: Comercial | Total: 105001 | Tipo: Precio 1",
		FileURL:     "https://res.example.com/pdfs/pedido.pdf",
		FileName:    "Comercial - 01.09.2026_14.30.pdf",
		DeliveredTo: []string{"pedidos@example.com"},
	}

	id, err := repo.Append(ctx, entry)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entries, err := repo.Recent(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, entry.UserName, entries[0].UserName)
	require.Equal(t, entry.FileName, entries[0].FileName)
	require.Equal(t, entry.Details, entries[0].Details)
	require.Empty(t, entries[0].ReadBy)
}

func TestLedgerRepository_AppendNilEntry(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pg, stop, err := testutil.StartPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	require.NoError(t, testutil.ApplyMigrationsGoose(pg.DSN))

	repo := postgres.NewLedgerRepository(pg.Pool, nopLogger{})
	_, err = repo.Append(ctx, nil)
	require.Error(t, err)
}
