package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Arhan13/codegen/internal/domain"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Init(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestLocalizationRepoCreateIfAbsent(t *testing.T) {
	repo := NewLocalizationRepo(testDB(t))
	ctx := context.Background()

	rec := &domain.LocalizationRecord{Key: "nav_home", Texts: domain.TranslationSet{EN: "Home", ES: "Inicio"}}
	created, err := repo.CreateIfAbsent(ctx, rec)
	require.NoError(t, err)
	require.True(t, created)
	require.NotZero(t, rec.ID)

	// Second attempt with different texts is absorbed; the stored record
	// is never overwritten and the caller sees the original values.
	again := &domain.LocalizationRecord{Key: "nav_home", Texts: domain.TranslationSet{EN: "CHANGED"}}
	created, err = repo.CreateIfAbsent(ctx, again)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "Home", again.Texts.EN)
	require.Equal(t, rec.ID, again.ID)

	got, err := repo.GetByKey(ctx, "nav_home")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Inicio", got.Texts.ES)
}

func TestLocalizationRepoGetByKeyMissing(t *testing.T) {
	repo := NewLocalizationRepo(testDB(t))
	got, err := repo.GetByKey(context.Background(), "never_seen")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestLocalizationRepoGetByLocale(t *testing.T) {
	repo := NewLocalizationRepo(testDB(t))
	ctx := context.Background()
	_, err := repo.CreateIfAbsent(ctx, &domain.LocalizationRecord{
		Key:   "nav_home",
		Texts: domain.TranslationSet{EN: "Home", ES: "Inicio", FR: "Accueil", DE: "Start", JA: "ホーム", ZH: "首页"},
	})
	require.NoError(t, err)

	es, err := repo.GetByLocale(ctx, "es")
	require.NoError(t, err)
	require.Equal(t, "Inicio", es["nav_home"])

	_, err = repo.GetByLocale(ctx, "xx")
	require.ErrorIs(t, err, domain.ErrInvalidLocale)
}

func TestLocalizationRepoListAndDelete(t *testing.T) {
	repo := NewLocalizationRepo(testDB(t))
	ctx := context.Background()
	for _, k := range []string{"first", "second", "third"} {
		_, err := repo.CreateIfAbsent(ctx, &domain.LocalizationRecord{Key: k, Texts: domain.FallbackSet(k)})
		require.NoError(t, err)
	}
	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "first", all[0].Key)

	require.NoError(t, repo.DeleteByKey(ctx, "second"))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestLocalizationRepoConcurrentCreate(t *testing.T) {
	repo := NewLocalizationRepo(testDB(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	createdCount := make([]bool, 8)
	errs := make([]error, 8)
	for i := range createdCount {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := &domain.LocalizationRecord{Key: "save_btn", Texts: domain.FallbackSet("save_btn")}
			createdCount[i], errs[i] = repo.CreateIfAbsent(ctx, rec)
		}(i)
	}
	wg.Wait()

	wins := 0
	for i := range createdCount {
		require.NoError(t, errs[i])
		if createdCount[i] {
			wins++
		}
	}
	require.Equal(t, 1, wins)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
}
