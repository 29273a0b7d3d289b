package xata

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"

	"github.com/vectoradapters/std/v1/logger"
	"github.com/vectoradapters/std/v1/vectorstore"
)

func TestFXModule_Lifecycle(t *testing.T) {
	t.Setenv("XATA_DATABASE_URL", "https://ws-test.example.xata.sh/db/docs:main")
	t.Setenv("XATA_API_KEY", "test-key")

	var store vectorstore.Store
	app := fxtest.New(t,
		FXModule,
		fx.Populate(&store),
	)

	app.RequireStart()
	require.NotNil(t, store)

	xs, ok := store.(*Store)
	require.True(t, ok)
	assert.True(t, xs.connected)

	app.RequireStop()
	assert.False(t, xs.connected)
}

func TestFXModule_WithLoggerAndRegistry(t *testing.T) {
	t.Setenv("XATA_DATABASE_URL", "https://ws-test.example.xata.sh/db/docs:main")
	t.Setenv("XATA_API_KEY", "test-key")
	t.Setenv("XATA_DIMENSION", "1536")

	var store *Store
	app := fxtest.New(t,
		FXModule,
		fx.Supply(&logger.Logger{Zap: zap.NewNop()}),
		fx.Supply(fx.Annotate(prometheus.NewRegistry(), fx.As(new(prometheus.Registerer)))),
		fx.Populate(&store),
	)

	app.RequireStart()
	assert.Equal(t, 1536, store.cfg.Dimension)
	assert.NotNil(t, store.observer)
	app.RequireStop()
}

func TestNewStoreWithDI_OptionalDependenciesAbsent(t *testing.T) {
	cfg := FromDatabaseURL("https://ws-test.example.xata.sh/db/docs:main").WithAPIKey("k")

	s := NewStoreWithDI(StoreParams{Config: cfg})
	require.NotNil(t, s)
	assert.Nil(t, s.observer)
}
