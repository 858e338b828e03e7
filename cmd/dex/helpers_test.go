package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/entities"
	"github.com/ersonp/dex/internal/domain/services"
)

const testSource = "id,name,type1,type2,hp,attack,defense,sp_attack,sp_defense,speed\n" +
	"1,bulbasaur,grass,poison,45,49,49,65,65,45\n" +
	"4,charmander,fire,,39,52,43,60,50,65\n" +
	"7,squirtle,water,,44,48,65,50,64,43\n" +
	"133,eevee,normal,,55,55,50,45,65,55\n"

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "all_pokemon.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testCatalog(t *testing.T) *services.Catalog {
	t.Helper()
	catalog := services.NewCatalog()
	require.NoError(t, catalog.Load(strings.NewReader(testSource)))
	return catalog
}

func testLookup(t *testing.T) *handlers.LookupHandler {
	t.Helper()
	return handlers.NewLookupHandler(testCatalog(t), zap.NewNop())
}

func mustFind(t *testing.T, name string) *entities.Record {
	t.Helper()
	r, ok := testCatalog(t).Find(name)
	require.True(t, ok, "record %q", name)
	return r
}

// executeCmd runs the root command with args and returns stdout and stderr.
func executeCmd(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("DEX_DATA_PATH", "")
	t.Setenv("DEX_LOG_LEVEL", "")
	t.Cleanup(func() {
		globalData = ""
		verbose = false
		appConfig = nil
		logger = zap.NewNop()
	})

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
