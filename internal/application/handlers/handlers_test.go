package handlers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/dex/internal/domain/services"
)

const testSource = "id,name,type1,type2,hp,attack,defense,sp_attack,sp_defense,speed\n" +
	"1,bulbasaur,grass,poison,45,49,49,65,65,45\n" +
	"4,charmander,fire,,39,52,43,60,50,65\n" +
	"6,charizard,fire,flying,78,84,78,109,85,100\n" +
	"7,squirtle,water,,44,48,65,50,64,43\n"

// writeSource writes content to a temp file and returns its path.
func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "all_pokemon.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// loadedCatalog returns a catalog filled from testSource.
func loadedCatalog(t *testing.T) *services.Catalog {
	t.Helper()
	catalog := services.NewCatalog()
	require.NoError(t, catalog.Load(strings.NewReader(testSource)))
	return catalog
}

func nopLogger() *zap.Logger {
	return zap.NewNop()
}
