package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ersonp/dex/internal/application/handlers"
	"github.com/ersonp/dex/internal/domain/services"
)

const sourceData = "id,name,type1,type2,hp,attack,defense,sp_attack,sp_defense,speed\n" +
	"1,Bulbasaur,Grass,Poison,45,49,49,65,65,45\n" +
	"4,Charmander,Fire,,39,52,43,60,50,65\n" +
	"7,Squirtle,Water,,44,48,65,50,64,43\n" +
	"25,Pikachu,Electric,,35,55,40,50,50,90\n" +
	"150,Mewtwo,Psychic,,106,110,90,154,90,130\n"

// loadSource writes content to a temp file and loads it through the handler.
func loadSource(t *testing.T, content string) (*services.Catalog, *handlers.LoadResult, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "all_pokemon.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	catalog := services.NewCatalog()
	result, err := handlers.NewLoadHandler(catalog, zap.NewNop()).Handle(path)
	return catalog, result, err
}
