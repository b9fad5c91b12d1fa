package dispatch_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// loadTestdata type-checks ./testdata/<dir> with the real toolchain.
func loadTestdata(t *testing.T, dir string) *packages.Package {
	t.Helper()
	if testing.Short() {
		t.Skip("type-checking testdata packages needs the go command")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}

	wd, err := os.Getwd()
	require.NoError(t, err)

	config := &packages.Config{
		Mode:  packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Tests: false,
		Dir:   wd,
	}
	pkgs, err := packages.Load(config, "./"+filepath.ToSlash(filepath.Join("testdata", dir)))
	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	return pkgs[0]
}

func TestCompile_ValidShapesTypeCheck(t *testing.T) {
	pkg := loadTestdata(t, "accept")
	for _, e := range pkg.Errors {
		t.Errorf("unexpected error: %v", e)
	}
}

func TestCompile_InvalidShapesAreRejected(t *testing.T) {
	cases := []struct {
		dir  string
		want string
	}{
		{"xor_trait1_trait1", "AsTrait"},
		{"xor_trait2_trait2", "AsTrait"},
		{"pair_literal_same", "does not satisfy"},
		{"f_bare_value", "does not satisfy"},
		{"custom_pair", "does not satisfy"},
	}

	for _, tc := range cases {
		t.Run(tc.dir, func(t *testing.T) {
			pkg := loadTestdata(t, filepath.Join("reject", tc.dir))
			require.NotEmpty(t, pkg.Errors, "expected %s to fail type checking", tc.dir)

			msgs := make([]string, 0, len(pkg.Errors))
			for _, e := range pkg.Errors {
				assert.NotEqual(t, packages.ParseError, e.Kind, "%v", e)
				msgs = append(msgs, e.Msg)
			}
			assert.Contains(t, strings.Join(msgs, "\n"), tc.want)
		})
	}
}
