package resolve_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dedup/internal/adapters/resolve"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// fixture lays out:
//
//	pkg/node_modules/@org/foo   main: dist/index.js, nested node_modules/other (module field)
//	pkg/node_modules/@org/bar   module: dist/index.js, main: dist/none.js
//	pkg/node_modules/plain      main: lib/main (extension-less), browser: object
//	pkg/node_modules/bare       index.js only
func fixture(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "pkg")
	org := filepath.Join(root, "node_modules", "@org")

	writeFile(t, filepath.Join(org, "foo", "package.json"), `{"name":"@org/foo","version":"1.0.0","main":"dist/index.js"}`)
	writeFile(t, filepath.Join(org, "foo", "dist", "index.js"), `1;`)
	writeFile(t, filepath.Join(org, "foo", "node_modules", "other", "package.json"), `{"name":"other","module":"dist/index.js","main":"dist/none.js"}`)
	writeFile(t, filepath.Join(org, "foo", "node_modules", "other", "dist", "index.js"), `3;`)
	writeFile(t, filepath.Join(org, "bar", "package.json"), `{"name":"@org/bar","version":"1.0.0","module":"dist/index.js","main":"dist/none.js"}`)
	writeFile(t, filepath.Join(org, "bar", "dist", "index.js"), `0;`)

	plain := filepath.Join(root, "node_modules", "plain")
	writeFile(t, filepath.Join(plain, "package.json"), `{"name":"plain","main":"lib/main","browser":{"./x.js":false}}`)
	writeFile(t, filepath.Join(plain, "lib", "main.js"), `4;`)

	writeFile(t, filepath.Join(root, "node_modules", "bare", "index.js"), `5;`)

	return root
}

func TestResolver_Resolve(t *testing.T) {
	root := fixture(t)
	nm := filepath.Join(root, "node_modules")
	r := resolve.New([]string{"module", "main"}, nil)

	tests := []struct {
		name    string
		request string
		context string
		want    string
		ok      bool
	}{
		{
			name:    "module field preferred",
			request: "@org/bar",
			context: root,
			want:    filepath.Join(nm, "@org", "bar", "dist", "index.js"),
			ok:      true,
		},
		{
			name:    "ancestor lookup from a missing file context",
			request: "@org/foo",
			context: filepath.Join(root, "@org", "bar", "dist", "index.js"),
			want:    filepath.Join(nm, "@org", "foo", "dist", "index.js"),
			ok:      true,
		},
		{
			name:    "nested dependency wins",
			request: "other",
			context: filepath.Join(nm, "@org", "foo", "dist", "index.js"),
			want:    filepath.Join(nm, "@org", "foo", "node_modules", "other", "dist", "index.js"),
			ok:      true,
		},
		{
			name:    "extension-less main",
			request: "plain",
			context: root,
			want:    filepath.Join(nm, "plain", "lib", "main.js"),
			ok:      true,
		},
		{
			name:    "index fallback",
			request: "bare",
			context: root,
			want:    filepath.Join(nm, "bare", "index.js"),
			ok:      true,
		},
		{
			name:    "relative request",
			request: "./dist/index",
			context: filepath.Join(nm, "@org", "bar"),
			want:    filepath.Join(nm, "@org", "bar", "dist", "index.js"),
			ok:      true,
		},
		{
			name:    "package subpath",
			request: "@org/bar/dist/index.js",
			context: root,
			want:    filepath.Join(nm, "@org", "bar", "dist", "index.js"),
			ok:      true,
		},
		{
			name:    "uninstalled built-in",
			request: "fs",
			context: filepath.Join(nm, "@org", "foo", "dist", "index.js"),
			ok:      false,
		},
		{
			name:    "node scheme",
			request: "node:path",
			context: root,
			ok:      false,
		},
		{
			name:    "empty request",
			request: "",
			context: root,
			ok:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.request, tt.context)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactory_NewResolver_Defaults(t *testing.T) {
	root := fixture(t)

	r := resolve.NewFactory().NewResolver(nil, nil)
	got, ok := r.Resolve("@org/bar", root)

	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "node_modules", "@org", "bar", "dist", "index.js"), got)
}
