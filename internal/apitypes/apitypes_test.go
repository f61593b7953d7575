package apitypes

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func loadRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := Load(filepath.Join("testdata", "types.yaml"))
	require.NoError(t, err)
	return r
}

func TestLoadRegistry(t *testing.T) {
	r := loadRegistry(t)
	assert.Equal(t, 20, r.Len())
	assert.Contains(t, r.Names(), "SerinusFactory")
	assert.IsIncreasing(t, r.Names())
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	r, err := Load(filepath.Join(t.TempDir(), "types.yaml"))
	require.NoError(t, err)
	assert.Zero(t, r.Len())
}

func TestLookup(t *testing.T) {
	r := loadRegistry(t)

	module, err := r.Lookup("Module")
	require.NoError(t, err)
	assert.Equal(t, KindClass, module.Kind)
	require.Len(t, module.Members, 4)
	assert.Equal(t, []string{"controllers", "providers", "imports", "exports"},
		[]string{module.Members[0].Name, module.Members[1].Name, module.Members[2].Name, module.Members[3].Name})
	assert.Equal(t, "List<Controller>", module.Members[0].Type)

	_, err = r.Lookup("Injector")
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryNotFound))
}

func TestMember(t *testing.T) {
	r := loadRegistry(t)

	m, err := r.Member("Response", "json")
	require.NoError(t, err)
	assert.True(t, m.Static)
	assert.Equal(t, "static Response json", m.Signature())

	m, err = r.Member("Request", "params")
	require.NoError(t, err)
	assert.False(t, m.IsMethod())
	assert.Equal(t, "Path parameters from the route.", m.Description)

	_, err = r.Member("Request", "cookies")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestSignatures(t *testing.T) {
	r := loadRegistry(t)

	tests := []struct {
		name, typ, member, want string
	}{
		{"method with named required", "SerinusFactory", "createApplication", "Future<SerinusApplication> createApplication({required Module entrypoint})"},
		{"method without params", "SerinusApplication", "serve", "Future<void> serve()"},
		{"generic method", "Controller", "on", "void on<T, B>(Route route, Future<T> Function(RequestContext<B> context) handler, {bool shouldValidateMultipart = false})"},
		{"field", "Request", "uri", "Uri uri"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := r.Member(tt.typ, tt.member)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Signature())
		})
	}

	variable, err := r.Lookup("serinus")
	require.NoError(t, err)
	assert.Equal(t, "SerinusFactory serinus", variable.Signature())

	provider, err := r.Lookup("Provider")
	require.NoError(t, err)
	assert.Equal(t, "class Provider<T>", provider.Signature())
}

func TestConstructorSignatures(t *testing.T) {
	r := loadRegistry(t)

	route, err := r.Lookup("Route")
	require.NoError(t, err)
	require.Len(t, route.Constructors, 2)
	assert.Equal(t,
		"Route({required String path, required String method, List<Metadata> metadata = const [], Set<Pipe> pipes = const {}, Set<ExceptionFilter> exceptionFilters = const {}})",
		route.Constructors[0].Signature(route.Name))
	assert.Equal(t,
		"factory Route.get(String path, {List<Metadata> metadata = const [], Set<Pipe> pipes = const {}, Set<ExceptionFilter> exceptionFilters = const {}})",
		route.Constructors[1].Signature(route.Name))

	controller, err := r.Lookup("Controller")
	require.NoError(t, err)
	assert.Equal(t, "Controller([String path = ''])", controller.Constructors[0].Signature(controller.Name))
}

func TestParseRejectsDuplicates(t *testing.T) {
	_, err := Parse([]byte("types:\n  - name: Module\n  - name: Module\n"))
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
	assert.Contains(t, err.Error(), "duplicate api type name")

	_, err = Parse([]byte("types:\n  - name: Hook\n    members:\n      onRequest: void\n      onRequest: void\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate member")
}

func TestParseRejectsInvalidKinds(t *testing.T) {
	tests := map[string]string{
		"kind":           "types:\n  - name: X\n    kind: enum\n",
		"variable type":  "types:\n  - name: x\n    kind: variable\n",
		"parameter kind": "types:\n  - name: X\n    constructors:\n      - parameters:\n          - {type: int, name: a, kind: optional}\n",
		"no name":        "types:\n  - description: nameless\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.True(t, derrors.HasCategory(err, derrors.CategoryConfig))
		})
	}
}
