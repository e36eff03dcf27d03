package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/apiruntime/errors"
)

func petPosts() Definition {
	return Definition{
		Name:        "getUserPosts",
		Method:      "GET",
		URI:         "/users/{id}/posts",
		RouteParams: []string{"id"},
		Params:      []string{"page", "tags[]", "filter.status"},
	}
}

type petStatus string

func (s petStatus) WireValue() any { return string(s) }

func TestDescriptor_URI(t *testing.T) {
	d := New(petPosts())
	require.NoError(t, d.SetParams(map[string]any{"id": "42"}))

	uri, err := d.URI()
	require.NoError(t, err)
	assert.Equal(t, "users/42/posts", uri)
}

func TestDescriptor_URI_NumericValue(t *testing.T) {
	tests := map[string]struct {
		id   any
		want string
	}{
		"decoded json id": {float64(12345678), "users/12345678/posts"},
		"million":         {float64(1000000), "users/1000000/posts"},
		"int":             {7, "users/7/posts"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d := New(petPosts())
			require.NoError(t, d.SetParams(map[string]any{"id": tc.id}))

			uri, err := d.URI()
			require.NoError(t, err)
			assert.Equal(t, tc.want, uri)
		})
	}
}

func TestDescriptor_URI_Escapes(t *testing.T) {
	d := New(petPosts())
	require.NoError(t, d.SetParams(map[string]any{"id": "a b/c"}))

	uri, err := d.URI()
	require.NoError(t, err)
	assert.Equal(t, "users/a%20b%2Fc/posts", uri)
}

func TestDescriptor_URI_MissingRouteParam(t *testing.T) {
	d := New(petPosts())
	require.NoError(t, d.SetParams(map[string]any{"page": 1}))

	_, err := d.URI()
	assert.True(t, errors.HasCode(err, errors.ErrCodeMissingRouteParameter))
}

func TestDescriptor_SetParams_Invalid(t *testing.T) {
	d := New(petPosts())
	require.NoError(t, d.SetParams(map[string]any{"id": 1, "page": 2}))

	err := d.SetParams(map[string]any{"id": 3, "bogus": true})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidParameter))
	assert.Contains(t, err.Error(), `"bogus" is not a valid parameter. Allowed parameters are "page", "tags", "filter.status", "id".`)

	// previous params survive a rejected write
	assert.Equal(t, map[string]any{"page": 2}, d.Params())
	uri, err := d.URI()
	require.NoError(t, err)
	assert.Equal(t, "users/1/posts", uri)
}

func TestDescriptor_SetParams_NilIsNoop(t *testing.T) {
	d := New(petPosts())
	require.NoError(t, d.SetParams(map[string]any{"page": 1}))
	require.NoError(t, d.SetParams(nil))
	assert.Equal(t, map[string]any{"page": 1}, d.Params())
}

func TestDescriptor_SetParams_SnakeCase(t *testing.T) {
	def := Definition{Name: "list", Method: "GET", URI: "/pets", Params: []string{"page_size"}}

	d := New(def, WithSnakeCaseParams(true))
	require.NoError(t, d.SetParams(map[string]any{"pageSize": 10}))
	assert.Equal(t, map[string]any{"page_size": 10}, d.Params())

	plain := New(def)
	assert.Error(t, plain.SetParams(map[string]any{"pageSize": 10}))
}

func TestDescriptor_SetParams_KeyMapAndValuer(t *testing.T) {
	def := petPosts()
	def.KeyMap = map[string]string{"filterStatus": "filter.status"}

	d := New(def)
	require.NoError(t, d.SetParams(map[string]any{
		"id":           petStatus("7"),
		"filterStatus": petStatus("open"),
	}))

	assert.Equal(t, map[string]any{"filter": map[string]any{"status": "open"}}, d.Params())
	uri, err := d.URI()
	require.NoError(t, err)
	assert.Equal(t, "users/7/posts", uri)
}

func TestDescriptor_Params(t *testing.T) {
	d := New(petPosts())
	require.NoError(t, d.SetParams(map[string]any{
		"id":            42,
		"page":          nil,
		"tags":          []any{"a", nil, "b"},
		"filter.status": "open",
	}))

	assert.Equal(t, map[string]any{
		"tags":   []any{"a", "b"},
		"filter": map[string]any{"status": "open"},
	}, d.Params())
}

func TestDescriptor_Params_Empty(t *testing.T) {
	assert.Equal(t, map[string]any{}, New(petPosts()).Params())
}

func TestDescriptor_Body(t *testing.T) {
	def := Definition{Name: "create", Method: "POST", URI: "/pets"}

	tests := map[string]struct {
		opts []Option
		in   map[string]any
		want map[string]any
	}{
		"defaults": {
			in:   map[string]any{"petName": "Rex", "tags": []any{}, "owner": nil, "prefixNumber3d": true},
			want: map[string]any{"petName": "Rex", "3d": true},
		},
		"snake case": {
			opts: []Option{WithSnakeCaseBody(true)},
			in:   map[string]any{"petName": "Rex", "meta": map[string]any{"createdAt": 1}},
			want: map[string]any{"pet_name": "Rex", "meta": map[string]any{"createdAt": 1}},
		},
		"custom prefix": {
			opts: []Option{WithReservedPrefix("x_")},
			in:   map[string]any{"x_type": "a", "prefixNumber1": 1},
			want: map[string]any{"type": "a", "prefixNumber1": 1},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			d := New(def, tc.opts...)
			d.SetBody(tc.in)
			assert.Equal(t, tc.want, d.Body())
		})
	}
}

func TestDescriptor_FormDataUsesFormFlag(t *testing.T) {
	def := Definition{Name: "upload", Method: "POST", URI: "/pets"}

	d := New(def, WithSnakeCaseBody(true))
	d.SetFormData(map[string]any{"petName": "Rex"})
	assert.Equal(t, map[string]any{"petName": "Rex"}, d.FormData())

	d = New(def, WithSnakeCaseFormData(true))
	d.SetFormData(map[string]any{"petName": "Rex"})
	assert.Equal(t, map[string]any{"pet_name": "Rex"}, d.FormData())
}

func TestDescriptor_BodyUnset(t *testing.T) {
	d := New(petPosts())
	d.SetBody(nil)
	assert.Nil(t, d.Body())
	assert.Nil(t, d.FormData())
}

func TestDescriptor_BodyReturnsCopy(t *testing.T) {
	d := New(Definition{Name: "create", Method: "POST", URI: "/pets"})
	d.SetBody(map[string]any{"meta": map[string]any{"a": 1}})

	got := d.Body()
	got["meta"].(map[string]any)["a"] = 2
	assert.Equal(t, map[string]any{"meta": map[string]any{"a": 1}}, d.Body())
}
