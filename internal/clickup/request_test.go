package clickup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Endpoint(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		want    string
		wantErr bool
	}{
		{
			name: "no placeholders",
			req:  Get("/user", nil),
			want: "/user",
		},
		{
			name: "leading slash added",
			req:  Get("user", nil),
			want: "/user",
		},
		{
			name: "two placeholders",
			req:  Get("/list/{list_id}/field/{field_id}", map[string]string{"list_id": "L1", "field_id": "F 2"}),
			want: "/list/L1/field/F%202",
		},
		{
			name: "slash in parameter is escaped",
			req:  Get("/space/{space_id}", map[string]string{"space_id": "../team"}),
			want: "/space/..%2Fteam",
		},
		{
			name:    "missing parameter",
			req:     Get("/space/{space_id}", nil),
			wantErr: true,
		},
		{
			name:    "dot-dot parameter",
			req:     Get("/space/{space_id}/view", map[string]string{"space_id": ".."}),
			wantErr: true,
		},
		{
			name:    "dot-dot in template",
			req:     Get("/space/../team", nil),
			wantErr: true,
		},
		{
			name:    "unterminated placeholder",
			req:     Get("/space/{space_id", map[string]string{"space_id": "1"}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Endpoint()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnvCredentials_Resolve(t *testing.T) {
	env := map[string]string{
		APIKeyEnv: "pk_42_SECRET",
		"BLANK":   "   ",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	token, err := EnvCredentials{Lookup: lookup}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "pk_42_SECRET", token)

	_, err = EnvCredentials{Var: "BLANK", Lookup: lookup}.Resolve()
	assert.Equal(t, KindMissingCredential, KindOf(err))

	_, err = EnvCredentials{Var: "UNSET", Lookup: lookup}.Resolve()
	assert.Equal(t, KindMissingCredential, KindOf(err))
}

func TestEnvCredentials_ReadsEnvironmentEachTime(t *testing.T) {
	t.Setenv(APIKeyEnv, "first")
	creds := EnvCredentials{}

	token, err := creds.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "first", token)

	t.Setenv(APIKeyEnv, "second")
	token, err = creds.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "second", token)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.Equal(t, KindNotFound, KindOf(&Error{Kind: KindNotFound}))
	assert.Equal(t, "rate_limited", KindRateLimited.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
