package parser_test

import (
	"testing"

	"github.com/UnendingLoop/srep/internal/model"
	"github.com/UnendingLoop/srep/internal/parser"
	"github.com/stretchr/testify/require"
)

func envWith(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestBuildConfig(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		env     map[string]string
		wantCfg model.Config
		wantErr error
	}{
		{
			name:    "Negative - only program name",
			args:    []string{"srep"},
			wantErr: parser.ErrNoQueryAndFilePath,
		},
		{
			name:    "Negative - empty args",
			args:    []string{},
			wantErr: parser.ErrNoQueryAndFilePath,
		},
		{
			name:    "Negative - query without file path",
			args:    []string{"srep", "foo"},
			wantErr: parser.ErrNoFilePath,
		},
		{
			name:    "Positive - query and file path",
			args:    []string{"srep", "foo", "bar"},
			wantCfg: model.Config{Query: "foo", FilePath: "bar"},
		},
		{
			name:    "Positive - extra args are ignored",
			args:    []string{"srep", "foo", "bar", "baz", "qux"},
			wantCfg: model.Config{Query: "foo", FilePath: "bar"},
		},
		{
			name:    "Positive - empty query is legal",
			args:    []string{"srep", "", "poem.txt"},
			wantCfg: model.Config{Query: "", FilePath: "poem.txt"},
		},
		{
			name:    "Positive - toggle true",
			args:    []string{"srep", "foo", "bar"},
			env:     map[string]string{parser.IgnoreCaseEnv: "true"},
			wantCfg: model.Config{Query: "foo", FilePath: "bar", IgnoreCase: true},
		},
		{
			name:    "Positive - toggle starting with t",
			args:    []string{"srep", "foo", "bar"},
			env:     map[string]string{parser.IgnoreCaseEnv: "t"},
			wantCfg: model.Config{Query: "foo", FilePath: "bar", IgnoreCase: true},
		},
		{
			name:    "Positive - toggle false",
			args:    []string{"srep", "foo", "bar"},
			env:     map[string]string{parser.IgnoreCaseEnv: "false"},
			wantCfg: model.Config{Query: "foo", FilePath: "bar"},
		},
		{
			name:    "Positive - toggle upper-case TRUE is rejected",
			args:    []string{"srep", "foo", "bar"},
			env:     map[string]string{parser.IgnoreCaseEnv: "TRUE"},
			wantCfg: model.Config{Query: "foo", FilePath: "bar"},
		},
		{
			name:    "Positive - toggle empty",
			args:    []string{"srep", "foo", "bar"},
			env:     map[string]string{parser.IgnoreCaseEnv: ""},
			wantCfg: model.Config{Query: "foo", FilePath: "bar"},
		},
		{
			name:    "Positive - toggle 1 is rejected",
			args:    []string{"srep", "foo", "bar"},
			env:     map[string]string{parser.IgnoreCaseEnv: "1"},
			wantCfg: model.Config{Query: "foo", FilePath: "bar"},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.BuildConfig(tt.args, envWith(tt.env))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, model.Config{}, cfg, "no partial config on error")
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantCfg, cfg)
		})
	}
}

func TestBuildConfigErrorMessages(t *testing.T) {
	_, errNone := parser.BuildConfig([]string{"srep"}, nil)
	_, errOne := parser.BuildConfig([]string{"srep", "foo"}, nil)

	require.ErrorContains(t, errNone, "query and file_path")
	require.ErrorContains(t, errOne, "provide file_path")
	require.NotEqual(t, errNone.Error(), errOne.Error())
}

func TestBuildConfigDoesNotReadEnvOnError(t *testing.T) {
	called := false
	lookup := func(string) (string, bool) {
		called = true
		return "true", true
	}

	_, err := parser.BuildConfig([]string{"srep", "foo"}, lookup)

	require.Error(t, err)
	require.False(t, called, "environment must not be read before arguments are valid")
}

func TestBuildConfigNilLookup(t *testing.T) {
	cfg, err := parser.BuildConfig([]string{"srep", "foo", "bar"}, nil)

	require.NoError(t, err)
	require.False(t, cfg.IgnoreCase)
}
