package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/clickup-mcp/internal/clickup"
)

func TestServeFlagDefaults(t *testing.T) {
	cmd := newServeCmd()
	flags := cmd.Flags()

	tests := []struct {
		flag string
		want string
	}{
		{"transport", "stdio"},
		{"http-addr", ":8080"},
		{"env-file", ".env"},
		{"base-url", clickup.DefaultBaseURL},
		{"character-limit", "0"},
		{"metrics-enabled", "true"},
		{"metrics-addr", ":9090"},
		{"yolo", "false"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.flag)
		require.NotNil(t, f, "flag %s", tt.flag)
		assert.Equal(t, tt.want, f.DefValue, "flag %s", tt.flag)
	}
}

func TestLoadServeEnvVars(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CLICKUP_API_BASE_URL", "http://localhost:4010/api/v2")
	t.Setenv("CLICKUP_CHARACTER_LIMIT", "5000")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("METRICS_ADDR", ":9191")
	t.Setenv("MCP_TRANSPORT", "streamable-http")

	t.Run("env applies to unset flags", func(t *testing.T) {
		cmd := newServeCmd()
		require.NoError(t, cmd.ParseFlags(nil))

		var config ServeConfig
		config.HTTPAddr = defaultHTTPAddr
		config.Metrics.Enabled = true
		loadServeEnvVars(cmd, &config)

		assert.Equal(t, ":3000", config.HTTPAddr)
		assert.Equal(t, "http://localhost:4010/api/v2", config.BaseURL)
		assert.Equal(t, 5000, config.CharacterLimit)
		assert.False(t, config.Metrics.Enabled)
		assert.Equal(t, ":9191", config.Metrics.Addr)
		assert.Equal(t, "streamable-http", config.Transport)
	})

	t.Run("flags win over env", func(t *testing.T) {
		cmd := newServeCmd()
		require.NoError(t, cmd.ParseFlags([]string{"--http-addr", ":7000", "--character-limit", "100", "--transport", "stdio"}))

		config := ServeConfig{HTTPAddr: ":7000", CharacterLimit: 100, Transport: "stdio"}
		loadServeEnvVars(cmd, &config)

		assert.Equal(t, ":7000", config.HTTPAddr)
		assert.Equal(t, 100, config.CharacterLimit)
		assert.Equal(t, "stdio", config.Transport)
	})
}

func TestLoadServeEnvVarsIgnoresInvalidValues(t *testing.T) {
	t.Setenv("CLICKUP_CHARACTER_LIMIT", "lots")
	t.Setenv("METRICS_ENABLED", "perhaps")

	cmd := newServeCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	config := ServeConfig{CharacterLimit: 0}
	config.Metrics.Enabled = true
	loadServeEnvVars(cmd, &config)

	assert.Equal(t, 0, config.CharacterLimit)
	assert.True(t, config.Metrics.Enabled)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing default file is ignored", func(t *testing.T) {
		assert.NoError(t, loadEnvFile(filepath.Join(dir, "absent.env"), false))
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		err := loadEnvFile(filepath.Join(dir, "absent.env"), true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load env file")
	})

	t.Run("empty path", func(t *testing.T) {
		assert.NoError(t, loadEnvFile("", true))
	})

	t.Run("loads without overriding", func(t *testing.T) {
		path := filepath.Join(dir, "test.env")
		require.NoError(t, os.WriteFile(path, []byte("CLICKUP_MCP_TEST_NEW=from-file\nCLICKUP_MCP_TEST_SET=from-file\n"), 0o600))

		t.Setenv("CLICKUP_MCP_TEST_SET", "from-env")
		t.Setenv("CLICKUP_MCP_TEST_NEW", "")
		require.NoError(t, os.Unsetenv("CLICKUP_MCP_TEST_NEW"))

		require.NoError(t, loadEnvFile(path, true))
		assert.Equal(t, "from-file", os.Getenv("CLICKUP_MCP_TEST_NEW"))
		assert.Equal(t, "from-env", os.Getenv("CLICKUP_MCP_TEST_SET"))
	})
}

func TestRunServeRejectsUnknownTransport(t *testing.T) {
	err := runServe(ServeConfig{Transport: "sse"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport type: sse")
}

func TestGenerateDocs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runGenerateDocs(&buf, ""))
	assert.True(t, strings.HasPrefix(buf.String(), "# MCP Tools Reference"))
	assert.Contains(t, buf.String(), "### get_list_custom_fields")

	out := filepath.Join(t.TempDir(), "tools.md")
	require.NoError(t, runGenerateDocs(&buf, out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "### get_views")
}

func TestVersionCmd(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "clickup-mcp version 1.2.3\n", buf.String())
}
