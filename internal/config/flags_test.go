package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress(t *testing.T) {
	tests := []struct {
		input   string
		want    NetAddress
		wantErr string
	}{
		{input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{input: "127.0.0.1:9090", want: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{input: ":8080", want: NetAddress{Port: 8080}},
		{input: "", wantErr: "need address in a form `host:port`"},
		{input: "localhost8080", wantErr: "need address in a form `host:port`"},
		{input: "host:port:extra", wantErr: "need address in a form `host:port`"},
		{input: "localhost:abc", wantErr: "invalid syntax"},
		{input: "localhost:0", wantErr: "port number must be between 1 and 65535"},
		{input: "localhost:70000", wantErr: "port number must be between 1 and 65535"},
		{input: "invalid.host:8080", wantErr: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.input, addr.String())
		})
	}

	assert.Empty(t, (&NetAddress{}).String())
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "no flags",
			args: nil,
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
		{
			name: "server flags",
			args: []string{"-a", "localhost:8080", "-request-timeout", "5s", "-max-body-bytes", "1024", "-catalog", "types.yaml"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, int64(1024), cfg.Server.MaxBodyBytes)
				assert.Equal(t, "types.yaml", cfg.App.CatalogPath)
			},
		},
		{
			name: "client flags",
			args: []string{"-s", "http://localhost:8080", "-request-timeout", "2s", "-log-level", "warn"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
				assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "warn", cfg.App.LogLevel)
			},
		},
		{
			name: "type options",
			args: []string{"-undeclared", "reject", "-jitless", "true", "-nan", "false", "-invalid-dates", "true", "-clone", "false"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, Types{
					NumberAllowsNaN:   "false",
					DateAllowsInvalid: "true",
					Jitless:           "true",
					Clone:             "false",
					OnUndeclaredKey:   "reject",
				}, cfg.Types)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/types/config.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/types/config.json", cfg.JSONFilePath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset flag.CommandLine for each test
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

			oldArgs := os.Args
			os.Args = append([]string{"cmd"}, tt.args...)
			defer func() { os.Args = oldArgs }()

			cfg := ParseFlags()
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}
