package options

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdemirtas/iamwatch/pkg/scanner"
)

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()
	assert.Equal(t, scanner.DefaultThreshold, opts.Threshold)
	assert.Equal(t, scanner.DefaultConcurrency, opts.Concurrency)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		check   func(*testing.T, *Options)
		wantErr bool
	}{
		{
			name: "no flags keeps defaults",
			args: nil,
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, scanner.DefaultThreshold, o.Threshold)
				assert.Empty(t, o.Profile)
				assert.False(t, o.NoColor)
			},
		},
		{
			name: "threshold shorthand",
			args: []string{"-t", "10"},
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, 10, o.Threshold)
			},
		},
		{
			name: "profile region and color flags",
			args: []string{"--profile", "audit", "--region", "eu-west-1", "--no-color"},
			check: func(t *testing.T, o *Options) {
				assert.Equal(t, "audit", o.Profile)
				assert.Equal(t, "eu-west-1", o.Region)
				assert.True(t, o.NoColor)
			},
		},
		{
			name:    "zero threshold rejected",
			args:    []string{"--threshold", "0"},
			wantErr: true,
		},
		{
			name:    "zero concurrency rejected",
			args:    []string{"--concurrency", "0"},
			wantErr: true,
		},
		{
			name:    "unknown flag rejected",
			args:    []string{"--bogus"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NewOptions()
			err := opts.Parse(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			tt.check(t, opts)
		})
	}
}

func TestCredentialsFileEnvOverride(t *testing.T) {
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/tmp/credentials")
	assert.Equal(t, "/tmp/credentials", defaultCredentialsFile())
}
