package muxconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/embedded-go/xca954x/pkg/i2c"
	"github.com/embedded-go/xca954x/pkg/i2c/i2ctest"
	"github.com/embedded-go/xca954x/pkg/xca954x"
)

const sampleYAML = `
variant: tca9548a
address:
  a2: false
  a1: true
  a0: true
channels:
  - name: imu
    channel: 0
  - name: env-sensor
    channel: 3
`

func TestParse(t *testing.T) {
	mux, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, xca954x.TCA9548A, mux.Variant)
	assert.Equal(t, xca954x.AlternativeAddr(false, true, true), mux.Address)
	assert.ElementsMatch(t, []string{"imu", "env-sensor"}, mux.ChannelNames())
}

func TestParseDefaultAddress(t *testing.T) {
	mux, err := Parse([]byte("variant: xca9543a\n"))
	require.NoError(t, err)

	assert.Equal(t, xca954x.XCA9543A, mux.Variant)
	assert.Equal(t, xca954x.DefaultAddr(), mux.Address)
	assert.Empty(t, mux.ChannelNames())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			yaml:    "variant: [",
			wantErr: "parsing mux description",
		},
		{
			name:    "unknown variant",
			yaml:    "variant: pca9999\n",
			wantErr: `unknown variant "pca9999"`,
		},
		{
			name: "channel out of range",
			yaml: "variant: xca9543a\nchannels:\n  - name: imu\n    channel: 2\n",
			wantErr: "out of range",
		},
		{
			name: "negative channel",
			yaml: "variant: tca9548a\nchannels:\n  - name: imu\n    channel: -1\n",
			wantErr: "out of range",
		},
		{
			name: "duplicate name",
			yaml: "variant: tca9548a\nchannels:\n  - name: imu\n    channel: 0\n  - name: imu\n    channel: 1\n",
			wantErr: `duplicate channel name "imu"`,
		},
		{
			name: "missing name",
			yaml: "variant: tca9548a\nchannels:\n  - channel: 0\n",
			wantErr: "missing name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mux.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0644))

	mux, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, xca954x.TCA9548A, mux.Variant)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	mux, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)

	// a1/a0 high shifts the device address to 0b111_0011.
	bus := i2ctest.NewBus(t, []i2ctest.Tx{
		i2ctest.Write(0b111_0011, []byte{0x08}),
		i2ctest.Write(0x20, []byte{0xAA}),
	})

	drv, handles := mux.Build(bus, nil)
	require.Len(t, handles, 2)
	require.Contains(t, handles, "imu")
	require.Contains(t, handles, "env-sensor")
	assert.Equal(t, uint8(3), handles["env-sensor"].Index())

	require.NoError(t, handles["env-sensor"].Write(i2c.Addr(0x20), []byte{0xAA}))

	_, err = drv.Release()
	require.NoError(t, err)
	bus.Done()
}
